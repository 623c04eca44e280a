package scenefmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davelpz/rray/pkg/rrerr"
)

const sampleYAML = `
camera:
  fov: 60
  from: [0, 1.5, -5]
  to: [0, 1, 0]
  up: [0, 1, 0]
lights:
  - type: point
    color: [1, 1, 1]
    position: [-10, 10, -10]
scene:
  - type: sphere
    material:
      color: [1, 0, 0]
`

const sampleJSON = `{
  "camera": {"fov": 60, "from": [0, 1.5, -5], "to": [0, 1, 0], "up": [0, 1, 0]},
  "lights": [{"type": "point", "color": [1,1,1], "position": [-10,10,-10]}],
  "scene": [{"type": "sphere"}]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestParseYAMLScene(t *testing.T) {
	path := writeTemp(t, "scene.yaml", sampleYAML)
	f, err := Parse(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Camera.FOV != 60 || len(f.Lights) != 1 || len(f.Scene) != 1 {
		t.Errorf("unexpected decode: %+v", f)
	}
}

func TestParseJSONScene(t *testing.T) {
	path := writeTemp(t, "scene.json", sampleJSON)
	f, err := Parse(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Camera.FOV != 60 || f.Scene[0].Type != "sphere" {
		t.Errorf("unexpected decode: %+v", f)
	}
}

func TestParseMissingFileIsIOError(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !rrerr.Is(err, rrerr.KindIO) {
		t.Errorf("expected an IO-kind error, got %v", err)
	}
}

func TestParseMalformedJSONIsParseError(t *testing.T) {
	path := writeTemp(t, "bad.json", "{not json")
	_, err := Parse(path)
	if err == nil || !rrerr.Is(err, rrerr.KindParse) {
		t.Errorf("expected a Parse-kind error, got %v", err)
	}
}
