package scenefmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/davelpz/rray/pkg/rrerr"
)

// Parse reads and decodes a scene file, dispatching on its extension:
// .json uses github.com/goccy/go-json, anything else (.yaml/.yml) uses
// gopkg.in/yaml.v3 — the same two formats spec §6 names as equivalent.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rrerr.IO(fmt.Errorf("failed to read scene file %q: %w", path, err))
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, rrerr.Parse(fmt.Errorf("invalid JSON scene %q: %w", path, err))
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, rrerr.Parse(fmt.Errorf("invalid YAML scene %q: %w", path, err))
		}
	}
	return &f, nil
}
