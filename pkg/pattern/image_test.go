package pattern

import (
	"testing"

	"github.com/davelpz/rray/pkg/core"
)

func checkerTexture() *Texture {
	return &Texture{
		Width:  2,
		Height: 2,
		Pixels: []core.Color{
			core.Black, core.White,
			core.White, core.Black,
		},
	}
}

func TestTextureAtClampsOutOfBounds(t *testing.T) {
	tex := checkerTexture()
	if got := tex.At(-5, -5); !got.Equals(tex.At(0, 0)) {
		t.Errorf("At should clamp negative coords, got %v", got)
	}
	if got := tex.At(50, 50); !got.Equals(tex.At(1, 1)) {
		t.Errorf("At should clamp out-of-range coords, got %v", got)
	}
}

func TestBilinearExactCorners(t *testing.T) {
	tex := checkerTexture()
	if got := tex.Bilinear(0, 1); !got.Equals(core.Black) {
		t.Errorf("top-left (u=0,v=1) should be pixel (0,0): got %v", got)
	}
}

func TestBilinearWrapsCoordinates(t *testing.T) {
	tex := checkerTexture()
	a := tex.Bilinear(0.25, 0.75)
	b := tex.Bilinear(1.25, 0.75)
	if !a.Equals(b) {
		t.Errorf("u should wrap modulo 1: %v != %v", a, b)
	}
}

func TestBilinearNilTextureIsBlack(t *testing.T) {
	var tex *Texture
	if got := tex.Bilinear(0.5, 0.5); !got.Equals(core.Black) {
		t.Errorf("nil texture should sample black, got %v", got)
	}
}
