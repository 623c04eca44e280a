package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/davelpz/rray/pkg/rrerr"
)

// WritePNG encodes img as an 8-bit-per-channel PNG at path (spec §6
// Output), using the standard library's image/png encoder — no example
// repo in the pack reaches for a third-party PNG encoder over the
// stdlib's, which is already lossless and sufficient here.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return rrerr.IO(fmt.Errorf("failed to create output file %q: %w", path, err))
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return rrerr.IO(fmt.Errorf("failed to encode PNG to %q: %w", path, err))
	}
	return nil
}
