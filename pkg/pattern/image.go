package pattern

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/rrerr"
)

// Texture holds decoded image data as a Color array, the backing store for
// the "image" pattern kind (spec 4.D, "image: map p.x,p.y,p.z ... to (u,v);
// bilinear sample the texture").
type Texture struct {
	Width  int
	Height int
	Pixels []core.Color
}

// LoadTexture loads a texture from disk. PNG and JPEG are decoded by the
// standard library; BMP and TIFF are decoded via golang.org/x/image, which
// registers additional codecs with image.Decode the same way the stdlib
// ones register themselves.
func LoadTexture(filename string) (*Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, rrerr.IO(fmt.Errorf("failed to open texture file %q: %w", filename, err))
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, rrerr.IO(fmt.Errorf("failed to decode texture %q: %w", filename, err))
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &Texture{Width: width, Height: height, Pixels: pixels}, nil
}

// At returns the pixel at integer coordinates, clamped to the texture
// bounds.
func (t *Texture) At(x, y int) core.Color {
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}

// Bilinear samples the texture at normalized (u,v) coordinates in [0,1],
// wrapping around the edges the way a tiled texture would.
func (t *Texture) Bilinear(u, v float64) core.Color {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return core.Black
	}
	u = wrap01(u)
	v = 1 - wrap01(v) // image rows run top-down; v=0 is the bottom of the pattern

	fx := u * float64(t.Width-1)
	fy := v * float64(t.Height-1)

	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	y1 := y0 + 1
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.At(x0, y0)
	c10 := t.At(x1, y0)
	c01 := t.At(x0, y1)
	c11 := t.At(x1, y1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

func wrap01(v float64) float64 {
	if v >= 0 && v <= 1 {
		return v
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1
	}
	return v
}
