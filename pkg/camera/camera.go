// Package camera builds the view-matrix camera and primary-ray generator
// described in spec 4.K, grounded on the teacher's pkg/renderer/camera.go
// viewport-basis-vector approach, generalized from a fixed 16:9 viewport
// into an explicit fov/from/to/up inverse-view-matrix ray generator.
package camera

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/transform"
)

// Camera holds the precomputed pixel geometry and inverse view matrix
// needed to fire a primary ray through any pixel.
type Camera struct {
	Width, Height int
	PixelSize     float64
	halfWidth     float64
	halfHeight    float64
	inverseView   core.Matrix4
}

// New builds a camera from fov (radians), the eye position/target/up
// vectors, and the output image dimensions (spec 4.K).
func New(width, height int, fov float64, from, to, up core.Tuple) (*Camera, error) {
	halfView := math.Tan(fov / 2)
	aspect := float64(width) / float64(height)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}
	pixelSize := (halfWidth * 2) / float64(width)

	view, err := viewTransform(from, to, up)
	if err != nil {
		return nil, err
	}

	return &Camera{
		Width:       width,
		Height:      height,
		PixelSize:   pixelSize,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		inverseView: view.Inverse,
	}, nil
}

// viewTransform builds the world-to-camera transform placing the eye at
// the origin looking down -z, derived from orthonormalizing (from, to, up)
// the way the teacher's camera basis-vector construction does, expressed
// here as a transform.Transform so its Inverse is cached alongside it.
func viewTransform(from, to, up core.Tuple) (transform.Transform, error) {
	forward := to.Subtract(from).Normalize()
	upn := up.Normalize()
	left := forward.Cross(upn)
	trueUp := left.Cross(forward)

	orientation := core.NewMatrix4([16]float64{
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	})
	translation := core.NewMatrix4([16]float64{
		1, 0, 0, -from.X,
		0, 1, 0, -from.Y,
		0, 0, 1, -from.Z,
		0, 0, 0, 1,
	})

	matrix := orientation.Mul(translation)
	inverse, err := matrix.Inverse()
	if err != nil {
		return transform.Transform{}, err
	}
	return transform.Transform{Matrix: matrix, Inverse: inverse}, nil
}

// RayForPixel computes the primary ray through the sub-pixel offset
// (px, py) within pixel (x, y), where px,py ∈ [0,1) locate the sample
// point within the pixel (0.5,0.5 is the pixel center; anti-aliasing
// supersampling passes other fixed offsets).
func (c *Camera) RayForPixel(x, y int, px, py float64) core.Ray {
	xOffset := (float64(x) + px) * c.PixelSize
	yOffset := (float64(y) + py) * c.PixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverseView.MulTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverseView.MulTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
