// Package primitive implements the seven canonical shape kinds from spec
// 4.F. Every primitive lives in its own fixed object space (sphere: unit
// radius at the origin; cube: axis-aligned [-1,1]^3; plane: y=0) — the
// enclosing pkg/shape.Shape node applies the ray/inverse-transform dance
// before delegating here, grounded on the teacher's one-struct-per-shape
// pkg/geometry files.
package primitive

import (
	"math"
	"sort"

	"github.com/davelpz/rray/pkg/core"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Kind tags which primitive variant a Primitive holds.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindTorus
)

// Hit is a local-space intersection record. U and V are barycentric
// coordinates, populated only for KindTriangle, used both for UV texture
// lookups and for smooth (vertex-normal-interpolated) shading.
type Hit struct {
	T    float64
	U, V float64
}

// Primitive holds the fields needed by any of the seven kinds; unused
// fields for a given Kind are simply zero.
type Primitive struct {
	Kind Kind

	// Cylinder/cone
	Minimum, Maximum float64
	Closed           bool

	// Triangle
	P1, P2, P3       core.Tuple
	N1, N2, N3       core.Tuple
	HasVertexNormals bool
	edge1, edge2     core.Tuple
	faceNormal       core.Tuple

	// Torus: minor_radius from the shape; major_radius is fixed to 1
	// and the torus is oriented facing the z-axis (spec 4.F).
	MinorRadius float64
}

// NewSphere creates a unit sphere centered at the origin.
func NewSphere() *Primitive { return &Primitive{Kind: KindSphere} }

// NewPlane creates the y=0 plane.
func NewPlane() *Primitive { return &Primitive{Kind: KindPlane} }

// NewCube creates the axis-aligned [-1,1]^3 cube.
func NewCube() *Primitive { return &Primitive{Kind: KindCube} }

// NewCylinder creates a cylinder of infinite height by default; Minimum and
// Maximum clip it along y (use math.Inf for an untruncated cylinder).
func NewCylinder(minimum, maximum float64, closed bool) *Primitive {
	return &Primitive{Kind: KindCylinder, Minimum: minimum, Maximum: maximum, Closed: closed}
}

// NewCone creates a double-napped cone, clipped along y the same way as a
// cylinder.
func NewCone(minimum, maximum float64, closed bool) *Primitive {
	return &Primitive{Kind: KindCone, Minimum: minimum, Maximum: maximum, Closed: closed}
}

// NewTriangle creates a flat-shaded triangle; its face normal is the
// cross product of its edges, precomputed once at construction.
func NewTriangle(p1, p2, p3 core.Tuple) *Primitive {
	t := &Primitive{Kind: KindTriangle, P1: p1, P2: p2, P3: p3}
	t.edge1 = p2.Subtract(p1)
	t.edge2 = p3.Subtract(p1)
	t.faceNormal = t.edge2.Cross(t.edge1).Normalize()
	return t
}

// NewSmoothTriangle creates a triangle that interpolates per-vertex normals
// by the hit's barycentric coordinates, used for OBJ meshes with vn data.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *Primitive {
	t := NewTriangle(p1, p2, p3)
	t.N1, t.N2, t.N3 = n1, n2, n3
	t.HasVertexNormals = true
	return t
}

// NewTorus creates a torus with the given minor radius, major radius fixed
// to 1, oriented facing the z-axis.
func NewTorus(minorRadius float64) *Primitive {
	return &Primitive{Kind: KindTorus, MinorRadius: minorRadius}
}

// Intersect dispatches to the per-kind local-space intersection routine,
// returning every hit (not just the closest), sorted by increasing t and
// deduplicated for tangent hits within epsilon, as spec 4.F requires (CSG
// filtering and group traversal both need the full list).
func Intersect(p *Primitive, ray core.Ray) []Hit {
	var hits []Hit
	switch p.Kind {
	case KindSphere:
		hits = intersectSphere(ray)
	case KindPlane:
		hits = intersectPlane(ray)
	case KindCube:
		hits = intersectCube(ray)
	case KindCylinder:
		hits = intersectCylinder(p, ray)
	case KindCone:
		hits = intersectCone(p, ray)
	case KindTriangle:
		hits = intersectTriangle(p, ray)
	case KindTorus:
		hits = intersectTorus(p, ray)
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
	return dedupe(hits)
}

const tangentEpsilon = 1e-5

// dedupe collapses hits whose t values fall within epsilon of each other,
// the way a ray grazing a shared edge between two triangles (or a ray
// exactly tangent to a sphere) would otherwise double-count.
func dedupe(hits []Hit) []Hit {
	if len(hits) < 2 {
		return hits
	}
	out := hits[:1]
	for _, h := range hits[1:] {
		if h.T-out[len(out)-1].T > tangentEpsilon {
			out = append(out, h)
		}
	}
	return out
}

// NormalAt returns the object-space normal at a local-space point, using
// hit for the kinds (triangle, smooth triangle) that need barycentric or
// face data beyond the point itself.
func NormalAt(p *Primitive, point core.Tuple, hit Hit) core.Tuple {
	switch p.Kind {
	case KindSphere:
		return normalSphere(point)
	case KindPlane:
		return normalPlane()
	case KindCube:
		return normalCube(point)
	case KindCylinder:
		return normalCylinder(p, point)
	case KindCone:
		return normalCone(p, point)
	case KindTriangle:
		return normalTriangle(p, hit)
	case KindTorus:
		return normalTorus(p, point)
	default:
		return core.NewVector(0, 1, 0)
	}
}

// Bounds returns the constant object-space bounding box for the primitive,
// the starting point for a Shape's parent-space bbox (spec 4.H: "primitive
// bboxes are known constants").
func Bounds(p *Primitive) core.AABB {
	switch p.Kind {
	case KindSphere:
		return core.NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	case KindPlane:
		return core.NewAABB(
			core.NewPoint(negInf, 0, negInf),
			core.NewPoint(posInf, 0, posInf),
		)
	case KindCube:
		return core.NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
	case KindCylinder, KindCone:
		r := 1.0
		if p.Kind == KindCone {
			r = maxAbs(p.Minimum, p.Maximum)
		}
		return core.NewAABB(core.NewPoint(-r, p.Minimum, -r), core.NewPoint(r, p.Maximum, r))
	case KindTriangle:
		return core.NewAABBFromPoints(p.P1, p.P2, p.P3)
	case KindTorus:
		r := 1 + p.MinorRadius
		return core.NewAABB(core.NewPoint(-r, -r, -p.MinorRadius), core.NewPoint(r, r, p.MinorRadius))
	default:
		return core.NewAABB(core.NewPoint(0, 0, 0), core.NewPoint(0, 0, 0))
	}
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
