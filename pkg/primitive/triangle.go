package primitive

import "github.com/davelpz/rray/pkg/core"

const triangleEpsilon = 1e-8

// intersectTriangle is the Möller–Trumbore algorithm, grounded directly on
// the teacher's geometry/triangle.go Hit, recording u,v for smooth-normal
// interpolation and UV mapping (spec 4.F: "Records u,v if needed").
func intersectTriangle(p *Primitive, ray core.Ray) []Hit {
	dirCrossE2 := ray.Direction.Cross(p.edge2)
	det := p.edge1.Dot(dirCrossE2)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(p.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(p.edge1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * p.edge2.Dot(originCrossE1)
	return []Hit{{T: t, U: u, V: v}}
}

// normalTriangle returns the precomputed flat face normal, or the
// barycentric-interpolated vertex normal for a smooth triangle.
func normalTriangle(p *Primitive, hit Hit) core.Tuple {
	if !p.HasVertexNormals {
		return p.faceNormal
	}
	n := p.N2.Multiply(hit.U).
		Add(p.N3.Multiply(hit.V)).
		Add(p.N1.Multiply(1 - hit.U - hit.V))
	return n.Normalize()
}
