// Package objfile implements the minimal Wavefront OBJ subset spec §6
// describes: v, vn, f (with optional vertex normals), g groups; fan
// triangulation for polygons; unsupported directives ignored. Grounded on
// the teacher's deleted ply.go line-oriented scanning style (bufio.Scanner
// over whitespace-split fields), the same idiom pbrt.go uses for its own
// line-oriented parser.
package objfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/primitive"
	"github.com/davelpz/rray/pkg/rrerr"
	"github.com/davelpz/rray/pkg/shape"
)

// Mesh is the parsed result: a flat list of triangles per named group.
// Faces outside any `g` directive live in the "" (default) group.
type Mesh struct {
	Groups map[string][]*primitive.Primitive
	Order  []string // group names in first-seen order, for deterministic output
}

// Load reads and parses an OBJ file at path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rrerr.IO(fmt.Errorf("failed to open obj file %q: %w", path, err))
	}
	defer f.Close()
	return Parse(f)
}

// Parse parses OBJ content from r.
func Parse(r interface{ Read([]byte) (int, error) }) (*Mesh, error) {
	var vertices []core.Tuple
	var normals []core.Tuple

	mesh := &Mesh{Groups: map[string][]*primitive.Primitive{}}
	currentGroup := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		keyword := fields[0]
		args := fields[1:]

		switch keyword {
		case "v":
			p, err := parsePoint(args)
			if err != nil {
				return nil, rrerr.Parse(fmt.Errorf("obj: bad vertex %q: %w", line, err))
			}
			vertices = append(vertices, p)
		case "vn":
			n, err := parsePoint(args)
			if err != nil {
				return nil, rrerr.Parse(fmt.Errorf("obj: bad normal %q: %w", line, err))
			}
			normals = append(normals, core.NewVector(n.X, n.Y, n.Z))
		case "g":
			if len(args) > 0 {
				currentGroup = args[0]
			} else {
				currentGroup = ""
			}
			addGroup(mesh, currentGroup)
		case "f":
			tris, err := parseFace(args, vertices, normals)
			if err != nil {
				return nil, rrerr.Parse(fmt.Errorf("obj: bad face %q: %w", line, err))
			}
			addGroup(mesh, currentGroup)
			mesh.Groups[currentGroup] = append(mesh.Groups[currentGroup], tris...)
		default:
			// unsupported directive (o, s, mtllib, usemtl, vt, ...): ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, rrerr.IO(fmt.Errorf("obj: read error: %w", err))
	}
	return mesh, nil
}

func addGroup(mesh *Mesh, name string) {
	if _, ok := mesh.Groups[name]; !ok {
		mesh.Groups[name] = nil
		mesh.Order = append(mesh.Order, name)
	}
}

func parsePoint(args []string) (core.Tuple, error) {
	if len(args) < 3 {
		return core.Tuple{}, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return core.Tuple{}, err
		}
		vals[i] = v
	}
	return core.NewPoint(vals[0], vals[1], vals[2]), nil
}

// faceVertex is one "v/vt/vn" token of an `f` line.
type faceVertex struct {
	vertexIdx int
	normalIdx int // -1 if absent
}

func parseFaceVertex(tok string) (faceVertex, error) {
	parts := strings.Split(tok, "/")
	vIdx, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, err
	}
	fv := faceVertex{vertexIdx: vIdx, normalIdx: -1}
	if len(parts) == 3 && parts[2] != "" {
		nIdx, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, err
		}
		fv.normalIdx = nIdx
	}
	return fv, nil
}

// parseFace fan-triangulates an OBJ polygon face with 1-indexed vertex
// (and optional vertex normal) references, the same fan-triangulation
// spec §6 calls for.
func parseFace(args []string, vertices, normals []core.Tuple) ([]*primitive.Primitive, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(args))
	}

	fvs := make([]faceVertex, len(args))
	for i, tok := range args {
		fv, err := parseFaceVertex(tok)
		if err != nil {
			return nil, err
		}
		fvs[i] = fv
	}

	resolve := func(idx int) (core.Tuple, error) {
		if idx < 1 || idx > len(vertices) {
			return core.Tuple{}, fmt.Errorf("vertex index %d out of range", idx)
		}
		return vertices[idx-1], nil
	}
	resolveNormal := func(idx int) (core.Tuple, error) {
		if idx < 1 || idx > len(normals) {
			return core.Tuple{}, fmt.Errorf("normal index %d out of range", idx)
		}
		return normals[idx-1], nil
	}

	var triangles []*primitive.Primitive
	for i := 1; i < len(fvs)-1; i++ {
		p1, err := resolve(fvs[0].vertexIdx)
		if err != nil {
			return nil, err
		}
		p2, err := resolve(fvs[i].vertexIdx)
		if err != nil {
			return nil, err
		}
		p3, err := resolve(fvs[i+1].vertexIdx)
		if err != nil {
			return nil, err
		}

		if fvs[0].normalIdx >= 0 && fvs[i].normalIdx >= 0 && fvs[i+1].normalIdx >= 0 {
			n1, err := resolveNormal(fvs[0].normalIdx)
			if err != nil {
				return nil, err
			}
			n2, err := resolveNormal(fvs[i].normalIdx)
			if err != nil {
				return nil, err
			}
			n3, err := resolveNormal(fvs[i+1].normalIdx)
			if err != nil {
				return nil, err
			}
			triangles = append(triangles, primitive.NewSmoothTriangle(p1, p2, p3, n1, n2, n3))
		} else {
			triangles = append(triangles, primitive.NewTriangle(p1, p2, p3))
		}
	}
	return triangles, nil
}

// ToGroup converts a parsed Mesh into a single Shape group, with one
// sub-group per named OBJ group (and a flat sub-group for ungrouped
// faces), ready for Shape.Finalize to bound and subdivide.
func ToGroup(mesh *Mesh) *shape.Shape {
	root := shape.NewGroup()
	for _, name := range mesh.Order {
		tris := mesh.Groups[name]
		if len(tris) == 0 {
			continue
		}
		sub := shape.NewGroup()
		for _, tri := range tris {
			sub.AddChild(shape.NewPrimitive(tri))
		}
		root.AddChild(sub)
	}
	return root
}
