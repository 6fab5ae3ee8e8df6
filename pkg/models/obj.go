package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/scanline/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if mesh.Name == "" {
		mesh.Name = filepath.Base(path)
	}
	return mesh, nil
}

// ParseOBJ reads vertex positions and faces from Wavefront OBJ text.
//
// Only "v" and "f" lines carry geometry; "o" names the mesh and every other
// directive is ignored. Face corners may be written as v, v/vt, v//vn or
// v/vt/vn, and only the position index is used. Indices are 1-based, and
// negative indices count back from the most recent vertex. Faces with more
// than three corners are fan-triangulated.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	p := objParser{mesh: NewMesh("")}

	bufin := bufio.NewReader(r)
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read obj: %w", err)
		}
		p.line++
		if perr := p.parseLine(line); perr != nil {
			return nil, perr
		}
		if err != nil {
			break
		}
	}

	if len(p.mesh.Vertices) == 0 || len(p.mesh.Faces) == 0 {
		return nil, fmt.Errorf("obj has %d vertices and %d faces: %w",
			len(p.mesh.Vertices), len(p.mesh.Faces), ErrNoGeometry)
	}
	p.mesh.CalculateBounds()
	return p.mesh, nil
}

type objParser struct {
	mesh *Mesh
	line int
}

func (p *objParser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch fields[0] {
	case "v":
		return p.parseVertex(fields[1:])
	case "f":
		return p.parseFace(fields[1:])
	case "o":
		if len(fields) > 1 && p.mesh.Name == "" {
			p.mesh.Name = strings.Join(fields[1:], " ")
		}
	}
	return nil
}

// parseVertex parses "v x y z [w]". w is ignored.
func (p *objParser) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return p.errorf("vertex with %d coordinates", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return p.errorf("vertex coordinate %q: %w", fields[i], err)
		}
		xyz[i] = v
	}
	p.mesh.AddVertex(math3d.V3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// parseFace parses "f a b c ..." and fans polygons into triangles.
func (p *objParser) parseFace(fields []string) error {
	if len(fields) < 3 {
		return p.errorf("face with %d corners", len(fields))
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		v, err := p.parseIndex(f)
		if err != nil {
			return err
		}
		idx[i] = v
	}

	for i := 1; i+1 < len(idx); i++ {
		p.mesh.AddFace(idx[0], idx[i], idx[i+1])
	}
	return nil
}

// parseIndex resolves the position index of one face corner.
func (p *objParser) parseIndex(corner string) (int, error) {
	pos, _, _ := strings.Cut(corner, "/")
	val, err := strconv.Atoi(pos)
	if err != nil {
		return 0, p.errorf("face index %q: %w", corner, err)
	}

	n := len(p.mesh.Vertices)
	var idx int
	switch {
	case val > 0:
		idx = val - 1
	case val < 0:
		// relative to the last parsed vertex
		idx = n + val
	default:
		return 0, p.errorf("face index 0: %w", ErrInvalidFace)
	}

	if idx < 0 || idx >= n {
		return 0, p.errorf("face index %d with %d vertices: %w", val, n, ErrInvalidFace)
	}
	return idx, nil
}

func (p *objParser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{p.line}, args...)...)
}
