package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDrawInProgress is returned when DrawFrame is called while a frame is
	// already being drawn.
	ErrDrawInProgress = errors.New("render: draw already in progress")

	// ErrMalformedMesh is returned when a face references a vertex that does
	// not exist.
	ErrMalformedMesh = errors.New("render: malformed mesh")
)

// MalformedMeshError lists every face of a draw call that was skipped for
// referencing an out-of-range vertex. It matches ErrMalformedMesh with
// errors.Is.
type MalformedMeshError struct {
	Faces       []int
	VertexCount int
}

func (e *MalformedMeshError) Error() string {
	const maxListed = 8

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d face(s) index outside %d vertices", ErrMalformedMesh, len(e.Faces), e.VertexCount)
	if len(e.Faces) == 0 {
		return b.String()
	}
	b.WriteString(" (faces")
	for i, f := range e.Faces {
		if i == maxListed {
			fmt.Fprintf(&b, " and %d more", len(e.Faces)-maxListed)
			break
		}
		fmt.Fprintf(&b, " %d", f)
	}
	b.WriteString(")")
	return b.String()
}

func (e *MalformedMeshError) Unwrap() error {
	return ErrMalformedMesh
}
