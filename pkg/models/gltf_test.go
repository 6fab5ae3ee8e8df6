package models

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

// triangleDoc builds a one-triangle document with uint16 indices.
func triangleDoc(indices []uint16) *gltf.Document {
	positions := []float32{
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	}
	var data []byte
	for _, f := range positions {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	posLen := len(data)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	posView, idxView := 0, 1
	posAcc, idxAcc := 0, 1
	return &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: len(data) - posLen},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: &posView, ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 3},
			{BufferView: &idxView, ComponentType: gltf.ComponentUshort, Type: gltf.AccessorScalar, Count: len(indices)},
		},
		Meshes: []*gltf.Mesh{{
			Name: "tri",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: posAcc},
				Indices:    &idxAcc,
				Mode:       gltf.PrimitiveTriangles,
			}},
		}},
	}
}

func TestDecodeDocument(t *testing.T) {
	mesh, err := decodeDocument(triangleDoc([]uint16{0, 1, 2}), "tri.glb")
	require.NoError(t, err)

	assert.Equal(t, "tri.glb", mesh.Name)
	assert.Equal(t, []math3d.Vec3{
		math3d.V3(-1, -1, 0),
		math3d.V3(1, -1, 0),
		math3d.V3(0, 1, 0),
	}, mesh.Vertices)
	// winding is preserved
	assert.Equal(t, [3]int{0, 1, 2}, mesh.GetFace(0))
	assert.Equal(t, math3d.V3(-1, -1, 0), mesh.BoundsMin)
	assert.Equal(t, math3d.V3(1, 1, 0), mesh.BoundsMax)
}

func TestDecodeDocumentErrors(t *testing.T) {
	t.Run("index out of range", func(t *testing.T) {
		_, err := decodeDocument(triangleDoc([]uint16{0, 1, 5}), "bad.glb")
		assert.ErrorIs(t, err, ErrInvalidFace)
	})

	t.Run("no meshes", func(t *testing.T) {
		_, err := decodeDocument(&gltf.Document{}, "empty.glb")
		assert.ErrorIs(t, err, ErrNoGeometry)
	})

	t.Run("truncated buffer", func(t *testing.T) {
		doc := triangleDoc([]uint16{0, 1, 2})
		doc.Buffers[0].Data = doc.Buffers[0].Data[:20]
		_, err := decodeDocument(doc, "short.glb")
		assert.Error(t, err)
	})
}
