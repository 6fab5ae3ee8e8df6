package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDispatch(t *testing.T) {
	mesh, err := Load(filepath.Join("testdata", "cube.obj"))
	require.NoError(t, err)
	assert.Equal(t, 12, mesh.TriangleCount())

	upper := filepath.Join(t.TempDir(), "TRI.OBJ")
	src, err := os.ReadFile(filepath.Join("testdata", "triangle.obj"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(upper, src, 0o644))
	mesh, err = Load(upper)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())

	_, err = Load("model.stl")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}
