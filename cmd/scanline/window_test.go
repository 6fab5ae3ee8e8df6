package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

func TestWindowGameRedraw(t *testing.T) {
	mesh, err := models.LoadOBJ("testdata/triangle.obj")
	require.NoError(t, err)

	g := &windowGame{mesh: mesh, dirty: true}
	g.r = render.NewRenderer(40, 30, render.WithPresenter(g))

	w, h := g.Layout(800, 600)
	assert.Equal(t, 40, w)
	assert.Equal(t, 30, h)

	require.NoError(t, g.redraw())
	require.NotNil(t, g.frame)
	assert.True(t, g.fresh)
	assert.False(t, g.dirty)
	assert.Equal(t, 40, g.frame.Bounds().Dx())
	assert.Equal(t, g.r.Framebuffer().ToImage().Pix, g.frame.Pix)

	// nothing requested, nothing drawn
	g.frame = nil
	require.NoError(t, g.redraw())
	assert.Nil(t, g.frame)
}
