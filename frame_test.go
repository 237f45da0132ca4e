// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uiframe

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTexturesDeltaIsEmpty(t *testing.T) {
	td := &TexturesDelta{}
	assert.True(t, td.IsEmpty())
	td.Set = []TextureSet{{ID: 1}}
	assert.False(t, td.IsEmpty())
	td = &TexturesDelta{Free: []TextureID{2}}
	assert.False(t, td.IsEmpty())
}

func TestMeshIsEmpty(t *testing.T) {
	ms := &Mesh{}
	assert.True(t, ms.IsEmpty())
	ms.Vertices = make([]Vertex, 3)
	assert.True(t, ms.IsEmpty()) // no indices
	ms.Indices = []uint32{0, 1, 2}
	assert.False(t, ms.IsEmpty())
	ms.Vertices = nil
	assert.True(t, ms.IsEmpty()) // indices with no vertices
}

func TestRectIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, Rect{Min: [2]float32{10, 10}, Max: [2]float32{10, 20}}.IsEmpty())
	assert.False(t, Rect{Max: [2]float32{1, 1}}.IsEmpty())
}

func TestPointsSize(t *testing.T) {
	sd := &ScreenDescriptor{SizeInPixels: image.Pt(1920, 1080), ScaleFactor: 1.5}
	w, h := sd.PointsSize()
	assert.Equal(t, float32(1280), w)
	assert.Equal(t, float32(720), h)

	// zero scale falls back to 1 instead of dividing by zero
	sd.ScaleFactor = 0
	w, h = sd.PointsSize()
	assert.Equal(t, float32(1920), w)
	assert.Equal(t, float32(1080), h)
}
