// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uidraw

import (
	"testing"

	"cogentcore.org/uiframe"
	"github.com/stretchr/testify/assert"
)

func TestVertexSize(t *testing.T) {
	// the vertex layout in the pipeline depends on this packing
	assert.Equal(t, 20, vertexSize)
}

func TestBufferFitSize(t *testing.T) {
	assert.Equal(t, minBufferSize, bufferFitSize(0))
	assert.Equal(t, minBufferSize, bufferFitSize(1))
	assert.Equal(t, minBufferSize, bufferFitSize(minBufferSize))
	assert.Equal(t, 2*minBufferSize, bufferFitSize(minBufferSize+1))
	assert.Equal(t, 65536, bufferFitSize(40000))
}

func quad(tex uiframe.TextureID) uiframe.Mesh {
	return uiframe.Mesh{
		Vertices: make([]uiframe.Vertex, 4),
		Indices:  []uint32{0, 1, 2, 2, 3, 0},
		Texture:  tex,
	}
}

func TestGeometryBuild(t *testing.T) {
	clip := uiframe.Rect{Max: [2]float32{100, 100}}
	prims := []uiframe.Primitive{
		{ClipRect: clip, Mesh: quad(1)},
		{ClipRect: clip, Mesh: uiframe.Mesh{}}, // empty, skipped
		{ClipRect: clip, Mesh: quad(2)},
	}
	ge := &geometry{}
	ge.build(prims)

	assert.Len(t, ge.spans, 2)
	assert.Len(t, ge.vertices, 8)
	assert.Len(t, ge.indices, 12)

	assert.Equal(t, uiframe.TextureID(1), ge.spans[0].texture)
	assert.Equal(t, uint32(6), ge.spans[0].indexCount)
	assert.Equal(t, uint32(0), ge.spans[0].firstIndex)
	assert.Equal(t, int32(0), ge.spans[0].baseVertex)

	assert.Equal(t, uiframe.TextureID(2), ge.spans[1].texture)
	assert.Equal(t, uint32(6), ge.spans[1].indexCount)
	assert.Equal(t, uint32(6), ge.spans[1].firstIndex)
	assert.Equal(t, int32(4), ge.spans[1].baseVertex)
}

func TestGeometryBuildReuse(t *testing.T) {
	ge := &geometry{}
	clip := uiframe.Rect{Max: [2]float32{10, 10}}
	ge.build([]uiframe.Primitive{{ClipRect: clip, Mesh: quad(1)}})
	assert.Len(t, ge.spans, 1)

	// a later empty frame leaves no stale spans behind
	ge.build(nil)
	assert.Len(t, ge.spans, 0)
	assert.Len(t, ge.vertices, 0)
	assert.Len(t, ge.indices, 0)
}
