// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uidraw

import (
	"cogentcore.org/uiframe"
	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// minBufferSize is the smallest capacity allocated for the
// vertex and index buffers, in bytes.
const minBufferSize = 4096

// span is the draw range for one primitive within the shared
// vertex / index buffers, recorded during UpdateBuffers and
// consumed by Render in the same order.
type span struct {
	clip       uiframe.Rect
	texture    uiframe.TextureID
	indexCount uint32
	firstIndex uint32
	baseVertex int32
}

// geometry is the GPU-resident vertex / index buffer state shared
// between upload and render for one frame. Buffers persist across
// frames and grow amortized; only the spans are per-frame.
type geometry struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer

	// vertexCap and indexCap are the current buffer capacities in bytes.
	vertexCap int
	indexCap  int

	// staging slices reused across frames
	vertices []uiframe.Vertex
	indices  []uint32

	// spans of the current frame, in paint order.
	spans []span
}

func (ge *geometry) release() {
	if ge.vertexBuffer != nil {
		ge.vertexBuffer.Release()
		ge.vertexBuffer = nil
	}
	if ge.indexBuffer != nil {
		ge.indexBuffer.Release()
		ge.indexBuffer = nil
	}
	ge.vertexCap = 0
	ge.indexCap = 0
	ge.spans = nil
}

// build flattens the primitives into the staging vertex and index
// slices, recording one span per non-empty mesh in paint order.
func (ge *geometry) build(prims []uiframe.Primitive) {
	ge.vertices = ge.vertices[:0]
	ge.indices = ge.indices[:0]
	ge.spans = ge.spans[:0]
	for _, pr := range prims {
		ms := &pr.Mesh
		if ms.IsEmpty() {
			continue
		}
		ge.spans = append(ge.spans, span{
			clip:       pr.ClipRect,
			texture:    ms.Texture,
			indexCount: uint32(len(ms.Indices)),
			firstIndex: uint32(len(ge.indices)),
			baseVertex: int32(len(ge.vertices)),
		})
		ge.vertices = append(ge.vertices, ms.Vertices...)
		ge.indices = append(ge.indices, ms.Indices...)
	}
}

// UpdateBuffers uploads the frame's geometry into the shared
// vertex / index buffers, and writes the screen uniform.
// Buffers are reallocated only when capacity is insufficient,
// growing to the next power of two at or above the required size.
// Must not run concurrently with Render on the same buffers; the
// frame loop serializes the two.
func (dw *Drawer) UpdateBuffers(prims []uiframe.Primitive, screen uiframe.ScreenDescriptor) error {
	dw.Lock()
	defer dw.Unlock()

	w, h := screen.PointsSize()
	dw.device.Queue.WriteBuffer(dw.uniformBuffer, 0, wgpu.ToBytes([]float32{w, h, 0, 0}))

	ge := &dw.geom
	ge.build(prims)
	if len(ge.spans) == 0 {
		return nil
	}

	vbytes := wgpu.ToBytes(ge.vertices)
	ibytes := wgpu.ToBytes(ge.indices)
	if err := dw.ensureBuffers(len(vbytes), len(ibytes)); err != nil {
		return err
	}
	dw.device.Queue.WriteBuffer(ge.vertexBuffer, 0, vbytes)
	dw.device.Queue.WriteBuffer(ge.indexBuffer, 0, ibytes)
	return nil
}

// ensureBuffers (re)creates the vertex and index buffers if their
// capacity is below the needed byte sizes.
func (dw *Drawer) ensureBuffers(vneed, ineed int) error {
	ge := &dw.geom
	if ge.vertexBuffer == nil || ge.vertexCap < vneed {
		if ge.vertexBuffer != nil {
			ge.vertexBuffer.Release()
			ge.vertexBuffer = nil
		}
		sz := bufferFitSize(vneed)
		buf, err := dw.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "uidraw.vertex",
			Size:  uint64(sz),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if errors.Log(err) != nil {
			return err
		}
		ge.vertexBuffer = buf
		ge.vertexCap = sz
	}
	if ge.indexBuffer == nil || ge.indexCap < ineed {
		if ge.indexBuffer != nil {
			ge.indexBuffer.Release()
			ge.indexBuffer = nil
		}
		sz := bufferFitSize(ineed)
		buf, err := dw.device.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "uidraw.index",
			Size:  uint64(sz),
			Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		})
		if errors.Log(err) != nil {
			return err
		}
		ge.indexBuffer = buf
		ge.indexCap = sz
	}
	return nil
}

// bufferFitSize returns the buffer capacity for the needed byte
// size: the next power of two at or above it, with a floor of
// minBufferSize. Monotonic growth keeps reallocation amortized.
func bufferFitSize(need int) int {
	sz := minBufferSize
	for sz < need {
		sz *= 2
	}
	return sz
}
