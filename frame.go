// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uiframe

import "image"

// TextureID identifies one UI-managed texture across frames.
// IDs are allocated by the UI collaborator; a given id must be set
// before any geometry references it, and must not be referenced
// after it has been freed.
type TextureID int64

// ImageDelta is the image data for one texture set operation.
type ImageDelta struct {
	// Image holds the pixels to upload.
	Image image.Image

	// At, if non-nil, is the destination position of a partial
	// update within an existing texture. If nil, the delta
	// (re)creates the whole texture at the image size.
	At *image.Point
}

// TextureSet is one texture set operation: id plus image data.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta carries the texture changes for one frame.
// Although Set and Free arrive together, they act at different
// points of the frame cycle: Set entries are applied before the
// render pass, Free entries strictly after it.
type TexturesDelta struct {
	// Set lists textures to create or update, in order.
	Set []TextureSet

	// Free lists textures to release after this frame's pass.
	Free []TextureID
}

// IsEmpty returns true if the delta carries no operations.
func (td *TexturesDelta) IsEmpty() bool {
	return len(td.Set) == 0 && len(td.Free) == 0
}

// Vertex is one UI mesh vertex: position and texture coordinates
// in points, with a non-premultiplied sRGB color.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]uint8
}

// Mesh is a textured triangle mesh in the UI coordinate space.
type Mesh struct {
	// Vertices referenced by Indices.
	Vertices []Vertex

	// Indices into Vertices, three per triangle.
	Indices []uint32

	// Texture sampled by this mesh.
	Texture TextureID
}

// IsEmpty returns true if the mesh draws nothing.
func (ms *Mesh) IsEmpty() bool {
	return len(ms.Indices) == 0 || len(ms.Vertices) == 0
}

// Rect is an axis-aligned rectangle in points.
type Rect struct {
	Min [2]float32
	Max [2]float32
}

// IsEmpty returns true if the rectangle has no area.
func (rc Rect) IsEmpty() bool {
	return rc.Max[0] <= rc.Min[0] || rc.Max[1] <= rc.Min[1]
}

// Primitive is one draw primitive: a mesh with its clip rectangle.
// The sequence of primitives in a [Description] encodes both paint
// order (later primitives occlude earlier ones) and clip batching,
// and must be drawn exactly in order.
type Primitive struct {
	// ClipRect bounds the drawing, in points.
	ClipRect Rect

	// Mesh is the geometry to draw.
	Mesh Mesh
}

// Description is the complete frame description produced by the UI
// collaborator for one tick: ordered geometry plus texture deltas.
// It is discarded after upload; no frame state persists across ticks.
type Description struct {
	// Primitives in paint order.
	Primitives []Primitive

	// Textures are this frame's texture changes.
	Textures TexturesDelta
}

// ScreenDescriptor describes the presentable surface for one frame:
// its size in physical pixels and the platform scale factor.
// It is recomputed every frame from the current surface size, so
// geometry always maps to the actual target.
type ScreenDescriptor struct {
	// SizeInPixels is the surface size in physical pixels.
	SizeInPixels image.Point

	// ScaleFactor is the number of physical pixels per point.
	ScaleFactor float32
}

// PointsSize returns the screen size in points.
func (sd *ScreenDescriptor) PointsSize() (width, height float32) {
	sc := sd.ScaleFactor
	if sc <= 0 {
		sc = 1
	}
	return float32(sd.SizeInPixels.X) / sc, float32(sd.SizeInPixels.Y) / sc
}
