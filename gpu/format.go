// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat describes the size and WebGPU format of a Texture
// or of the presentable images of a Surface.
type TextureFormat struct {
	// Size of image in pixels.
	Size image.Point

	// Format is the texture format: RGBA8UnormSrgb is the default.
	Format wgpu.TextureFormat

	// Samples is the number of multisampling samples; 1 = no multisampling.
	Samples int
}

// NewTextureFormat returns a new TextureFormat with the default
// format and given size.
func NewTextureFormat(width, height int) *TextureFormat {
	fm := &TextureFormat{}
	fm.Defaults()
	fm.Size = image.Point{width, height}
	return fm
}

func (fm *TextureFormat) Defaults() {
	fm.Format = wgpu.TextureFormatRGBA8UnormSrgb
	fm.Samples = 1
}

// String returns a human-readable version of the format.
func (fm *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %s  MultiSample: %d", fm.Size, TextureFormatNames[fm.Format], fm.Samples)
}

// SetSize sets the width, height.
func (fm *TextureFormat) SetSize(w, h int) {
	fm.Size = image.Point{X: w, Y: h}
}

// Size32 returns the size as uint32 values.
func (fm *TextureFormat) Size32() (width, height uint32) {
	return uint32(fm.Size.X), uint32(fm.Size.Y)
}

// Extent3D returns the size as a WebGPU Extent3D.
func (fm *TextureFormat) Extent3D() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(fm.Size.X),
		Height:             uint32(fm.Size.Y),
		DepthOrArrayLayers: 1,
	}
}

// Bounds returns the rectangle defining this image: 0,0,w,h.
func (fm *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: fm.Size}
}

// BytesPerPixel returns the number of bytes per pixel in host memory
// for the formats this package uses.
func (fm *TextureFormat) BytesPerPixel() int {
	return TextureFormatSizes[fm.Format]
}

// Stride returns the number of bytes per image row.
func (fm *TextureFormat) Stride() int {
	return fm.BytesPerPixel() * fm.Size.X
}

// IsSRGB returns true if the format is an sRGB colorspace format,
// as preferred for presentable surfaces.
func IsSRGB(ft wgpu.TextureFormat) bool {
	switch ft {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// TextureFormatNames has human-readable names for the formats
// this package uses.
var TextureFormatNames = map[wgpu.TextureFormat]string{
	wgpu.TextureFormatRGBA8UnormSrgb: "RGBA 8bit sRGB colorspace",
	wgpu.TextureFormatRGBA8Unorm:     "RGBA 8bit linear colorspace",
	wgpu.TextureFormatBGRA8UnormSrgb: "BGRA 8bit sRGB colorspace",
	wgpu.TextureFormatBGRA8Unorm:     "BGRA 8bit linear colorspace",
}

// TextureFormatSizes gives the number of bytes per pixel
// for the formats this package uses.
var TextureFormatSizes = map[wgpu.TextureFormat]int{
	wgpu.TextureFormatUndefined:      0,
	wgpu.TextureFormatRGBA8UnormSrgb: 4,
	wgpu.TextureFormatRGBA8Unorm:     4,
	wgpu.TextureFormatBGRA8UnormSrgb: 4,
	wgpu.TextureFormatBGRA8Unorm:     4,
}
