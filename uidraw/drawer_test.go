// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uidraw

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/uiframe"
	"cogentcore.org/uiframe/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func screen(w, h int, scale float32) uiframe.ScreenDescriptor {
	return uiframe.ScreenDescriptor{SizeInPixels: image.Pt(w, h), ScaleFactor: scale}
}

func TestScissorRect(t *testing.T) {
	sc, ok := scissorRect(uiframe.Rect{Max: [2]float32{100, 50}}, screen(800, 600, 1))
	assert.True(t, ok)
	assert.Equal(t, scissor{x: 0, y: 0, w: 100, h: 50}, sc)

	// scale converts points to pixels
	sc, ok = scissorRect(uiframe.Rect{Min: [2]float32{10, 10}, Max: [2]float32{20, 20}}, screen(800, 600, 2))
	assert.True(t, ok)
	assert.Equal(t, scissor{x: 20, y: 20, w: 20, h: 20}, sc)

	// clamped to the surface bounds
	sc, ok = scissorRect(uiframe.Rect{Min: [2]float32{-50, -50}, Max: [2]float32{5000, 5000}}, screen(800, 600, 1))
	assert.True(t, ok)
	assert.Equal(t, scissor{x: 0, y: 0, w: 800, h: 600}, sc)

	// degenerate and fully off-screen rects clip everything
	_, ok = scissorRect(uiframe.Rect{}, screen(800, 600, 1))
	assert.False(t, ok)
	_, ok = scissorRect(uiframe.Rect{Min: [2]float32{900, 0}, Max: [2]float32{1000, 100}}, screen(800, 600, 1))
	assert.False(t, ok)
}

func TestToFloat64RGBA(t *testing.T) {
	r, g, b, a := toFloat64RGBA(color.White)
	assert.InDelta(t, 1, r, 1e-6)
	assert.InDelta(t, 1, g, 1e-6)
	assert.InDelta(t, 1, b, 1e-6)
	assert.InDelta(t, 1, a, 1e-6)

	r, g, b, a = toFloat64RGBA(nil)
	assert.Equal(t, float64(0), r)
	assert.Equal(t, float64(0), g)
	assert.Equal(t, float64(0), b)
	assert.Equal(t, float64(1), a)

	r, g, b, a = toFloat64RGBA(color.NRGBA{R: 255, A: 128})
	assert.InDelta(t, 0.5, r, 0.01) // premultiplied
	assert.Equal(t, float64(0), g)
	assert.Equal(t, float64(0), b)
	assert.InDelta(t, 0.5, a, 0.01)
}

func TestDrawerHardware(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping GPU hardware test in short mode")
	}
	t.Skip("Need software GPU on CI")
	gp, dev, err := gpu.NoDisplayGPU()
	assert.NoError(t, err)
	defer gp.Release()
	defer dev.Release()

	dw, err := NewDrawer(dev, wgpu.TextureFormatRGBA8UnormSrgb)
	assert.NoError(t, err)
	defer dw.Release()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	err = dw.UpdateTextures([]uiframe.TextureSet{{ID: 1, Delta: uiframe.ImageDelta{Image: img}}})
	assert.NoError(t, err)
	assert.Equal(t, 1, dw.NumTextures())

	sd := screen(64, 64, 1)
	prims := []uiframe.Primitive{{
		ClipRect: uiframe.Rect{Max: [2]float32{64, 64}},
		Mesh:     quad(1),
	}}
	assert.NoError(t, dw.UpdateBuffers(prims, sd))

	tg := gpu.NewTexture(dev)
	tg.Format.SetSize(64, 64)
	err = tg.CreateTexture(wgpu.TextureUsageRenderAttachment)
	assert.NoError(t, err)
	defer tg.Release()

	assert.NoError(t, dw.Render(tg.View(), prims, sd))
	dev.WaitDone()

	dw.FreeTextures([]uiframe.TextureID{1})
	assert.Equal(t, 0, dw.NumTextures())
}
