// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"

	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture represents a WebGPU Texture with an associated
// TextureView, in device memory.
type Texture struct {
	// Name of the texture, for debugging.
	Name string

	// Format and size of the texture.
	Format TextureFormat

	// WebGPU texture handle, in device memory.
	texture *wgpu.Texture

	// WebGPU texture view.
	view *wgpu.TextureView

	// device used to create and write the texture, which we do not own.
	device Device
}

// NewTexture returns a new Texture using the given device.
func NewTexture(dev *Device) *Texture {
	tx := &Texture{}
	tx.device = *dev
	tx.Format.Defaults()
	return tx
}

// View returns the texture view for sampling.
// It is nil until the texture has been created.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// SetFromGoImage sets the texture from a standard Go image,
// (re)creating the device texture at the image size and uploading
// all pixels. This is most efficient with an *image.RGBA; other
// formats are converted.
func (tx *Texture) SetFromGoImage(img image.Image) error {
	rimg := ImageToRGBA(img)
	sz := rimg.Rect.Size()

	tx.Format.Size = sz
	tx.Format.Format = wgpu.TextureFormatRGBA8UnormSrgb

	err := tx.CreateTexture(wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst)
	if err != nil { // already logged
		return err
	}
	return tx.writeRegion(rimg, image.Point{})
}

// WriteRegion updates a sub-region of an existing texture from the
// given image, at the given destination position. The texture must
// have been created already and the region must fit within it.
func (tx *Texture) WriteRegion(img image.Image, at image.Point) error {
	if tx.texture == nil {
		return errors.Log(fmt.Errorf("gpu.Texture %s: WriteRegion on texture that has not been created", tx.Name))
	}
	rimg := ImageToRGBA(img)
	sz := rimg.Rect.Size()
	if at.X < 0 || at.Y < 0 || at.X+sz.X > tx.Format.Size.X || at.Y+sz.Y > tx.Format.Size.Y {
		return errors.Log(fmt.Errorf("gpu.Texture %s: WriteRegion %v at %v exceeds texture size %v", tx.Name, sz, at, tx.Format.Size))
	}
	return tx.writeRegion(rimg, at)
}

// writeRegion uploads the given RGBA pixels at the given origin.
func (tx *Texture) writeRegion(rimg *image.RGBA, at image.Point) error {
	sz := rimg.Rect.Size()
	size := wgpu.Extent3D{
		Width:              uint32(sz.X),
		Height:             uint32(sz.Y),
		DepthOrArrayLayers: 1,
	}
	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	tx.device.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: uint32(at.X), Y: uint32(at.Y), Z: 0},
		},
		rimg.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(sz.X),
			RowsPerImage: uint32(sz.Y),
		},
		&size,
	)
	return nil
}

// CreateTexture creates the device texture based on the current
// Format, and a view of it, releasing any existing texture first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.Release()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.Format.Extent3D(),
		MipLevelCount: 1,
		SampleCount:   uint32(tx.Format.Samples),
		Dimension:     wgpu.TextureDimension2D,
		Format:        tx.Format.Format,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// Release releases the device texture and view.
func (tx *Texture) Release() {
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
