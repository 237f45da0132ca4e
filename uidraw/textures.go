// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uidraw

import (
	"fmt"
	"strconv"

	"cogentcore.org/uiframe"
	"cogentcore.org/uiframe/base/errors"
	"cogentcore.org/uiframe/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// UpdateTextures applies texture set deltas, in order, creating or
// updating device textures so they exist before any geometry
// referencing them is rendered. Free deltas are handled separately
// by [Drawer.FreeTextures], strictly after the render pass.
func (dw *Drawer) UpdateTextures(set []uiframe.TextureSet) error {
	dw.Lock()
	defer dw.Unlock()
	for _, ts := range set {
		if err := dw.setTexture(ts.ID, ts.Delta); err != nil {
			return err
		}
	}
	return nil
}

// setTexture applies one set delta. A whole-image delta (re)creates
// the texture at the image size; a positioned delta updates a
// region of the existing texture.
func (dw *Drawer) setTexture(id uiframe.TextureID, delta uiframe.ImageDelta) error {
	if delta.Image == nil {
		return errors.Log(fmt.Errorf("uidraw: set delta for texture %d has no image", id))
	}
	if delta.At != nil {
		tx, ok := dw.textures[id]
		if !ok {
			return errors.Log(fmt.Errorf("uidraw: partial update for texture %d that was never set", id))
		}
		return tx.tex.WriteRegion(delta.Image, *delta.At)
	}

	tex := gpu.NewTexture(&dw.device)
	tex.Name = "uidraw.texture." + strconv.FormatInt(int64(id), 10)
	if err := tex.SetFromGoImage(delta.Image); err != nil {
		return err
	}
	bind, err := dw.device.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  tex.Name,
		Layout: dw.textureLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tex.View()},
		},
	})
	if errors.Log(err) != nil {
		tex.Release()
		return err
	}
	if old, ok := dw.textures[id]; ok {
		old.release()
	}
	dw.textures[id] = &texture{tex: tex, bind: bind}
	return nil
}

// FreeTextures releases the given textures. The frame loop calls
// this only after the frame's render pass has been submitted, so a
// texture is never destroyed while a pass still references it.
// Freeing an id that was never set is reported and skipped.
func (dw *Drawer) FreeTextures(free []uiframe.TextureID) {
	dw.Lock()
	defer dw.Unlock()
	for _, id := range free {
		tx, ok := dw.textures[id]
		if !ok {
			errors.Log(fmt.Errorf("uidraw: free of texture %d that was never set", id))
			continue
		}
		tx.release()
		delete(dw.textures, id)
	}
}

// NumTextures returns the number of live UI textures.
func (dw *Drawer) NumTextures() int {
	dw.Lock()
	defer dw.Unlock()
	return len(dw.textures)
}
