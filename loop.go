// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uiframe

import (
	"log/slog"

	"cogentcore.org/uiframe/base/errors"
	"cogentcore.org/uiframe/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"image"
)

// Source produces one frame [Description] per tick, for the given
// screen, from the UI collaborator's accumulated state.
type Source interface {
	Frame(screen ScreenDescriptor) Description
}

// Surface is the surface manager driven by the [Loop]:
// it hands out one render target per frame and presents it.
// [gpu.Surface] implements it.
type Surface interface {
	// AcquireNextTexture returns the render target view for the
	// next presentable image. An error wrapping
	// [gpu.ErrSurfaceOutdated] is the silent frame-drop condition.
	AcquireNextTexture() (*wgpu.TextureView, error)

	// Size returns the current surface size in pixels.
	Size() image.Point

	// Present displays the acquired image; it must be the last
	// operation on the target.
	Present()
}

// Uploader owns GPU texture and geometry buffer lifetime for the
// renderer. [uidraw.Drawer] implements it.
type Uploader interface {
	// UpdateTextures applies texture set deltas, before rendering.
	UpdateTextures(set []TextureSet) error

	// UpdateBuffers uploads the frame's geometry into GPU buffers
	// sized for the current frame.
	UpdateBuffers(prims []Primitive, screen ScreenDescriptor) error

	// FreeTextures releases textures, strictly after the render
	// pass that might reference them has been submitted.
	FreeTextures(free []TextureID)
}

// Renderer issues the frame's single render pass against a target
// view, drawing primitives exactly in order. [uidraw.Drawer]
// implements it.
type Renderer interface {
	Render(view *wgpu.TextureView, prims []Primitive, screen ScreenDescriptor) error
}

// States are the frame cycle states of the [Loop].
// One tick advances Idle through Presenting and back to Idle.
type States int32

const (
	// Idle: between ticks; the only state where surface
	// reconfiguration takes effect.
	Idle States = iota

	// Acquiring: obtaining the presentable target.
	Acquiring

	// Building: pulling the frame description from the Source.
	Building

	// Uploading: applying set deltas and uploading geometry.
	Uploading

	// Rendering: issuing the render pass.
	Rendering

	// Presenting: freeing textures and presenting the target.
	Presenting
)

var stateNames = map[States]string{
	Idle:       "Idle",
	Acquiring:  "Acquiring",
	Building:   "Building",
	Uploading:  "Uploading",
	Rendering:  "Rendering",
	Presenting: "Presenting",
}

func (st States) String() string {
	return stateNames[st]
}

// Loop is the frame orchestrator: it runs the per-frame protocol
// acquire → build → upload → render → present, one full cycle per
// [Loop.Tick]. It is single-threaded and cooperative: a cycle runs
// to completion before the next begins, so the Uploader and
// Renderer never touch the same buffers concurrently.
type Loop struct {
	// Surface is the surface manager.
	Surface Surface

	// Uploader manages GPU resource lifetime for the renderer.
	Uploader Uploader

	// Renderer issues the draw pass.
	Renderer Renderer

	// Source is the external UI collaborator.
	Source Source

	// Scale returns the platform content scale factor, sampled
	// every tick for the screen descriptor. nil means 1.
	Scale func() float32

	state States
}

// NewLoop returns a new Loop over the given collaborators.
func NewLoop(sf Surface, up Uploader, rd Renderer, src Source) *Loop {
	return &Loop{Surface: sf, Uploader: up, Renderer: rd, Source: src}
}

// State returns the current cycle state; Idle between ticks.
func (lp *Loop) State() States {
	return lp.state
}

// Screen returns the screen descriptor for the current tick,
// recomputed from the current surface size and platform scale.
func (lp *Loop) Screen() ScreenDescriptor {
	sc := float32(1)
	if lp.Scale != nil {
		sc = lp.Scale()
	}
	return ScreenDescriptor{SizeInPixels: lp.Surface.Size(), ScaleFactor: sc}
}

// Tick runs one full frame cycle. A stale surface (wrapping
// [gpu.ErrSurfaceOutdated]) drops the frame silently: no upload, no
// render, no present, nil error. Any other acquisition failure is
// reported via slog and likewise drops the frame with a nil error;
// the next tick retries. Errors from upload or render are
// device-level failures and are returned: the caller decides
// whether to terminate or recreate the device. All failures resolve
// at the tick boundary; no partial frame state carries over.
func (lp *Loop) Tick() error {
	lp.state = Acquiring
	view, err := lp.Surface.AcquireNextTexture()
	if err != nil {
		lp.state = Idle
		if errors.Is(err, gpu.ErrSurfaceOutdated) {
			// expected under normal resize and minimize; no log noise
			return nil
		}
		slog.Error("uiframe: dropped frame", "err", err)
		return nil
	}

	lp.state = Building
	screen := lp.Screen()
	desc := lp.Source.Frame(screen)

	lp.state = Uploading
	if err := lp.Uploader.UpdateTextures(desc.Textures.Set); err != nil {
		lp.state = Idle
		return err
	}
	if err := lp.Uploader.UpdateBuffers(desc.Primitives, screen); err != nil {
		lp.state = Idle
		return err
	}

	lp.state = Rendering
	if err := lp.Renderer.Render(view, desc.Primitives, screen); err != nil {
		lp.state = Idle
		return err
	}

	lp.state = Presenting
	// free only now: the pass that could reference these textures
	// has been submitted, and presentation consumes that pass.
	lp.Uploader.FreeTextures(desc.Textures.Free)
	lp.Surface.Present()

	lp.state = Idle
	return nil
}
