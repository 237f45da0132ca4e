// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrSurfaceOutdated indicates that the surface no longer matches
// its configuration, e.g., after a platform resize or minimize that
// has not yet been applied. This is an expected, recoverable
// condition: skip the frame, silently, and the next acquire
// reconfigures. Test with [errors.Is].
var ErrSurfaceOutdated = errors.New("gpu: surface is outdated")

// Surface manages the presentable images of a window surface:
// their format and size configuration, per-frame acquisition of a
// render target view, and presentation. It owns the Device used for
// all rendering to this surface.
type Surface struct {
	// GPU is the adapter hardware, which we do not own.
	GPU *GPU

	// Device is the logical device for this surface, which we own.
	Device *Device

	// Format has the current presentable image format and dimensions.
	Format TextureFormat

	// alphaMode is the compositing alpha mode, from the
	// surface capabilities.
	alphaMode wgpu.CompositeAlphaMode

	// presentMode paces presentation; Fifo (vsync) by default.
	presentMode wgpu.PresentMode

	// surface is the WebGPU handle for the window surface.
	surface *wgpu.Surface

	// needsConfig is set when the size or mode has changed and the
	// surface must be reconfigured before the next acquire.
	needsConfig bool

	// current is the acquired presentable texture, between
	// AcquireNextTexture and Present.
	current *wgpu.Texture

	// curView is the render target view of current.
	curView *wgpu.TextureView

	sync.Mutex
}

// NewSurface returns a new Surface for the given WebGPU surface
// handle (e.g., from [GLFWCreateWindow]) at the given initial size
// in pixels, creating a new Device for it. An sRGB format is
// selected from the surface capabilities when available, and the
// Fifo (vsync) present mode is used; see [Surface.SetPresentMode].
func NewSurface(gp *GPU, wsurf *wgpu.Surface, size image.Point) (*Surface, error) {
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, err
	}
	sf := &Surface{
		GPU:         gp,
		Device:      dev,
		surface:     wsurf,
		presentMode: wgpu.PresentModeFifo,
	}
	sf.Format.Defaults()
	sf.Format.Size = size
	caps := wsurf.GetCapabilities(gp.GPU)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, errors.Log(errors.New("gpu: surface reports no usable formats"))
	}
	sf.Format.Format = caps.Formats[0]
	for _, ft := range caps.Formats {
		if IsSRGB(ft) {
			sf.Format.Format = ft
			break
		}
	}
	sf.alphaMode = caps.AlphaModes[0]
	sf.configure()
	return sf, nil
}

// configure (re)configures the surface for the current Format,
// present mode and alpha mode. Caller must hold the lock (or be
// the constructor). Never called with a zero dimension.
func (sf *Surface) configure() {
	sf.surface.Configure(sf.GPU.GPU, sf.Device.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format.Format,
		Width:       uint32(sf.Format.Size.X),
		Height:      uint32(sf.Format.Size.Y),
		PresentMode: sf.presentMode,
		AlphaMode:   sf.alphaMode,
	})
	sf.needsConfig = false
}

// SetSize records a new surface size in pixels, from a window
// resize event. A zero dimension is a minimize signal and is
// ignored: presentation is suspended by the platform, not
// reconfigured here. Setting the current size is a no-op.
// The reconfiguration itself happens on the next acquire, between
// frames, so an in-flight render target is never invalidated.
func (sf *Surface) SetSize(size image.Point) {
	if size.X == 0 || size.Y == 0 {
		return
	}
	sf.Lock()
	defer sf.Unlock()
	if size == sf.Format.Size {
		return
	}
	sf.Format.Size = size
	sf.needsConfig = true
}

// Size returns the current surface size in pixels.
// While minimized this is the last nonzero size.
func (sf *Surface) Size() image.Point {
	sf.Lock()
	defer sf.Unlock()
	return sf.Format.Size
}

// SetPresentMode sets the presentation pacing mode and marks the
// surface for reconfiguration on the next acquire.
func (sf *Surface) SetPresentMode(mode wgpu.PresentMode) {
	sf.Lock()
	defer sf.Unlock()
	sf.presentMode = mode
	sf.needsConfig = true
}

// AcquireNextTexture acquires the next presentable image and
// returns a render target view of it, applying any pending
// reconfiguration first. The view remains valid until [Surface.Present].
// If the surface has gone stale, the returned error wraps
// [ErrSurfaceOutdated] and the caller should drop the frame
// without logging; any other error is a reportable acquisition
// failure, also resolved by dropping the frame.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	sf.Lock()
	defer sf.Unlock()
	if sf.needsConfig {
		sf.configure()
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		// a stale acquire means our configuration no longer
		// matches the platform surface: reconfigure next time.
		sf.needsConfig = true
		return nil, surfaceError(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("gpu: surface target view: %w", err)
	}
	sf.current = tex
	sf.curView = view
	return view, nil
}

// Present displays the image acquired by the last
// [Surface.AcquireNextTexture], after all rendering commands to it
// have been submitted. It must be the last operation on the target:
// the view is released here. Presentation order follows submission
// order on the device queue.
func (sf *Surface) Present() {
	sf.Lock()
	defer sf.Unlock()
	if sf.current == nil {
		return
	}
	sf.curView.Release()
	sf.curView = nil
	sf.surface.Present()
	sf.current.Release()
	sf.current = nil
}

// Release releases the surface and its device.
func (sf *Surface) Release() {
	sf.Lock()
	defer sf.Unlock()
	if sf.curView != nil {
		sf.curView.Release()
		sf.curView = nil
	}
	if sf.current != nil {
		sf.current.Release()
		sf.current = nil
	}
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	if sf.Device != nil {
		sf.Device.Release()
		sf.Device = nil
	}
}

// surfaceError classifies an acquisition error. wgpu-native reports
// surface staleness only through the error text, so match on it:
// outdated, timed out, and lost surfaces are all the recoverable
// "reconfigure and retry next frame" condition.
func surfaceError(err error) error {
	es := strings.ToLower(err.Error())
	for _, m := range []string{"outdated", "timed out", "timeout", "lost"} {
		if strings.Contains(es, m) {
			return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
		}
	}
	return fmt.Errorf("gpu: failed to acquire surface texture: %w", err)
}
