// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package gpu

import (
	"image"

	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms (mobile, web) need to provide their own surface source.

// Init initializes the WebGPU system for display use, using glfw.
// Must be called before any other use of this package on desktop.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the WebGPU system; call as the last thing
// before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of the given size
// (in screen coordinates) and returns a WebGPU surface for it,
// along with the window (for input and scale queries), a terminate
// function, and a pollEvents function that processes pending window
// events and reports false when the window should close.
// The resize function pointer, if set, is called with the new
// framebuffer size in pixels on every resize, including the (0,0)
// minimize signal.
func GLFWCreateWindow(size image.Point, title string, resize *func(size image.Point)) (surface *wgpu.Surface, window *glfw.Window, terminate func(), pollEvents func() bool, err error) {
	if err = Init(); err != nil {
		return
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err = glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		errors.Log(err)
		return
	}
	surface = Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	terminate = func() {
		window.Destroy()
		Terminate()
	}
	pollEvents = func() bool {
		if window.ShouldClose() {
			return false
		}
		glfw.PollEvents()
		return true
	}
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if resize != nil {
			(*resize)(image.Point{width, height})
		}
	})
	return
}

// WindowScale returns the content scale factor for the given
// window, i.e., the ratio between pixels and screen coordinates.
func WindowScale(window *glfw.Window) float32 {
	xs, _ := window.GetContentScale()
	return xs
}

// WindowPixelSize returns the framebuffer size of the given
// window in pixels.
func WindowPixelSize(window *glfw.Window) image.Point {
	w, h := window.GetFramebufferSize()
	return image.Point{w, h}
}
