// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages the WebGPU hardware for presenting frames
// to a window surface: adapter and device selection, the surface
// swapchain configuration, and device texture upload.
//
// The [Surface] is the central type: it owns the presentable images
// for a window, and hands out one [wgpu.TextureView] render target
// per frame via [Surface.AcquireNextTexture], which is returned for
// display via [Surface.Present].
//
// Resizing is driven by external window events through
// [Surface.SetSize]; the actual WebGPU reconfiguration is deferred
// to the next acquire, so a target acquired under the old
// configuration is never invalidated mid-frame. A zero dimension is
// a minimize signal and never reaches the GPU.
package gpu
