// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uidraw renders immediate-mode UI frame descriptions to a
// WebGPU render target. The [Drawer] implements both the uploader
// and renderer halves of the frame pipeline: it owns the UI texture
// set and the GPU-resident vertex/index buffers, and issues one
// render pass per frame that draws all primitives in paint order
// with per-primitive scissor rects.
//
// Buffers are reused across frames and reallocated only when
// capacity is insufficient. The Drawer is not safe for concurrent
// use: upload and render for one frame must complete before the
// next frame's upload begins, which the uiframe.Loop guarantees.
package uidraw
