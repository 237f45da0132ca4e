// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uiframe drives the per-frame render pipeline for an
// immediate-mode UI on top of a WebGPU surface.
//
// Each display tick, the [Loop] acquires a presentable target from
// the surface, pulls one frame [Description] from the UI [Source],
// uploads texture deltas and geometry, renders a single pass, and
// presents. The UI itself (widgets, layout, input handling) is an
// external collaborator: this package only consumes the geometry
// and texture deltas it produces.
//
// The [gpu] package manages the surface and device; the [uidraw]
// package implements the [Uploader] and [Renderer] halves of the
// pipeline. See examples/basic for a complete windowed program.
package uiframe
