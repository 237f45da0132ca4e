// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug turns on extra debugging information reported via slog.
var Debug = false

var (
	instance     *wgpu.Instance
	instanceOnce sync.Once
)

// Instance returns the shared WebGPU instance, creating it
// on the first call.
func Instance() *wgpu.Instance {
	instanceOnce.Do(func() {
		instance = wgpu.CreateInstance(nil)
	})
	return instance
}

// GPU represents the GPU hardware: the WebGPU adapter selected
// for rendering, compatible with a given surface.
type GPU struct {
	// Instance is the shared WebGPU instance.
	Instance *wgpu.Instance

	// GPU is the specific GPU hardware device in use.
	GPU *wgpu.Adapter

	// Properties are the general properties of the GPU adapter,
	// filled in when the adapter is requested.
	Properties wgpu.AdapterInfo

	// MaxTextureSize is the maximum 2D texture dimension
	// supported by the adapter, from its limits.
	MaxTextureSize int
}

// NewGPU returns a new GPU with an adapter compatible with the
// given surface, which can be nil for no-display (offscreen) use.
// The high performance (discrete) adapter is preferred.
// Set the UIFRAME_FALLBACK_ADAPTER environment variable to any
// value to force a software fallback adapter.
func NewGPU(sf *wgpu.Surface) (*GPU, error) {
	gp := &GPU{}
	if err := gp.init(sf); err != nil {
		return nil, err
	}
	return gp, nil
}

func (gp *GPU) init(sf *wgpu.Surface) error {
	gp.Instance = Instance()
	opts := &wgpu.RequestAdapterOptions{
		CompatibleSurface: sf,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	}
	if os.Getenv("UIFRAME_FALLBACK_ADAPTER") != "" {
		opts.ForceFallbackAdapter = true
	}
	ad, err := gp.Instance.RequestAdapter(opts)
	if err != nil {
		return errors.Log(fmt.Errorf("gpu: no WebGPU adapter available: %w", err))
	}
	gp.GPU = ad
	gp.Properties = ad.GetInfo()
	limits := ad.GetLimits()
	gp.MaxTextureSize = int(limits.Limits.MaxTextureDimension2D)
	slog.Info("gpu: adapter selected",
		"name", gp.Properties.Name,
		"type", gp.Properties.AdapterType.String(),
		"backend", gp.Properties.BackendType.String())
	if Debug && gp.Properties.DriverDescription != "" {
		slog.Debug("gpu: driver", "description", gp.Properties.DriverDescription)
	}
	return nil
}

// DeviceName returns the name of the adapter hardware.
func (gp *GPU) DeviceName() string {
	return gp.Properties.Name
}

// Release releases the adapter resources.
// Call at the end of using the GPU.
func (gp *GPU) Release() {
	if gp.GPU == nil {
		return
	}
	gp.GPU.Release()
	gp.GPU = nil
}

// NoDisplayGPU returns a GPU and Device suitable for offscreen
// use (e.g., in tests), without any surface.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp, err := NewGPU(nil)
	if err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}
