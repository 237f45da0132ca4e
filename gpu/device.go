// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/uiframe/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds the logical Device and its associated Queue.
// A Device is a usable instance of the GPU adapter hardware;
// each Surface owns its own Device.
type Device struct {
	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the command queue for the device.
	// Command submission is asynchronous relative to the CPU:
	// Submit enqueues work and returns without waiting for the GPU.
	Queue *wgpu.Queue
}

// NewDevice returns a new logical device and queue for the given GPU,
// using default limits and features.
func NewDevice(gp *GPU) (*Device, error) {
	wdev, err := gp.GPU.RequestDevice(nil)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("gpu: failed to create device: %w", err))
	}
	dev := &Device{Device: wdev}
	dev.Queue = wdev.GetQueue()
	return dev, nil
}

// WaitDone blocks until the device is done with all
// currently submitted work.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

// Release releases the device and queue.
// The device is drained of work first.
func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Queue.Release()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
