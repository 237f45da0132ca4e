// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uidraw

import (
	"embed"
	"fmt"
	"image/color"
	"sync"
	"unsafe"

	"cogentcore.org/uiframe"
	"cogentcore.org/uiframe/base/errors"
	"cogentcore.org/uiframe/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/*.wgsl
var shaders embed.FS

// vertexSize is the byte size of one uiframe.Vertex on the GPU:
// 2 x f32 pos, 2 x f32 uv, 4 x unorm8 color.
const vertexSize = int(unsafe.Sizeof(uiframe.Vertex{}))

// uniformSize is the byte size of the screen uniform,
// padded to 16 bytes.
const uniformSize = 16

// Drawer renders UI frame descriptions to a render target view.
// It owns the UI textures and the GPU-resident geometry buffers,
// implementing the uiframe Uploader and Renderer.
type Drawer struct {
	// ClearColor is the color the target is cleared to at the
	// start of each frame's render pass.
	ClearColor color.Color

	// device for this drawer, shared with the surface; not owned.
	device gpu.Device

	pipeline      *wgpu.RenderPipeline
	sampler       *wgpu.Sampler
	uniformBuffer *wgpu.Buffer
	uniformGroup  *wgpu.BindGroup
	textureLayout *wgpu.BindGroupLayout

	// textures maps UI texture ids to their device textures.
	textures map[uiframe.TextureID]*texture

	// geom holds the shared vertex / index buffer state,
	// repopulated by UpdateBuffers each frame and read by Render.
	geom geometry

	// use Lock, Unlock on Drawer for all operations
	sync.Mutex
}

// texture is one UI-managed device texture with its bind group.
type texture struct {
	tex  *gpu.Texture
	bind *wgpu.BindGroup
}

func (tx *texture) release() {
	if tx.bind != nil {
		tx.bind.Release()
		tx.bind = nil
	}
	if tx.tex != nil {
		tx.tex.Release()
		tx.tex = nil
	}
}

// NewDrawer returns a new Drawer rendering to targets of the given
// format, typically the surface format, using the given device.
func NewDrawer(dev *gpu.Device, format wgpu.TextureFormat) (*Drawer, error) {
	dw := &Drawer{
		ClearColor: color.Black,
		device:     *dev,
		textures:   make(map[uiframe.TextureID]*texture),
	}
	if err := dw.config(format); err != nil {
		dw.Release()
		return nil, err
	}
	return dw, nil
}

// config creates the pipeline, sampler, layouts, and the screen
// uniform buffer and bind group.
func (dw *Drawer) config(format wgpu.TextureFormat) error {
	dev := dw.device.Device

	code, err := shaders.ReadFile("shaders/ui.wgsl")
	if errors.Log(err) != nil {
		return err
	}
	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "uidraw",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: string(code)},
	})
	if errors.Log(err) != nil {
		return err
	}
	defer module.Release()

	dw.sampler, err = dev.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "uidraw",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}

	uniformLayout, err := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "uidraw.screen",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	defer uniformLayout.Release()

	dw.textureLayout, err = dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "uidraw.texture",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		},
	})
	if errors.Log(err) != nil {
		return err
	}

	dw.uniformBuffer, err = dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "uidraw.screen",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return err
	}

	dw.uniformGroup, err = dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "uidraw.screen",
		Layout: uniformLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: dw.uniformBuffer, Size: uniformSize},
			{Binding: 1, Sampler: dw.sampler},
		},
	})
	if errors.Log(err) != nil {
		return err
	}

	pipeLayout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "uidraw",
		BindGroupLayouts: []*wgpu.BindGroupLayout{uniformLayout, dw.textureLayout},
	})
	if errors.Log(err) != nil {
		return err
	}
	defer pipeLayout.Release()

	dw.pipeline, err = dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "uidraw",
		Layout: pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(vertexSize),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						Operation: wgpu.BlendOperationAdd,
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
					},
					Alpha: wgpu.BlendComponent{
						Operation: wgpu.BlendOperationAdd,
						SrcFactor: wgpu.BlendFactorOneMinusDstAlpha,
						DstFactor: wgpu.BlendFactorOne,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone, // UI meshes have arbitrary winding
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	return errors.Log(err)
}

// Render issues the frame's single render pass against the given
// target view, drawing all primitives in the order given, using the
// buffers populated by the preceding UpdateBuffers call for this
// frame. The commands are submitted to the device queue; device
// errors are returned and are fatal to the frame loop.
func (dw *Drawer) Render(view *wgpu.TextureView, prims []uiframe.Primitive, screen uiframe.ScreenDescriptor) error {
	dw.Lock()
	defer dw.Unlock()

	cmd, err := dw.device.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		return err
	}
	defer cmd.Release()

	r, g, b, a := toFloat64RGBA(dw.ClearColor)
	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "uidraw",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: wgpu.Color{R: r, G: g, B: b, A: a},
			StoreOp:    wgpu.StoreOpStore,
		}},
	})

	if len(dw.geom.spans) > 0 {
		rp.SetPipeline(dw.pipeline)
		rp.SetBindGroup(0, dw.uniformGroup, nil)
		rp.SetVertexBuffer(0, dw.geom.vertexBuffer, 0, wgpu.WholeSize)
		rp.SetIndexBuffer(dw.geom.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)

		for _, sp := range dw.geom.spans {
			sc, ok := scissorRect(sp.clip, screen)
			if !ok {
				continue
			}
			tx, ok := dw.textures[sp.texture]
			if !ok {
				// the collaborator referenced a texture it never
				// set, or freed too early
				errors.Log(fmt.Errorf("uidraw: primitive references unknown texture %d", sp.texture))
				continue
			}
			rp.SetScissorRect(sc.x, sc.y, sc.w, sc.h)
			rp.SetBindGroup(1, tx.bind, nil)
			rp.DrawIndexed(sp.indexCount, 1, sp.firstIndex, sp.baseVertex, 0)
		}
	}

	rp.End()
	rp.Release() // must happen before Finish
	cmdBuffer, err := cmd.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	dw.device.Queue.Submit(cmdBuffer)
	cmdBuffer.Release()
	return nil
}

// Release releases all device resources held by the drawer:
// pipeline, buffers, and all UI textures.
func (dw *Drawer) Release() {
	dw.Lock()
	defer dw.Unlock()
	for id, tx := range dw.textures {
		tx.release()
		delete(dw.textures, id)
	}
	dw.geom.release()
	if dw.uniformGroup != nil {
		dw.uniformGroup.Release()
		dw.uniformGroup = nil
	}
	if dw.uniformBuffer != nil {
		dw.uniformBuffer.Release()
		dw.uniformBuffer = nil
	}
	if dw.textureLayout != nil {
		dw.textureLayout.Release()
		dw.textureLayout = nil
	}
	if dw.sampler != nil {
		dw.sampler.Release()
		dw.sampler = nil
	}
	if dw.pipeline != nil {
		dw.pipeline.Release()
		dw.pipeline = nil
	}
}

// scissor is a clip rectangle in pixels.
type scissor struct {
	x, y, w, h uint32
}

// scissorRect converts a clip rectangle in points to a pixel
// scissor rect clamped to the screen, reporting false for
// degenerate rects that clip everything.
func scissorRect(clip uiframe.Rect, screen uiframe.ScreenDescriptor) (scissor, bool) {
	sc := screen.ScaleFactor
	if sc <= 0 {
		sc = 1
	}
	x0 := clampInt(int(clip.Min[0]*sc), 0, screen.SizeInPixels.X)
	y0 := clampInt(int(clip.Min[1]*sc), 0, screen.SizeInPixels.Y)
	x1 := clampInt(int(clip.Max[0]*sc+0.5), 0, screen.SizeInPixels.X)
	y1 := clampInt(int(clip.Max[1]*sc+0.5), 0, screen.SizeInPixels.Y)
	if x1 <= x0 || y1 <= y0 {
		return scissor{}, false
	}
	return scissor{x: uint32(x0), y: uint32(y0), w: uint32(x1 - x0), h: uint32(y1 - y0)}, true
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// toFloat64RGBA returns the color as alpha-premultiplied floats
// in 0..1, for the render pass clear value.
func toFloat64RGBA(c color.Color) (r, g, b, a float64) {
	if c == nil {
		return 0, 0, 0, 1
	}
	ri, gi, bi, ai := c.RGBA()
	const d = float64(0xffff)
	return float64(ri) / d, float64(gi) / d, float64(bi) / d, float64(ai) / d
}

var (
	_ uiframe.Uploader = (*Drawer)(nil)
	_ uiframe.Renderer = (*Drawer)(nil)
)
