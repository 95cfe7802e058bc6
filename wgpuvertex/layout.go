// Package wgpuvertex describes the spritequad vertex format to a WebGPU
// render pipeline.
package wgpuvertex

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/phanxgames/spritequad"
)

// Shader locations of the sprite vertex attributes. A WGSL vertex input
// matching Layout looks like:
//
//	struct SpriteVertex {
//	    @location(0) position: vec4<f32>,
//	    @location(1) tex_coord: vec2<f32>,
//	    @location(2) color_scale: vec4<f32>,
//	    @location(3) color_add: vec4<f32>,
//	    @location(4) swizzle: i32,
//	}
const (
	LocationPosition uint32 = iota
	LocationTexCoord
	LocationColorScale
	LocationColorAdd
	LocationSwizzle
)

// Attributes returns the vertex attributes of spritequad.Vertex in field
// order.
func Attributes() []wgpu.VertexAttribute {
	return []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x4, Offset: spritequad.OffsetPosition, ShaderLocation: LocationPosition},
		{Format: wgpu.VertexFormatFloat32x2, Offset: spritequad.OffsetTexCoord, ShaderLocation: LocationTexCoord},
		{Format: wgpu.VertexFormatFloat32x4, Offset: spritequad.OffsetColorScale, ShaderLocation: LocationColorScale},
		{Format: wgpu.VertexFormatFloat32x4, Offset: spritequad.OffsetColorAdd, ShaderLocation: LocationColorAdd},
		{Format: wgpu.VertexFormatSint32, Offset: spritequad.OffsetSwizzle, ShaderLocation: LocationSwizzle},
	}
}

// Layout returns the per-vertex buffer layout for a buffer filled with
// spritequad.AppendVertexBytes.
func Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: spritequad.VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  Attributes(),
	}
}
