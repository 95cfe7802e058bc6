package wgpuvertex

import (
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/phanxgames/spritequad"
)

func TestLayoutMatchesVertex(t *testing.T) {
	l := Layout()
	var v spritequad.Vertex
	if l.ArrayStride != uint64(unsafe.Sizeof(v)) {
		t.Errorf("ArrayStride = %d, want sizeof(Vertex) %d", l.ArrayStride, unsafe.Sizeof(v))
	}
	if l.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}

	want := []struct {
		name     string
		format   wgpu.VertexFormat
		offset   uintptr
		location uint32
	}{
		{"position", wgpu.VertexFormatFloat32x4, unsafe.Offsetof(v.Position), 0},
		{"texCoord", wgpu.VertexFormatFloat32x2, unsafe.Offsetof(v.TexCoord), 1},
		{"colorScale", wgpu.VertexFormatFloat32x4, unsafe.Offsetof(v.ColorScale), 2},
		{"colorAdd", wgpu.VertexFormatFloat32x4, unsafe.Offsetof(v.ColorAdd), 3},
		{"swizzle", wgpu.VertexFormatSint32, unsafe.Offsetof(v.Swizzle), 4},
	}
	if len(l.Attributes) != len(want) {
		t.Fatalf("attributes = %d, want %d", len(l.Attributes), len(want))
	}
	for i, w := range want {
		a := l.Attributes[i]
		if a.Format != w.format || a.Offset != uint64(w.offset) || a.ShaderLocation != w.location {
			t.Errorf("%s = {%v %d %d}, want {%v %d %d}", w.name, a.Format, a.Offset, a.ShaderLocation, w.format, w.offset, w.location)
		}
	}
}

func TestLayoutCoversStride(t *testing.T) {
	sizes := map[wgpu.VertexFormat]uint64{
		wgpu.VertexFormatFloat32x4: 16,
		wgpu.VertexFormatFloat32x2: 8,
		wgpu.VertexFormatSint32:    4,
	}
	var total uint64
	for _, a := range Attributes() {
		total += sizes[a.Format]
	}
	if total != spritequad.VertexStride {
		t.Errorf("attribute bytes = %d, want stride %d (no gaps)", total, spritequad.VertexStride)
	}
}
