package spritequad

import (
	"math"
	"testing"
)

// setupBenchSprites creates n sprites laid out on a 100-column grid, each
// sampling one 32×32 cell of a 1024×1024 atlas.
func setupBenchSprites(n int) ([]SpriteDrawInfo, []Vertex) {
	infos := make([]SpriteDrawInfo, n)
	for i := range infos {
		cell := i % 1024
		infos[i] = SpriteDrawInfo{
			TextureSize: Vec2{1024, 1024},
			Source:      Rect{float32(cell%32) * 32, float32(cell/32) * 32, 32, 32},
			Destination: Rect{float32(i%100) * 40, float32(i/100) * 40, 32, 32},
			Origin:      Vec2{16, 16},
			ColorScale:  ColorWhite,
		}
	}
	return infos, make([]Vertex, n*QuadVertexCount)
}

// --- Quad writing benchmarks ---

func BenchmarkWriteQuads_10000Sprites_Static(b *testing.B) {
	infos, vs := setupBenchSprites(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		WriteQuads(infos, vs, 0)
	}
}

func BenchmarkWriteQuads_10000Sprites_Rotating(b *testing.B) {
	infos, vs := setupBenchSprites(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := range infos {
			infos[j].Rotation += 0.01
		}
		WriteQuads(infos, vs, 0)
	}
}

func BenchmarkWriteQuads_10000Sprites_FlippedOriented(b *testing.B) {
	infos, vs := setupBenchSprites(10000)
	for j := range infos {
		infos[j].SpriteEffects = SpriteEffects(j % 4)
		infos[j].Orientation = ImageOrientation(j / 4 % 4)
		infos[j].Rotation = float32(math.Sin(float64(j)))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		WriteQuads(infos, vs, 0)
	}
}

func BenchmarkWriteQuad_Single(b *testing.B) {
	infos, vs := setupBenchSprites(1)
	info := &infos[0]
	info.Rotation = 0.5

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		WriteQuad(info, vs, nil, 0)
	}
}

// --- Conversion benchmarks ---

func BenchmarkAppendVertexBytes_10000Sprites(b *testing.B) {
	infos, vs := setupBenchSprites(10000)
	WriteQuads(infos, vs, 0)
	buf := make([]byte, 0, len(vs)*VertexStride)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendVertexBytes(buf[:0], vs)
	}
}

func BenchmarkAppendEbitenVertices_10000Sprites(b *testing.B) {
	infos, vs := setupBenchSprites(10000)
	WriteQuads(infos, vs, 0)
	size := infos[0].TextureSize
	out := AppendEbitenVertices(nil, vs, size)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out = AppendEbitenVertices(out[:0], vs, size)
	}
}
