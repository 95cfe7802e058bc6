// Package spritequad computes the vertices of rotated, origin-anchored,
// texture-mapped sprite quads for a batched 2D renderer.
//
// It is the per-sprite kernel of a sprite batch: the batching layer owns the
// vertex buffer, decides where each sprite goes, and builds the index buffer.
// [WriteQuad] fills four vertices in place:
//
//	info := spritequad.SpriteDrawInfo{
//		TextureSize: spritequad.Vec2{X: 256, Y: 256},
//		Source:      spritequad.Rect{X: 0, Y: 0, Width: 32, Height: 32},
//		Destination: spritequad.Rect{X: 100, Y: 80, Width: 64, Height: 64},
//		Origin:      spritequad.Vec2{X: 16, Y: 16},
//		Rotation:    0.5,
//		ColorScale:  spritequad.ColorWhite,
//	}
//	spritequad.WriteQuad(&info, vertices, nil, 4*i)
//
// # Vertex order
//
// Vertices come out top-left, top-right, bottom-right, bottom-left of the
// unrotated destination rectangle. Two triangles per quad are (0,1,2) and
// (0,2,3).
//
// # Texture sampling
//
// [SpriteEffects] mirrors sampling and [ImageOrientation] turns it in
// quarter steps; neither changes positions. Regions loaded with [LoadAtlas]
// that the packer stored rotated come back with Orientation = [Rotated90].
//
// # Renderers
//
// [Vertex] has a fixed 60-byte layout, see [VertexStride] and
// [AppendVertexBytes]. The wgpuvertex subpackage describes it to a WebGPU
// pipeline. [AppendEbitenVertices] converts vertices for [Ebitengine]; the
// examples/quads program draws with it.
//
// Build with -tags spritequaddebug to get descriptive capacity panics.
//
// [Ebitengine]: https://ebitengine.org
package spritequad
