package spritequad

import "github.com/hajimehoshi/ebiten/v2"

// AppendEbitenVertices converts quad vertices for ebiten's DrawTriangles
// family and appends them to dst.
//
// Ebitengine samples source images in pixels, so texture coordinates are
// scaled back up by textureSize. ColorScale becomes the vertex color and
// ColorAdd travels in Custom0..Custom3, reaching a Kage fragment shader as
// its custom argument. Depth and Swizzle have no ebiten vertex slot; sprites
// sharing a swizzle mode should be drawn together with the mode as a shader
// uniform.
func AppendEbitenVertices(dst []ebiten.Vertex, src []Vertex, textureSize Vec2) []ebiten.Vertex {
	for i := range src {
		v := &src[i]
		s := v.TexCoord.Mul(textureSize)
		dst = append(dst, ebiten.Vertex{
			DstX:    v.Position.X,
			DstY:    v.Position.Y,
			SrcX:    s.X,
			SrcY:    s.Y,
			ColorR:  v.ColorScale.R,
			ColorG:  v.ColorScale.G,
			ColorB:  v.ColorScale.B,
			ColorA:  v.ColorScale.A,
			Custom0: v.ColorAdd.R,
			Custom1: v.ColorAdd.G,
			Custom2: v.ColorAdd.B,
			Custom3: v.ColorAdd.A,
		})
	}
	return dst
}
