package spritequad

import (
	"encoding/binary"
	"math"
	"slices"
)

// Vertex is one corner of a sprite quad as consumed by the GPU. The field
// order and sizes are a binary contract with the vertex-attribute binding of
// the sprite pipeline; see the Offset* constants and VertexStride.
type Vertex struct {
	Position   Vec4 // x, y, depth, 1
	TexCoord   Vec2 // normalized, unclamped
	ColorScale Color
	ColorAdd   Color
	Swizzle    SwizzleMode
}

// Byte offsets of each attribute within a Vertex, and the stride between
// consecutive vertices. The struct is all 4-byte fields, so there is no
// padding.
const (
	OffsetPosition   = 0
	OffsetTexCoord   = OffsetPosition + 4*4
	OffsetColorScale = OffsetTexCoord + 2*4
	OffsetColorAdd   = OffsetColorScale + 4*4
	OffsetSwizzle    = OffsetColorAdd + 4*4
	VertexStride     = OffsetSwizzle + 4
)

// AppendVertexBytes appends the little-endian packed encoding of vs to dst
// and returns the extended slice. The layout matches VertexStride and the
// Offset* constants, ready for a buffer upload.
func AppendVertexBytes(dst []byte, vs []Vertex) []byte {
	dst = slices.Grow(dst, len(vs)*VertexStride)
	for i := range vs {
		v := &vs[i]
		dst = appendFloats(dst,
			v.Position.X, v.Position.Y, v.Position.Z, v.Position.W,
			v.TexCoord.X, v.TexCoord.Y,
			v.ColorScale.R, v.ColorScale.G, v.ColorScale.B, v.ColorScale.A,
			v.ColorAdd.R, v.ColorAdd.G, v.ColorAdd.B, v.ColorAdd.A,
		)
		dst = binary.LittleEndian.AppendUint32(dst, uint32(v.Swizzle))
	}
	return dst
}

func appendFloats(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}
