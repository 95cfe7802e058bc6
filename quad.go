package spritequad

// QuadVertexCount is the number of vertices WriteQuad writes per sprite.
const QuadVertexCount = 4

// Thresholds used by WriteQuad. They only exist to keep output stable, the
// values are tunable but changing them changes rendered output.
const (
	// RotationEpsilon is the largest |Rotation| treated as no rotation.
	// Below it the identity basis (1, 0) is used and no trig is evaluated.
	RotationEpsilon = 1e-6
	// OriginEpsilon floors the Source size when normalizing Origin.
	OriginEpsilon = 1e-6
)

// cornerOffsets is the canonical winding of the unit quad in Y-down space:
// top-left, top-right, bottom-right, bottom-left. Index buffers built by the
// batching layer assume this order.
var cornerOffsets = [QuadVertexCount]Vec2{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// WriteQuad writes the four vertices of the sprite described by info into
// vertices[vertexStartOffset : vertexStartOffset+4].
//
// Positions depend only on Destination, Origin, Rotation and Depth. Texture
// coordinates depend only on Source, TextureSize, SpriteEffects and
// Orientation. Colors and Swizzle are copied unchanged.
//
// indices is part of the batching call contract and is never touched; index
// generation belongs to the caller. WriteQuad does not allocate, keeps no
// state and may run concurrently on disjoint vertex ranges. A vertices slice
// too short for four vertices at the offset panics.
func WriteQuad(info *SpriteDrawInfo, vertices []Vertex, indices []uint16, vertexStartOffset int) {
	if debugChecks {
		debugCheckQuadCapacity(len(vertices), vertexStartOffset, 1)
	}
	out := vertices[vertexStartOffset : vertexStartOffset+QuadVertexCount : vertexStartOffset+QuadVertexCount]

	delta := Vec2{1 / info.TextureSize.X, 1 / info.TextureSize.Y}

	rotation := Vec2{1, 0}
	if r := info.Rotation; r > RotationEpsilon || r < -RotationEpsilon {
		rotation = RotationBasis(r)
	}

	origin := Vec2{
		info.Origin.X / max(OriginEpsilon, info.Source.Width),
		info.Origin.Y / max(OriginEpsilon, info.Source.Height),
	}

	dst := info.Destination
	src := info.Source
	flip := int(info.SpriteEffects)
	orient := int(info.Orientation)

	for j := range out {
		v := &out[j]

		p := cornerOffsets[j].Sub(origin).Mul(dst.Size())
		v.Position = Vec4{
			X: dst.X + float32(p.X*rotation.X) - float32(p.Y*rotation.Y),
			Y: dst.Y + float32(p.X*rotation.Y) + float32(p.Y*rotation.X),
			Z: info.Depth,
			W: 1,
		}
		v.ColorScale = info.ColorScale
		v.ColorAdd = info.ColorAdd

		// &3 is mod 4 for valid inputs and keeps bad ones inside the table.
		tc := cornerOffsets[((j^flip)+orient)&3]
		v.TexCoord = src.Position().Add(tc.Mul(src.Size())).Mul(delta)

		v.Swizzle = info.Swizzle
	}
}

// WriteQuads writes one quad per element of infos, back to back, starting at
// vertexStartOffset. It needs room for QuadVertexCount*len(infos) vertices.
func WriteQuads(infos []SpriteDrawInfo, vertices []Vertex, vertexStartOffset int) {
	if debugChecks {
		debugCheckQuadCapacity(len(vertices), vertexStartOffset, len(infos))
	}
	for i := range infos {
		WriteQuad(&infos[i], vertices, nil, vertexStartOffset+i*QuadVertexCount)
	}
}
