package spritequad

// SpriteEffects selects a flip of texture sampling. The values are XOR masks
// over the canonical corner index (TL=0, TR=1, BR=2, BL=3), so they are not
// plain bit flags: 1 swaps TL/TR and BL/BR, 3 swaps TL/BL and TR/BR, and 2
// swaps the diagonals, which is both flips at once.
type SpriteEffects int32

const (
	SpriteEffectsNone SpriteEffects = 0 // sample as authored
	FlipHorizontally  SpriteEffects = 1 // mirror left/right
	FlipBoth          SpriteEffects = 2 // mirror both axes (180° turn)
	FlipVertically    SpriteEffects = 3 // mirror top/bottom
)

// String returns the effect name.
func (e SpriteEffects) String() string {
	switch e {
	case SpriteEffectsNone:
		return "none"
	case FlipHorizontally:
		return "flip-horizontal"
	case FlipBoth:
		return "flip-both"
	case FlipVertically:
		return "flip-vertical"
	default:
		return "unknown"
	}
}

// ImageOrientation rotates which source corner is sampled at each destination
// corner in quarter turns. Atlas packers that store images rotated 90°
// clockwise produce Rotated90 regions.
type ImageOrientation int32

const (
	OrientationAsIs ImageOrientation = iota
	Rotated90
	Rotated180
	Rotated270
)

// SwizzleMode tags how the consuming shader reorders texture channels. The
// quad writer copies it verbatim.
type SwizzleMode int32

const (
	SwizzleNone      SwizzleMode = iota // rgba
	SwizzleRRRR                         // single-channel textures broadcast red
	SwizzleNormalMap                    // rebuild z from a two-channel normal map
	SwizzleGrayscale                    // luminance of rgb, alpha kept
)

// SpriteDrawInfo holds the per-sprite draw parameters consumed by WriteQuad.
// It is a transient parameter block: callers build one per draw and may reuse
// it freely, WriteQuad never retains it.
//
// Field order and widths mirror the binary parameter block the batching layer
// fills; every scalar is 32 bits.
type SpriteDrawInfo struct {
	// TextureSize is the pixel size of the sampled texture. Must be positive.
	TextureSize Vec2
	// Rotation in radians about the origin.
	Rotation float32
	// Origin is the anchor in Source pixels, (0,0) being Source's top-left.
	Origin Vec2
	// Source is the sampled region in texture pixels.
	Source Rect
	// Destination is where the sprite lands before rotation. Destination.X/Y
	// is where the origin ends up.
	Destination Rect
	// Depth is written to every vertex's Z.
	Depth float32

	ColorScale Color
	ColorAdd   Color

	SpriteEffects SpriteEffects
	Orientation   ImageOrientation
	Swizzle       SwizzleMode
}
