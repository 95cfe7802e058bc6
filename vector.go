package spritequad

import "math"

// Vec2 is a 2D vector used for sizes, origins, texture coordinates and the
// rotation basis. Field order is part of the vertex ABI.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// RotationBasis returns (cos r, sin r) as a Vec2. The trigonometry runs in
// float64 and is rounded once, so the basis is the nearest float32 to the
// exact value on every platform.
func RotationBasis(radians float32) Vec2 {
	sin, cos := math.Sincos(float64(radians))
	return Vec2{float32(cos), float32(sin)}
}

// Vec4 is a homogeneous position.
type Vec4 struct {
	X, Y, Z, W float32
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }

// Size returns (Width, Height).
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Color is an RGBA color modifier. ColorScale multiplies the sampled texel,
// ColorAdd is added afterwards. Components are not clamped.
type Color struct {
	R, G, B, A float32
}

var (
	// ColorWhite is the identity color scale.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorTransparent is the identity color add.
	ColorTransparent = Color{}
)
