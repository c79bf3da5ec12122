package vmath

// Vec2F is a float64 2D vector, used for texture coordinates
type Vec2F struct {
	X, Y float64
}
