package actor

import "github.com/go-gl/mathgl/mgl64"

// SafeDiv divides v by scalar, returning the zero vector when scalar is 0
func SafeDiv(v mgl64.Vec2, scalar float64) mgl64.Vec2 {
	if scalar == 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{v.X() / scalar, v.Y() / scalar}
}

// SafeNormalize returns the unit vector of v, or the zero vector if v has no length.
// mgl64's Normalize yields NaN components in that case.
func SafeNormalize(v mgl64.Vec2) mgl64.Vec2 {
	length := v.Len()
	if length > 0 {
		return SafeDiv(v, length)
	}
	return mgl64.Vec2{}
}
