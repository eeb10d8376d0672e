package tweener

import "math"

// LerpFloat interpolates linearly between a and b. t is not clamped.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 interpolates each component linearly.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t)}
}

// LerpVec3 interpolates each component linearly.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{LerpFloat(a.X, b.X, t), LerpFloat(a.Y, b.Y, t), LerpFloat(a.Z, b.Z, t)}
}

// LerpColor interpolates each channel linearly in straight (not
// premultiplied) alpha. Channels may leave [0, 1] under overshooting eases.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: LerpFloat(a.R, b.R, t),
		G: LerpFloat(a.G, b.G, t),
		B: LerpFloat(a.B, b.B, t),
		A: LerpFloat(a.A, b.A, t),
	}
}

// SlerpQuat interpolates spherically along the shortest arc between a and b
// and returns a unit quaternion. t is not clamped, so overshooting eases
// rotate past b.
func SlerpQuat(a, b Quat, t float64) Quat {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		dot = -dot
	}
	// Nearly parallel: the sine below underflows, fall back to nlerp.
	if dot > 0.9995 {
		return Quat{
			X: LerpFloat(a.X, b.X, t),
			Y: LerpFloat(a.Y, b.Y, t),
			Z: LerpFloat(a.Z, b.Z, t),
			W: LerpFloat(a.W, b.W, t),
		}.Normalize()
	}
	theta := math.Acos(dot)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
		W: wa*a.W + wb*b.W,
	}.Normalize()
}

// Normalize returns q scaled to unit length, or QuatIdentity for a zero q.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if n == 0 {
		return QuatIdentity
	}
	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

// QuatAxisAngle returns the rotation of angle radians about axis.
func QuatAxisAngle(axis Vec3, angle float64) Quat {
	n := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if n == 0 {
		return QuatIdentity
	}
	s := math.Sin(angle/2) / n
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(angle / 2)}
}
