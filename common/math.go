package common

import "math"

// Epsilon is the length below which a direction is treated as degenerate.
const Epsilon = 1e-6

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec3 is a right-handed 3D vector. Forward is -Z, Up is +Y.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Vec3Zero    = Vec3{}
	Vec3One     = Vec3{X: 1, Y: 1, Z: 1}
	Vec3Up      = Vec3{Y: 1}
	Vec3Down    = Vec3{Y: -1}
	Vec3Forward = Vec3{Z: -1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSq() float64 { return v.Dot(v) }

func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSq()) }

// Normalize returns the unit vector and false when v is shorter than Epsilon.
func (v Vec3) Normalize() (Vec3, bool) {
	l := v.Length()
	if l < Epsilon {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// Horizontal drops the Y component.
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

func (v Vec3) Abs() Vec3 { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

func (v Vec3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians around axis.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n, ok := axis.Normalize()
	if !ok {
		return QuatIdentity
	}
	s, c := math.Sincos(angle / 2)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: c}
}

// Mul returns q*r: r is applied first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l < Epsilon {
		return QuatIdentity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Forward is the -Z axis rotated by q.
func (q Quat) Forward() Vec3 { return q.Rotate(Vec3Forward) }

// Yaw returns the rotation around Y that q applies to the forward axis.
func (q Quat) Yaw() float64 {
	f := q.Forward()
	return math.Atan2(-f.X, -f.Z)
}
