package core

import "math"

// Vec3 is a 3D vector. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Project returns the projection of v onto n. A zero n yields the zero vector.
func (v Vec3) Project(n Vec3) Vec3 {
	nn := n.Dot(n)
	if nn == 0 {
		return Vec3{}
	}
	return n.Scale(v.Dot(n) / nn)
}

// Sphere is a sphere with its center and radius.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Box is an axis-aligned box given by its center and full extents.
type Box struct {
	Center Vec3
	Size   Vec3
}

// Min returns the minimum corner of the box.
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the maximum corner of the box.
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// SpheresCollide reports whether two spheres overlap.
func SpheresCollide(a, b Sphere) bool {
	r := a.Radius + b.Radius
	d := a.Center.Sub(b.Center)
	return d.Dot(d) <= r*r
}

// SphereBoxCollide reports whether a sphere overlaps an axis-aligned box.
func SphereBoxCollide(s Sphere, b Box) bool {
	lo, hi := b.Min(), b.Max()
	closest := Vec3{
		X: Clamp(s.Center.X, lo.X, hi.X),
		Y: Clamp(s.Center.Y, lo.Y, hi.Y),
		Z: Clamp(s.Center.Z, lo.Z, hi.Z),
	}
	d := s.Center.Sub(closest)
	return d.Dot(d) <= s.Radius*s.Radius
}
