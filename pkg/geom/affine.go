// pkg/geom/affine.go
package geom

import "math"

// Affine is a 2D affine transform stored as the top two rows of a 3x3 matrix:
//
//	| A C TX |
//	| B D TY |
//	| 0 0 1  |
type Affine struct {
	A, B, C, D float64
	TX, TY     float64
}

// Translate returns a pure translation.
func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, TX: x, TY: y}
}

// Rotate returns a rotation by angle radians around the origin.
func Rotate(angle float64) Affine {
	s, c := math.Sincos(angle)
	return Affine{A: c, B: s, C: -s, D: c}
}

// ScaleXY returns a non-uniform scale.
func ScaleXY(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Mul composes two transforms: the result applies o first, then t.
// For a parent/child hierarchy this is world = parent.Mul(local).
func (t Affine) Mul(o Affine) Affine {
	return Affine{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		TX: t.A*o.TX + t.C*o.TY + t.TX,
		TY: t.B*o.TX + t.D*o.TY + t.TY,
	}
}

// Apply transforms the point p.
func (t Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}
