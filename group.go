package k256

import (
	"k256.nucleo.dev/uintn"
)

// Point is an affine secp256k1 point.  When infinity is set the point is the
// group identity and x, y carry no meaning; otherwise (x, y) satisfies
// y^2 = x^3 + 7 mod p.  Use Infinity for the identity; the zero value is the
// off-curve pair (0, 0) and is rejected wherever a point is validated.
type Point struct {
	x, y     uintn.U256
	infinity bool
}

// Infinity returns the group identity.
func Infinity() Point {
	return Point{infinity: true}
}

// Generator returns the base point G.
func Generator() Point {
	return Point{x: generatorX, y: generatorY}
}

// NewPoint returns the point (x, y).  It fails with ErrInvalidInput when a
// coordinate is not below p and with ErrNotOnCurve when the curve equation
// does not hold.
func NewPoint(x, y uintn.U256) (Point, error) {
	if !feIsValid(x) || !feIsValid(y) {
		return Point{}, makeError(ErrInvalidInput,
			"k256: point coordinate is not below the field prime")
	}
	p := Point{x: x, y: y}
	if !p.IsOnCurve() {
		return Point{}, makeError(ErrNotOnCurve,
			"k256: point does not satisfy y^2 = x^3 + 7")
	}
	return p, nil
}

// X returns the affine x coordinate, zero for the identity.
func (p Point) X() uintn.U256 {
	if p.IsInfinity() {
		return uintn.U256Zero
	}
	return p.x
}

// Y returns the affine y coordinate, zero for the identity.
func (p Point) Y() uintn.U256 {
	if p.IsInfinity() {
		return uintn.U256Zero
	}
	return p.y
}

// IsInfinity reports whether p is the group identity.  Only the infinity
// flag marks it.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// IsOnCurve reports whether p is the identity or satisfies the curve
// equation.
func (p Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	return feSqr(p.y) == curveRHS(p.x)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	pInf, qInf := p.IsInfinity(), q.IsInfinity()
	if pInf || qInf {
		return pInf == qInf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p = (x, p - y).
func (p Point) Neg() Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return Point{x: p.x, y: feNeg(p.y)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	switch {
	case p.IsInfinity():
		return q
	case q.IsInfinity():
		return p
	case p.x == q.x && p.y == q.y:
		return p.Double()
	case p.x == q.x:
		// q = -p; the slope's denominator would be zero.
		return Infinity()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	lambda := feMul(feSub(q.y, p.y), feInv(feSub(q.x, p.x)))
	x3 := feSub(feSub(feSqr(lambda), p.x), q.x)
	y3 := feSub(feMul(lambda, feSub(p.x, x3)), p.y)
	return Point{x: x3, y: y3}
}

// Double returns 2p.
func (p Point) Double() Point {
	if p.IsInfinity() || p.y.IsZero() {
		// The tangent at y = 0 is vertical.
		return Infinity()
	}

	// lambda = 3x^2 / 2y, using a = 0.
	x2 := feSqr(p.x)
	num := feAdd(feAdd(x2, x2), x2)
	lambda := feMul(num, feInv(feAdd(p.y, p.y)))
	x3 := feSub(feSqr(lambda), feAdd(p.x, p.x))
	y3 := feSub(feMul(lambda, feSub(p.x, x3)), p.y)
	return Point{x: x3, y: y3}
}

// Bytes returns the 64-byte storage form x || y.  The identity encodes as
// all zeros, which is unambiguous since (0, 0) is not on the curve.
func (p Point) Bytes() [64]byte {
	var b [64]byte
	if p.IsInfinity() {
		return b
	}
	x, y := p.x.Bytes(), p.y.Bytes()
	copy(b[:32], x[:])
	copy(b[32:], y[:])
	return b
}

// PointFromBytes decodes the 64-byte storage form written by Bytes.  All
// zeros decodes to the identity; anything else must be a curve point.
func PointFromBytes(b []byte) (Point, error) {
	if len(b) != 64 {
		return Point{}, makeError(ErrInvalidInput,
			"k256: point storage form must be 64 bytes")
	}
	x, _ := uintn.U256FromBytesBE(b[:32])
	y, _ := uintn.U256FromBytesBE(b[32:])
	if x.IsZero() && y.IsZero() {
		return Infinity(), nil
	}
	return NewPoint(x, y)
}

// String returns the point as (x, y) in hex, or "infinity".
func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}
