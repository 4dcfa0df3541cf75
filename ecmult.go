package k256

import (
	"k256.nucleo.dev/ct"
	"k256.nucleo.dev/modular"
	"k256.nucleo.dev/uintn"
)

// ScalarMul returns k*p by affine double-and-add over the bits of k, least
// significant first.  Both the number of additions and the modular
// inversions inside them depend on k, so it must only see public scalars;
// use ScalarMulCT otherwise.
func (p Point) ScalarMul(k uintn.U256) Point {
	result := Infinity()
	acc := p
	for !k.IsZero() {
		if k.IsOdd() {
			result = result.Add(acc)
		}
		acc = acc.Double()
		k = k.Shr1()
	}
	return result
}

// ScalarBaseMul returns k*G using the constant-time ladder.
func ScalarBaseMul(k uintn.U256) Point {
	return Generator().ScalarMulCT(k)
}

// ScalarMulCT returns k*p with a Montgomery ladder over Jacobian
// coordinates.  Every one of the 256 steps performs one addition and one
// doubling, and the operands are routed with conditional swaps, so the
// operation sequence is independent of k.
func (p Point) ScalarMulCT(k uintn.U256) Point {
	// Invariant: r1 - r0 = p.
	r0, r1 := jacobianInfinity(), toJacobian(p)
	for i := 255; i >= 0; i-- {
		bit := k.Bit(i) == 1
		cswapJacobian(bit, &r0, &r1)
		r1 = r0.add(&r1)
		r0 = r0.double()
		cswapJacobian(bit, &r0, &r1)
	}
	result := r0.toAffine()
	r0.zero()
	r1.zero()
	return result
}

// jacobianPoint represents the affine point (x/z^2, y/z^3).  Coordinates
// are kept in Montgomery form under fieldMont.  z = 0 is the identity.
type jacobianPoint struct {
	x, y, z uintn.U256
}

func mAdd(a, b uintn.U256) uintn.U256 { return modular.AddMod(a, b, fieldP) }
func mSub(a, b uintn.U256) uintn.U256 { return modular.SubMod(a, b, fieldP) }
func mMul(a, b uintn.U256) uintn.U256 { return fieldMont.Mul(a, b) }
func mSqr(a uintn.U256) uintn.U256    { return fieldMont.Mul(a, a) }

func jacobianInfinity() jacobianPoint {
	one := fieldMont.One()
	return jacobianPoint{x: one, y: one}
}

func toJacobian(p Point) jacobianPoint {
	if p.IsInfinity() {
		return jacobianInfinity()
	}
	return jacobianPoint{
		x: fieldMont.ToMont(p.x),
		y: fieldMont.ToMont(p.y),
		z: fieldMont.One(),
	}
}

func (j *jacobianPoint) isInfinity() bool {
	return j.z.Equal(uintn.U256Zero)
}

// toAffine normalizes j.  The inverse of z is z^(p-2), so the work done
// does not depend on z.
func (j *jacobianPoint) toAffine() Point {
	if j.isInfinity() {
		return Infinity()
	}
	zInv := fieldMont.Exp(fieldMont.FromMont(j.z), fieldP.WrappingSub(uintn.U256FromU64(2)))
	zInvM := fieldMont.ToMont(zInv)
	zInv2 := mSqr(zInvM)
	zInv3 := mMul(zInv2, zInvM)
	return Point{
		x: fieldMont.FromMont(mMul(j.x, zInv2)),
		y: fieldMont.FromMont(mMul(j.y, zInv3)),
	}
}

// double returns 2j.  The identity and points with y = 0 map to z = 0.
func (j *jacobianPoint) double() jacobianPoint {
	// S = 4*x*y^2, M = 3*x^2
	// x3 = M^2 - 2*S
	// y3 = M*(S - x3) - 8*y^4
	// z3 = 2*y*z
	y2 := mSqr(j.y)
	s := mMul(j.x, y2)
	s = mAdd(s, s)
	s = mAdd(s, s)
	x2 := mSqr(j.x)
	m := mAdd(mAdd(x2, x2), x2)

	x3 := mSub(mSqr(m), mAdd(s, s))
	y4 := mSqr(y2)
	y4 = mAdd(y4, y4)
	y4 = mAdd(y4, y4)
	y4 = mAdd(y4, y4)
	y3 := mSub(mMul(m, mSub(s, x3)), y4)
	z3 := mMul(j.y, j.z)
	z3 = mAdd(z3, z3)
	return jacobianPoint{x: x3, y: y3, z: z3}
}

// add returns j + q for any pair of inputs.  The general formula is always
// evaluated and the identity and doubling cases are chosen afterwards with
// constant-time selects.
func (j *jacobianPoint) add(q *jacobianPoint) jacobianPoint {
	z1z1 := mSqr(j.z)
	z2z2 := mSqr(q.z)
	u1 := mMul(j.x, z2z2)
	u2 := mMul(q.x, z1z1)
	s1 := mMul(mMul(j.y, z2z2), q.z)
	s2 := mMul(mMul(q.y, z1z1), j.z)
	h := mSub(u2, u1)
	r := mSub(s2, s1)

	// x3 = r^2 - h^3 - 2*u1*h^2
	// y3 = r*(u1*h^2 - x3) - s1*h^3
	// z3 = z1*z2*h
	h2 := mSqr(h)
	h3 := mMul(h2, h)
	u1h2 := mMul(u1, h2)
	x3 := mSub(mSub(mSqr(r), h3), mAdd(u1h2, u1h2))
	y3 := mSub(mMul(r, mSub(u1h2, x3)), mMul(s1, h3))
	z3 := mMul(mMul(j.z, q.z), h)
	sum := jacobianPoint{x: x3, y: y3, z: z3}

	// h = r = 0 means j = q, for which the formula degenerates to z3 = 0.
	// h = 0 alone means j = -q and z3 = 0 is already the right answer.
	same := ct.Bit(h.Equal(uintn.U256Zero)) & ct.Bit(r.Equal(uintn.U256Zero))
	dbl := j.double()
	sum = selectJacobian(same == 1, &dbl, &sum)
	sum = selectJacobian(j.isInfinity(), q, &sum)
	sum = selectJacobian(q.isInfinity(), j, &sum)
	return sum
}

func (j *jacobianPoint) zero() {
	ct.Zero(j.x[:])
	ct.Zero(j.y[:])
	ct.Zero(j.z[:])
}

// selectJacobian returns a when cond is true and b otherwise.
func selectJacobian(cond bool, a, b *jacobianPoint) jacobianPoint {
	var r jacobianPoint
	ct.SelectLimbs(cond, r.x[:], a.x[:], b.x[:])
	ct.SelectLimbs(cond, r.y[:], a.y[:], b.y[:])
	ct.SelectLimbs(cond, r.z[:], a.z[:], b.z[:])
	return r
}

// cswapJacobian swaps a and b when cond is true.
func cswapJacobian(cond bool, a, b *jacobianPoint) {
	ct.SwapLimbs(cond, a.x[:], b.x[:])
	ct.SwapLimbs(cond, a.y[:], b.y[:])
	ct.SwapLimbs(cond, a.z[:], b.z[:])
}
