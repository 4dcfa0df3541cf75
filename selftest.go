package k256

import (
	"errors"

	"k256.nucleo.dev/modular"
	"k256.nucleo.dev/uintn"
)

// Selftest checks the arithmetic stack end to end against known answers.
// It returns the first failure found.
func Selftest() error {
	pm1 := fieldP.WrappingSub(uintn.U256One)
	if feMul(pm1, pm1) != uintn.U256One {
		return errors.New("k256: field wide-reduction self-test failed")
	}

	if scalarMul(uintn.U256FromU64(2), uintn.U256FromU64(3)) != uintn.U256FromU64(6) {
		return errors.New("k256: scalar multiplication self-test failed")
	}

	inv, err := modular.ModInverse(uintn.U256FromU64(3), uintn.U256FromU64(7))
	if err != nil || inv != uintn.U256FromU64(5) {
		return errors.New("k256: modular inverse self-test failed")
	}

	g := Generator()
	if !g.IsOnCurve() {
		return errors.New("k256: generator is not on the curve")
	}
	if !g.Double().Equal(g.Add(g)) {
		return errors.New("k256: point doubling self-test failed")
	}
	if !g.ScalarMul(orderN).IsInfinity() {
		return errors.New("k256: n*G is not the identity")
	}
	k := uintn.U256FromU64(0xdeadbeef)
	if !g.ScalarMul(k).Equal(g.ScalarMulCT(k)) {
		return errors.New("k256: scalar multiplication paths disagree")
	}
	return nil
}
