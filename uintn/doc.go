// Package uintn implements the fixed-width unsigned integers U256, U384,
// U512, U1024, U2048 and U4096.
//
// Each type is an array of little-endian 64-bit limbs, so values are copied
// by assignment and every operation returns a fresh result.  The external
// form of every value is its fixed-length big-endian byte encoding.
//
// All widths share one limb-vector kernel built on the carry and borrow
// primitives of package ct.  Carry propagation in Add, Sub, MulU64 and
// MulWide is free of data-dependent branches, as are CmpCT and Equal.  Cmp,
// DivRem and the bit-scanning helpers are not and should only see public
// values.
//
// Division by zero is a programming error and panics with an Error whose
// kind is ErrDivisionByZero.  Malformed external input is reported as an
// Error of kind ErrInvalidInput.
package uintn
