// Package k256 implements the secp256k1 elliptic curve group on top of the
// fixed-width integers in package uintn and the modular arithmetic in
// package modular.
//
// Points are affine with an explicit infinity flag.  The group law and the
// double-and-add ScalarMul follow the textbook affine formulas and are
// variable-time; ScalarMulCT runs a Montgomery ladder over Jacobian
// coordinates and is the one used for every secret scalar in this package
// (key derivation, tweaks, ECDH).
//
// Public keys are exchanged in the 33-byte compressed and 65-byte
// uncompressed SEC1 encodings.  Private keys are scalars in [1, n-1] and
// should be scrubbed with Zero once no longer needed.
package k256
