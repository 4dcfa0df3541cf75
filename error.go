package k256

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrInvalidInput indicates a key, scalar or tweak with the wrong
	// length, an unknown public key prefix, or a value outside its valid
	// range.
	ErrInvalidInput = ErrorKind("ErrInvalidInput")

	// ErrNotOnCurve indicates externally supplied coordinates that do not
	// satisfy y^2 = x^3 + 7, including compressed keys whose x has no
	// square root.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrPointAtInfinity indicates the identity where a public key or a
	// finite point is required.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 points and keys.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
