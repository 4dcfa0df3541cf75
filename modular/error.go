package modular

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

const (
	// ErrDivisionByZero indicates a zero modulus.  It is only ever raised
	// through a panic.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrNotCoprime indicates a modular inverse was requested for a value
	// that shares a factor with the modulus.
	ErrNotCoprime = ErrorKind("ErrNotCoprime")

	// ErrEvenModulus indicates a Montgomery context was requested for an
	// even modulus, which has no inverse mod 2^64.
	ErrEvenModulus = ErrorKind("ErrEvenModulus")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to modular arithmetic.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
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
