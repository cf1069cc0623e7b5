package array

import "errors"

// Sentinel errors returned by the array package. Callers match them with
// errors.Is; wrapped variants carry positional context.
var (
	// ErrConstruction covers malformed input: non-numeric leaves, wrong
	// nesting depth, or ragged sibling lengths.
	ErrConstruction = errors.New("array: malformed construction input")

	// ErrShapeMismatch is returned by element-wise operations between
	// arrays whose shapes differ at any nesting level.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrDivisionByZero is returned when any divisor element is exactly
	// zero. The whole operation aborts; no partial result is produced.
	ErrDivisionByZero = errors.New("array: division by zero")

	// ErrIndexOutOfRange is returned by accessors for invalid indices.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrEmpty is returned by reductions that are undefined on empty input.
	ErrEmpty = errors.New("array: empty array")
)
