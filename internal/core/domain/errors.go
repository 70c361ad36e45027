package domain

import "errors"

// Domain errors represent caller programming mistakes in addressing or
// slicing expressions. They are synchronous and non-retryable; callers
// should fix the expression rather than retry.
var (
	// ErrInvalidAddress indicates a malformed A1 token or range string.
	ErrInvalidAddress = errors.New("invalid A1 address")

	// ErrInvalidSliceShape indicates a slice expression with the wrong
	// arity or an index that cannot denote a position on its axis.
	ErrInvalidSliceShape = errors.New("invalid slice shape")

	// ErrAmbiguousSheetReference indicates a sheet name appeared where an
	// axis spec was expected, so the expression cannot be resolved.
	ErrAmbiguousSheetReference = errors.New("ambiguous sheet reference")

	// ErrShapeRequired indicates a negative or open-ended index needed the
	// sheet's extent, but no SheetShape was supplied.
	ErrShapeRequired = errors.New("sheet shape required")
)
