package scriptable

import "errors"

var (
	// ErrBadJSON is wrapped by errors for documents that are not valid
	// {t, v} trees.
	ErrBadJSON = errors.New("bad nbt json")
	// ErrNotContainer is wrapped by errors for documents or values whose
	// root is not a list or compound.
	ErrNotContainer = errors.New("not a list or compound")
	// ErrNotFinite is wrapped by encoding errors for NaN and infinite
	// float and double values.
	ErrNotFinite = errors.New("non-finite float")
)
