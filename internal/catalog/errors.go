package catalog

import "errors"

var (
	// ErrProductNotFound is returned by every mutation that targets an unknown id.
	ErrProductNotFound = errors.New("catalog: product not found")
	// ErrNotInRecycleBin is returned when a permanent delete targets a product
	// that has not been soft-deleted first.
	ErrNotInRecycleBin = errors.New("catalog: product is not in the recycle bin")
	// ErrPersistence wraps snapshot write failures. The in-memory change has
	// already been applied when it is returned.
	ErrPersistence = errors.New("catalog: persistence failed")
)
