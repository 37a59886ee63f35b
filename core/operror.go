package core

import "fmt"

// OpError is the structured failure value surfaced by fsutil operations.
//
// It records the attempted action as a human-readable verb, the path (or
// source/destination pair) involved, and the classified Kind of the
// underlying cause. OpError is compatible with errors.Is and errors.As
// through Unwrap, so the original sentinel remains matchable.
type OpError struct {
	// Op is the attempted action, e.g. "copy", "remove", "read lines".
	Op string

	// Path is the primary path the operation was acting on.
	Path string

	// Dst is the destination path for two-path operations, empty otherwise.
	Dst string

	// Kind is the classification of the underlying error.
	Kind Kind

	// Err is the underlying cause.
	Err error
}

// Error returns the string representation of the error.
// Format: "[KIND] op path: cause", with "path -> dst" for two-path ops.
func (e *OpError) Error() string {
	if e.Dst != "" {
		return fmt.Sprintf("[%s] %s %s -> %s: %v", e.Kind, e.Op, e.Path, e.Dst, e.Err)
	}
	return fmt.Sprintf("[%s] %s %s: %v", e.Kind, e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for standard library compatibility.
func (e *OpError) Unwrap() error {
	return e.Err
}

// WrapOp wraps err as an *OpError for a single-path operation, classifying
// the cause. Returns nil if err is nil. If err is already an *OpError it is
// returned unchanged, so the action and path closest to the failure are
// preserved through propagation.
func WrapOp(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*OpError); ok {
		return err
	}
	return &OpError{Op: op, Path: path, Kind: classify(err), Err: err}
}

// WrapOp2 wraps err as an *OpError for a source/destination operation,
// following the same rules as WrapOp.
func WrapOp2(op, path, dst string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*OpError); ok {
		return err
	}
	return &OpError{Op: op, Path: path, Dst: dst, Kind: classify(err), Err: err}
}
