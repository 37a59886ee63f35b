package fsutil

// Must unwraps a value-returning operation, panicking with the error (a
// structured *core.OpError for operations in this module) when it failed.
// It is intended for script-style callers and package initialization:
//
//	removed := fsutil.Must(fsutil.RemoveAll(ctx, fsys, "scratch"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must0 is Must for operations that return only an error.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}
