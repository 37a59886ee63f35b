package core

import (
	"errors"
	"syscall"
)

// Kind identifies a classified filesystem error condition.
// Kinds are string-based for debuggability and natural log output.
type Kind string

const (
	// KindNotFound indicates the named entry does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindAlreadyExists indicates the destination entry is already occupied.
	KindAlreadyExists Kind = "ALREADY_EXISTS"

	// KindNotDir indicates a path component or listing target is not a
	// directory.
	KindNotDir Kind = "NOT_A_DIRECTORY"

	// KindIsDir indicates a directory was found where a file was required.
	KindIsDir Kind = "IS_A_DIRECTORY"

	// KindPermission indicates the operation was denied by permissions.
	KindPermission Kind = "PERMISSION_DENIED"

	// KindNoSpace indicates the underlying device is out of space.
	KindNoSpace Kind = "NO_SPACE"

	// KindInvalidName indicates the supplied path is malformed or too long.
	KindInvalidName Kind = "INVALID_NAME"

	// KindUnsupported indicates the provider does not implement the
	// operation.
	KindUnsupported Kind = "UNSUPPORTED"

	// KindUnknown indicates an unclassified error.
	KindUnknown Kind = "UNKNOWN"
)

// KindOf classifies an error chain into a Kind.
//
// An *OpError anywhere in the chain wins, so classification survives
// wrapping. Otherwise the io/fs sentinels and the common syscall errnos are
// consulted. A nil error classifies as KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return classify(err)
}

// classify maps a raw provider or OS error to a Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrNotExist):
		return KindNotFound
	case errors.Is(err, ErrExist):
		return KindAlreadyExists
	case errors.Is(err, ErrPermission):
		return KindPermission
	case errors.Is(err, ErrUnsupported), errors.Is(err, errors.ErrUnsupported):
		return KindUnsupported
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOTDIR:
			return KindNotDir
		case syscall.EISDIR:
			return KindIsDir
		case syscall.ENOSPC:
			return KindNoSpace
		case syscall.EINVAL, syscall.ENAMETOOLONG:
			return KindInvalidName
		}
	}
	return KindUnknown
}

// IsNotFound reports whether err classifies as KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsAlreadyExists reports whether err classifies as KindAlreadyExists.
func IsAlreadyExists(err error) bool {
	return err != nil && KindOf(err) == KindAlreadyExists
}

// IsNotDir reports whether err classifies as KindNotDir.
func IsNotDir(err error) bool {
	return err != nil && KindOf(err) == KindNotDir
}

// IsPermission reports whether err classifies as KindPermission.
func IsPermission(err error) bool {
	return err != nil && KindOf(err) == KindPermission
}

// IsUnsupported reports whether err classifies as KindUnsupported.
func IsUnsupported(err error) bool {
	return err != nil && KindOf(err) == KindUnsupported
}
