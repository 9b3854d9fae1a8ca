package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown usernames and bad passwords
// so login failures don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ReferenceNotFoundError means a meal submission pointed at an
// ingredient id that does not exist. Client input, not a server fault.
type ReferenceNotFoundError struct {
	ID string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("ingredient %q does not exist", e.ID)
}

// InvalidReferenceError means an ingredient reference was neither an id
// string nor a well-formed ingredient payload.
type InvalidReferenceError struct {
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return "invalid ingredient reference: " + e.Reason
}

// StorageError wraps an unexpected storage-layer failure. The driver
// error stays wrapped for logs; callers surface a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
