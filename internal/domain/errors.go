package domain

import "errors"

// ErrNotFound is returned by repositories when the requested row does not
// exist (or was soft-deleted).
var ErrNotFound = errors.New("record not found")
