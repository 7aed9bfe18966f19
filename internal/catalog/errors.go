package catalog

import "errors"

// ErrNotFound indicates the requested tool does not exist in the catalog.
var ErrNotFound = errors.New("tool not found")
