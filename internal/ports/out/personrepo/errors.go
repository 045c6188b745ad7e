package personrepo

import "errors"

// ErrNotFound indicates the requested person record does not exist.
var ErrNotFound = errors.New("person not found")
