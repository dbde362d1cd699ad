package service

import "errors"

// ErrNotFound is returned when the CMS has no post for the requested slug.
var ErrNotFound = errors.New("post not found")
