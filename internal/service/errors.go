package service

import "errors"

var (
	// ErrTitleNotFound is returned when a node ID does not resolve to a
	// movie or show.
	ErrTitleNotFound = errors.New("title not found")
)
