package fpath

import "errors"

var (
	// ErrNoPath is returned when a path argument that must not be empty is empty.
	ErrNoPath = errors.New("no path specified")
	// ErrMixAbsRel is returned by [Commonpath] when absolute and relative paths are mixed.
	ErrMixAbsRel = errors.New("can't mix absolute and relative paths")
)
