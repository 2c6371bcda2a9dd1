//go:build !plan9

// Package errdef aliases platform errors so that callers can match them
// with errors.Is regardless of the platform.
package errdef

import "syscall"

var (
	ELOOP  = syscall.ELOOP
	ENOENT = syscall.ENOENT
)
