// Package fpath implements POSIX path manipulation: lexical algebra over
// slash separated byte strings (Join, Split, Normpath, Relpath...) and
// symlink aware canonicalization (Realpath).
//
// Unlike [path/filepath], no function here cleans its result unless asked to:
// Join("a/", "b/") is "a/b/", Normpath keeps exactly two leading slashes,
// and Split keeps the root of "//a" as "//".
//
// Functions that touch the filesystem or process environment are methods of
// [*Resolver]. Package level variants use a Resolver bound to the os
// filesystem and the process environment.
package fpath

const (
	Sep     = "/"
	Curdir  = "."
	Pardir  = ".."
	Extsep  = "."
	Pathsep = ":"
	Defpath = "/bin:/usr/bin"
	Devnull = "/dev/null"
)
