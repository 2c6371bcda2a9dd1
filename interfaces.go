package fpath

import (
	"io/fs"
)

type LstatFs interface {
	Lstat(name string) (fs.FileInfo, error)
}

type ReadLinkFs interface {
	ReadLink(name string) (string, error)
}

type StatFs interface {
	Stat(name string) (fs.FileInfo, error)
}

// Fs is the filesystem capability the [Resolver] queries.
//
// Names are passed verbatim, exactly as the path algebra built them;
// an implementation must not clean or otherwise rewrite them.
// Lstat must not follow a symlink at name, Stat must.
type Fs interface {
	LstatFs
	ReadLinkFs
	StatFs
}
