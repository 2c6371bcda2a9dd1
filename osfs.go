package fpath

import (
	"io/fs"
	"os"
)

var _ Fs = OsFs{}

// OsFs is the [Fs] backed by the os package.
// Relative names are resolved against the process working directory.
type OsFs struct{}

func (OsFs) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (OsFs) ReadLink(name string) (string, error) {
	return os.Readlink(name)
}

func (OsFs) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
