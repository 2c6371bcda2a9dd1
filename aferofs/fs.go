// Package aferofs runs fpath's filesystem aware functions over an [afero.Fs].
//
// The afero filesystem is seen as a namespace of its own:
// absolute symlink targets are resolved within it, not on the host,
// and relative names are resolved against a working directory inside it.
package aferofs

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/hhatto/fpath"
)

var _ fpath.Fs = (*Fs)(nil)

// Fs adapts afero.Fs to [fpath.Fs].
//
// Relative names are joined onto the working directory of Fs before they reach
// the wrapped Fs; an empty name never exists.
//
// If the wrapped Fs does not implement [afero.Lstater], Lstat falls back to Stat,
// in which case no symlink is ever observed.
// If it does not implement [afero.LinkReader], ReadLink fails with [afero.ErrNoReadlink].
type Fs struct {
	inner afero.Fs
	cwd   string
}

// New returns Fs whose working directory is the root of fsys.
func New(fsys afero.Fs) *Fs {
	return NewAt(fsys, fpath.Sep)
}

// NewAt returns Fs whose working directory is cwd.
// A relative cwd is taken from the root of fsys.
func NewAt(fsys afero.Fs, cwd string) *Fs {
	return &Fs{inner: fsys, cwd: fpath.Normpath(fpath.Join(fpath.Sep, cwd))}
}

// Unwrap returns the wrapped afero.Fs.
func (f *Fs) Unwrap() afero.Fs {
	return f.inner
}

// Getwd returns the working directory of f. It never fails.
func (f *Fs) Getwd() (string, error) {
	return f.cwd, nil
}

func (f *Fs) name(op, name string) (string, error) {
	switch {
	case name == "":
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	case fpath.IsAbs(name):
		return name, nil
	}
	return fpath.Join(f.cwd, name), nil
}

func (f *Fs) Lstat(name string) (fs.FileInfo, error) {
	p, err := f.name("lstat", name)
	if err != nil {
		return nil, err
	}
	if lstater, ok := f.inner.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(p)
		return info, err
	}
	return f.inner.Stat(p)
}

func (f *Fs) ReadLink(name string) (string, error) {
	p, err := f.name("readlink", name)
	if err != nil {
		return "", err
	}
	if reader, ok := f.inner.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(p)
	}
	return "", fpath.WrapPathErr("readlink", name, afero.ErrNoReadlink)
}

func (f *Fs) Stat(name string) (fs.FileInfo, error) {
	p, err := f.name("stat", name)
	if err != nil {
		return nil, err
	}
	return f.inner.Stat(p)
}

func (f *Fs) Create(name string) (afero.File, error) {
	p, err := f.name("open", name)
	if err != nil {
		return nil, err
	}
	return f.inner.Create(p)
}

func (f *Fs) MkdirAll(name string, perm fs.FileMode) error {
	p, err := f.name("mkdir", name)
	if err != nil {
		return err
	}
	return f.inner.MkdirAll(p, perm)
}

// Symlink creates newname as a symlink to oldname
// if the wrapped Fs implements [afero.Linker].
// oldname is stored as it is; only newname is joined onto the working directory.
//
// Note that some implementations, e.g. [*afero.BasePathFs], rewrite oldname.
func (f *Fs) Symlink(oldname, newname string) error {
	p, err := f.name("symlink", newname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: fs.ErrNotExist}
	}
	if linker, ok := f.inner.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, p)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}
