package fpath

import (
	"io/fs"
)

func (r *Resolver) isLink(p string) (bool, error) {
	info, err := r.fsys.Lstat(p)
	if err != nil {
		return false, err
	}
	return info.Mode()&fs.ModeSymlink != 0, nil
}

// Exists reports whether p refers to an existing file, following symlinks.
// It returns false for broken symlinks and on any error.
func (r *Resolver) Exists(p string) bool {
	_, err := r.fsys.Stat(p)
	return err == nil
}

// Lexists is like [Resolver.Exists] but returns true for broken symlinks.
func (r *Resolver) Lexists(p string) bool {
	_, err := r.fsys.Lstat(p)
	return err == nil
}

// Islink reports whether p is a symlink.
func (r *Resolver) Islink(p string) bool {
	isLink, err := r.isLink(p)
	return err == nil && isLink
}

// Isdir reports whether p refers to a directory, following symlinks.
func (r *Resolver) Isdir(p string) bool {
	info, err := r.fsys.Stat(p)
	return err == nil && info.IsDir()
}

// Isfile reports whether p refers to a regular file, following symlinks.
func (r *Resolver) Isfile(p string) bool {
	info, err := r.fsys.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
