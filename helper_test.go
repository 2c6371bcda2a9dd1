package fpath

import (
	"errors"
	"io/fs"
	"os/user"
	"time"

	"github.com/hhatto/fpath/errdef"
)

type fakeEnv struct {
	vars   map[string]string
	cwd    string
	cwdErr error
	home   string // home of current user in the user database
	users  map[string]string
}

func (e fakeEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

func (e fakeEnv) Getwd() (string, error) {
	if e.cwdErr != nil {
		return "", e.cwdErr
	}
	return e.cwd, nil
}

func (e fakeEnv) CurrentUserHome() (string, error) {
	if e.home == "" {
		return "", errors.New("no current user")
	}
	return e.home, nil
}

func (e fakeEnv) UserHome(name string) (string, error) {
	home, ok := e.users[name]
	if !ok {
		return "", user.UnknownUserError(name)
	}
	return home, nil
}

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return i.mode }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fakeInfo) Sys() any           { return nil }

// mapFs is an in-memory Fs keyed by the exact names the resolver asks for.
// Names not in the maps do not exist.
type mapFs struct {
	dirs        map[string]bool
	links       map[string]string
	readLinkErr map[string]error
	calls       []string
}

func (m *mapFs) Lstat(name string) (fs.FileInfo, error) {
	m.calls = append(m.calls, "lstat "+name)
	if _, ok := m.links[name]; ok {
		return fakeInfo{Basename(name), fs.ModeSymlink}, nil
	}
	if m.dirs[name] {
		return fakeInfo{Basename(name), fs.ModeDir}, nil
	}
	return nil, &fs.PathError{Op: "lstat", Path: name, Err: errdef.ENOENT}
}

func (m *mapFs) ReadLink(name string) (string, error) {
	m.calls = append(m.calls, "readlink "+name)
	if err := m.readLinkErr[name]; err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: err}
	}
	target, ok := m.links[name]
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errdef.ENOENT}
	}
	return target, nil
}

// Stat never follows a link more than once; any link reached twice is a loop.
func (m *mapFs) Stat(name string) (fs.FileInfo, error) {
	m.calls = append(m.calls, "stat "+name)
	if _, ok := m.links[name]; ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: errdef.ELOOP}
	}
	return m.Lstat(name)
}
