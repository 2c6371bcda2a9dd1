//go:build !plan9 && !windows

package fpath

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestQuery(t *testing.T) {
	dir := fs.NewDir(t, "fpath-query",
		fs.WithFile("file", "content"),
		fs.WithDir("dir"),
		fs.WithSymlink("link_file", "file"),
		fs.WithSymlink("link_dir", "dir"),
		fs.WithSymlink("broken", "nonexistent"),
	)

	type testCase struct {
		name                                   string
		exists, lexists, islink, isdir, isfile bool
	}
	for _, tc := range []testCase{
		{"file", true, true, false, false, true},
		{"dir", true, true, false, true, false},
		{"link_file", true, true, true, false, true},
		{"link_dir", true, true, true, true, false},
		{"broken", false, true, true, false, false},
		{"nonexistent", false, false, false, false, false},
		{"file/child", false, false, false, false, false},
	} {
		p := Join(dir.Path(), tc.name)
		assert.Equal(t, Exists(p), tc.exists, "Exists(%q)", tc.name)
		assert.Equal(t, Lexists(p), tc.lexists, "Lexists(%q)", tc.name)
		assert.Equal(t, Islink(p), tc.islink, "Islink(%q)", tc.name)
		assert.Equal(t, Isdir(p), tc.isdir, "Isdir(%q)", tc.name)
		assert.Equal(t, Isfile(p), tc.isfile, "Isfile(%q)", tc.name)
	}
}

func TestNew_defaults(t *testing.T) {
	r := New(nil)
	_, isOs := r.fsys.(OsFs)
	assert.Assert(t, isOs)
	_, isOsEnv := r.env.(OsEnv)
	assert.Assert(t, isOsEnv)
	assert.Assert(t, r.logger != nil)
	assert.Assert(t, Default() == defaultResolver)
}
