// Package testhelper builds directory trees for tests from one-line directions.
//
// Each line is one of
//
//	dir/                  # mkdir -p
//	dir/file: content     # write file, content may be a Go quoted string
//	dir/link -> target    # symlink, target is stored verbatim
package testhelper

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type LineKind string

const (
	LineKindMkdir     LineKind = "mkdir"
	LineKindWriteFile LineKind = "write_file"
	LineKindSymlink   LineKind = "symlink"
)

type LineDirection struct {
	LineKind   LineKind
	Path       string
	TargetPath string // for symlink target
	Content    []byte // for write file content
}

// ParseLine parses txt. The returned LineKind is empty if txt is malformed.
func ParseLine(txt string) LineDirection {
	switch {
	case strings.Contains(txt, " -> "):
		path, target, _ := strings.Cut(txt, " -> ")
		return LineDirection{
			LineKind:   LineKindSymlink,
			Path:       path,
			TargetPath: target,
		}
	case strings.Contains(txt, ": "):
		path, content, _ := strings.Cut(txt, ": ")
		if strings.HasPrefix(content, `"`) || strings.HasPrefix(content, "`") {
			unquoted, err := strconv.Unquote(content)
			if err != nil {
				return LineDirection{}
			}
			content = unquoted
		}
		return LineDirection{
			LineKind: LineKindWriteFile,
			Path:     path,
			Content:  []byte(content),
		}
	case strings.HasSuffix(txt, "/"):
		return LineDirection{
			LineKind: LineKindMkdir,
			Path:     strings.TrimSuffix(txt, "/"),
		}
	}
	return LineDirection{}
}

// ExecuteLines executes lines under baseDir on the os filesystem.
// Parent directories are created as needed.
func ExecuteLines(baseDir string, lines ...string) error {
	for _, line := range lines {
		l := ParseLine(line)
		if l.LineKind == "" {
			return fmt.Errorf("unknown line %q", line)
		}
		if err := l.ExecuteOs(baseDir); err != nil {
			return err
		}
	}
	return nil
}

// MustExecuteLines is like [ExecuteLines] but fails t on error.
func MustExecuteLines(t testing.TB, baseDir string, lines ...string) {
	t.Helper()
	if err := ExecuteLines(baseDir, lines...); err != nil {
		t.Fatalf("preparing %s: %v", baseDir, err)
	}
}

func (l LineDirection) ExecuteOs(baseDir string) error {
	path := filepath.Join(baseDir, filepath.FromSlash(l.Path))
	switch l.LineKind {
	default:
		return nil
	case LineKindMkdir:
		return os.MkdirAll(path, fs.ModePerm)
	case LineKindWriteFile:
		if err := os.MkdirAll(filepath.Dir(path), fs.ModePerm); err != nil {
			return err
		}
		return os.WriteFile(path, l.Content, 0o644)
	case LineKindSymlink:
		if err := os.MkdirAll(filepath.Dir(path), fs.ModePerm); err != nil {
			return err
		}
		return os.Symlink(l.TargetPath, path)
	}
}

type PrepareFsysFile interface {
	io.Writer
	io.Closer
}

// PrepareFsys is a filesystem a LineDirection can be executed on.
type PrepareFsys[File PrepareFsysFile] interface {
	Create(path string) (File, error)
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
}

// ExecuteLinesFsys executes lines on fsys. Paths are passed to fsys as they are written.
func ExecuteLinesFsys[Fsys PrepareFsys[File], File PrepareFsysFile](fsys Fsys, lines ...string) error {
	for _, line := range lines {
		l := ParseLine(line)
		if l.LineKind == "" {
			return fmt.Errorf("unknown line %q", line)
		}
		if err := ExecuteLineDirection(fsys, l); err != nil {
			return err
		}
	}
	return nil
}

func ExecuteLineDirection[Fsys PrepareFsys[File], File PrepareFsysFile](fsys Fsys, l LineDirection) error {
	switch l.LineKind {
	default:
		return nil
	case LineKindMkdir:
		return fsys.MkdirAll(l.Path, fs.ModePerm)
	case LineKindWriteFile:
		if err := fsys.MkdirAll(dir(l.Path), fs.ModePerm); err != nil {
			return err
		}
		f, err := fsys.Create(l.Path)
		if err != nil {
			return err
		}
		_, err = f.Write(l.Content)
		_ = f.Close()
		return err
	case LineKindSymlink:
		if err := fsys.MkdirAll(dir(l.Path), fs.ModePerm); err != nil {
			return err
		}
		return fsys.Symlink(l.TargetPath, l.Path)
	}
}

func dir(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i <= 0 {
		if i == 0 {
			return "/"
		}
		return "."
	}
	return p[:i]
}
