package fpath

import (
	"strings"

	"github.com/hhatto/fpath/internal/scan"
)

// IsAbs reports whether p starts with the separator.
func IsAbs(p string) bool {
	return strings.HasPrefix(p, Sep)
}

// Normpath collapses redundant separators and "." components and cancels ".."
// against the preceding component, without consulting the filesystem.
//
// An empty path becomes ".".
// Exactly two leading separators are preserved since POSIX leaves "//"
// implementation-defined; three or more collapse into one.
// A ".." that can't be cancelled is kept for relative paths
// and dropped at the root of absolute paths.
func Normpath(p string) string {
	if p == "" {
		return Curdir
	}

	var initial string
	switch n := scan.LeadingSep(p); {
	case n == 0:
	case n == 2:
		initial = "//"
	default:
		initial = Sep
	}

	comps := make([]string, 0, strings.Count(p, Sep)+1)
	for _, c := range scan.Components(p) {
		switch {
		case c.Name == "" || c.Name == Curdir:
			continue
		case c.Name != Pardir,
			initial == "" && len(comps) == 0,
			len(comps) > 0 && comps[len(comps)-1] == Pardir:
			comps = append(comps, c.Name)
		case len(comps) > 0:
			comps = comps[:len(comps)-1]
		}
	}

	joined := strings.Join(comps, Sep)
	if initial == "" && joined == "" {
		return Curdir
	}
	return initial + joined
}

// Join joins parts onto base.
//
// A part starting with the separator discards everything accumulated so far.
// Otherwise exactly one separator is inserted unless the accumulated path is
// empty or already ends with one. The result is not cleaned.
func Join(base string, parts ...string) string {
	if len(parts) == 0 {
		return base
	}
	size := len(base)
	for _, p := range parts {
		size += len(p) + 1
	}
	var b strings.Builder
	b.Grow(size)
	b.WriteString(base)
	for _, p := range parts {
		switch {
		case IsAbs(p):
			b.Reset()
			b.WriteString(p)
		case b.Len() == 0 || strings.HasSuffix(b.String(), Sep):
			b.WriteString(p)
		default:
			b.WriteString(Sep)
			b.WriteString(p)
		}
	}
	return b.String()
}

// Split splits p immediately after the last separator.
//
// Trailing separators are removed from head unless head is the root,
// i.e. consists only of separators ("/", "//", ...).
// If p has no separator, head is empty.
func Split(p string) (head, tail string) {
	i := scan.LastSep(p) + 1
	head, tail = p[:i], p[i:]
	if head != "" && !scan.AllSep(head) {
		head = strings.TrimRight(head, Sep)
	}
	return head, tail
}

// Dirname returns head of [Split].
func Dirname(p string) string {
	head, _ := Split(p)
	return head
}

// Basename returns tail of [Split].
func Basename(p string) string {
	_, tail := Split(p)
	return tail
}

// Splitext splits p into root and extension where ext starts with the last dot
// of the last component.
//
// Leading dots of the last component are not extension separators:
// ".bashrc" and "..." have no extension.
func Splitext(p string) (root, ext string) {
	sepIdx := scan.LastSep(p)
	dotIdx := scan.LastDot(p)
	if dotIdx > sepIdx {
		for i := sepIdx + 1; i < dotIdx; i++ {
			if p[i] != scan.Dot {
				return p[:dotIdx], p[dotIdx:]
			}
		}
	}
	return p, ""
}
