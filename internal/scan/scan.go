// Package scan defines byte level helpers shared by path algebra.
//
// Every function treats its input as an opaque byte string;
// no UTF-8 validity is assumed.
package scan

import (
	"iter"
	"strings"
)

const (
	Sep = '/'
	Dot = '.'
)

// LastSep returns the index of the last separator in p, or -1.
func LastSep(p string) int {
	return strings.LastIndexByte(p, Sep)
}

// LastDot returns the index of the last '.' in p, or -1.
func LastDot(p string) int {
	return strings.LastIndexByte(p, Dot)
}

// FirstSepFrom returns the index of the first separator in p at or after from.
// It returns -1 if there's none.
func FirstSepFrom(p string, from int) int {
	if from >= len(p) {
		return -1
	}
	i := strings.IndexByte(p[from:], Sep)
	if i < 0 {
		return -1
	}
	return from + i
}

// Partition cuts s around the first separator.
// If s has no separator, head is s and rest is empty.
func Partition(s string) (head, rest string) {
	head, rest, _ = strings.Cut(s, string(Sep))
	return head, rest
}

// AllSep reports whether s is non-empty and consists only of separators.
func AllSep(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != Sep {
			return false
		}
	}
	return true
}

// LeadingSep returns number of consecutive separators at the head of s.
func LeadingSep(s string) int {
	i := 0
	for i < len(s) && s[i] == Sep {
		i++
	}
	return i
}

// Component is a piece of path between separators.
// Offsets are byte offsets into the scanned path;
// OffsetEnd points one past the trailing separator, if any.
type Component struct {
	Name        string
	OffsetStart int
	OffsetEnd   int
}

// Components yields every component of p including empty ones,
// e.g. "/a//b" yields "", "a", "", "b".
func Components(p string) iter.Seq2[int, Component] {
	return func(yield func(int, Component) bool) {
		i := 0
		off := 0
		offNext := 0
		for s := range strings.SplitSeq(p, string(Sep)) {
			offNext += len(s) + 1
			if !yield(i, Component{s, off, min(offNext, len(p))}) {
				return
			}
			i++
			off = offNext
		}
	}
}

// NonEmpty yields only the non-empty components of p.
func NonEmpty(p string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range Components(p) {
			if c.Name == "" {
				continue
			}
			if !yield(c.Name) {
				return
			}
		}
	}
}
