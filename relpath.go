package fpath

import (
	"slices"
	"strings"

	"github.com/hhatto/fpath/internal/scan"
)

// Relpath returns a relative path that leads from start to p.
// An empty start means the working directory.
//
// Both paths are made absolute by [Resolver.Abspath] first,
// so the filesystem is never consulted but the working directory may be.
// It returns [ErrNoPath] if p is empty.
func (r *Resolver) Relpath(p, start string) (string, error) {
	if p == "" {
		return "", ErrNoPath
	}
	if start == "" {
		start = Curdir
	}

	absStart, err := r.Abspath(start)
	if err != nil {
		return "", err
	}
	absPath, err := r.Abspath(p)
	if err != nil {
		return "", err
	}

	startList := slices.Collect(scan.NonEmpty(absStart))
	pathList := slices.Collect(scan.NonEmpty(absPath))

	i := commonPrefixLen(startList, pathList)

	relList := make([]string, 0, len(startList)-i+len(pathList)-i)
	for range len(startList) - i {
		relList = append(relList, Pardir)
	}
	relList = append(relList, pathList[i:]...)

	if len(relList) == 0 {
		return Curdir, nil
	}
	return Join(relList[0], relList[1:]...), nil
}

// Commonprefix returns the longest byte-wise common prefix of list.
// The result may not be a valid path; see [Commonpath] for a component-wise variant.
func Commonprefix(list ...string) string {
	if len(list) == 0 {
		return ""
	}
	s1, s2 := slices.Min(list), slices.Max(list)
	return s1[:commonPrefixLen([]byte(s1), []byte(s2))]
}

// Commonpath returns the longest common sub-path of paths, compared component by component.
//
// It returns [ErrNoPath] if paths is empty and [ErrMixAbsRel]
// if absolute and relative paths are mixed.
func Commonpath(paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", ErrNoPath
	}

	abs := IsAbs(paths[0])
	splitPaths := make([][]string, len(paths))
	for i, p := range paths {
		if IsAbs(p) != abs {
			return "", ErrMixAbsRel
		}
		var comps []string
		for c := range scan.NonEmpty(p) {
			if c != Curdir {
				comps = append(comps, c)
			}
		}
		splitPaths[i] = comps
	}

	s1 := slices.MinFunc(splitPaths, slices.Compare[[]string])
	s2 := slices.MaxFunc(splitPaths, slices.Compare[[]string])
	common := s1[:commonPrefixLen(s1, s2)]

	var prefix string
	if abs {
		prefix = Sep
	}
	return prefix + strings.Join(common, Sep), nil
}

// commonPrefixLen returns the number of leading elements s1 and s2 share.
func commonPrefixLen[E comparable](s1, s2 []E) int {
	n := min(len(s1), len(s2))
	for i := range n {
		if s1[i] != s2[i] {
			return i
		}
	}
	return n
}
