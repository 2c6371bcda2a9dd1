package fpath

import (
	"maps"

	"github.com/hhatto/fpath/errdef"
	"github.com/hhatto/fpath/internal/scan"
)

// resolution is a state of a symlink in seenCache.
// A link absent from the cache has not been visited yet.
// A link present with done == false is being resolved somewhere up in the call stack.
type resolution struct {
	done bool
	path string
}

type seenCache map[string]resolution

// Realpath returns the canonical path of p, eliminating symlinks, "." and ".." components.
//
// In lenient mode (strict == false) missing components are kept as they are,
// and a symlink loop stops the resolution early: the returned path then still
// contains the symlink that closed the loop, followed by the unresolved remainder.
// The only error reported in lenient mode comes from [Resolver.Abspath].
//
// In strict mode any failure of querying the filesystem is returned.
// An error for a missing component satisfies errors.Is(err, fs.ErrNotExist),
// and one for a symlink loop satisfies errors.Is(err, [errdef.ELOOP]).
func (r *Resolver) Realpath(p string, strict bool) (string, error) {
	resolved, _, err := r.joinRealpath("", p, strict, seenCache{})
	if err != nil {
		return "", err
	}
	return r.Abspath(resolved)
}

// joinRealpath joins rest onto base, which must already be canonical,
// resolving every symlink it encounters.
//
// ok is false if a loop was found. In that case the returned path is
// the best-effort concatenation of what has been resolved and what has not.
//
// seen is cloned, not shared: what a recursive call learns never leaks
// to siblings resolved by the caller.
func (r *Resolver) joinRealpath(base, rest string, strict bool, seen seenCache) (resolved string, ok bool, err error) {
	seen = maps.Clone(seen)

	if IsAbs(rest) {
		rest = rest[1:]
		base = Sep
	}

	for rest != "" {
		var name string
		name, rest = scan.Partition(rest)

		if name == "" || name == Curdir {
			continue
		}

		if name == Pardir {
			if base == "" {
				base = Pardir
				continue
			}
			var popped string
			base, popped = Split(base)
			if popped == Pardir {
				// can't cancel a ".." which is not resolvable.
				base = Join(base, Pardir, Pardir)
			}
			continue
		}

		candidate := Join(base, name)

		isLink, err := r.isLink(candidate)
		if err != nil {
			if strict {
				return "", false, err
			}
			isLink = false
		}
		if !isLink {
			base = candidate
			continue
		}

		if res, found := seen[candidate]; found {
			if res.done {
				r.logger.Debug("reusing resolved symlink", "link", candidate, "resolved", res.path)
				base = res.path
				continue
			}
			r.logger.Debug("symlink loop detected", "link", candidate, "rest", rest)
			if strict {
				if _, err := r.fsys.Stat(candidate); err != nil {
					return "", false, err
				}
				return "", false, WrapPathErr("stat", candidate, errdef.ELOOP)
			}
			return Join(candidate, rest), false, nil
		}

		target, err := r.fsys.ReadLink(candidate)
		if err != nil {
			if strict {
				return "", false, err
			}
			// Lstat said it was a link but it's gone or replaced; take it as is.
			base = candidate
			continue
		}

		r.logger.Debug("following symlink", "link", candidate, "target", target)

		seen[candidate] = resolution{}
		base, ok, err = r.joinRealpath(base, target, strict, seen)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return Join(base, rest), false, nil
		}
		seen[candidate] = resolution{done: true, path: base}
	}

	return base, true, nil
}
