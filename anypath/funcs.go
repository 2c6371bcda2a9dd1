package anypath

import (
	"github.com/hhatto/fpath"
)

func apply(p any, fn func(string) string) (any, error) {
	v, err := FromAny(p)
	if err != nil {
		return nil, err
	}
	return v.Flavor.wrap(fn(v.Path)), nil
}

func applyErr(p any, fn func(string) (string, error)) (any, error) {
	v, err := FromAny(p)
	if err != nil {
		return nil, err
	}
	out, err := fn(v.Path)
	if err != nil {
		return nil, err
	}
	return v.Flavor.wrap(out), nil
}

func applyPair(p any, fn func(string) (string, string)) (any, any, error) {
	v, err := FromAny(p)
	if err != nil {
		return nil, nil, err
	}
	a, b := fn(v.Path)
	return v.Flavor.wrap(a), v.Flavor.wrap(b), nil
}

func applyBool(p any, fn func(string) bool) (bool, error) {
	v, err := FromAny(p)
	if err != nil {
		return false, err
	}
	return fn(v.Path), nil
}

func IsAbs(p any) (bool, error) { return applyBool(p, fpath.IsAbs) }

func Normpath(p any) (any, error) { return apply(p, fpath.Normpath) }

func Dirname(p any) (any, error) { return apply(p, fpath.Dirname) }

func Basename(p any) (any, error) { return apply(p, fpath.Basename) }

func Split(p any) (head, tail any, err error) { return applyPair(p, fpath.Split) }

func Splitext(p any) (root, ext any, err error) { return applyPair(p, fpath.Splitext) }

// Join joins parts onto p. All arguments must share one flavor.
// With no parts, p is returned as it is.
func Join(p any, parts ...any) (any, error) {
	vals, err := fromAll(append([]any{p}, parts...)...)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return p, nil
	}
	strs := make([]string, len(parts))
	for i, v := range vals[1:] {
		strs[i] = v.Path
	}
	return vals[0].Flavor.wrap(fpath.Join(vals[0].Path, strs...)), nil
}

// joinAll converts paths sharing one flavor into strings.
// An empty paths is Text.
func joinAll(paths []any) ([]string, Flavor, error) {
	vals, err := fromAll(paths...)
	if err != nil {
		return nil, Text, err
	}
	if len(vals) == 0 {
		return nil, Text, nil
	}
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.Path
	}
	return strs, vals[0].Flavor, nil
}

// Commonprefix is like [fpath.Commonprefix]. With no paths it returns "".
func Commonprefix(paths ...any) (any, error) {
	strs, flavor, err := joinAll(paths)
	if err != nil {
		return nil, err
	}
	return flavor.wrap(fpath.Commonprefix(strs...)), nil
}

// Commonpath is like [fpath.Commonpath].
func Commonpath(paths ...any) (any, error) {
	strs, flavor, err := joinAll(paths)
	if err != nil {
		return nil, err
	}
	out, err := fpath.Commonpath(strs...)
	if err != nil {
		return nil, err
	}
	return flavor.wrap(out), nil
}

// Resolver wraps [*fpath.Resolver] for mixed representations.
type Resolver struct {
	r *fpath.Resolver
}

// NewResolver wraps r. A nil r means [fpath.Default].
func NewResolver(r *fpath.Resolver) *Resolver {
	if r == nil {
		r = fpath.Default()
	}
	return &Resolver{r: r}
}

var defaultResolver = NewResolver(nil)

func (r *Resolver) Abspath(p any) (any, error) { return applyErr(p, r.r.Abspath) }

// Relpath is like [fpath.Resolver.Relpath]. A nil start means the working directory.
func (r *Resolver) Relpath(p, start any) (any, error) {
	if start == nil {
		v, err := FromAny(p)
		if err != nil {
			return nil, err
		}
		start = v.Flavor.wrap(fpath.Curdir)
	}
	vals, err := fromAll(p, start)
	if err != nil {
		return nil, err
	}
	out, err := r.r.Relpath(vals[0].Path, vals[1].Path)
	if err != nil {
		return nil, err
	}
	return vals[0].Flavor.wrap(out), nil
}

func (r *Resolver) Realpath(p any, strict bool) (any, error) {
	return applyErr(p, func(s string) (string, error) { return r.r.Realpath(s, strict) })
}

func (r *Resolver) Exists(p any) (bool, error) { return applyBool(p, r.r.Exists) }

func (r *Resolver) Lexists(p any) (bool, error) { return applyBool(p, r.r.Lexists) }

func (r *Resolver) Islink(p any) (bool, error) { return applyBool(p, r.r.Islink) }

func (r *Resolver) Isdir(p any) (bool, error) { return applyBool(p, r.r.Isdir) }

func (r *Resolver) Isfile(p any) (bool, error) { return applyBool(p, r.r.Isfile) }

func (r *Resolver) Expanduser(p any) (any, error) { return apply(p, r.r.Expanduser) }

func (r *Resolver) Expandvars(p any) (any, error) { return apply(p, r.r.Expandvars) }

func Abspath(p any) (any, error) { return defaultResolver.Abspath(p) }

func Relpath(p, start any) (any, error) { return defaultResolver.Relpath(p, start) }

func Realpath(p any, strict bool) (any, error) { return defaultResolver.Realpath(p, strict) }

func Exists(p any) (bool, error) { return defaultResolver.Exists(p) }

func Lexists(p any) (bool, error) { return defaultResolver.Lexists(p) }

func Islink(p any) (bool, error) { return defaultResolver.Islink(p) }

func Isdir(p any) (bool, error) { return defaultResolver.Isdir(p) }

func Isfile(p any) (bool, error) { return defaultResolver.Isfile(p) }

func Expanduser(p any) (any, error) { return defaultResolver.Expanduser(p) }

func Expandvars(p any) (any, error) { return defaultResolver.Expandvars(p) }
