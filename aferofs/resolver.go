package aferofs

import (
	"github.com/spf13/afero"

	"github.com/hhatto/fpath"
)

// Env is an [fpath.Env] whose working directory is fixed to Cwd.
// Every other lookup is delegated to the embedded Env.
type Env struct {
	fpath.Env
	Cwd string
}

func (e Env) Getwd() (string, error) {
	return e.Cwd, nil
}

// NewResolver is [NewResolverAt] with the root of fsys as the working directory.
func NewResolver(fsys afero.Fs, opts ...fpath.Option) *fpath.Resolver {
	return NewResolverAt(fsys, fpath.Sep, opts...)
}

// NewResolverAt returns an [*fpath.Resolver] querying fsys.
// Relative paths, both in Abspath and in filesystem queries, are taken
// relative to cwd inside fsys.
//
// opts are applied after the defaults. Replacing the Env through opts moves
// what Abspath sees but not where the filesystem queries look.
func NewResolverAt(fsys afero.Fs, cwd string, opts ...fpath.Option) *fpath.Resolver {
	wrapped := NewAt(fsys, cwd)
	base := []fpath.Option{
		fpath.WithEnv(Env{Env: fpath.OsEnv{}, Cwd: wrapped.cwd}),
		fpath.WithFs(wrapped),
	}
	return fpath.New(append(base, opts...)...)
}
