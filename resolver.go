package fpath

import (
	"log/slog"
)

// Resolver evaluates paths against a filesystem and a process environment.
//
// A Resolver is immutable once built and is safe for concurrent use.
// It holds no cache; every call starts from scratch.
type Resolver struct {
	fsys   Fs
	env    Env
	logger *slog.Logger
}

type Option interface {
	apply(*Resolver)
}

type optionFs [1]Fs

func (o optionFs) apply(r *Resolver) {
	r.fsys = o[0]
}

// WithFs sets the filesystem the Resolver queries. The default is [OsFs].
func WithFs(fsys Fs) Option {
	return optionFs{fsys}
}

type optionEnv [1]Env

func (o optionEnv) apply(r *Resolver) {
	r.env = o[0]
}

// WithEnv sets the environment used for the working directory, environment
// variables and user database lookups. The default is [OsEnv].
func WithEnv(env Env) Option {
	return optionEnv{env}
}

type optionLogger [1]*slog.Logger

func (o optionLogger) apply(r *Resolver) {
	r.logger = o[0]
}

// WithLogger sets the logger for debug events of symlink resolution.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return optionLogger{logger}
}

// New returns a Resolver configured by opts.
// Nil values in opts are ignored.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}
	if r.fsys == nil {
		r.fsys = OsFs{}
	}
	if r.env == nil {
		r.env = OsEnv{}
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

var defaultResolver = New()

// Default returns the Resolver used by package level functions.
func Default() *Resolver {
	return defaultResolver
}

// Abspath calls [Resolver.Abspath] of [Default].
func Abspath(p string) (string, error) {
	return defaultResolver.Abspath(p)
}

// Relpath calls [Resolver.Relpath] of [Default].
func Relpath(p, start string) (string, error) {
	return defaultResolver.Relpath(p, start)
}

// Realpath calls [Resolver.Realpath] of [Default].
func Realpath(p string, strict bool) (string, error) {
	return defaultResolver.Realpath(p, strict)
}

// Exists calls [Resolver.Exists] of [Default].
func Exists(p string) bool {
	return defaultResolver.Exists(p)
}

// Lexists calls [Resolver.Lexists] of [Default].
func Lexists(p string) bool {
	return defaultResolver.Lexists(p)
}

// Islink calls [Resolver.Islink] of [Default].
func Islink(p string) bool {
	return defaultResolver.Islink(p)
}

// Isdir calls [Resolver.Isdir] of [Default].
func Isdir(p string) bool {
	return defaultResolver.Isdir(p)
}

// Isfile calls [Resolver.Isfile] of [Default].
func Isfile(p string) bool {
	return defaultResolver.Isfile(p)
}

// Expanduser calls [Resolver.Expanduser] of [Default].
func Expanduser(p string) string {
	return defaultResolver.Expanduser(p)
}

// Expandvars calls [Resolver.Expandvars] of [Default].
func Expandvars(p string) string {
	return defaultResolver.Expandvars(p)
}
