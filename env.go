package fpath

import (
	"os"
	"os/user"
)

// Env is the process environment as seen by the [Resolver].
// All lookups are read-only.
type Env interface {
	LookupEnv(key string) (string, bool)
	// Getwd returns the current working directory as an absolute path.
	Getwd() (string, error)
	// CurrentUserHome returns the home directory of the current user
	// from the user database, ignoring $HOME.
	CurrentUserHome() (string, error)
	// UserHome returns the home directory of the named user from the user database.
	UserHome(name string) (string, error)
}

var _ Env = OsEnv{}

// OsEnv is the [Env] of the running process.
type OsEnv struct{}

func (OsEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OsEnv) Getwd() (string, error) {
	return os.Getwd()
}

func (OsEnv) CurrentUserHome() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

func (OsEnv) UserHome(name string) (string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
