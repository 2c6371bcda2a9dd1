package fpath

import (
	"regexp"
	"strings"

	"github.com/hhatto/fpath/internal/scan"
)

// Expanduser replaces a leading "~" or "~user" component of p with the home directory.
//
// A bare "~" uses $HOME and falls back to the user database.
// "~user" is always looked up in the user database.
// p is returned unchanged if it does not start with "~"
// or if the home directory can not be determined.
func (r *Resolver) Expanduser(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}

	i := scan.FirstSepFrom(p, 1)
	if i < 0 {
		i = len(p)
	}

	var (
		home string
		err  error
	)
	if i == 1 {
		var ok bool
		home, ok = r.env.LookupEnv("HOME")
		if !ok {
			home, err = r.env.CurrentUserHome()
		}
	} else {
		home, err = r.env.UserHome(p[1:i])
	}
	if err != nil {
		r.logger.Debug("home directory lookup failed", "path", p, "err", err)
		return p
	}

	home = strings.TrimRight(home, Sep)
	if expanded := home + p[i:]; expanded != "" {
		return expanded
	}
	return Sep
}

var varPattern = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)

// Expandvars substitutes $name and ${name} in p with values of environment variables.
//
// name is made of ASCII letters, digits and underscores in the bare form,
// and of anything but "}" in the braced form.
// References to unset variables are left untouched.
func (r *Resolver) Expandvars(p string) string {
	if !strings.Contains(p, "$") {
		return p
	}

	var b strings.Builder
	last := 0
	for _, loc := range varPattern.FindAllStringSubmatchIndex(p, -1) {
		name := p[loc[2]:loc[3]]
		if strings.HasPrefix(name, "{") && strings.HasSuffix(name, "}") {
			name = name[1 : len(name)-1]
		}
		value, ok := r.env.LookupEnv(name)
		if !ok {
			continue
		}
		b.WriteString(p[last:loc[0]])
		b.WriteString(value)
		last = loc[1]
	}
	if last == 0 {
		return p
	}
	b.WriteString(p[last:])
	return b.String()
}
