package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ngicks/go-common/serr"
)

// eachArg runs fn for every argument, printing one line of output per success.
// Failed arguments are reported together once all of them have been tried.
func eachArg(w io.Writer, args []string, fn func(arg string) ([]string, error)) error {
	var errs []serr.PrefixErr
	for _, arg := range args {
		fields, err := fn(arg)
		if err != nil {
			errs = append(errs, serr.PrefixErr{
				P: fmt.Sprintf("%q: ", arg),
				E: err,
			})
			continue
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return serr.GatherPrefixed(errs)
}

func one(fn func(string) string) func(string) ([]string, error) {
	return func(arg string) ([]string, error) {
		return []string{fn(arg)}, nil
	}
}

func pair(fn func(string) (string, string)) func(string) ([]string, error) {
	return func(arg string) ([]string, error) {
		a, b := fn(arg)
		return []string{a, b}, nil
	}
}

func oneErr(fn func(string) (string, error)) func(string) ([]string, error) {
	return func(arg string) ([]string, error) {
		out, err := fn(arg)
		if err != nil {
			return nil, err
		}
		return []string{out}, nil
	}
}

func predicate(fn func(string) bool) func(string) ([]string, error) {
	return func(arg string) ([]string, error) {
		return []string{fmt.Sprint(fn(arg))}, nil
	}
}
