package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hhatto/fpath"
)

func newPureCmds() []*cobra.Command {
	perArg := func(use, short string, fn func(string) ([]string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " PATH...",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cc *cobra.Command, args []string) error {
				return eachArg(cc.OutOrStdout(), args, fn)
			},
		}
	}

	cmds := []*cobra.Command{
		perArg("isabs", "Report whether each path is absolute", predicate(fpath.IsAbs)),
		perArg("normpath", "Lexically normalize each path", one(fpath.Normpath)),
		perArg("split", "Split each path into head and tail", pair(fpath.Split)),
		perArg("splitext", "Split each path into root and extension", pair(fpath.Splitext)),
		perArg("dirname", "Print the head of each path", one(fpath.Dirname)),
		perArg("basename", "Print the tail of each path", one(fpath.Basename)),
		{
			Use:   "join BASE [PART...]",
			Short: "Join path components",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cc *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cc.OutOrStdout(), fpath.Join(args[0], args[1:]...))
				return err
			},
		},
		{
			Use:   "commonprefix [PATH...]",
			Short: "Print the longest byte-wise common prefix",
			RunE: func(cc *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cc.OutOrStdout(), fpath.Commonprefix(args...))
				return err
			},
		},
		{
			Use:   "commonpath PATH...",
			Short: "Print the longest common sub-path",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cc *cobra.Command, args []string) error {
				out, err := fpath.Commonpath(args...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cc.OutOrStdout(), out)
				return err
			},
		},
	}
	return cmds
}

func newResolverCmds(s *session) []*cobra.Command {
	perArg := func(use, short string, fn func(r *fpath.Resolver) func(string) ([]string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " PATH...",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cc *cobra.Command, args []string) error {
				return eachArg(cc.OutOrStdout(), args, fn(s.resolver))
			},
		}
	}

	abspath := perArg("abspath", "Make each path absolute against the working directory",
		func(r *fpath.Resolver) func(string) ([]string, error) { return oneErr(r.Abspath) })
	exists := perArg("exists", "Report whether each path exists, following symlinks",
		func(r *fpath.Resolver) func(string) ([]string, error) { return predicate(r.Exists) })
	lexists := perArg("lexists", "Report whether each path exists, not following symlinks",
		func(r *fpath.Resolver) func(string) ([]string, error) { return predicate(r.Lexists) })
	isdir := perArg("isdir", "Report whether each path is a directory, following symlinks",
		func(r *fpath.Resolver) func(string) ([]string, error) { return predicate(r.Isdir) })
	isfile := perArg("isfile", "Report whether each path is a regular file, following symlinks",
		func(r *fpath.Resolver) func(string) ([]string, error) { return predicate(r.Isfile) })
	islink := perArg("islink", "Report whether each path is a symbolic link",
		func(r *fpath.Resolver) func(string) ([]string, error) { return predicate(r.Islink) })
	expanduser := perArg("expanduser", "Expand a leading ~ or ~user",
		func(r *fpath.Resolver) func(string) ([]string, error) { return one(r.Expanduser) })
	expandvars := perArg("expandvars", "Substitute $name and ${name} from the environment",
		func(r *fpath.Resolver) func(string) ([]string, error) { return one(r.Expandvars) })

	return []*cobra.Command{
		abspath,
		newRelpathCmd(s),
		newRealpathCmd(s),
		exists,
		lexists,
		isdir,
		isfile,
		islink,
		expanduser,
		expandvars,
	}
}

func newRelpathCmd(s *session) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "relpath PATH...",
		Short: "Print each path relative to a start directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return eachArg(cc.OutOrStdout(), args, oneErr(func(p string) (string, error) {
				return s.resolver.Relpath(p, start)
			}))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Directory to compute the relative path from (default: working directory)")
	return cmd
}

func newRealpathCmd(s *session) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "realpath PATH...",
		Short: "Print the canonical absolute path with symlinks resolved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return eachArg(cc.OutOrStdout(), args, oneErr(func(p string) (string, error) {
				return s.resolver.Realpath(p, strict)
			}))
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on missing components and symlink loops")
	return cmd
}
