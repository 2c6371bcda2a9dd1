// Package cli implements the fpath command.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/hhatto/fpath"
	"github.com/hhatto/fpath/internal/log"
)

// session carries what PersistentPreRunE sets up to the subcommands.
type session struct {
	logger   *slog.Logger
	resolver *fpath.Resolver
}

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	s := &session{
		logger:   slog.New(slog.DiscardHandler),
		resolver: fpath.Default(),
	}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error). Falls back to $"+log.EnvLevel)
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json). Falls back to $"+log.EnvFormat)

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		envLevel, envFormat := log.FromEnv()
		if !flags.Changed("log_level") && envLevel != "" {
			logLevel = envLevel
		}
		if !flags.Changed("log_format") && envFormat != "" {
			logFormat = envFormat
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		s.logger = slog.New(h)
		s.resolver = fpath.New(fpath.WithLogger(s.logger))

		return nil
	}

	cmd.AddCommand(newPureCmds()...)
	cmd.AddCommand(newResolverCmds(s)...)
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
