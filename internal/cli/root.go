// Package cli implements the marbles command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/marbles/internal/config"
	"github.com/zoobzio/marbles/internal/logger"
)

// RootOptions holds global flags for all commands, and the configuration
// and logger they resolve to.
type RootOptions struct {
	ConfigPath string
	Format     string
	Width      int
	Verbose    bool

	cfg *config.Config
	log logger.Logger
}

// NewRootCommand creates the root command for the marbles CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "marbles",
		Short: "Marble diagram sandbox for reactive operators",
		Long: `Compute how reactive-stream operators transform marble diagrams.

A diagram is a YAML document listing input timelines and the operator
expression to apply, e.g. "combineLatest(sum)" or "skip(2)".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default $MARBLES_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.FormatText, "output format (text|json)")
	cmd.PersistentFlags().IntVar(&opts.Width, "width", 0, "columns spanning the time axis (default from config)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewOperatorsCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))

	return cmd
}

// resolve loads the configuration, lets explicit flags override it and
// builds the logger. Logs go to stderr so JSON output stays clean.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFile(o.ConfigPath)
	} else {
		cfg, err = config.Load(cmd.Context())
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("width") {
		cfg.RenderWidth = o.Width
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = log.Named("marbles")
	return nil
}
