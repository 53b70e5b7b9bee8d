package cli

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <diagram.yaml>",
		Short: "Apply a diagram's operator and draw the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(rootOpts, cmd, args[0])
		},
	}
}

func runRun(opts *RootOptions, cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, opts, path)
	if err != nil {
		return err
	}
	defer s.flush(ctx)

	out, err := s.apply(s.inputs)
	if err != nil {
		return err
	}
	return s.print(cmd, s.inputs, out)
}
