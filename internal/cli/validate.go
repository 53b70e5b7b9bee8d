package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/marbles/internal/config"
)

type validation struct {
	Name       string `json:"name,omitempty"`
	Expression string `json:"expression"`
	DocURL     string `json:"doc_url"`
	Terminal   string `json:"terminal"`
	Inputs     int    `json:"inputs"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <diagram.yaml>",
		Short: "Check that a diagram is well formed and its operator applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args[0])
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, opts, path)
	if err != nil {
		return err
	}
	defer s.flush(ctx)

	result, err := s.apply(s.inputs)
	if err != nil {
		return err
	}

	v := validation{
		Name:       s.doc.Name,
		Expression: s.runner.Expression(),
		DocURL:     s.runner.DocURL(),
		Terminal:   result.Terminal().String(),
		Inputs:     len(s.inputs),
	}
	out := cmd.OutOrStdout()
	if opts.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err = fmt.Fprintf(out, "ok: %s over %d input(s), output %s\n", v.Expression, v.Inputs, v.Terminal)
	return err
}
