package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/marbles/internal/catalog"
	"github.com/zoobzio/marbles/internal/config"
)

// operatorInfo is the JSON form of a catalog entry.
type operatorInfo struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Arity   string `json:"arity"`
	Summary string `json:"summary"`
	DocURL  string `json:"doc_url,omitempty"`
}

// NewOperatorsCommand creates the operators command.
func NewOperatorsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the available operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperators(rootOpts, cmd)
		},
	}
}

func runOperators(opts *RootOptions, cmd *cobra.Command) error {
	var infos []operatorInfo
	for _, e := range catalog.Entries() {
		info := operatorInfo{Name: e.Name, Usage: e.Usage, Arity: e.Arity, Summary: e.Summary}
		if runner, err := catalog.Parse(example(e)); err == nil {
			info.DocURL = runner.DocURL()
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	if opts.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATOR\tINPUTS\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Usage, info.Arity, info.Summary)
	}
	fmt.Fprintf(tw, "\npredicates: %v\nfunctions: %v\ncombiners: %v\n",
		catalog.Predicates(), catalog.Transforms(), catalog.Combiners())
	return tw.Flush()
}

// example instantiates an entry's usage with valid arguments.
func example(e catalog.Entry) string {
	switch e.Name {
	case "just", "contains", "skip", "take", "retry", "debounce", "throttle", "sample":
		return e.Name + "(1)"
	case "filter", "all", "any":
		return e.Name + "(" + catalog.Predicates()[0] + ")"
	case "map":
		return e.Name + "(" + catalog.Transforms()[0] + ")"
	case "combineLatest", "zip", "scan", "reduce":
		return e.Name + "(" + catalog.Combiners()[0] + ")"
	default:
		return e.Name
	}
}
