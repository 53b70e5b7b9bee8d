package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/marbles"
	"github.com/zoobzio/marbles/internal/diagram"
	"github.com/zoobzio/marbles/internal/logger"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	Moves   []string
	Adds    []string
	Removes []string
	Write   bool
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <diagram.yaml>",
		Short: "Edit a diagram's inputs and draw the recomputed result",
		Long: `Apply edits to the inputs of a diagram, recomputing the operator output
after each one, then draw the final state.

Edits run in flag order: all moves, then adds, then removes.

  --move 0:1:2.5     move event 1 of input 0 by +2.5
  --move 1:end:-3    move the termination of input 1 by -3
  --add 0:4.5:7      add value 7 at time 4.5 to input 0
  --remove 2:0       remove event 0 of input 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.Moves, "move", nil, "move an event or termination (input:event|end:delta)")
	cmd.Flags().StringArrayVar(&opts.Adds, "add", nil, "add an event (input:time:value)")
	cmd.Flags().StringArrayVar(&opts.Removes, "remove", nil, "remove an event (input:event)")
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "write the edited inputs back to the diagram file")

	return cmd
}

// edit is one parsed editing flag.
type edit struct {
	apply func(marbles.Timeline[int]) marbles.Timeline[int]
	flag  string
	input int
}

func runEdit(rootOpts *RootOptions, opts *EditOptions, cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	edits, err := parseEdits(opts)
	if err != nil {
		return err
	}
	if len(edits) == 0 {
		return fmt.Errorf("no edits given")
	}

	s, err := openSession(ctx, rootOpts, path)
	if err != nil {
		return err
	}
	defer s.flush(ctx)

	sandbox := marbles.NewSandbox(s.runner).WithHistoryLimit(rootOpts.cfg.HistoryLimit)
	rev := sandbox.Load(s.inputs...)
	for _, e := range edits {
		rev, err = marbles.EditTimeline(sandbox, e.input, e.apply)
		if err != nil {
			return fmt.Errorf("--%s: %w", e.flag, err)
		}
		rootOpts.log.Debug(ctx, "edit applied",
			logger.String("edit", e.flag),
			logger.String("revision", rev.ID.String()),
			logger.Any("skipped", rev.Skipped()),
		)
	}
	if rev.Skipped() {
		return s.notApplicable(rev.Err)
	}

	if opts.Write {
		if err := writeInputs(s.doc, rev.Inputs, path); err != nil {
			return err
		}
		rootOpts.log.Info(ctx, "diagram updated", logger.String("path", path), logger.Int("revisions", len(sandbox.History())))
	}
	return s.print(cmd, rev.Inputs, rev.Output)
}

func parseEdits(opts *EditOptions) ([]edit, error) {
	var edits []edit
	for _, flag := range opts.Moves {
		parts, input, err := editFields(flag, 3)
		if err != nil {
			return nil, fmt.Errorf("--move %s: %w", flag, err)
		}
		delta, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("--move %s: bad delta %q", flag, parts[2])
		}
		e := edit{flag: "move " + flag, input: input}
		if parts[1] == "end" {
			e.apply = func(t marbles.Timeline[int]) marbles.Timeline[int] { return t.MoveTermination(delta) }
		} else {
			event, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("--move %s: bad event index %q", flag, parts[1])
			}
			e.apply = func(t marbles.Timeline[int]) marbles.Timeline[int] { return t.MoveEvent(event, delta) }
		}
		edits = append(edits, e)
	}
	for _, flag := range opts.Adds {
		parts, input, err := editFields(flag, 3)
		if err != nil {
			return nil, fmt.Errorf("--add %s: %w", flag, err)
		}
		at, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("--add %s: bad time %q", flag, parts[1])
		}
		value, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("--add %s: bad value %q", flag, parts[2])
		}
		edits = append(edits, edit{flag: "add " + flag, input: input, apply: func(t marbles.Timeline[int]) marbles.Timeline[int] {
			return t.AddEvent(at, value)
		}})
	}
	for _, flag := range opts.Removes {
		parts, input, err := editFields(flag, 2)
		if err != nil {
			return nil, fmt.Errorf("--remove %s: %w", flag, err)
		}
		event, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("--remove %s: bad event index %q", flag, parts[1])
		}
		edits = append(edits, edit{flag: "remove " + flag, input: input, apply: func(t marbles.Timeline[int]) marbles.Timeline[int] {
			return t.RemoveEvent(event)
		}})
	}
	return edits, nil
}

// editFields splits a colon separated flag value into n fields, the first
// being an input index.
func editFields(flag string, n int) ([]string, int, error) {
	parts := strings.Split(flag, ":")
	if len(parts) != n {
		return nil, 0, fmt.Errorf("want %d colon separated fields", n)
	}
	input, err := strconv.Atoi(parts[0])
	if err != nil || input < 0 {
		return nil, 0, fmt.Errorf("bad input index %q", parts[0])
	}
	return parts, input, nil
}

func writeInputs(doc *diagram.Document, inputs []marbles.Stream, path string) error {
	for i, in := range inputs {
		timeline, ok := in.(marbles.Timeline[int])
		if !ok {
			return fmt.Errorf("input %d is %T", i, in)
		}
		doc.Inputs[i] = diagram.FromTimeline(timeline)
	}

	var buf bytes.Buffer
	if err := diagram.Encode(&buf, doc); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
}
