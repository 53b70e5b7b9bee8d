package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/marbles"
	"github.com/zoobzio/marbles/internal/catalog"
	"github.com/zoobzio/marbles/internal/config"
	"github.com/zoobzio/marbles/internal/diagram"
	"github.com/zoobzio/marbles/internal/logger"
	"github.com/zoobzio/marbles/internal/metrics"
	"github.com/zoobzio/marbles/internal/render"
)

// session is a diagram loaded for a command, with its operator wrapped in
// a monitor feeding the metrics.
type session struct {
	opts    *RootOptions
	doc     *diagram.Document
	inputs  []marbles.Stream
	runner  *marbles.Monitor
	metrics *metrics.Manager
	path    string
}

func openSession(ctx context.Context, opts *RootOptions, path string) (*session, error) {
	doc, err := diagram.Load(path)
	if err != nil {
		return nil, err
	}
	inputs, err := doc.Timelines()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	op, err := catalog.Parse(doc.Operator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s := &session{
		opts:    opts,
		doc:     doc,
		inputs:  inputs,
		metrics: metrics.NewManager(),
		path:    path,
	}
	s.runner = marbles.NewMonitor(op, func(stats marbles.RunStats) {
		s.metrics.Observe(stats)
		opts.log.Debug(ctx, "operator run",
			logger.String("expression", stats.Expression),
			logger.Int("inputs", stats.Inputs),
			logger.Int("marbles", stats.Marbles),
			logger.String("terminal", stats.Terminal.String()),
			logger.Any("duration", stats.Duration),
		)
	})

	opts.log.Debug(ctx, "diagram loaded",
		logger.String("path", path),
		logger.String("name", doc.Name),
		logger.String("operator", doc.Operator),
		logger.Int("inputs", len(inputs)),
	)
	return s, nil
}

// apply runs the operator over inputs. A validation failure is reported
// against the diagram.
func (s *session) apply(inputs []marbles.Stream) (marbles.Stream, error) {
	out, err := s.runner.Run(inputs)
	if err != nil {
		return nil, s.notApplicable(err)
	}
	return out, nil
}

func (s *session) notApplicable(err error) error {
	return fmt.Errorf("%s: %s does not apply to %d input(s): %w", s.path, s.runner.Expression(), len(s.inputs), err)
}

// print writes the inputs and the output in the configured format.
func (s *session) print(cmd *cobra.Command, inputs []marbles.Stream, output marbles.Stream) error {
	rows := make([]render.Row, 0, len(inputs)+1)
	for i, in := range inputs {
		rows = append(rows, render.Row{Name: inputName(i), Stream: in})
	}
	rows = append(rows, render.Row{Name: s.runner.Expression(), Stream: output})

	out := cmd.OutOrStdout()
	if s.opts.cfg.Format == config.FormatJSON {
		return render.JSON(out, rows)
	}
	if s.doc.Name != "" {
		fmt.Fprintf(out, "# %s\n", s.doc.Name)
	}
	return render.Text(out, rows, s.opts.cfg.RenderWidth)
}

// flush writes the metrics textfile when one is configured.
func (s *session) flush(ctx context.Context) {
	path := s.opts.cfg.MetricsFile
	if path == "" {
		return
	}
	if err := s.metrics.WriteTextfile(path); err != nil {
		s.opts.log.Warn(ctx, "failed to write metrics", logger.String("path", path), logger.Error(err))
		return
	}
	s.opts.log.Debug(ctx, "metrics written", logger.String("path", path))
}

// inputName names inputs a, b, ..., z, in26, in27, ...
func inputName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("in%d", i)
}
