package marbles

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryLimit bounds the revisions a Sandbox keeps.
const DefaultHistoryLimit = 100

// Revision is a snapshot of a sandbox: the inputs as edited and the
// operator output computed from them.
type Revision struct {
	At time.Time
	// Output is nil when the operator did not apply.
	Output Stream
	// Err is the validation failure when the operator did not apply.
	Err    error
	Inputs []Stream
	ID     uuid.UUID
}

// Skipped reports whether the operator did not apply to the inputs.
func (r Revision) Skipped() bool {
	return r.Err != nil
}

// detach copies the inputs slice so callers cannot rewrite the history.
func (r Revision) detach() Revision {
	r.Inputs = slices.Clone(r.Inputs)
	return r
}

// Sandbox is a live preview session. It holds the input streams a user is
// editing and re-runs an operator after every edit. Edits never touch the
// streams of earlier revisions, so the history doubles as an undo stack.
//
// Sandbox is safe for concurrent use.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Sandbox struct {
	mu      sync.Mutex
	runner  Runner
	clock   Clock
	limit   int
	history []Revision
}

// NewSandbox creates an empty session previewing runner.
//
// Example:
//
//	sandbox := marbles.NewSandbox(marbles.Erase[marbles.Variadic[int], marbles.Timeline[int]](marbles.NewMerge[int]()))
//	sandbox.Load(a, b)
//	rev, err := marbles.EditTimeline(sandbox, 0, func(t marbles.Timeline[int]) marbles.Timeline[int] {
//		return t.MoveEvent(1, 2.5)
//	})
//	render(rev.Output)
func NewSandbox(runner Runner) *Sandbox {
	return &Sandbox{
		runner: runner,
		clock:  RealClock,
		limit:  DefaultHistoryLimit,
	}
}

// WithClock sets the clock stamping revisions.
func (s *Sandbox) WithClock(clock Clock) *Sandbox {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	return s
}

// WithHistoryLimit bounds the number of kept revisions. Values below 1
// keep only the current revision.
func (s *Sandbox) WithHistoryLimit(limit int) *Sandbox {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = max(limit, 1)
	s.trim()
	return s
}

// Load replaces every input and records a revision.
func (s *Sandbox) Load(inputs ...Stream) Revision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(append([]Stream(nil), inputs...))
}

// SetRunner switches the previewed operator and recomputes the current
// inputs into a new revision.
func (s *Sandbox) SetRunner(runner Runner) Revision {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runner = runner
	return s.record(s.inputs())
}

// Edit replaces the input at index with fn applied to it and records a
// revision. It fails with ErrNoInput for an unknown index.
func (s *Sandbox) Edit(index int, fn func(Stream) Stream) (Revision, error) {
	return s.edit(index, func(in Stream) (Stream, error) {
		return fn(in), nil
	})
}

// EditTimeline edits a Timeline[T] input of the sandbox. It fails with
// ErrInputType when the input holds another kind of stream.
func EditTimeline[T comparable](s *Sandbox, index int, fn func(Timeline[T]) Timeline[T]) (Revision, error) {
	return s.edit(index, func(in Stream) (Stream, error) {
		timeline, ok := in.(Timeline[T])
		if !ok {
			return nil, fmt.Errorf("%w: input %d is %T", ErrInputType, index, in)
		}
		return fn(timeline), nil
	})
}

func (s *Sandbox) edit(index int, fn func(Stream) (Stream, error)) (Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs := s.inputs()
	if index < 0 || index >= len(inputs) {
		return Revision{}, fmt.Errorf("%w: %d of %d", ErrNoInput, index, len(inputs))
	}
	next, err := fn(inputs[index])
	if err != nil {
		return Revision{}, err
	}
	inputs[index] = next
	return s.record(inputs), nil
}

// Current returns the latest revision, false before the first Load.
func (s *Sandbox) Current() (Revision, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return Revision{}, false
	}
	return s.history[len(s.history)-1].detach(), true
}

// History returns the kept revisions, oldest first.
func (s *Sandbox) History() []Revision {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]Revision, len(s.history))
	for i, rev := range s.history {
		history[i] = rev.detach()
	}
	return history
}

// Undo drops the latest revision and returns the one it restores, false
// when there is nothing to go back to.
func (s *Sandbox) Undo() (Revision, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) < 2 {
		return Revision{}, false
	}
	s.history = s.history[:len(s.history)-1]
	return s.history[len(s.history)-1].detach(), true
}

func (s *Sandbox) inputs() []Stream {
	if len(s.history) == 0 {
		return nil
	}
	return append([]Stream(nil), s.history[len(s.history)-1].Inputs...)
}

func (s *Sandbox) record(inputs []Stream) Revision {
	rev := Revision{
		ID:     uuid.New(),
		At:     s.clock.Now(),
		Inputs: inputs,
	}
	rev.Output, rev.Err = s.runner.Run(inputs)
	s.history = append(s.history, rev)
	s.trim()
	return rev.detach()
}

func (s *Sandbox) trim() {
	if over := len(s.history) - s.limit; over > 0 {
		s.history = append([]Revision(nil), s.history[over:]...)
	}
}
