// Package diagram reads and writes marble diagram documents: a set of input
// timelines of int values and the operator to apply to them, in YAML.
//
//	name: combine-latest-sum
//	operator: combineLatest(sum)
//	inputs:
//	  - events: [{time: 0, value: 1}, {time: 2, value: 3}]
//	    termination: {kind: complete, time: 10}
package diagram

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/marbles"
)

// Termination kinds as written in documents.
const (
	KindNone     = "none"
	KindComplete = "complete"
	KindError    = "error"
)

// Document is the YAML form of a diagram.
type Document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Operator    string  `yaml:"operator"`
	Inputs      []Input `yaml:"inputs"`
}

// Input is the YAML form of one timeline.
type Input struct {
	Termination Termination `yaml:"termination"`
	Events      []Event     `yaml:"events"`
}

// Event is the YAML form of one event.
type Event struct {
	Time  float64 `yaml:"time"`
	Value int     `yaml:"value"`
}

// Termination is the YAML form of a termination. An empty kind means none.
type Termination struct {
	Time *float64 `yaml:"time,omitempty"`
	Kind string   `yaml:"kind"`
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document, rejecting unknown fields.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDiagram, err)
	}
	if doc.Operator == "" {
		return nil, fmt.Errorf("%w: operator is required", ErrInvalidDiagram)
	}
	return &doc, nil
}

// Encode writes a document as YAML.
func Encode(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Timelines validates the inputs and builds them as streams, ready to be
// handed to an operator.
func (d *Document) Timelines() ([]marbles.Stream, error) {
	streams := make([]marbles.Stream, len(d.Inputs))
	for i, in := range d.Inputs {
		timeline, err := in.Timeline()
		if err != nil {
			return nil, fmt.Errorf("%w: input %d: %w", ErrInvalidDiagram, i, err)
		}
		streams[i] = timeline
	}
	return streams, nil
}

// Timeline builds and validates the input.
func (in Input) Timeline() (marbles.Timeline[int], error) {
	termination, err := in.Termination.model()
	if err != nil {
		return marbles.Timeline[int]{}, err
	}
	events := make([]marbles.Event[int], len(in.Events))
	for i, e := range in.Events {
		events[i] = marbles.Pair(e.Time, e.Value)
	}
	return marbles.NewTimeline(termination, events...)
}

func (t Termination) model() (marbles.Termination, error) {
	switch t.Kind {
	case "", KindNone:
		return marbles.None(), nil
	case KindComplete, KindError:
		if t.Time == nil {
			return marbles.Termination{}, fmt.Errorf("%s termination needs a time", t.Kind)
		}
		if t.Kind == KindComplete {
			return marbles.CompleteAt(*t.Time), nil
		}
		return marbles.ErrorAt(*t.Time), nil
	default:
		return marbles.Termination{}, fmt.Errorf("unknown termination kind %q", t.Kind)
	}
}

// FromTimeline converts a timeline back into its document form.
func FromTimeline(timeline marbles.Timeline[int]) Input {
	in := Input{Termination: FromTermination(timeline.Termination())}
	for _, e := range timeline.Events() {
		in.Events = append(in.Events, Event{Time: e.Time, Value: e.Value})
	}
	return in
}

// FromTermination converts a termination into its document form.
func FromTermination(t marbles.Termination) Termination {
	return marbles.MatchTermination(t,
		func() Termination { return Termination{Kind: KindNone} },
		func(time float64) Termination { return Termination{Kind: KindComplete, Time: &time} },
		func(time float64) Termination { return Termination{Kind: KindError, Time: &time} },
	)
}
