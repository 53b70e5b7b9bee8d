package marbles

import (
	"errors"
	"math"
	"testing"
)

func TestNewTimelineSortsStably(t *testing.T) {
	timeline, err := NewTimeline(CompleteAt(5), Pair(2, "b"), Pair(0, "a"), Pair(2, "a"), Pair(1, "c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"a", "c", "b", "a"}
	values := timeline.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("expected %q at position %d, got %q", expected[i], i, v)
		}
	}
}

func TestNewTimelineDropsDuplicates(t *testing.T) {
	timeline := ints(None(), Pair(1, 1), Pair(1, 1), Pair(1, 2), Pair(3, 1))

	if timeline.Len() != 3 {
		t.Errorf("expected 3 events, got %d: %v", timeline.Len(), timeline)
	}
}

func TestNewTimelineValidation(t *testing.T) {
	tests := []struct {
		name        string
		termination Termination
		events      []Event[int]
		err         error
		index       int
	}{
		{"negative event", None(), []Event[int]{Pair(-1, 1)}, ErrOutOfRange, 0},
		{"late event", None(), []Event[int]{Pair(1, 1), Pair(10.5, 2)}, ErrOutOfRange, 1},
		{"NaN event", None(), []Event[int]{Pair(math.NaN(), 1)}, ErrOutOfRange, 0},
		{"late termination", CompleteAt(11), nil, ErrOutOfRange, -1},
		{"negative termination", ErrorAt(-2), nil, ErrOutOfRange, -1},
		{"event after completion", CompleteAt(4), []Event[int]{Pair(2, 1), Pair(5, 2)}, ErrAfterTermination, 1},
		{"event after error", ErrorAt(1), []Event[int]{Pair(3, 1)}, ErrAfterTermination, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeline(tt.termination, tt.events...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			var te *TimelineError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TimelineError, got %T", err)
			}
			if te.Index != tt.index {
				t.Errorf("expected index %d, got %d", tt.index, te.Index)
			}
		})
	}
}

func TestNewTimelineAcceptsBoundaries(t *testing.T) {
	_, err := NewTimeline(CompleteAt(TimelineDuration), Pair(0, 1), Pair(TimelineDuration, 2))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err = NewTimeline(ErrorAt(3), Pair(3, 1))
	if err != nil {
		t.Errorf("event at the termination time should be accepted: %v", err)
	}
}

func TestMustTimelinePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an event after termination")
		}
	}()
	MustTimeline(CompleteAt(1), Pair(2, 1))
}

func TestTimelineEqual(t *testing.T) {
	a := ints(CompleteAt(5), Pair(1, 1), Pair(1, 2))
	b := ints(CompleteAt(5), Pair(1, 2), Pair(1, 1))
	if !a.Equal(b) {
		t.Error("timelines holding the same events should be equal")
	}

	if a.Equal(ints(ErrorAt(5), Pair(1, 1), Pair(1, 2))) {
		t.Error("timelines with different terminations should differ")
	}
	if a.Equal(ints(CompleteAt(5), Pair(1, 1), Pair(2, 2))) {
		t.Error("timelines with different events should differ")
	}
	if a.Equal(ints(CompleteAt(5), Pair(1, 1))) {
		t.Error("timelines with different event counts should differ")
	}
}

func TestTimelineIsImmutable(t *testing.T) {
	timeline := ints(None(), Pair(1, 1), Pair(2, 2))

	events := timeline.Events()
	events[0] = Pair(0, 99)

	if timeline.Event(0) != Pair(1.0, 1) {
		t.Errorf("mutating Events() changed the timeline: %v", timeline)
	}
}

func TestTimelineStreamView(t *testing.T) {
	timeline := ints(ErrorAt(8), Pair(0, 1), Pair(2.5, 3))

	if got := timeline.String(); got != "[1@0 3@2.5] error(8)" {
		t.Errorf("unexpected string %q", got)
	}
	if timeline.Terminal() != ErrorAt(8) {
		t.Errorf("expected error(8), got %v", timeline.Terminal())
	}

	marbles := timeline.Marbles()
	if len(marbles) != 2 || marbles[1] != (Marble{Time: 2.5, Value: 3}) {
		t.Errorf("unexpected marbles %v", marbles)
	}

	var never Timeline[int]
	if got := never.String(); got != "[] none" {
		t.Errorf("unexpected string for the zero timeline %q", got)
	}
}

func TestEventString(t *testing.T) {
	if got := Pair(0.5, "x").String(); got != "x@0.5" {
		t.Errorf("unexpected string %q", got)
	}
	if got := Pair(3, 7).MoveTo(4); got != Pair(4.0, 7) {
		t.Errorf("unexpected moved event %v", got)
	}
}
