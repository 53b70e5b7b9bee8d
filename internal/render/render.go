// Package render draws streams as ASCII marble diagrams and as JSON.
//
// A diagram row is two lines: the values above their position, and the
// time axis. On the axis 'o' marks an event, '|' a completion, 'X' an
// error and a trailing '>' a stream that never terminates:
//
//	     1   3   4
//	a    o---o---o-----------|
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/zoobzio/marbles"
)

// Row is a named stream to draw.
type Row struct {
	Stream marbles.Stream
	Name   string
}

// Text draws rows one below the other, width columns spanning the time
// axis. A termination sharing its column with an event is drawn just
// after it.
func Text(w io.Writer, rows []Row, width int) error {
	if width < 2 {
		return fmt.Errorf("render width must be at least 2, got %d", width)
	}
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, len(r.Name))
	}

	var buf bytes.Buffer
	for _, r := range rows {
		labels, axis := draw(r.Stream, width)
		writeLine(&buf, nameWidth, "", labels)
		writeLine(&buf, nameWidth, r.Name, axis)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeLine(buf *bytes.Buffer, nameWidth int, name, content string) {
	line := fmt.Sprintf("%-*s  %s", nameWidth, name, content)
	buf.WriteString(strings.TrimRight(line, " "))
	buf.WriteByte('\n')
}

// column maps a time of the axis to a column in [0, width-1].
func column(t float64, width int) int {
	return int(math.Round(t / marbles.TimelineDuration * float64(width-1)))
}

func draw(s marbles.Stream, width int) (string, string) {
	axis := bytes.Repeat([]byte{'-'}, width+1)
	var labels []byte

	for _, m := range s.Marbles() {
		col := column(m.Time, width)
		axis[col] = 'o'

		label := fmt.Sprint(m.Value)
		start := max(col, len(labels))
		if len(labels) > 0 && start == len(labels) && labels[len(labels)-1] != ' ' {
			start++
		}
		for len(labels) < start {
			labels = append(labels, ' ')
		}
		labels = append(labels, label...)
	}

	end := marbles.MatchTermination(s.Terminal(),
		func() int {
			axis[width] = '>'
			return width
		},
		func(t float64) int { return mark(axis, column(t, width), '|') },
		func(t float64) int { return mark(axis, column(t, width), 'X') },
	)
	return string(labels), string(axis[:end+1])
}

func mark(axis []byte, col int, symbol byte) int {
	if axis[col] == 'o' {
		col++
	}
	axis[col] = symbol
	return col
}

// jsonRow is the JSON form of a row.
type jsonRow struct {
	Name        string          `json:"name"`
	Marbles     []jsonMarble    `json:"marbles"`
	Termination jsonTermination `json:"termination"`
}

type jsonMarble struct {
	Value any     `json:"value"`
	Time  float64 `json:"time"`
}

type jsonTermination struct {
	Time *float64 `json:"time,omitempty"`
	Kind string   `json:"kind"`
}

// JSON writes rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, len(rows))
	for i, r := range rows {
		marbleList := make([]jsonMarble, 0)
		for _, m := range r.Stream.Marbles() {
			marbleList = append(marbleList, jsonMarble{Time: m.Time, Value: m.Value})
		}
		term := jsonTermination{Kind: r.Stream.Terminal().Kind().String()}
		if t, ok := r.Stream.Terminal().Time(); ok {
			term.Time = &t
		}
		out[i] = jsonRow{Name: r.Name, Marbles: marbleList, Termination: term}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
