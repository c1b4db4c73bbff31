package strcoll

import (
	"strings"

	"github.com/elastic/hey-calc/conv"
)

type Tuple struct {
	First, Second string
}

// Tuples is an ordered list of key/value pairs, rendered one per line with dotted padding.
type Tuples struct {
	data []Tuple
}

func NewTuples() Tuples {
	return Tuples{data: make([]Tuple, 0)}
}

func (ts *Tuples) Add(first string, second interface{}) {
	ts.data = append(ts.data, Tuple{first, conv.StringOf(second)})
}

func (ts Tuples) Format(padding int) string {
	lines := make([]string, 0)
	for _, t := range ts.data {
		first, second := t.First, t.Second
		dots := padding - len(first)
		if dots < 0 {
			dots = 0
		}
		first += " " + strings.Repeat(".", dots) + " "
		lines = append(lines, first+second)
	}
	return strings.Join(lines, "\n")
}
