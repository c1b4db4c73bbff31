package expr

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		line     string
		expected Expression
	}{
		{"2 + 3", Expression{Operands: []float64{2, 3}, Operators: []byte{'+'}}},
		{"2+3", Expression{Operands: []float64{2, 3}, Operators: []byte{'+'}}},
		{"  1.5 *\t.5 ^ 2e1  ", Expression{Operands: []float64{1.5, 0.5, 20}, Operators: []byte{'*', '^'}}},
		{"42", Expression{Operands: []float64{42}}},
		{"5.", Expression{Operands: []float64{5}}},
		{"1e", Expression{Operands: []float64{1}, Malformed: true}},
		{"2 - 1", Expression{Operands: []float64{2, 1}, Operators: []byte{'-'}}},
		{"-5 + 1", Expression{Malformed: true}},
		{"+5", Expression{Malformed: true}},
		{"2 + + 3", Expression{Operands: []float64{2}, Operators: []byte{'+'}, Malformed: true}},
		{"2 +", Expression{Operands: []float64{2}, Operators: []byte{'+'}, Malformed: true}},
		{"2 3", Expression{Operands: []float64{2}, Malformed: true}},
		{"2 + x", Expression{Operands: []float64{2}, Operators: []byte{'+'}, Malformed: true}},
		{"inf", Expression{Malformed: true}},
		{"1e400", Expression{Malformed: true}},
		{"", Expression{Malformed: true}},
		{"   ", Expression{Malformed: true}},
	} {
		actual := Parse(test.line)
		if diff := cmp.Diff(test.expected, actual); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", test.line, diff)
		}
	}
}

func TestParseMaxTerms(t *testing.T) {
	terms := make([]string, MaxTerms-1)
	for i := range terms {
		terms[i] = "1"
	}
	e := Parse(strings.Join(terms, "+"))
	assert.False(t, e.Malformed)
	assert.Len(t, e.Operands, MaxTerms-1)
	assert.Equal(t, float64(MaxTerms-1), Evaluate(e))

	e = Parse(strings.Join(append(terms, "1"), "+"))
	assert.True(t, e.Malformed)
	assert.Equal(t, 0.0, Evaluate(e))
}

func TestEval(t *testing.T) {
	for _, test := range []struct {
		line     string
		expected float64
	}{
		{"2 + 3", 5},
		{"10 ^ 2", 100},
		{"5 / 0", 0},
		{"-5 + 1", 0},
		{"2 + + 3", 0},
		{"7", 7},
		{"10 - 4 - 3", 3},
		{"2 + 3 * 4", 14},
		{"2 * 3 + 4", 10},
		{"8 / 4 / 2", 1},
		{"2 ^ 3 ^ 2", 512},
		{"2 * 3 ^ 2", 18},
		{"1 + 2 * 3 ^ 2 - 4 / 2", 17},
		{"4 ^ 0.5", 2},
		{"2 ^ 1 - 3", -1},
		{"2 ^ 0 - 2", -1},
		{"1 - 3 * 2", -5},
		{"1 - 2 ^ 1", -1},
		{"0 ^ 0", 1},
		{"6 / 0 + 1", 1},
		{"0 ^ 1 - 1", -1},
		{"10 ^ 400 + 1", 1},
		{"1e308 * 10 + 2", 2},
		{"1e308 + 1e308", 0},
		{"2 ^ 0.5 ^ 2", 1.189207115002721},
	} {
		assert.InDelta(t, test.expected, Eval(test.line), 1e-9, test.line)
	}
}

// Negative operands can't be parsed, but Evaluate doesn't depend on that.
func TestEvaluateNegativeExponent(t *testing.T) {
	e := Expression{Operands: []float64{2, -1}, Operators: []byte{'^'}}
	assert.Equal(t, 0.5, Evaluate(e))
	e = Expression{Operands: []float64{-8, 1.0 / 3}, Operators: []byte{'^'}}
	assert.Equal(t, 0.0, Evaluate(e))
}

func TestEvaluateDoesNotModify(t *testing.T) {
	e := Parse("1 + 2 * 3 ^ 2")
	before := Parse("1 + 2 * 3 ^ 2")
	Evaluate(e)
	assert.Equal(t, before, e)
}

func TestEvaluateIdempotent(t *testing.T) {
	for _, line := range []string{"3 * 4 - 2", "9 ^ 0.5 / 3", "1 / 3"} {
		assert.Equal(t, Eval(line), Eval(line), line)
	}
}

func TestEvaluateMismatch(t *testing.T) {
	e := Expression{Operands: []float64{1, 2}, Operators: []byte{'+', '+'}}
	assert.False(t, e.Valid())
	assert.Equal(t, 0.0, Evaluate(e))
	assert.Equal(t, 0.0, Evaluate(Expression{}))
}
