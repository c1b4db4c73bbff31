package expr

import (
	"strconv"
)

// MaxTerms bounds both the operands and the operators of an expression.
// A line that reaches it is malformed.
const MaxTerms = 64

// Expression is one parsed line.
// A well formed expression always has exactly one operator less than operands.
type Expression struct {
	Operands  []float64
	Operators []byte
	Malformed bool
}

// Valid returns true if the expression can be evaluated.
func (e Expression) Valid() bool {
	return !e.Malformed && len(e.Operands) > 0 && len(e.Operators) == len(e.Operands)-1
}

// Parse reads one line (without its newline) into an Expression.
// Parse doesn't return errors, anything unexpected marks the expression as malformed.
func Parse(line string) Expression {
	var e Expression
	p := 0
	for p < len(line) {
		p = skipSpaces(line, p)
		end := scanLiteral(line, p)
		if end == p {
			// no literal, or a signed one
			e.Malformed = true
			break
		}
		f, err := strconv.ParseFloat(line[p:end], 64)
		if err != nil {
			e.Malformed = true
			break
		}
		e.Operands = append(e.Operands, f)
		p = end
		if len(e.Operands) >= MaxTerms {
			e.Malformed = true
			break
		}

		p = skipSpaces(line, p)
		if p == len(line) || !IsOperator(line[p]) {
			break
		}
		e.Operators = append(e.Operators, line[p])
		p++
		if len(e.Operators) >= MaxTerms {
			e.Malformed = true
			break
		}
	}

	if skipSpaces(line, p) != len(line) {
		e.Malformed = true
	}
	if len(e.Operators) != len(e.Operands)-1 {
		e.Malformed = true
	}
	return e
}

// IsOperator returns true for the 5 supported binary operators.
func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^':
		return true
	}
	return false
}

func skipSpaces(s string, p int) int {
	for p < len(s) && (s[p] == ' ' || s[p] == '\t') {
		p++
	}
	return p
}

// scanLiteral returns the end of the unsigned decimal literal starting at p, or p if there is none.
// Accepted forms are like `12`, `1.5`, `.5`, `5.` and `1e3`, `2.5E-2`.
// An exponent marker not followed by digits is not part of the literal.
func scanLiteral(s string, p int) int {
	i, digits := p, 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return p
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
