package expr

import (
	"github.com/elastic/hey-calc/numbers"
)

// Eval parses and evaluates a line.
func Eval(line string) float64 {
	return Evaluate(Parse(line))
}

// Evaluate computes the value of an expression, or 0 if it is malformed.
// `^` binds tighter than `*` and `/`, which bind tighter than `+` and `-`.
// `^` is right associative, everything else is left associative.
//
// The given expression is not modified.
func Evaluate(e Expression) float64 {
	if !e.Valid() {
		return 0
	}
	nums := append(make([]float64, 0, len(e.Operands)), e.Operands...)
	ops := append(make([]byte, 0, len(e.Operators)), e.Operators...)

	// exponentiation, right to left
	for j := len(ops) - 1; j >= 0; j-- {
		if ops[j] == '^' {
			nums, ops = contract(nums, ops, j)
		}
	}

	// multiplication and division, left to right
	for j := 0; j < len(ops); {
		if ops[j] == '*' || ops[j] == '/' {
			// stay at j, the next operator shifted into its place
			nums, ops = contract(nums, ops, j)
		} else {
			j++
		}
	}

	acc := nums[0]
	for j, op := range ops {
		acc = apply(op, acc, nums[j+1])
	}
	return numbers.Finite(acc)
}

// contract replaces the operands at j and j+1 with the result of the operator at j.
func contract(nums []float64, ops []byte, j int) ([]float64, []byte) {
	nums[j] = apply(ops[j], nums[j], nums[j+1])
	return append(nums[:j+1], nums[j+2:]...), append(ops[:j], ops[j+1:]...)
}

// apply computes a single binary operation, degrading to 0 when the result is not finite.
func apply(op byte, a, b float64) float64 {
	switch op {
	case '+':
		return numbers.Finite(a + b)
	case '-':
		return numbers.Finite(a - b)
	case '*':
		return numbers.Finite(a * b)
	case '/':
		return numbers.Div(a, b)
	case '^':
		return numbers.Pow(a, b)
	}
	return 0
}
