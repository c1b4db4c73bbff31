package numbers

import (
	"math"
)

// Finite returns f, or 0 if f is NaN or infinite.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Div divides a by b, returning 0 for a zero divisor or a non finite quotient.
func Div(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return Finite(a / b)
}

// Pow returns a**b, or 0 if the result is not finite.
func Pow(a, b float64) float64 {
	return Finite(math.Pow(a, b))
}

// Perct returns the percentage of one value of the sum of both, or nil if it can't be calculated.
func Perct(i1, i2 uint64) *float64 {
	if i1+i2 == 0 {
		return nil
	}
	f := Round(float64(i1*100)/float64(i1+i2), 2)
	return &f
}

// Round rounds f to p decimal places.
func Round(f float64, p int) float64 {
	m := math.Pow10(p)
	return math.Round(f*m) / m
}

// Sum sums all its arguments.
// Every partial sum is kept finite, so a single overflowing term can't poison a total.
func Sum(xs ...float64) float64 {
	var s float64
	for _, x := range xs {
		s = Finite(s + x)
	}
	return s
}
