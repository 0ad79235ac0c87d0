package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolynomial_IsZero(t *testing.T) {
	assert.True(t, NewPolynomial(0, 0, 0).IsZero())
	assert.False(t, NewPolynomial(1, 0, 0).IsZero())
	assert.False(t, NewPolynomial(0, 0, -1).IsZero())
}

func TestPolynomial_Degree(t *testing.T) {
	tests := []struct {
		name string
		p    Polynomial
		want int
	}{
		{"quadratic", NewPolynomial(1, 0, 0), 2},
		{"linear", NewPolynomial(0, 1, 0), 1},
		{"constant", NewPolynomial(0, 0, 1), 0},
		{"zero", NewPolynomial(0, 0, 0), 0},
		{"tiny quadratic term still counts", NewPolynomial(1e-300, 5, 1), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Degree())
		})
	}
}

func TestPolynomial_Minus(t *testing.T) {
	p := NewPolynomial(3, -2, 1)
	p.Minus(NewPolynomial(1, -1, 1))
	assert.Equal(t, NewPolynomial(2, -1, 0), p)
}

func TestReduce_IsComponentWise(t *testing.T) {
	left := NewPolynomial(4.5, -3, 7)
	right := NewPolynomial(0.5, 2, -7)

	reduced := Reduce(left, right)

	assert.Equal(t, left.A-right.A, reduced.A)
	assert.Equal(t, left.B-right.B, reduced.B)
	assert.Equal(t, left.C-right.C, reduced.C)
	// inputs untouched
	assert.Equal(t, NewPolynomial(4.5, -3, 7), left)
	assert.Equal(t, reduced, Equation{Left: left, Right: right}.Reduce())
}

func TestReduce_ExactCancellationIsZero(t *testing.T) {
	p := NewPolynomial(0.1, 0.2, 0.3)
	reduced := Reduce(p, p)
	assert.True(t, reduced.IsZero())
	assert.Equal(t, 0, reduced.Degree())
}

func TestPolynomial_Discriminant(t *testing.T) {
	assert.Greater(t, NewPolynomial(1, -3, 2).Discriminant(), 0.0)
	assert.Equal(t, 0.0, NewPolynomial(1, -2, 1).Discriminant())
	assert.Less(t, NewPolynomial(1, 2, 3).Discriminant(), 0.0)
}

func TestPolynomial_String(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{NewPolynomial(1, 0, -1), "1 * X^2 + 0 * X^1 - 1 * X^0 = 0"},
		{NewPolynomial(-9.3, 4, 4), "-9.3 * X^2 + 4 * X^1 + 4 * X^0 = 0"},
		{NewPolynomial(0, -0.5, 0), "0 * X^2 - 0.5 * X^1 + 0 * X^0 = 0"},
		{Reduce(NewPolynomial(0, 0, 0), NewPolynomial(0, 0, 0)), "0 * X^2 + 0 * X^1 + 0 * X^0 = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.String())
		})
	}
}

func TestFormatNumber_NegativeZero(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "-2.25", FormatNumber(-2.25))
	assert.Equal(t, "1000000", FormatNumber(1e6))
}

func TestPolynomial_Eval(t *testing.T) {
	p := NewPolynomial(1, 5, 6)
	assert.Equal(t, 0.0, p.Eval(-2))
	assert.Equal(t, 0.0, p.Eval(-3))
	assert.Equal(t, 6.0, p.Eval(0))
}
