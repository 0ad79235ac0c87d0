package domain

import (
	"math"
	"strconv"
	"strings"
)

// MaxDegree is the highest power of X the model can represent.
const MaxDegree = 2

// Polynomial represents A·X² + B·X + C.
type Polynomial struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// NewPolynomial creates a polynomial from its coefficients, highest power first.
func NewPolynomial(a, b, c float64) Polynomial {
	return Polynomial{A: a, B: b, C: c}
}

// IsZero reports whether every coefficient is exactly zero.
func (p Polynomial) IsZero() bool {
	return p.A == 0 && p.B == 0 && p.C == 0
}

// Degree returns the effective degree. Comparisons are exact: a coefficient
// that cancelled out exactly counts as zero, anything else does not.
func (p Polynomial) Degree() int {
	switch {
	case p.A != 0:
		return 2
	case p.B != 0:
		return 1
	default:
		return 0
	}
}

// Minus subtracts other from p in place.
func (p *Polynomial) Minus(other Polynomial) {
	p.A -= other.A
	p.B -= other.B
	p.C -= other.C
}

// Discriminant returns B² - 4AC.
func (p Polynomial) Discriminant() float64 {
	return p.B*p.B - 4*p.A*p.C
}

// Coefficient returns the coefficient for the given power, or 0 when the
// power is not representable.
func (p Polynomial) Coefficient(power int) float64 {
	switch power {
	case 0:
		return p.C
	case 1:
		return p.B
	case 2:
		return p.A
	}
	return 0
}

// Eval computes the value of the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	return (p.A*x+p.B)*x + p.C
}

// String renders the reduced form, e.g. "4 * X^2 - 3 * X^1 + 1 * X^0 = 0".
func (p Polynomial) String() string {
	var sb strings.Builder
	for power := MaxDegree; power >= 0; power-- {
		coef := p.Coefficient(power)
		switch {
		case power == MaxDegree && math.Signbit(coef) && coef != 0:
			sb.WriteString("-")
			coef = -coef
		case power == MaxDegree:
		case math.Signbit(coef) && coef != 0:
			sb.WriteString(" - ")
			coef = -coef
		default:
			sb.WriteString(" + ")
		}
		sb.WriteString(FormatNumber(coef))
		sb.WriteString(" * X^")
		sb.WriteString(strconv.Itoa(power))
	}
	sb.WriteString(" = 0")
	return sb.String()
}

// FormatNumber prints a float in its shortest exact decimal form, folding
// negative zero into "0".
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Equation holds the two independently parsed sides of an equation.
type Equation struct {
	Left  Polynomial `json:"left"`
	Right Polynomial `json:"right"`
}

// Reduce returns Left - Right.
func (e Equation) Reduce() Polynomial {
	return Reduce(e.Left, e.Right)
}

// Reduce subtracts right from left component-wise without touching either input.
func Reduce(left, right Polynomial) Polynomial {
	reduced := left
	reduced.Minus(right)
	return reduced
}

// Term is one parsed (power, coefficient) pair of a polynomial side.
type Term struct {
	Power       int     `json:"power"`
	Coefficient float64 `json:"coefficient"`
}
