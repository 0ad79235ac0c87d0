// Package generate produces random equations of the form
// a*X^2 + b*X + c = d*X^2 + e*X + f for exercising the solver.
package generate

import (
	"math/rand/v2"
	"strings"

	"github.com/aretw0/computor/pkg/domain"
)

// Bound is the absolute limit of generated coefficients.
const Bound = 200.0

// Coefficients holds a, b, c (left side) and d, e, f (right side).
type Coefficients [6]float64

// Generator draws coefficients uniformly from [-Bound, Bound).
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator whose sequence is fully determined by seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next draws one set of coefficients.
func (g *Generator) Next() Coefficients {
	var c Coefficients
	for i := range c {
		c[i] = g.rng.Float64()*2*Bound - Bound
	}
	return c
}

// Equation draws coefficients and formats them.
func (g *Generator) Equation() string {
	return Format(g.Next())
}

// Format prints c as "a*X^2 + b*X + c = d*X^2 + e*X + f", folding negative
// coefficients into the separator.
func Format(c Coefficients) string {
	var sb strings.Builder
	side := func(a, b, k float64) {
		sb.WriteString(domain.FormatNumber(a))
		sb.WriteString("*X^2")
		term(&sb, b, "*X")
		term(&sb, k, "")
	}
	side(c[0], c[1], c[2])
	sb.WriteString(" = ")
	side(c[3], c[4], c[5])
	return sb.String()
}

func term(sb *strings.Builder, v float64, suffix string) {
	if v < 0 {
		sb.WriteString(" - ")
		v = -v
	} else {
		sb.WriteString(" + ")
	}
	sb.WriteString(domain.FormatNumber(v))
	sb.WriteString(suffix)
}
