package domain

import (
	"fmt"
	"math"
)

// Outcome classifies a Solution.
type Outcome string

const (
	OutcomeAllReals Outcome = "all_reals" // Every real X satisfies the equation
	OutcomeNone     Outcome = "none"      // No real X satisfies the equation
	OutcomeRoots    Outcome = "roots"     // One or two real roots
)

// ComplexPair is the conjugate pair Real ± Imaginary·i of a quadratic with a
// negative discriminant. Imaginary is the magnitude and is never negative.
// It is diagnostic only and never part of Roots.
type ComplexPair struct {
	Real      float64 `json:"real"`
	Imaginary float64 `json:"imaginary"`
}

// Solution is the real-valued solution set of an equation.
type Solution struct {
	Outcome Outcome      `json:"outcome"`
	Roots   []float64    `json:"roots,omitempty"`
	Complex *ComplexPair `json:"complex,omitempty"`
}

// Solve classifies the reduced polynomial by degree and applies the matching
// closed-form solver.
//
// An identically zero polynomial is reported as all reals before any degree
// dispatch. For a positive discriminant the roots are ordered
// (-b+√d)/2a, (-b-√d)/2a.
func Solve(p Polynomial) (Solution, error) {
	if p.IsZero() {
		return Solution{Outcome: OutcomeAllReals}, nil
	}

	switch deg := p.Degree(); deg {
	case 0:
		return Solution{Outcome: OutcomeNone}, nil
	case 1:
		return roots(-p.C / p.B), nil
	case 2:
		return solveQuadratic(p), nil
	default:
		return Solution{}, fmt.Errorf("%w: degree %d", ErrUnsupportedDegree, deg)
	}
}

func solveQuadratic(p Polynomial) Solution {
	d := p.Discriminant()
	switch {
	case d > 0:
		sq := math.Sqrt(d)
		return roots((-p.B+sq)/(2*p.A), (-p.B-sq)/(2*p.A))
	case d == 0:
		return roots(-p.B / (2 * p.A))
	default:
		return Solution{
			Outcome: OutcomeNone,
			Complex: &ComplexPair{
				Real:      normalizeZero(-p.B / (2 * p.A)),
				Imaginary: math.Sqrt(-d) / math.Abs(2*p.A),
			},
		}
	}
}

func roots(xs ...float64) Solution {
	for i := range xs {
		xs[i] = normalizeZero(xs[i])
	}
	return Solution{Outcome: OutcomeRoots, Roots: xs}
}

// normalizeZero folds -0 into +0 so "-0" never reaches the user.
func normalizeZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// Report is the complete result of solving one equation.
type Report struct {
	Equation     string     `json:"equation"`
	Reduced      Polynomial `json:"reduced"`
	Degree       int        `json:"degree"`
	Discriminant *float64   `json:"discriminant,omitempty"`
	Solution     Solution   `json:"solution"`
}

// NewReport solves the reduced polynomial and assembles the report. The
// discriminant is only recorded for degree 2.
func NewReport(equation string, reduced Polynomial) (*Report, error) {
	sol, err := Solve(reduced)
	if err != nil {
		return nil, err
	}
	r := &Report{
		Equation: equation,
		Reduced:  reduced,
		Degree:   reduced.Degree(),
		Solution: sol,
	}
	if r.Degree == 2 {
		d := reduced.Discriminant()
		r.Discriminant = &d
	}
	return r, nil
}

// Clone returns a deep copy of r.
func (r *Report) Clone() *Report {
	if r == nil {
		return nil
	}
	c := *r
	if r.Discriminant != nil {
		d := *r.Discriminant
		c.Discriminant = &d
	}
	if r.Solution.Roots != nil {
		c.Solution.Roots = append([]float64(nil), r.Solution.Roots...)
	}
	if r.Solution.Complex != nil {
		pair := *r.Solution.Complex
		c.Solution.Complex = &pair
	}
	return &c
}
