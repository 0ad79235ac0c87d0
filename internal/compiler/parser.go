// Package compiler turns raw equation text into the polynomial model.
//
// The pipeline is: strip whitespace, split on "=", split each side into signed
// terms, parse each term into a (power, coefficient) pair and aggregate the
// pairs into a Polynomial. The first error stops the pipeline.
package compiler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/aretw0/computor/pkg/domain"
)

const (
	variableMarker = "X"
	exponentMarker = "^"
	factorMarker   = "*"
	sideMarker     = "="
)

// Parser converts equation text into a domain.Equation.
type Parser struct {
	strictFactors bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictFactors rejects terms carrying more than one variable factor
// (e.g. "X*X") instead of summing their powers.
func WithStrictFactors() Option {
	return func(p *Parser) {
		p.strictFactors = true
	}
}

// NewParser creates a new parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Normalize removes every whitespace character from raw.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// ParseEquation parses "<side> = <side>" into its two polynomials.
func (p *Parser) ParseEquation(raw string) (domain.Equation, error) {
	equation := Normalize(raw)
	sides := strings.Split(equation, sideMarker)
	if len(sides) != 2 {
		return domain.Equation{}, &domain.ParseError{
			Kind:   domain.ErrMalformedEquation,
			Input:  raw,
			Reason: fmt.Sprintf("expected exactly one %q, found %d", sideMarker, len(sides)-1),
		}
	}

	left, err := p.ParsePolynomial(sides[0])
	if err != nil {
		return domain.Equation{}, fmt.Errorf("left side: %w", err)
	}
	right, err := p.ParsePolynomial(sides[1])
	if err != nil {
		return domain.Equation{}, fmt.Errorf("right side: %w", err)
	}

	return domain.Equation{Left: left, Right: right}, nil
}

// ParsePolynomial parses one whitespace-free side of an equation.
func (p *Parser) ParsePolynomial(side string) (domain.Polynomial, error) {
	raw, err := SplitTerms(side)
	if err != nil {
		return domain.Polynomial{}, err
	}

	terms := make([]domain.Term, 0, len(raw))
	for _, r := range raw {
		term, err := p.ParseTerm(r)
		if err != nil {
			return domain.Polynomial{}, err
		}
		terms = append(terms, term)
	}

	return Aggregate(terms)
}

// SplitTerms splits a side on "+" and "-", keeping each sign attached to the
// term that follows it. A sign in first position opens the first term.
//
//	"5*X^2+3*X-2" -> ["5*X^2", "+3*X", "-2"]
func SplitTerms(side string) ([]string, error) {
	var terms []string
	start := 0
	for end := 0; end < len(side); end++ {
		if side[end] != '+' && side[end] != '-' {
			continue
		}
		if start == end {
			continue
		}
		terms = append(terms, side[start:end])
		start = end
	}
	terms = append(terms, side[start:])

	for _, term := range terms {
		switch term {
		case "":
			return nil, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: side, Reason: "empty term"}
		case "+", "-":
			return nil, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: term, Reason: "sign without operand"}
		}
	}
	return terms, nil
}

// ParseTerm computes the power and coefficient of one signed term. The sign
// opening the term applies to the whole product, so "-X^2" is -1 * X^2.
func (p *Parser) ParseTerm(term string) (domain.Term, error) {
	sign := 1.0
	body := term
	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = -1, body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}
	if body == "" {
		return domain.Term{}, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: term, Reason: "sign without operand"}
	}

	var numeric, variable []string
	for _, factor := range strings.Split(body, factorMarker) {
		if strings.Contains(factor, variableMarker) {
			variable = append(variable, factor)
		} else {
			numeric = append(numeric, factor)
		}
	}

	if p.strictFactors && len(variable) > 1 {
		return domain.Term{}, &domain.ParseError{
			Kind:   domain.ErrMalformedTerm,
			Input:  term,
			Reason: "more than one variable factor",
		}
	}

	coef, err := parseCoefficient(numeric)
	if err != nil {
		return domain.Term{}, err
	}
	power, err := parsePower(variable)
	if err != nil {
		return domain.Term{}, err
	}

	return domain.Term{Power: power, Coefficient: sign * coef}, nil
}

// parseCoefficient multiplies the numeric factors; no factor means 1.
func parseCoefficient(factors []string) (float64, error) {
	coef := 1.0
	for _, f := range factors {
		if f == "" || strings.TrimFunc(f, isDecimalRune) != "" {
			return 0, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: f, Reason: "invalid value"}
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsInf(v, 0) {
			return 0, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: f, Reason: "invalid value"}
		}
		coef *= v
	}
	return coef, nil
}

// parsePower sums the powers of "X" and "X^n" factors. The sum is checked
// against domain.MaxDegree at each step so it can never wrap around.
func parsePower(factors []string) (int, error) {
	power := 0
	for _, f := range factors {
		n, err := factorPower(f)
		if err != nil {
			return 0, err
		}
		if n > domain.MaxDegree-power {
			return 0, unsupportedPower(strings.Join(factors, factorMarker))
		}
		power += n
	}
	return power, nil
}

func unsupportedPower(input string) error {
	return &domain.ParseError{
		Kind:   domain.ErrUnsupportedPower,
		Input:  input,
		Reason: fmt.Sprintf("power above %d", domain.MaxDegree),
	}
}

func factorPower(factor string) (int, error) {
	if factor == variableMarker {
		return 1, nil
	}

	exp, ok := strings.CutPrefix(factor, variableMarker+exponentMarker)
	if !ok {
		return 0, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: factor, Reason: "invalid variable factor"}
	}
	if exp == "" || strings.TrimFunc(exp, isDigit) != "" {
		return 0, &domain.ParseError{Kind: domain.ErrMalformedTerm, Input: factor, Reason: "invalid power"}
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		// Only digits got here, so this is a range error.
		return 0, unsupportedPower(factor)
	}
	return n, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isDecimalRune keeps hex floats, exponents, "inf" and "NaN" out of numeric
// factors.
func isDecimalRune(r rune) bool {
	return isDigit(r) || r == '.'
}

// Aggregate sums coefficients sharing a power into a Polynomial. A power
// outside {0, 1, 2} aborts aggregation.
func Aggregate(terms []domain.Term) (domain.Polynomial, error) {
	var poly domain.Polynomial
	for _, t := range terms {
		switch t.Power {
		case 0:
			poly.C += t.Coefficient
		case 1:
			poly.B += t.Coefficient
		case 2:
			poly.A += t.Coefficient
		default:
			return domain.Polynomial{}, &domain.ParseError{
				Kind:   domain.ErrUnsupportedPower,
				Input:  fmt.Sprintf("X^%d", t.Power),
				Reason: fmt.Sprintf("power %d", t.Power),
			}
		}
	}
	return poly, nil
}
