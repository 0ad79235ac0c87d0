/*
Package domain contains the core models and solving logic for computor.

It defines the polynomial model a parsed equation is reduced to, the degree
classifier, and the closed-form solvers for degrees 0, 1 and 2. This package is
kept pure and free of external dependencies like I/O, parsing or persistence.

# Key Entities

  - Polynomial: the coefficients (A, B, C) of A·X² + B·X + C.
  - Equation: the two sides of a parsed equation, consumed by Reduce.
  - Term: a transient (power, coefficient) pair produced by the parser.
  - Solution: the real-valued solution set (all reals, none, or one/two roots).
  - Report: the full outcome of solving one equation, handed to the boundary.
*/
package domain
