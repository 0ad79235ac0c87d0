/*
Package ports defines the driven ports (interfaces) for computor.

These interfaces decouple the solving pipeline from external implementations,
allowing the engine to work with various cache backends and front ends.

# Key Interfaces

  - Solver: Solves one equation and returns its Report.
  - ReportCache: Persists reports keyed by normalized equation text.
*/
package ports
