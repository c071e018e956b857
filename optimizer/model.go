// Package optimizer builds and solves the reviewer-assignment optimization
// model. The solver itself is an opaque capability behind the Solver
// interface; the package ships a HiGHS-backed implementation and a small
// exhaustive one for tiny instances.
package optimizer

import "math"

// Status is the terminal state of a solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusNotSolved
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "not solved"
	}
}

// Nonzero is one coefficient of a constraint row.
type Nonzero struct {
	Var  int
	Coef float64
}

// Constraint bounds a linear expression: Lower <= sum(Coef*x) <= Upper.
type Constraint struct {
	Entries []Nonzero
	Lower   float64
	Upper   float64
}

// Model is a linear program over binary decision variables with a
// maximization objective.
type Model struct {
	NumVars     int
	Objective   []float64
	Constraints []Constraint
}

// Solution carries the solver's terminal status and, when optimal, the
// variable values and objective reached.
type Solution struct {
	Status    Status
	Detail    string
	Values    []float64
	Objective float64
}

// Solver solves a binary linear model. Implementations must return a
// non-optimal status rather than a partial or best-effort solution.
type Solver interface {
	Solve(m *Model) (*Solution, error)
}

// Inf is the bound used for rows with no upper limit.
var Inf = math.Inf(1)
