package optimizer

import "fmt"

// exhaustiveMaxVars caps enumeration at 2^20 candidate solutions.
const exhaustiveMaxVars = 20

// ExhaustiveSolver finds the exact optimum by enumerating every binary
// assignment. It is only usable for tiny instances (a handful of papers and
// reviewers) and exists so the engine can run without the HiGHS shared
// library, e.g. in tests or toy deployments.
type ExhaustiveSolver struct{}

func NewExhaustiveSolver() *ExhaustiveSolver {
	return &ExhaustiveSolver{}
}

func (s *ExhaustiveSolver) Solve(m *Model) (*Solution, error) {
	if m.NumVars > exhaustiveMaxVars {
		return nil, fmt.Errorf("exhaustive solver supports at most %d variables, got %d", exhaustiveMaxVars, m.NumVars)
	}

	best := &Solution{Status: StatusInfeasible}
	values := make([]float64, m.NumVars)

	for mask := 0; mask < 1<<m.NumVars; mask++ {
		for j := 0; j < m.NumVars; j++ {
			values[j] = float64((mask >> j) & 1)
		}
		if !feasible(m, values) {
			continue
		}
		obj := objective(m, values)
		if best.Status != StatusOptimal || obj > best.Objective {
			best.Status = StatusOptimal
			best.Objective = obj
			best.Values = append([]float64(nil), values...)
		}
	}

	return best, nil
}

func feasible(m *Model, values []float64) bool {
	for _, c := range m.Constraints {
		var sum float64
		for _, e := range c.Entries {
			sum += e.Coef * values[e.Var]
		}
		if sum < c.Lower || sum > c.Upper {
			return false
		}
	}
	return true
}

func objective(m *Model, values []float64) float64 {
	var obj float64
	for j, v := range values {
		obj += m.Objective[j] * v
	}
	return obj
}
