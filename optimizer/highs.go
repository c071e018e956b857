package optimizer

import (
	"fmt"

	"github.com/lanl/highs"
)

// HighsSolver solves models with the HiGHS mixed-integer solver.
type HighsSolver struct{}

func NewHighsSolver() *HighsSolver {
	return &HighsSolver{}
}

// Solve maps the model onto a HiGHS MIP. HiGHS minimizes, so column costs
// and the reported objective are negated.
func (s *HighsSolver) Solve(m *Model) (*Solution, error) {
	lp := new(highs.Model)

	lp.VarTypes = make([]highs.VariableType, m.NumVars)
	lp.ColLower = make([]float64, m.NumVars)
	lp.ColUpper = make([]float64, m.NumVars)
	lp.ColCosts = make([]float64, m.NumVars)
	for j := 0; j < m.NumVars; j++ {
		lp.VarTypes[j] = highs.IntegerType
		lp.ColUpper[j] = 1
		lp.ColCosts[j] = -m.Objective[j]
	}

	for i, c := range m.Constraints {
		for _, e := range c.Entries {
			lp.ConstMatrix = append(lp.ConstMatrix, highs.Nonzero{Row: i, Col: e.Var, Val: e.Coef})
		}
		lp.RowLower = append(lp.RowLower, c.Lower)
		lp.RowUpper = append(lp.RowUpper, c.Upper)
	}

	result, err := lp.Solve()
	if err != nil {
		return nil, fmt.Errorf("highs solve: %w", err)
	}

	if result.Status != highs.Optimal {
		return &Solution{Status: StatusNotSolved, Detail: result.Status.String()}, nil
	}

	values := make([]float64, m.NumVars)
	copy(values, result.ColumnPrimal)
	return &Solution{
		Status:    StatusOptimal,
		Values:    values,
		Objective: -result.Objective,
	}, nil
}
