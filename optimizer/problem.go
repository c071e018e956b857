package optimizer

// Label is a reviewer's stated interest in a paper. The zero value stands
// for the implicit neutral state (no preference recorded).
type Label string

const (
	Interested    Label = "interested"
	NotInterested Label = "not_interested"
)

// Objective weights. A neutral pair still contributes +1 so the solver
// prefers filling required slots over leaving slack when no explicit
// preference differentiates the candidates.
const (
	DefaultPenaltyWeight = 5
	interestedWeight     = 2
	neutralWeight        = 1
)

// PairKey identifies one (paper, reviewer) decision variable.
type PairKey struct {
	PaperID    int
	ReviewerID int
}

// Problem is the reviewer-assignment instance built from a conference
// snapshot plus the administrator-supplied capacity parameters.
type Problem struct {
	PaperIDs    []int
	ReviewerIDs []int
	Preferences map[PairKey]Label

	MaxPapersPerReviewer      int
	RequiredReviewersPerPaper int

	// PenaltyWeight is the objective cost of assigning a not_interested
	// pair. Zero means DefaultPenaltyWeight.
	PenaltyWeight float64
}

func (p *Problem) penalty() float64 {
	if p.PenaltyWeight > 0 {
		return p.PenaltyWeight
	}
	return DefaultPenaltyWeight
}

// varIndex lays the (paper, reviewer) cross-product out row-major.
func (p *Problem) varIndex(paperIdx, reviewerIdx int) int {
	return paperIdx*len(p.ReviewerIDs) + reviewerIdx
}

func (p *Problem) weight(paperID, reviewerID int) float64 {
	switch p.Preferences[PairKey{PaperID: paperID, ReviewerID: reviewerID}] {
	case Interested:
		return interestedWeight
	case NotInterested:
		return -p.penalty()
	default:
		return neutralWeight
	}
}

// BuildModel translates the problem into a binary linear model:
//
//   - one binary variable per (paper, reviewer) pair,
//   - maximize the summed preference weight of selected pairs,
//   - per paper: at least RequiredReviewersPerPaper reviewers,
//   - per reviewer: at most MaxPapersPerReviewer papers.
//
// Disliked pairs are penalized, never forbidden: with a small reviewer pool
// a hard exclusion could make the per-paper minimum infeasible even though
// enough raw capacity exists.
func (p *Problem) BuildModel() *Model {
	numVars := len(p.PaperIDs) * len(p.ReviewerIDs)
	m := &Model{
		NumVars:     numVars,
		Objective:   make([]float64, numVars),
		Constraints: make([]Constraint, 0, len(p.PaperIDs)+len(p.ReviewerIDs)),
	}

	for pi, paperID := range p.PaperIDs {
		for ri, reviewerID := range p.ReviewerIDs {
			m.Objective[p.varIndex(pi, ri)] = p.weight(paperID, reviewerID)
		}
	}

	for pi := range p.PaperIDs {
		row := Constraint{
			Entries: make([]Nonzero, 0, len(p.ReviewerIDs)),
			Lower:   float64(p.RequiredReviewersPerPaper),
			Upper:   Inf,
		}
		for ri := range p.ReviewerIDs {
			row.Entries = append(row.Entries, Nonzero{Var: p.varIndex(pi, ri), Coef: 1})
		}
		m.Constraints = append(m.Constraints, row)
	}

	for ri := range p.ReviewerIDs {
		row := Constraint{
			Entries: make([]Nonzero, 0, len(p.PaperIDs)),
			Lower:   0,
			Upper:   float64(p.MaxPapersPerReviewer),
		}
		for pi := range p.PaperIDs {
			row.Entries = append(row.Entries, Nonzero{Var: p.varIndex(pi, ri), Coef: 1})
		}
		m.Constraints = append(m.Constraints, row)
	}

	return m
}

// Assignments extracts the selected pairs from a solved model. Values are
// read with a rounding tolerance: anything >= 0.5 counts as selected.
func (p *Problem) Assignments(sol *Solution) []PairKey {
	var pairs []PairKey
	for pi, paperID := range p.PaperIDs {
		for ri, reviewerID := range p.ReviewerIDs {
			if sol.Values[p.varIndex(pi, ri)] >= 0.5 {
				pairs = append(pairs, PairKey{PaperID: paperID, ReviewerID: reviewerID})
			}
		}
	}
	return pairs
}
