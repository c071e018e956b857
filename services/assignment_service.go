package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"conference-review-api/models"
	"conference-review-api/optimizer"
)

const defaultSolveBudget = 30 * time.Second

// One engine run per conference at a time. The guard is process-local;
// across instances the replace-all transaction still gives
// last-writer-wins.
var (
	runGuardMu   sync.Mutex
	runsInFlight = make(map[int]struct{})
)

func tryAcquireRun(conferenceID int) bool {
	runGuardMu.Lock()
	defer runGuardMu.Unlock()
	if _, busy := runsInFlight[conferenceID]; busy {
		return false
	}
	runsInFlight[conferenceID] = struct{}{}
	return true
}

func releaseRun(conferenceID int) {
	runGuardMu.Lock()
	defer runGuardMu.Unlock()
	delete(runsInFlight, conferenceID)
}

type AssignmentService struct {
	db          *gorm.DB
	snapshots   *SnapshotService
	solver      optimizer.Solver
	solveBudget time.Duration
}

// NewAssignmentService builds the engine. A nil solver selects the
// implementation named by ASSIGN_SOLVER (default "highs").
func NewAssignmentService(db *gorm.DB, solver optimizer.Solver) *AssignmentService {
	if solver == nil {
		solver = defaultSolver()
	}
	return &AssignmentService{
		db:          db,
		snapshots:   NewSnapshotService(db),
		solver:      solver,
		solveBudget: solveBudgetFromEnv(),
	}
}

func defaultSolver() optimizer.Solver {
	if os.Getenv("ASSIGN_SOLVER") == "exhaustive" {
		return optimizer.NewExhaustiveSolver()
	}
	return optimizer.NewHighsSolver()
}

func solveBudgetFromEnv() time.Duration {
	if raw := os.Getenv("SOLVER_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultSolveBudget
}

// RunAutomaticAssignment computes and commits a full reviewer assignment for
// the conference. On success every prior assignment row for the conference
// has been replaced and the auto-assign flag is set; on any failure the
// prior state is untouched. Returns the number of assignments created.
func (s *AssignmentService) RunAutomaticAssignment(adminUserID, conferenceID, maxPapersPerReviewer, requiredReviewersPerPaper int) (int, error) {
	if adminUserID <= 0 || conferenceID <= 0 || maxPapersPerReviewer < 1 || requiredReviewersPerPaper < 1 {
		return 0, fmt.Errorf("missing required fields: %w", ErrValidation)
	}

	var admin models.User
	if err := s.db.First(&admin, "user_id = ?", adminUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("user %d: %w", adminUserID, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to load user %d: %w", adminUserID, err)
	}
	var conference models.Conference
	if err := s.db.First(&conference, "conference_id = ?", conferenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("conference %d: %w", conferenceID, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to load conference %d: %w", conferenceID, err)
	}

	isAdmin, err := userHoldsRole(s.db, adminUserID, conferenceID, models.RoleAdmin)
	if err != nil {
		return 0, err
	}
	if !isAdmin {
		return 0, fmt.Errorf("only the conference admin can run automatic assignment: %w", ErrAuthorization)
	}

	if !tryAcquireRun(conferenceID) {
		return 0, fmt.Errorf("an assignment run is already in progress for conference %d: %w", conferenceID, ErrConflict)
	}
	defer releaseRun(conferenceID)

	snapshot, err := s.snapshots.LoadConferenceSnapshot(conferenceID)
	if err != nil {
		return 0, err
	}
	if len(snapshot.ReviewerIDs) == 0 {
		return 0, fmt.Errorf("no reviewers found for conference %d: %w", conferenceID, ErrNotFound)
	}

	runID := uuid.NewString()
	log.Printf("[assign %s] conference %d: %d papers, %d reviewers, max=%d required=%d",
		runID, conferenceID, len(snapshot.Papers), len(snapshot.ReviewerIDs),
		maxPapersPerReviewer, requiredReviewersPerPaper)

	problem := &optimizer.Problem{
		ReviewerIDs:               snapshot.ReviewerIDs,
		Preferences:               snapshot.Preferences,
		MaxPapersPerReviewer:      maxPapersPerReviewer,
		RequiredReviewersPerPaper: requiredReviewersPerPaper,
	}
	for _, paper := range snapshot.Papers {
		problem.PaperIDs = append(problem.PaperIDs, paper.PaperID)
	}

	solution, err := s.solve(problem.BuildModel())
	if err != nil {
		return 0, err
	}
	if solution.Status != optimizer.StatusOptimal {
		detail := solution.Detail
		if detail == "" {
			detail = solution.Status.String()
		}
		return 0, fmt.Errorf("solver finished with status %q: %w", detail, ErrOptimization)
	}

	pairs := problem.Assignments(solution)
	rows := make([]models.PaperReviewer, 0, len(pairs))
	for _, pair := range pairs {
		rows = append(rows, models.PaperReviewer{
			PaperID:      pair.PaperID,
			ReviewerID:   pair.ReviewerID,
			ConferenceID: conferenceID,
			Status:       models.AssignmentStatusAssigned,
		})
	}

	if err := s.replaceAssignments(conferenceID, rows); err != nil {
		return 0, err
	}

	log.Printf("[assign %s] conference %d: committed %d assignments, objective %.1f",
		runID, conferenceID, len(rows), solution.Objective)
	return len(rows), nil
}

// solve runs the solver under the wall-clock budget. A timed-out solve is
// indistinguishable from a non-optimal status for the caller; its eventual
// result is discarded.
func (s *AssignmentService) solve(m *optimizer.Model) (*optimizer.Solution, error) {
	type outcome struct {
		sol *optimizer.Solution
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		sol, err := s.solver.Solve(m)
		done <- outcome{sol: sol, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, fmt.Errorf("solver failed: %v: %w", out.err, ErrOptimization)
		}
		return out.sol, nil
	case <-time.After(s.solveBudget):
		return nil, fmt.Errorf("solver exceeded %s budget: %w", s.solveBudget, ErrOptimization)
	}
}

// replaceAssignments atomically swaps the conference's assignment set and
// flips the auto-assign flag. Rows of other conferences are never touched.
func (s *AssignmentService) replaceAssignments(conferenceID int, rows []models.PaperReviewer) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conference_id = ?", conferenceID).
			Delete(&models.PaperReviewer{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Conference{}).
			Where("conference_id = ?", conferenceID).
			Update("automatic_assign_status", true).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace assignments for conference %d: %v: %w", conferenceID, err, ErrPersistence)
	}
	return nil
}

// AssignReviewerToPaper manually adds one reviewer, looked up by email, to a
// paper of the conference. Admin-only.
func (s *AssignmentService) AssignReviewerToPaper(adminUserID, conferenceID, paperID int, reviewerEmail string) error {
	reviewer, paper, err := s.resolveManualAssignment(adminUserID, conferenceID, paperID, reviewerEmail)
	if err != nil {
		return err
	}

	var duplicates int64
	if err := s.db.Model(&models.PaperReviewer{}).
		Where("paper_id = ? AND reviewer_id = ?", paper.PaperID, reviewer.UserID).
		Count(&duplicates).Error; err != nil {
		return fmt.Errorf("failed to check existing assignment: %w", err)
	}
	if duplicates > 0 {
		return fmt.Errorf("reviewer %s is already assigned to paper %d: %w", reviewer.Email, paperID, ErrConflict)
	}

	if err := s.db.Create(&models.PaperReviewer{
		PaperID:      paper.PaperID,
		ReviewerID:   reviewer.UserID,
		ConferenceID: conferenceID,
		Status:       models.AssignmentStatusAssigned,
	}).Error; err != nil {
		return fmt.Errorf("failed to assign reviewer: %v: %w", err, ErrPersistence)
	}
	return nil
}

// RemoveReviewerFromPaper undoes a manual or automatic assignment.
// Admin-only.
func (s *AssignmentService) RemoveReviewerFromPaper(adminUserID, conferenceID, paperID int, reviewerEmail string) error {
	reviewer, paper, err := s.resolveManualAssignment(adminUserID, conferenceID, paperID, reviewerEmail)
	if err != nil {
		return err
	}

	res := s.db.Where("paper_id = ? AND reviewer_id = ? AND conference_id = ?",
		paper.PaperID, reviewer.UserID, conferenceID).
		Delete(&models.PaperReviewer{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove reviewer: %v: %w", res.Error, ErrPersistence)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reviewer %s is not assigned to paper %d: %w", reviewer.Email, paperID, ErrNotFound)
	}
	return nil
}

// ListPaperReviewers returns the users currently assigned to the paper.
func (s *AssignmentService) ListPaperReviewers(conferenceID, paperID int) ([]models.User, error) {
	var paper models.Paper
	if err := s.db.First(&paper, "paper_id = ? AND conference_id = ?", paperID, conferenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("paper %d not found in conference %d: %w", paperID, conferenceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load paper %d: %w", paperID, err)
	}

	var reviewers []models.User
	if err := s.db.Model(&models.User{}).
		Joins("JOIN paper_reviewers ON paper_reviewers.reviewer_id = users.user_id").
		Where("paper_reviewers.paper_id = ?", paperID).
		Find(&reviewers).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviewers for paper %d: %w", paperID, err)
	}
	return reviewers, nil
}

// resolveManualAssignment runs the shared precondition chain of the manual
// endpoints: admin role, reviewer existence and role, paper membership.
func (s *AssignmentService) resolveManualAssignment(adminUserID, conferenceID, paperID int, reviewerEmail string) (*models.User, *models.Paper, error) {
	if adminUserID <= 0 || conferenceID <= 0 || paperID <= 0 || reviewerEmail == "" {
		return nil, nil, fmt.Errorf("missing required fields: %w", ErrValidation)
	}

	var conference models.Conference
	if err := s.db.First(&conference, "conference_id = ?", conferenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("conference %d: %w", conferenceID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load conference %d: %w", conferenceID, err)
	}

	isAdmin, err := userHoldsRole(s.db, adminUserID, conferenceID, models.RoleAdmin)
	if err != nil {
		return nil, nil, err
	}
	if !isAdmin {
		return nil, nil, fmt.Errorf("only the conference admin can manage assignments: %w", ErrAuthorization)
	}

	var reviewer models.User
	if err := s.db.First(&reviewer, "email = ?", reviewerEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("reviewer %s: %w", reviewerEmail, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load reviewer %s: %w", reviewerEmail, err)
	}

	holdsRole, err := userHoldsRole(s.db, reviewer.UserID, conferenceID, models.RoleReviewer)
	if err != nil {
		return nil, nil, err
	}
	if !holdsRole {
		return nil, nil, fmt.Errorf("user %s is not a reviewer for this conference: %w", reviewerEmail, ErrValidation)
	}

	var paper models.Paper
	if err := s.db.First(&paper, "paper_id = ? AND conference_id = ?", paperID, conferenceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("paper %d not found in conference %d: %w", paperID, conferenceID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to load paper %d: %w", paperID, err)
	}

	return &reviewer, &paper, nil
}
