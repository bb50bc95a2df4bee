package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/storage"
)

// GoalNotifier publishes a notification for a goal that just reached its
// target. *amqp.Client satisfies this.
type GoalNotifier interface {
	PublishGoalCompleted(ctx context.Context, g core.Goal) error
}

// GoalService owns savings goals and their contribution history. The
// running total, the completed flag and the completion timestamp are
// changed only through Contribute.
type GoalService struct {
	storage  *storage.SQLiteRepository
	notifier GoalNotifier
}

func NewGoalService(storage *storage.SQLiteRepository, notifier GoalNotifier) *GoalService {
	return &GoalService{storage: storage, notifier: notifier}
}

// Create persists a new goal. Icon and color default to a random pick
// from the standard palettes when the caller leaves them empty.
func (s *GoalService) Create(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("validate goal: %w", err)
	}

	g.ID = core.NewID("goal")
	if g.Icon == "" {
		g.Icon = core.DefaultGoalIcons[rand.IntN(len(core.DefaultGoalIcons))]
	}
	if g.Color == "" {
		g.Color = core.DefaultGoalColors[rand.IntN(len(core.DefaultGoalColors))]
	}

	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	g.Completed = g.Current.Units >= g.Target.Units
	if g.Completed {
		g.CompletedAt = now
	}

	if err := s.storage.CreateGoal(ctx, g); err != nil {
		return core.Goal{}, err
	}
	return g, nil
}

func (s *GoalService) Get(ctx context.Context, id string) (core.Goal, error) {
	return s.storage.GetGoal(ctx, id)
}

func (s *GoalService) List(ctx context.Context) ([]core.Goal, error) {
	return s.storage.ListGoals(ctx)
}

// Update edits a goal's descriptive fields. Progress state carries over
// from the stored goal untouched.
func (s *GoalService) Update(ctx context.Context, g core.Goal) (core.Goal, error) {
	existing, err := s.storage.GetGoal(ctx, g.ID)
	if err != nil {
		return core.Goal{}, err
	}

	g.Current = existing.Current
	g.Completed = existing.Completed
	g.CompletedAt = existing.CompletedAt
	g.CreatedAt = existing.CreatedAt
	if g.Icon == "" {
		g.Icon = existing.Icon
	}
	if g.Color == "" {
		g.Color = existing.Color
	}

	if err := g.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("validate goal: %w", err)
	}
	g.UpdatedAt = time.Now().UTC()

	if err := s.storage.UpdateGoal(ctx, g); err != nil {
		return core.Goal{}, err
	}

	slog.InfoContext(ctx, "Goal updated", "id", g.ID)
	return g, nil
}

// Delete removes a goal and its contributions.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.storage.DeleteGoal(ctx, id)
}

// Contribute appends a deposit to a goal and advances its running
// total. Crossing the target marks the goal completed, stamps the
// completion time once and fires a single notification.
func (s *GoalService) Contribute(ctx context.Context, c core.Contribution) (core.Contribution, core.Goal, error) {
	if err := c.Validate(); err != nil {
		return core.Contribution{}, core.Goal{}, fmt.Errorf("validate contribution: %w", err)
	}

	goal, err := s.storage.GetGoal(ctx, c.GoalID)
	if err != nil {
		return core.Contribution{}, core.Goal{}, err
	}

	c.ID = core.NewID("contrib")
	wasCompleted := goal.Completed

	goal.Current = goal.Current.Add(c.Amount)
	goal.UpdatedAt = time.Now().UTC()
	if !goal.Completed && goal.Current.Units >= goal.Target.Units {
		goal.Completed = true
		goal.CompletedAt = goal.UpdatedAt
	}

	if err := s.storage.SaveContribution(ctx, c, goal); err != nil {
		return core.Contribution{}, core.Goal{}, err
	}

	if !wasCompleted && goal.Completed {
		s.notifyCompleted(ctx, goal)
	}

	return c, goal, nil
}

// Contributions lists a goal's deposit history, newest first.
func (s *GoalService) Contributions(ctx context.Context, goalID string) ([]core.Contribution, error) {
	if _, err := s.storage.GetGoal(ctx, goalID); err != nil {
		return nil, err
	}
	return s.storage.ListContributions(ctx, goalID)
}

// Progress evaluates a goal's standing as of now.
func (s *GoalService) Progress(ctx context.Context, goalID string, asOf time.Time) (core.Progress, error) {
	goal, err := s.storage.GetGoal(ctx, goalID)
	if err != nil {
		return core.Progress{}, err
	}
	return core.GoalProgress(goal, asOf), nil
}

// ProgressActive evaluates every goal still in flight.
func (s *GoalService) ProgressActive(ctx context.Context, asOf time.Time) ([]core.Progress, error) {
	goals, err := s.storage.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	progress := make([]core.Progress, 0, len(goals))
	for _, g := range goals {
		if g.Completed {
			continue
		}
		progress = append(progress, core.GoalProgress(g, asOf))
	}
	return progress, nil
}

// Statistics aggregates all goals into one overview.
func (s *GoalService) Statistics(ctx context.Context) (core.GoalStatistics, error) {
	goals, err := s.storage.ListGoals(ctx)
	if err != nil {
		return core.GoalStatistics{}, err
	}
	return core.SummarizeGoals(goals), nil
}

func (s *GoalService) notifyCompleted(ctx context.Context, g core.Goal) {
	if s.notifier == nil {
		slog.WarnContext(ctx, "Notifier not available, skipping goal completed message", "goal_id", g.ID)
		return
	}
	// The goal is already saved; a failed notification must not fail
	// the contribution.
	if err := s.notifier.PublishGoalCompleted(ctx, g); err != nil {
		slog.ErrorContext(ctx, "Failed to publish goal completed message",
			"goal_id", g.ID, "error", err)
	}
}
