package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
)

type recordingNotifier struct {
	published []core.Goal
	err       error
}

func (n *recordingNotifier) PublishGoalCompleted(_ context.Context, g core.Goal) error {
	n.published = append(n.published, g)
	return n.err
}

func TestGoalCreateDefaults(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{
		Name:     "Viaje a Japón",
		Target:   core.Money{Units: 1_000_000},
		Deadline: core.NewDate(2026, 6, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Error("ID should be assigned")
	}
	if created.Icon == "" || created.Color == "" {
		t.Errorf("icon/color should default, got %q/%q", created.Icon, created.Color)
	}
	if created.Completed {
		t.Error("fresh goal should not be completed")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be stamped")
	}
}

func TestGoalCreateInvalid(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	cases := []core.Goal{
		{Name: "", Target: core.Money{Units: 100}},
		{Name: "x", Target: core.Money{Units: 0}},
		{Name: "x", Target: core.Money{Units: -10}},
	}
	for i, g := range cases {
		if _, err := svc.Create(ctx, g); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestGoalUpdatePreservesProgress(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewGoalService(newTestStorage(t), notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Casa", Target: core.Money{Units: 1000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 400},
		Date:   core.NewDate(2025, 2, 1),
	}); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	updated, err := svc.Update(ctx, core.Goal{
		ID:       created.ID,
		Name:     "Casa propia",
		Target:   core.Money{Units: 2000},
		Deadline: core.NewDate(2027, 1, 1),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Current.Units != 400 {
		t.Errorf("current = %d, want 400 preserved", updated.Current.Units)
	}
	if updated.Name != "Casa propia" || updated.Target.Units != 2000 {
		t.Errorf("edits not applied: %+v", updated)
	}
	if updated.Icon != created.Icon || updated.Color != created.Color {
		t.Errorf("empty icon/color should keep existing values")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt changed on update")
	}
}

func TestContributeAccumulates(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Moto", Target: core.Money{Units: 5000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var goal core.Goal
	for i, units := range []int64{1000, 1500} {
		_, goal, err = svc.Contribute(ctx, core.Contribution{
			GoalID: created.ID,
			Amount: core.Money{Units: units},
			Date:   core.NewDate(2025, 1, i+1),
		})
		if err != nil {
			t.Fatalf("contribute %d: %v", i, err)
		}
	}
	if goal.Current.Units != 2500 {
		t.Errorf("current = %d, want 2500", goal.Current.Units)
	}
	if goal.Completed {
		t.Error("goal should not be completed at 50%")
	}

	contribs, err := svc.Contributions(ctx, created.ID)
	if err != nil {
		t.Fatalf("contributions: %v", err)
	}
	if len(contribs) != 2 {
		t.Errorf("contributions = %d, want 2", len(contribs))
	}
}

func TestContributeCompletesOnce(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewGoalService(newTestStorage(t), notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Fondo", Target: core.Money{Units: 1000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, goal, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 1200},
		Date:   core.NewDate(2025, 2, 1),
	})
	if err != nil {
		t.Fatalf("contribute: %v", err)
	}
	if !goal.Completed {
		t.Fatal("goal should be completed after crossing the target")
	}
	if goal.CompletedAt.IsZero() {
		t.Fatal("completedAt should be stamped")
	}
	completedAt := goal.CompletedAt

	// A second contribution keeps accumulating but neither re-stamps
	// completion nor re-notifies.
	_, goal, err = svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 300},
		Date:   core.NewDate(2025, 2, 10),
	})
	if err != nil {
		t.Fatalf("second contribute: %v", err)
	}
	if goal.Current.Units != 1500 {
		t.Errorf("current = %d, want 1500", goal.Current.Units)
	}
	if !goal.CompletedAt.Equal(completedAt) {
		t.Errorf("completedAt re-stamped: %v vs %v", goal.CompletedAt, completedAt)
	}
	if len(notifier.published) != 1 {
		t.Errorf("notifications = %d, want exactly 1", len(notifier.published))
	}
	if len(notifier.published) == 1 && notifier.published[0].ID != created.ID {
		t.Errorf("notified goal = %s, want %s", notifier.published[0].ID, created.ID)
	}
}

func TestContributeNotifierFailureDoesNotFail(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("broker down")}
	svc := NewGoalService(newTestStorage(t), notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Fondo", Target: core.Money{Units: 100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, goal, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 100},
		Date:   core.NewDate(2025, 1, 1),
	})
	if err != nil {
		t.Fatalf("contribute should succeed despite notifier error: %v", err)
	}
	if !goal.Completed {
		t.Error("goal should be completed")
	}
}

func TestContributeInvalid(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Fondo", Target: core.Money{Units: 100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 0},
		Date:   core.NewDate(2025, 1, 1),
	}); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: "goal-nope",
		Amount: core.Money{Units: 10},
		Date:   core.NewDate(2025, 1, 1),
	}); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalProgressThroughService(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{
		Name:     "Viaje",
		Target:   core.Money{Units: 1000},
		Deadline: core.DateOf(time.Now().Add(10 * 24 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 250},
		Date:   core.DateOf(time.Now()),
	}); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	p, err := svc.Progress(ctx, created.ID, time.Now())
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.Percentage != 25.0 {
		t.Errorf("percentage = %v, want 25.0", p.Percentage)
	}
	if p.Status != core.StatusInProgress {
		t.Errorf("status = %v, want in-progress", p.Status)
	}

	if _, err := svc.Progress(ctx, "goal-nope", time.Now()); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGoalStatistics(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, core.Goal{Name: "A", Target: core.Money{Units: 100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, core.Goal{Name: "B", Target: core.Money{Units: 400}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: a.ID,
		Amount: core.Money{Units: 100},
		Date:   core.NewDate(2025, 1, 1),
	}); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.TotalGoals != 2 || stats.CompletedGoals != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGoalDeleteRemovesContributions(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Goal{Name: "Temp", Target: core.Money{Units: 100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: created.ID,
		Amount: core.Money{Units: 50},
		Date:   core.NewDate(2025, 1, 1),
	}); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Contributions(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("contributions for deleted goal: expected ErrNotFound, got %v", err)
	}
}

func TestProgressActiveSkipsCompleted(t *testing.T) {
	svc := NewGoalService(newTestStorage(t), nil)
	ctx := context.Background()

	open, err := svc.Create(ctx, core.Goal{Name: "Open", Target: core.Money{Units: 1000}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	done, err := svc.Create(ctx, core.Goal{Name: "Done", Target: core.Money{Units: 100}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.Contribute(ctx, core.Contribution{
		GoalID: done.ID,
		Amount: core.Money{Units: 100},
		Date:   core.NewDate(2025, 1, 1),
	}); err != nil {
		t.Fatalf("contribute: %v", err)
	}

	progress, err := svc.ProgressActive(ctx, time.Now())
	if err != nil {
		t.Fatalf("active progress: %v", err)
	}
	if len(progress) != 1 || progress[0].GoalID != open.ID {
		t.Errorf("active progress = %+v", progress)
	}
}
