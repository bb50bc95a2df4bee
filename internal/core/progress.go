package core

import "time"

const (
	StatusNotStarted GoalStatus = "not-started"
	StatusInProgress GoalStatus = "in-progress"
	StatusCompleted  GoalStatus = "completed"
	StatusOverdue    GoalStatus = "overdue"
)

// GoalStatus is the coarse lifecycle state derived for display.
type GoalStatus string

// Progress carries the derived completion and pacing metrics for one
// goal. DaysRemaining and DailyRequired are nil when the goal has no
// deadline (or, for DailyRequired, when nothing further is owed).
type Progress struct {
	GoalID        string     `json:"goalId"`
	GoalName      string     `json:"goalName"`
	Percentage    float64    `json:"percentage"`
	Remaining     Money      `json:"remaining"`
	DaysRemaining *int       `json:"daysRemaining,omitempty"`
	DailyRequired *float64   `json:"dailyRequired,omitempty"`
	IsOnTrack     bool       `json:"isOnTrack"`
	Status        GoalStatus `json:"status"`
}

// GoalProgress derives the Progress of g as of the given instant. Pure
// computation over the snapshot; the caller resolves the goal first.
//
// The on-track check is a linear expectation: it assumes an even saving
// pace from creation to deadline and compares actual percentage against
// the share of elapsed time. Irregular contribution patterns are not
// modelled.
func GoalProgress(g Goal, asOf time.Time) Progress {
	p := Progress{
		GoalID:    g.ID,
		GoalName:  g.Name,
		IsOnTrack: true,
	}

	var percentage float64
	if g.Target.Units > 0 {
		percentage = float64(g.Current.Units) / float64(g.Target.Units) * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	p.Percentage = round1(percentage)

	if remaining := g.Target.Sub(g.Current); remaining.Units > 0 {
		p.Remaining = remaining
	}

	if !g.Deadline.IsZero() {
		days := g.Deadline.DaysUntil(asOf)
		p.DaysRemaining = &days

		if days > 0 && p.Remaining.Units > 0 {
			required := float64(p.Remaining.Units) / float64(days)
			p.DailyRequired = &required
		}

		if days > 0 {
			totalDays := g.Deadline.DaysUntil(g.CreatedAt)
			if totalDays > 0 {
				elapsed := totalDays - days
				expected := float64(elapsed) / float64(totalDays) * 100
				p.IsOnTrack = percentage >= expected
			}
		} else {
			// Deadline passed or is today: pacing no longer applies.
			p.IsOnTrack = g.Completed
		}
	}

	p.Status = goalStatus(g, p)
	return p
}

// goalStatus applies the fixed priority order: completed beats everything,
// an untouched goal is not-started even past its deadline, then overdue,
// then in-progress.
func goalStatus(g Goal, p Progress) GoalStatus {
	switch {
	case g.Completed:
		return StatusCompleted
	case p.Percentage == 0:
		return StatusNotStarted
	case p.DaysRemaining != nil && *p.DaysRemaining < 0:
		return StatusOverdue
	default:
		return StatusInProgress
	}
}

// GoalStatistics is the aggregate view across every goal, shown on the
// goals dashboard.
type GoalStatistics struct {
	TotalGoals      int     `json:"totalGoals"`
	ActiveGoals     int     `json:"activeGoals"`
	CompletedGoals  int     `json:"completedGoals"`
	TotalTarget     Money   `json:"totalTargetAmount"`
	TotalSaved      Money   `json:"totalSavedAmount"`
	TotalRemaining  Money   `json:"totalRemaining"`
	OverallProgress float64 `json:"overallProgress"`
}

// SummarizeGoals aggregates targets and savings across goals. Overall
// progress is unclamped per goal but bounded by the aggregate target.
func SummarizeGoals(goals []Goal) GoalStatistics {
	var s GoalStatistics
	s.TotalGoals = len(goals)
	for _, g := range goals {
		if g.Completed {
			s.CompletedGoals++
		} else {
			s.ActiveGoals++
		}
		s.TotalTarget = s.TotalTarget.Add(g.Target)
		s.TotalSaved = s.TotalSaved.Add(g.Current)
	}
	s.TotalRemaining = s.TotalTarget.Sub(s.TotalSaved)
	if s.TotalTarget.Units > 0 {
		s.OverallProgress = round1(float64(s.TotalSaved.Units) / float64(s.TotalTarget.Units) * 100)
	}
	return s
}
