package core

import (
	"math"
	"sort"
)

// Filter narrows a transaction set. All set fields are combined with AND;
// the zero Filter matches everything. A start date after the end date
// simply yields an empty result.
type Filter struct {
	Kind       Kind // empty matches both kinds
	CategoryID string
	StartDate  *Date // inclusive
	EndDate    *Date // inclusive
	MinAmount  *int64
	MaxAmount  *int64
}

// Matches reports whether t passes every set field of the filter.
func (f Filter) Matches(t Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	if f.StartDate != nil && t.Date.Before(f.StartDate.Time) {
		return false
	}
	if f.EndDate != nil && t.Date.After(f.EndDate.Time) {
		return false
	}
	if f.MinAmount != nil && t.Amount.Units < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && t.Amount.Units > *f.MaxAmount {
		return false
	}
	return true
}

// CategorySummary is one row of the per-category breakdown. The display
// fields come from the first transaction seen in the group.
type CategorySummary struct {
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	CategoryIcon  string  `json:"categoryIcon"`
	CategoryColor string  `json:"categoryColor"`
	Total         Money   `json:"total"`
	Percentage    float64 `json:"percentage"`
	Count         int     `json:"count"`
}

// Summary aggregates a transaction set: totals, balance and the category
// breakdown sorted by total descending.
type Summary struct {
	TotalIncome      Money             `json:"totalIncome"`
	TotalExpense     Money             `json:"totalExpense"`
	Balance          Money             `json:"balance"`
	TransactionCount int               `json:"transactionCount"`
	ByCategory       []CategorySummary `json:"byCategory"`
}

// Summarize computes the Summary for the given snapshot, optionally
// narrowed by filter. It is a pure function: the input is only read and
// its invariants (positive amounts, valid kinds) are trusted.
func Summarize(transactions []Transaction, filter *Filter) Summary {
	var s Summary
	matched := make([]Transaction, 0, len(transactions))

	for _, t := range transactions {
		if filter != nil && !filter.Matches(t) {
			continue
		}
		matched = append(matched, t)
		s.TransactionCount++
		switch t.Kind {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	// The breakdown covers the spending side of the period: expenses when
	// any exist, otherwise income. This keeps category totals summing to
	// the denominator and percentages summing to 100.
	breakdownKind := Expense
	denominator := s.TotalExpense.Units
	if denominator == 0 {
		breakdownKind = Income
		denominator = s.TotalIncome.Units
	}

	groups := make(map[string]*CategorySummary)
	var order []string
	for _, t := range matched {
		if t.Kind != breakdownKind {
			continue
		}
		g, ok := groups[t.CategoryID]
		if !ok {
			g = &CategorySummary{
				CategoryID:    t.CategoryID,
				CategoryName:  t.CategoryName,
				CategoryIcon:  t.CategoryIcon,
				CategoryColor: t.CategoryColor,
			}
			groups[t.CategoryID] = g
			order = append(order, t.CategoryID)
		}
		g.Total = g.Total.Add(t.Amount)
		g.Count++
	}

	s.ByCategory = make([]CategorySummary, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if denominator > 0 {
			g.Percentage = round1(float64(g.Total.Units) / float64(denominator) * 100)
		}
		s.ByCategory = append(s.ByCategory, *g)
	}

	// Stable keeps encounter order for equal totals.
	sort.SliceStable(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Total.Units > s.ByCategory[j].Total.Units
	})

	return s
}

// round1 rounds to one decimal place, the display precision used for all
// percentages.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
