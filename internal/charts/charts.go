// Package charts renders the monthly report images as PNG using
// go-chart.
package charts

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/MaxParkR/StepMoney/internal/core"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// CategoryBreakdown renders a pie chart of the summary's per-category
// totals. Returns nil bytes when there is nothing to draw.
func (g *Generator) CategoryBreakdown(s core.Summary) ([]byte, error) {
	if len(s.ByCategory) == 0 {
		return nil, nil
	}

	values := make([]chart.Value, 0, len(s.ByCategory))
	for _, row := range s.ByCategory {
		// Slivers below 1% clutter the chart more than they inform.
		if row.Percentage < 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %d (%.1f%%)", row.CategoryName, row.Total.Units, row.Percentage),
			Value: row.Total.Float(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    30,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render category breakdown: %w", err)
	}
	return buffer.Bytes(), nil
}

// DailyTrend renders income and expense totals per day as two time
// series. Needs at least two distinct days; returns nil bytes otherwise.
func (g *Generator) DailyTrend(transactions []core.Transaction) ([]byte, error) {
	type dayTotals struct {
		income  float64
		expense float64
	}
	perDay := make(map[time.Time]*dayTotals)
	for _, t := range transactions {
		day := t.Date.Time
		totals, ok := perDay[day]
		if !ok {
			totals = &dayTotals{}
			perDay[day] = totals
		}
		switch t.Kind {
		case core.Income:
			totals.income += t.Amount.Float()
		case core.Expense:
			totals.expense += t.Amount.Float()
		}
	}
	if len(perDay) < 2 {
		return nil, nil
	}

	days := make([]time.Time, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	incomeValues := make([]float64, len(days))
	expenseValues := make([]float64, len(days))
	for i, day := range days {
		incomeValues[i] = perDay[day].income
		expenseValues[i] = perDay[day].expense
	}

	graph := chart.Chart{
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02.01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Ingresos",
				XValues: days,
				YValues: incomeValues,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Gastos",
				XValues: days,
				YValues: expenseValues,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{FontSize: 11}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render daily trend: %w", err)
	}
	return buffer.Bytes(), nil
}
