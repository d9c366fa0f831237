package reports

import (
	"fmt"
	"sort"
	"time"
)

// Granularity selects the calendar bucket orders are grouped under.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

// ParseGranularity maps the group_by query value to a Granularity.
// Empty defaults to Daily.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly, Yearly:
		return Granularity(s), nil
	case "":
		return Daily, nil
	}
	return "", fmt.Errorf("unknown group_by %q", s)
}

// Label renders the period bucket for t. All formats are zero padded so the
// lexical order of labels matches chronological order.
func (g Granularity) Label(t time.Time) string {
	switch g {
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return t.Format("2006-01")
	case Yearly:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// OrderEntry is the slice of an order the report cares about.
type OrderEntry struct {
	CreatedAt    time.Time
	TotalRevenue float64
	TotalCost    float64
}

// PeriodSummary is one aggregated row of the sales report.
type PeriodSummary struct {
	Period       string  `json:"period"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
}

// Summarize groups the order history by period label and sums revenue, cost
// and profit per bucket, sorted by label. An empty history yields an empty
// slice, never an error.
func Summarize(entries []OrderEntry, g Granularity) []PeriodSummary {
	buckets := make(map[string]*PeriodSummary)
	for _, e := range entries {
		label := g.Label(e.CreatedAt)
		row, ok := buckets[label]
		if !ok {
			row = &PeriodSummary{Period: label}
			buckets[label] = row
		}
		row.TotalRevenue += e.TotalRevenue
		row.TotalCost += e.TotalCost
		row.Profit += e.TotalRevenue - e.TotalCost
	}

	out := make([]PeriodSummary, 0, len(buckets))
	for _, row := range buckets {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period < out[j].Period
	})
	return out
}
