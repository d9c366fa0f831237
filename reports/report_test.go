package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseGranularity(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly", "yearly"} {
		g, err := ParseGranularity(valid)
		assert.NoError(t, err)
		assert.Equal(t, Granularity(valid), g)
	}

	g, err := ParseGranularity("")
	assert.NoError(t, err)
	assert.Equal(t, Daily, g)

	_, err = ParseGranularity("hourly")
	assert.Error(t, err)
}

func TestPeriodLabels(t *testing.T) {
	// 2025-01-01 is a Wednesday in ISO week 1
	ts := time.Date(2025, 1, 1, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "2025-01-01", Daily.Label(ts))
	assert.Equal(t, "2025-W01", Weekly.Label(ts))
	assert.Equal(t, "2025-01", Monthly.Label(ts))
	assert.Equal(t, "2025", Yearly.Label(ts))

	// late-December days can belong to the next ISO year
	ts = time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W01", Weekly.Label(ts))
}

func TestSummarizeMonthly(t *testing.T) {
	entries := []OrderEntry{
		{CreatedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), TotalRevenue: 10, TotalCost: 4},
		{CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), TotalRevenue: 5, TotalCost: 2},
		{CreatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC), TotalRevenue: 20, TotalCost: 8},
	}

	rows := Summarize(entries, Monthly)
	assert.Len(t, rows, 2)

	assert.Equal(t, "2025-01", rows[0].Period)
	assert.Equal(t, 15.0, rows[0].TotalRevenue)
	assert.Equal(t, 6.0, rows[0].TotalCost)
	assert.Equal(t, 9.0, rows[0].Profit)

	assert.Equal(t, "2025-02", rows[1].Period)
	assert.Equal(t, 20.0, rows[1].TotalRevenue)
	assert.Equal(t, 8.0, rows[1].TotalCost)
	assert.Equal(t, 12.0, rows[1].Profit)
}

func TestSummarizeSortsByLabel(t *testing.T) {
	entries := []OrderEntry{
		{CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), TotalRevenue: 1},
		{CreatedAt: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), TotalRevenue: 1},
		{CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), TotalRevenue: 1},
	}

	rows := Summarize(entries, Daily)
	assert.Equal(t, []string{"2024-12-31", "2025-01-15", "2025-03-01"},
		[]string{rows[0].Period, rows[1].Period, rows[2].Period})
}

func TestSummarizeEmpty(t *testing.T) {
	rows := Summarize(nil, Daily)
	assert.Empty(t, rows)
}

func TestRenderLineChart(t *testing.T) {
	rows := []PeriodSummary{
		{Period: "2025-01", TotalRevenue: 15, TotalCost: 6, Profit: 9},
		{Period: "2025-02", TotalRevenue: 20, TotalCost: 8, Profit: 12},
	}

	var buf bytes.Buffer
	err := RenderLineChart(&buf, rows)
	assert.NoError(t, err)
	// PNG magic bytes
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderLineChartNotEnoughData(t *testing.T) {
	var buf bytes.Buffer

	err := RenderLineChart(&buf, nil)
	assert.ErrorIs(t, err, ErrNotEnoughData)

	err = RenderLineChart(&buf, []PeriodSummary{{Period: "2025-01"}})
	assert.ErrorIs(t, err, ErrNotEnoughData)
	assert.Zero(t, buf.Len())
}
