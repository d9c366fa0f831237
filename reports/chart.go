package reports

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNotEnoughData means the report has fewer than two periods, which is not
// enough to draw a line.
var ErrNotEnoughData = errors.New("need at least two periods to draw a chart")

// RenderLineChart writes a PNG line chart with one series each for revenue,
// cost and profit per period.
func RenderLineChart(w io.Writer, rows []PeriodSummary) error {
	if len(rows) < 2 {
		return ErrNotEnoughData
	}

	xs := make([]float64, len(rows))
	revenue := make([]float64, len(rows))
	cost := make([]float64, len(rows))
	profit := make([]float64, len(rows))
	ticks := make([]chart.Tick, len(rows))

	for i, row := range rows {
		xs[i] = float64(i)
		revenue[i] = row.TotalRevenue
		cost[i] = row.TotalCost
		profit[i] = row.Profit
		ticks[i] = chart.Tick{Value: float64(i), Label: row.Period}
	}

	graph := chart.Chart{
		Width:  900,
		Height: 400,
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Revenue", XValues: xs, YValues: revenue},
			chart.ContinuousSeries{Name: "Cost", XValues: xs, YValues: cost},
			chart.ContinuousSeries{Name: "Profit", XValues: xs, YValues: profit},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
