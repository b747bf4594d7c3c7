package ui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	ntrunes "github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/NanoLab/internal/app"
)

const (
	chartHeight       = 12
	minChartWidth     = 24
	defaultChartWidth = 64
)

// renderExperiment plots the experiment readings against their sample index
func renderExperiment(exp *app.Experiment, width int, styles Styles) string {
	data := exp.Data()
	if len(data) == 0 {
		return styles.Muted.Render("No data yet. Press r to run the experiment.")
	}

	chartWidth := defaultChartWidth
	if width > 0 {
		chartWidth = max(width, minChartWidth)
	}

	maxX := float64(max(len(data)-1, 1))
	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Theme.Button))
	lc := linechart.New(chartWidth, chartHeight, 0, maxX, 0, float64(exp.MaxValue()),
		linechart.WithXYSteps(4, 2),
		linechart.WithStyles(styles.Muted, styles.Muted, lineStyle),
	)
	lc.DrawXYAxisAndLabel()

	point := func(i int) canvas.Float64Point {
		return canvas.Float64Point{X: float64(i), Y: float64(data[i])}
	}
	if len(data) == 1 {
		lc.DrawRuneWithStyle(point(0), '•', lineStyle)
	}
	for i := 1; i < len(data); i++ {
		lc.DrawLineWithStyle(point(i-1), point(i), ntrunes.ArcLineStyle, lineStyle)
	}

	lo, hi, mean := exp.Stats()
	legend := styles.Muted.Render(fmt.Sprintf("run %d | %d samples in [0, %d] | min %d  max %d  mean %.2f",
		exp.Runs(), len(data), exp.MaxValue(), lo, hi, mean))

	return lipgloss.JoinVertical(lipgloss.Left, lc.View(), legend)
}
