package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// asciiChart renders a single data series as a plain line chart.
type asciiChart struct {
	title  string
	points []float64
	width  int
	height int
}

func newASCIIChart(title string, points []float64) *asciiChart {
	return &asciiChart{title: title, points: points, width: 64, height: 12}
}

func (c *asciiChart) render() string {
	if len(c.points) == 0 {
		return statusBarStyle.Render("No data to display")
	}

	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, p := range c.points {
		minVal = math.Min(minVal, p)
		maxVal = math.Max(maxVal, p)
	}
	// Padding keeps the extremes off the grid edges.
	pad := (maxVal - minVal) * 0.1
	if pad == 0 {
		pad = 1
	}
	minVal -= pad
	maxVal += pad

	yAxisWidth := 12
	chartWidth := c.width - yAxisWidth

	grid := make([][]rune, c.height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	denom := float64(len(c.points) - 1)
	if denom == 0 {
		denom = 1
	}
	prevX, prevY := -1, -1
	for i, p := range c.points {
		x := int(float64(i) / denom * float64(chartWidth-1))
		y := c.height - 1 - int((p-minVal)/(maxVal-minVal)*float64(c.height-1))
		if x >= 0 && x < chartWidth && y >= 0 && y < c.height {
			grid[y][x] = '•'
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y)
			}
			prevX, prevY = x, y
		}
	}

	var sb strings.Builder
	if c.title != "" {
		sb.WriteString(titleStyle.Render(c.title))
		sb.WriteString("\n")
	}

	axisStyle := lipgloss.NewStyle().Foreground(colorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.height-1))*(maxVal-minVal)
		sb.WriteString(axisStyle.Render(formatChartValue(yValue)))
		sb.WriteString(" ")
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}

	return sb.String()
}

// drawLine fills a straight rune path between two grid points.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	steps := maxInt(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		return
	}
	for s := 1; s < steps; s++ {
		x := x0 + (x1-x0)*s/steps
		y := y0 + (y1-y0)*s/steps
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) && grid[y][x] == ' ' {
			grid[y][x] = '·'
		}
	}
}

func formatChartValue(v float64) string {
	switch {
	case math.Abs(v) >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case math.Abs(v) >= 1e3:
		return fmt.Sprintf("$%.0fk", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
