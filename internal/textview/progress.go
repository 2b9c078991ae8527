package textview

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/progress"
)

// BarWidth is the number of cells of a text progress bar
const BarWidth = 24

// ProgressBar draws fraction as a fixed width bar
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		width = BarWidth
	}
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// ProgressRow renders one bar with its percentage, label and sizes
func ProgressRow(bar progress.Bar) string {
	name := bar.Title
	if name == "" {
		name = bar.ID
	}
	size := humanize.Bytes(uint64(math.Max(bar.Value, 0)))
	if bar.Max > 0 {
		size += " / " + humanize.Bytes(uint64(bar.Max))
	}
	return fmt.Sprintf("%s %3.0f%%  %s  %s  %s",
		ProgressBar(bar.Fraction(), BarWidth),
		bar.Fraction()*100,
		name,
		labelStyle.Render(bar.Label),
		labelStyle.Render(size),
	)
}

// ProgressTable renders every bar, or a placeholder when there are none
func ProgressTable(bars []progress.Bar) string {
	if len(bars) == 0 {
		return labelStyle.Render("no active downloads")
	}
	rows := make([]string, 0, len(bars))
	for _, bar := range bars {
		rows = append(rows, ProgressRow(bar))
	}
	return strings.Join(rows, "\n")
}

// Status renders the server status line
func Status(status model.ServerStatus, server string) string {
	if status.IsRunning() {
		return runningStyle.Render("● running") + " " + labelStyle.Render(server)
	}
	return stoppedStyle.Render("○ "+status.String()) + " " + labelStyle.Render(server)
}
