package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/progress"
)

// ProgressRow shows one active download. Tapping it re-inquires its video.
type ProgressRow struct {
	widget.BaseWidget

	bar progress.Bar

	titleLabel   *widget.Label
	rateLabel    *widget.Label
	sizeLabel    *widget.Label
	percentLabel *widget.Label
	progressBar  *widget.ProgressBar

	onTapped func(vid string)
}

var _ fyne.Tappable = (*ProgressRow)(nil)

// NewProgressRow creates a row for bar
func NewProgressRow(bar progress.Bar) *ProgressRow {
	r := &ProgressRow{}
	r.ExtendBaseWidget(r)
	r.createUI()
	r.UpdateBar(bar)
	return r
}

// SetOnTapped sets the callback receiving the bar's video id
func (r *ProgressRow) SetOnTapped(callback func(vid string)) {
	r.onTapped = callback
}

// Bar returns the bar currently shown
func (r *ProgressRow) Bar() progress.Bar {
	return r.bar
}

// UpdateBar refreshes the row from bar. Must run on the UI goroutine.
func (r *ProgressRow) UpdateBar(bar progress.Bar) {
	r.bar = bar

	r.titleLabel.SetText(cleanText(bar.Tooltip()))
	r.rateLabel.SetText(bar.Label)

	if bar.ETA != "" && bar.ETA != model.LabelPlaceholder {
		r.sizeLabel.SetText(bar.ETA)
	} else {
		r.sizeLabel.SetText("")
	}

	r.progressBar.Max = 1
	r.progressBar.SetValue(bar.Fraction())
	r.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, int(bar.Fraction()*MaxProgressPercent)))
}

// Tapped re-inquires the video of the download
func (r *ProgressRow) Tapped(*fyne.PointEvent) {
	if r.onTapped != nil && r.bar.VID != "" {
		r.onTapped(r.bar.VID)
	}
}

func (r *ProgressRow) createUI() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	r.titleLabel.Truncation = fyne.TextTruncateEllipsis

	r.rateLabel = widget.NewLabel("")
	r.rateLabel.TextStyle = fyne.TextStyle{Monospace: true}

	r.sizeLabel = widget.NewLabel("")
	r.sizeLabel.Alignment = fyne.TextAlignTrailing

	r.percentLabel = widget.NewLabel("")
	r.percentLabel.Alignment = fyne.TextAlignTrailing

	r.progressBar = widget.NewProgressBar()
	r.progressBar.TextFormatter = func() string { return "" }
}

// CreateRenderer lays the row out as title, bar and rate/ETA line
func (r *ProgressRow) CreateRenderer() fyne.WidgetRenderer {
	barRow := container.NewBorder(nil, nil, nil, r.percentLabel, r.progressBar)
	infoRow := container.NewBorder(nil, nil, nil, r.sizeLabel, r.rateLabel)
	return widget.NewSimpleRenderer(container.NewVBox(r.titleLabel, barRow, infoRow))
}

// MinSize keeps rows readable in narrow windows
func (r *ProgressRow) MinSize() fyne.Size {
	size := r.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}

// cleanText removes control characters that break single line labels
func cleanText(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s))
}
