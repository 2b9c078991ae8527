package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/clipy/internal/model"
)

// Server status colors, resolved through the current theme
const (
	ColorNameRunning fyne.ThemeColorName = "clipyRunning"
	ColorNameStopped fyne.ThemeColorName = "clipyStopped"
	ColorNameUnknown fyne.ThemeColorName = "clipyUnknown"
)

// StatusDotSize is the diameter of the server status dot
const StatusDotSize float32 = 10

// statusPalette holds the status colors for light and dark variants
var statusPalette = map[fyne.ThemeColorName][2]color.Color{
	ColorNameRunning: {color.NRGBA{R: 30, G: 150, B: 120, A: 255}, color.NRGBA{R: 80, G: 227, B: 194, A: 255}},
	ColorNameStopped: {color.NRGBA{R: 200, G: 60, B: 60, A: 255}, color.NRGBA{R: 255, G: 107, B: 107, A: 255}},
	ColorNameUnknown: {color.NRGBA{R: 140, G: 140, B: 140, A: 255}, color.NRGBA{R: 110, G: 110, B: 110, A: 255}},
}

// compactSizes shrinks paddings and text so more panels fit on screen
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// CompactTheme is the default theme with compact sizes and the server
// status colors
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates the compact theme on top of the default one
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color resolves status colors and the primary accent, deferring the rest
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if pair, ok := statusPalette[name]; ok {
		if variant == theme.VariantDark {
			return pair[1]
		}
		return pair[0]
	}
	switch name {
	case theme.ColorNameSuccess:
		return t.Color(ColorNameRunning, variant)
	case theme.ColorNameError:
		return t.Color(ColorNameStopped, variant)
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 45, G: 106, B: 128, A: 255}
	}
	return t.Theme.Color(name, variant)
}

// Size returns the compact size when one is set
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}

// statusColorName maps a server status to its theme color
func statusColorName(status model.ServerStatus) fyne.ThemeColorName {
	switch status {
	case model.ServerStatusRunning:
		return ColorNameRunning
	case model.ServerStatusStopped:
		return ColorNameStopped
	default:
		return ColorNameUnknown
	}
}

// statusColor returns the status color from the current app theme
func statusColor(status model.ServerStatus) color.Color {
	return theme.Color(statusColorName(status))
}
