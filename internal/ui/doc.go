// Package ui contains the Fyne-based desktop user interface for clipy.
// It wires user interactions to the inquiry and download services and mirrors
// panels and progress bars into widgets. All UI strings are localized via
// Localization. Widget changes coming from background goroutines go through
// fyne.Do.
package ui
