// Package download drives downloads on the clipy server: it toggles streams
// between download and cancel, polls the progress endpoint on a ticker and
// feeds the active list into the progress tracker.
package download
