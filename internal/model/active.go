package model

import (
	"fmt"

	"github.com/ytget/clipy/internal/jsonx"
)

// Progress response keys
const (
	KeyActives   = "actives"
	KeySID       = "sid"
	KeyURL       = "url"
	KeyName      = "name"
	KeyBytesDone = "bytesdone"
	KeyTotal     = "total"
	KeyElapsed   = "elapsed"
	KeyRate      = "rate"
	KeyETA       = "eta"
)

// LabelPlaceholder replaces a missing rate or ETA in labels
const LabelPlaceholder = "—"

// ActiveDownload is one download currently in progress on the server
type ActiveDownload struct {
	SID       string  // session id, e.g. "1M6sk2zD6D8|17"
	URL       string  // stream URL, used as id by servers that send no sid
	VID       string  // video id the stream belongs to
	Name      string  // file name shown as tooltip
	BytesDone float64 // bytes written so far
	Total     float64 // total bytes, 0 if unknown
	Elapsed   float64 // seconds since the download started
	Rate      float64 // KB/s
	ETA       float64 // seconds
	HasRate   bool
	HasETA    bool
}

// ProgressReport is the decoded body of the progress endpoint
type ProgressReport struct {
	Actives []ActiveDownload
}

// Key returns the id of the progress bar for this download: the sid, or the
// URL when the server sends no sid
func (a ActiveDownload) Key() string {
	if a.SID != "" {
		return a.SID
	}
	return a.URL
}

// Label returns the "rate KB/s - eta sec" text shown next to the bar
func (a ActiveDownload) Label() string {
	rate, eta := LabelPlaceholder, LabelPlaceholder
	if a.HasRate {
		rate = jsonx.String(a.Rate)
	}
	if a.HasETA {
		eta = jsonx.String(a.ETA)
	}
	return fmt.Sprintf("%s KB/s - %s sec", rate, eta)
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (a ActiveDownload) GetETAString() string {
	if !a.HasETA || a.ETA <= 0 {
		return LabelPlaceholder
	}

	secs := int(a.ETA)
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ActiveDownloadFromValue converts one element of the actives list
func ActiveDownloadFromValue(v any) (ActiveDownload, bool) {
	obj, ok := v.(*jsonx.Object)
	if !ok {
		return ActiveDownload{}, false
	}

	a := ActiveDownload{}
	if obj.Has(KeySID) {
		a.SID = obj.Text(KeySID)
	}
	if obj.Has(KeyURL) {
		a.URL = obj.Text(KeyURL)
	}
	if obj.Has(KeyVID) {
		a.VID = obj.Text(KeyVID)
	}
	if obj.Has(KeyName) {
		a.Name = obj.Text(KeyName)
	}
	a.BytesDone, _ = obj.Float(KeyBytesDone)
	a.Total, _ = obj.Float(KeyTotal)
	a.Elapsed, _ = obj.Float(KeyElapsed)
	a.Rate, a.HasRate = obj.Float(KeyRate)
	a.ETA, a.HasETA = obj.Float(KeyETA)

	return a, a.Key() != ""
}

// ProgressReportFromValue converts a decoded progress response. It reports
// false when v is not an object, which means the server is not answering.
// Elements without an id are skipped.
func ProgressReportFromValue(v any) (*ProgressReport, bool) {
	obj, ok := v.(*jsonx.Object)
	if !ok {
		return nil, false
	}

	report := &ProgressReport{Actives: []ActiveDownload{}}
	items, _ := obj.Array(KeyActives)
	for _, item := range items {
		if a, ok := ActiveDownloadFromValue(item); ok {
			report.Actives = append(report.Actives, a)
		}
	}
	return report, true
}
