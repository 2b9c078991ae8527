package model

import (
	"strings"

	"github.com/ytget/clipy/internal/jsonx"
)

// Inquiry response keys
const (
	KeyVID         = "vid"
	KeyTitle       = "title"
	KeyDuration    = "duration"
	KeyDescription = "description"
	KeyStreams     = "streams"
	KeyError       = "error"
)

// Stream object keys
const (
	KeyStreamSID     = "sid"
	KeyStreamDisplay = "display"
)

// Stream is one downloadable quality/format option of a video
type Stream struct {
	Index   int    // position in the inquiry's stream list, sent back on download
	SID     string // session id of the stream, empty for servers that send plain strings
	Display string // human readable description
}

// Inquiry is the typed view of an inquiry result
type Inquiry struct {
	VID         string
	Title       string
	Duration    string
	Description string
	Streams     []Stream
	Raw         *jsonx.Object // full response, kept for rendering unknown keys
}

// StreamFromValue builds a stream from either a plain string or a
// {sid, display} object
func StreamFromValue(index int, v any) Stream {
	s := Stream{Index: index}
	obj, ok := v.(*jsonx.Object)
	if !ok {
		s.Display = jsonx.String(v)
		return s
	}
	if obj.Has(KeyStreamSID) {
		s.SID = obj.Text(KeyStreamSID)
	}
	if obj.Has(KeyStreamDisplay) {
		s.Display = obj.Text(KeyStreamDisplay)
	} else {
		s.Display = jsonx.String(v)
	}
	return s
}

// StreamsFromValue converts a decoded stream list. Anything that is not an
// array yields no streams.
func StreamsFromValue(v any) []Stream {
	arr, ok := v.([]any)
	if !ok {
		return []Stream{}
	}
	streams := make([]Stream, 0, len(arr))
	for i, item := range arr {
		streams = append(streams, StreamFromValue(i, item))
	}
	return streams
}

// InquiryFromObject extracts the well-known inquiry fields from obj
func InquiryFromObject(obj *jsonx.Object) *Inquiry {
	inq := &Inquiry{Raw: obj}
	if obj == nil {
		inq.Streams = []Stream{}
		return inq
	}
	if obj.Has(KeyVID) {
		inq.VID = obj.Text(KeyVID)
	}
	if obj.Has(KeyTitle) {
		inq.Title = obj.Text(KeyTitle)
	}
	if obj.Has(KeyDuration) {
		inq.Duration = obj.Text(KeyDuration)
	}
	if obj.Has(KeyDescription) {
		inq.Description = obj.Text(KeyDescription)
	}
	streams, _ := obj.Get(KeyStreams)
	inq.Streams = StreamsFromValue(streams)
	return inq
}

// GetDisplayTitle returns title or video id in order of preference
func (i *Inquiry) GetDisplayTitle() string {
	title := strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(i.Title))
	if title != "" {
		return title
	}
	return i.VID
}
