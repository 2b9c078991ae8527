package model

import "github.com/ytget/clipy/internal/jsonx"

// Reply keys of the download and cancel endpoints
const (
	KeyMessage = "message"
	KeyIndex   = "index"
	KeyRemoved = "removed"
)

// DownloadReply is what the server answers when a stream is queued
type DownloadReply struct {
	Message string
	Index   int
	VID     string
	URL     string
}

// CancelReply is what the server answers to a cancel request
type CancelReply struct {
	Removed bool
}

// DownloadReplyFromValue converts a decoded download response
func DownloadReplyFromValue(v any) (*DownloadReply, bool) {
	obj, ok := v.(*jsonx.Object)
	if !ok {
		return nil, false
	}
	r := &DownloadReply{}
	if obj.Has(KeyMessage) {
		r.Message = obj.Text(KeyMessage)
	}
	if idx, ok := obj.Float(KeyIndex); ok {
		r.Index = int(idx)
	}
	if obj.Has(KeyVID) {
		r.VID = obj.Text(KeyVID)
	}
	if obj.Has(KeyURL) {
		r.URL = obj.Text(KeyURL)
	}
	return r, true
}

// CancelReplyFromValue converts a decoded cancel response
func CancelReplyFromValue(v any) (*CancelReply, bool) {
	obj, ok := v.(*jsonx.Object)
	if !ok {
		return nil, false
	}
	removed, _ := obj.Get(KeyRemoved)
	b, _ := removed.(bool)
	return &CancelReply{Removed: b}, true
}
