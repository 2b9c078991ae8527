package model

// Package model defines the data exchanged with the clipy server: inquiry
// results with their streams, active downloads reported by the progress
// endpoint, and the replies of the download and cancel calls. Values are
// built from loosely typed decoded JSON and tolerate missing fields.
