package model

// ServerStatus represents the last known state of the clipy server
type ServerStatus string

const (
	// ServerStatusUnknown means no progress round has completed yet
	ServerStatusUnknown ServerStatus = "unknown"

	// ServerStatusRunning means the last progress call returned an object
	ServerStatusRunning ServerStatus = "running"

	// ServerStatusStopped means the last progress call failed or returned garbage
	ServerStatusStopped ServerStatus = "stopped"
)

// String returns the string representation of ServerStatus
func (s ServerStatus) String() string {
	return string(s)
}

// IsRunning returns true if the server answered the last poll
func (s ServerStatus) IsRunning() bool {
	return s == ServerStatusRunning
}

// StreamAction is what clicking a stream does
type StreamAction string

const (
	// StreamActionDownload queues the stream on the server
	StreamActionDownload StreamAction = "download"

	// StreamActionCancel cancels the stream's running download
	StreamActionCancel StreamAction = "cancel"
)

// String returns the string representation of StreamAction
func (a StreamAction) String() string {
	return string(a)
}
