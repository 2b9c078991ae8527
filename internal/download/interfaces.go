package download

import (
	"context"
	"time"

	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/panel"
)

// Client is the part of the clipy API the download service uses
type Client interface {
	Progress(ctx context.Context) (any, error)
	Download(ctx context.Context, vid string, index int) (any, error)
	Cancel(ctx context.Context, sid string) (any, error)
	Shutdown(ctx context.Context) (any, error)
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetStatusCallback sets the function told about server status after every poll
	SetStatusCallback(func(model.ServerStatus))

	// Toggle downloads the stream, or cancels it when it is already downloading
	Toggle(ctx context.Context, item panel.StreamItem) (model.StreamAction, error)

	// Poll runs one progress round
	Poll(ctx context.Context) model.ServerStatus

	// Run polls every interval until ctx ends
	Run(ctx context.Context, interval time.Duration) error

	// SetPollInterval changes the interval of a running Run loop
	SetPollInterval(d time.Duration)

	// Status returns the result of the last poll
	Status() model.ServerStatus

	// Shutdown asks the server to exit
	Shutdown(ctx context.Context) error
}
