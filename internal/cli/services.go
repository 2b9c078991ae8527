package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/cache"
	"github.com/ytget/clipy/internal/download"
	"github.com/ytget/clipy/internal/inquiry"
	"github.com/ytget/clipy/internal/panel"
	"github.com/ytget/clipy/internal/platform"
	"github.com/ytget/clipy/internal/progress"
)

// serviceConfig is what the services need, whichever source it came from
type serviceConfig struct {
	Server    string
	Timeout   time.Duration
	CacheSize int
}

// services is the wired object graph shared by GUI and commands
type services struct {
	client   *api.Client
	cache    *cache.PanelCache
	board    *panel.Board
	tracker  *progress.Tracker
	inquiry  *inquiry.Service
	download *download.Service
}

func newServices(ctx context.Context, cfg serviceConfig) (*services, error) {
	logger := log.FromContext(ctx)

	client, err := api.NewClient(cfg.Server, api.WithTimeout(cfg.Timeout), api.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	panels, err := cache.New(cfg.CacheSize, logger)
	if err != nil {
		return nil, err
	}

	board := panel.NewBoard()
	tracker := progress.NewTracker(nil)

	return &services{
		client:  client,
		cache:   panels,
		board:   board,
		tracker: tracker,
		inquiry: inquiry.NewService(client, panels, board,
			inquiry.WithPlaylists(platform.NewPlaylistParserService()),
			inquiry.WithLogger(logger),
		),
		download: download.NewService(client, tracker, logger),
	}, nil
}

// servicesFromOptions builds services from command line options alone
func servicesFromOptions(ctx context.Context) (*services, error) {
	opts := optionsFrom(ctx).Resolved()
	return newServices(ctx, serviceConfig{
		Server:    opts.Server,
		Timeout:   opts.Timeout,
		CacheSize: opts.CacheSize,
	})
}
