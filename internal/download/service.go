package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/panel"
	"github.com/ytget/clipy/internal/progress"
)

// Poll interval limits
const (
	DefaultPollInterval = 2 * time.Second
	MinPollInterval     = 500 * time.Millisecond
	MaxPollInterval     = 60 * time.Second
)

// Service handles download operations
type Service struct {
	client   Client
	tracker  *progress.Tracker
	logger   *log.Logger
	poller   *log.Logger
	status   model.ServerStatus
	mu       sync.RWMutex
	onStatus func(model.ServerStatus) // callback for UI updates

	interval time.Duration
	retune   chan struct{} // signals Run that interval changed
}

// NewService creates a new download service
func NewService(client Client, tracker *progress.Tracker, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		client:  client,
		tracker: tracker,
		logger:  logger.WithPrefix("download"),
		poller:  logger.WithPrefix("poller"),
		status:  model.ServerStatusUnknown,
		retune:  make(chan struct{}, 1),
	}
}

// SetStatusCallback sets the callback function for status updates
func (s *Service) SetStatusCallback(callback func(model.ServerStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStatus = callback
}

// Tracker returns the progress tracker fed by Poll
func (s *Service) Tracker() *progress.Tracker {
	return s.tracker
}

// Toggle cancels the stream when a progress bar for its sid is displayed and
// downloads it otherwise. Server replies are only logged.
func (s *Service) Toggle(ctx context.Context, item panel.StreamItem) (model.StreamAction, error) {
	if item.SID != "" && s.tracker.Has(item.SID) {
		return model.StreamActionCancel, s.cancel(ctx, item.SID)
	}
	return model.StreamActionDownload, s.download(ctx, item)
}

func (s *Service) download(ctx context.Context, item panel.StreamItem) error {
	if item.VID == "" {
		return fmt.Errorf("stream %d has no video id", item.Index)
	}

	data, err := s.client.Download(ctx, item.VID, item.Index)
	if err != nil {
		s.logger.Error("download request failed", "vid", item.VID, "stream", item.Index, "error", err)
		return fmt.Errorf("download %s/%d: %w", item.VID, item.Index, err)
	}
	if msg, ok := api.AppError(data); ok {
		s.logger.Warn("download refused", "vid", item.VID, "stream", item.Index, "error", msg)
		return nil
	}
	if reply, ok := model.DownloadReplyFromValue(data); ok {
		s.logger.Info("download queued", "vid", item.VID, "stream", item.Index, "message", reply.Message)
	} else {
		s.logger.Info("download requested", "vid", item.VID, "stream", item.Index, "reply", data)
	}
	return nil
}

func (s *Service) cancel(ctx context.Context, sid string) error {
	data, err := s.client.Cancel(ctx, sid)
	if err != nil {
		s.logger.Error("cancel request failed", "sid", sid, "error", err)
		return fmt.Errorf("cancel %s: %w", sid, err)
	}
	if reply, ok := model.CancelReplyFromValue(data); ok {
		s.logger.Info("download cancelled", "sid", sid, "removed", reply.Removed)
	} else {
		s.logger.Info("cancel requested", "sid", sid, "reply", data)
	}
	return nil
}

// Poll fetches the progress report and reconciles the tracker. The server
// counts as running only when the reply decoded to an object.
func (s *Service) Poll(ctx context.Context) model.ServerStatus {
	status := model.ServerStatusStopped

	data, err := s.client.Progress(ctx)
	if err != nil {
		s.poller.Debug("progress request failed", "error", err)
	} else if report, ok := model.ProgressReportFromValue(data); ok {
		status = model.ServerStatusRunning
		change := s.tracker.Reconcile(report.Actives)
		if !change.Empty() {
			s.poller.Debug("progress reconciled",
				"added", len(change.Added), "updated", len(change.Updated), "removed", len(change.Removed))
		}
	} else {
		s.poller.Debug("progress reply is not an object", "reply", data)
	}

	s.setStatus(status)
	return status
}

// SetPollInterval changes the interval of a running poller. The next poll
// happens one new interval from now.
func (s *Service) SetPollInterval(d time.Duration) {
	s.mu.Lock()
	s.interval = ClampPollInterval(d)
	s.mu.Unlock()

	select {
	case s.retune <- struct{}{}:
	default:
	}
}

func (s *Service) pollInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval
}

// Run polls immediately and then on every tick until ctx is done
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	s.mu.Lock()
	s.interval = ClampPollInterval(interval)
	s.mu.Unlock()
	// drop a change made before the start
	select {
	case <-s.retune:
	default:
	}

	current := s.pollInterval()
	s.poller.Info("polling started", "interval", current)

	ticker := time.NewTicker(current)
	defer ticker.Stop()

	s.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			s.poller.Info("polling stopped")
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			s.Poll(ctx)
		case <-s.retune:
			if next := s.pollInterval(); next != current {
				current = next
				ticker.Reset(current)
				s.poller.Info("poll interval changed", "interval", current)
			}
		}
	}
}

// Status returns the result of the last poll
func (s *Service) Status() model.ServerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Shutdown asks the server to exit
func (s *Service) Shutdown(ctx context.Context) error {
	data, err := s.client.Shutdown(ctx)
	if err != nil {
		s.logger.Error("shutdown request failed", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("shutdown requested", "reply", data)
	return nil
}

func (s *Service) setStatus(status model.ServerStatus) {
	s.mu.Lock()
	changed := s.status != status
	s.status = status
	callback := s.onStatus
	s.mu.Unlock()

	if changed {
		s.poller.Info("server status changed", "status", status)
	}
	if callback != nil {
		callback(status)
	}
}

// ClampPollInterval keeps d within the supported poll interval range
func ClampPollInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultPollInterval
	}
	if d < MinPollInterval {
		return MinPollInterval
	}
	if d > MaxPollInterval {
		return MaxPollInterval
	}
	return d
}
