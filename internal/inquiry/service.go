package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/cache"
	"github.com/ytget/clipy/internal/jsonx"
	"github.com/ytget/clipy/internal/model"
	"github.com/ytget/clipy/internal/panel"
	"github.com/ytget/clipy/internal/platform"
)

// ErrEmptyInput is returned when there is nothing to inquire about
var ErrEmptyInput = errors.New("empty video input")

// Fetcher performs the inquire request
type Fetcher interface {
	Inquire(ctx context.Context, video string) (any, error)
}

// PlaylistExpander turns a playlist URL into its video ids
type PlaylistExpander interface {
	ParsePlaylist(ctx context.Context, url string) (*platform.Playlist, error)
}

// Sink receives newly inserted panels
type Sink interface {
	PanelInserted(p panel.Panel)
}

// ErrEvicted is returned when a panel's source result is no longer cached
var ErrEvicted = errors.New("inquiry result no longer cached")

// Inquirer is implemented by Service
type Inquirer interface {
	Inquire(ctx context.Context, input string) ([]panel.Panel, error)
	ResolveStream(index, stream int) (panel.StreamItem, error)
	Close(index int)
	Clear() int
}

// Service wires the client, cache and board together
type Service struct {
	fetcher   Fetcher
	cache     *cache.PanelCache
	board     *panel.Board
	playlists PlaylistExpander
	sink      Sink
	logger    *log.Logger
}

// Option configures a Service
type Option func(*Service)

// WithPlaylists enables playlist expansion
func WithPlaylists(p PlaylistExpander) Option {
	return func(s *Service) { s.playlists = p }
}

// WithSink sets the panel callback
func WithSink(sink Sink) Option {
	return func(s *Service) { s.sink = sink }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates an inquiry service
func NewService(fetcher Fetcher, c *cache.PanelCache, board *panel.Board, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		cache:   c,
		board:   board,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("inquiry")
	return s
}

// SetSink replaces the panel callback
func (s *Service) SetSink(sink Sink) {
	s.sink = sink
}

// Board returns the panels on display
func (s *Service) Board() *panel.Board {
	return s.board
}

// Inquire fetches input, or every video of input when it is a playlist URL,
// and returns the panels that were inserted. Server errors and unstructured
// replies insert nothing and are not errors.
func (s *Service) Inquire(ctx context.Context, input string) ([]panel.Panel, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	if s.playlists != nil && platform.IsPlaylistURL(input) {
		return s.inquirePlaylist(ctx, input)
	}

	p, err := s.inquireOne(ctx, input)
	if err != nil || p == nil {
		return nil, err
	}
	return []panel.Panel{*p}, nil
}

func (s *Service) inquirePlaylist(ctx context.Context, url string) ([]panel.Panel, error) {
	pl, err := s.playlists.ParsePlaylist(ctx, url)
	if err != nil {
		s.logger.Error("playlist expansion failed", "url", url, "error", err)
		return nil, fmt.Errorf("expand playlist: %w", err)
	}
	s.logger.Info("expanded playlist", "id", pl.ID, "videos", len(pl.Videos))

	var panels []panel.Panel
	for _, vid := range pl.VideoIDs() {
		p, err := s.inquireOne(ctx, vid)
		if err != nil {
			return panels, err
		}
		if p != nil {
			panels = append(panels, *p)
		}
	}
	return panels, nil
}

// inquireOne runs the pipeline for a single video. A nil panel with a nil
// error means the reply was dropped.
func (s *Service) inquireOne(ctx context.Context, video string) (*panel.Panel, error) {
	data, err := s.fetcher.Inquire(ctx, video)
	if err != nil {
		s.logger.Error("inquire failed", "video", video, "error", err)
		return nil, fmt.Errorf("inquire %s: %w", video, err)
	}

	if msg, ok := api.AppError(data); ok {
		s.logger.Warn("server reported error", "video", video, "error", msg)
		return nil, nil
	}

	obj, ok := data.(*jsonx.Object)
	if !ok {
		s.logger.Warn("unstructured reply dropped", "video", video, "reply", jsonx.String(data))
		return nil, nil
	}

	index := s.cache.Store(obj)
	p := panel.Render(index, obj)
	s.board.Insert(p)
	s.logger.Debug("panel inserted", "index", index, "vid", p.VID)

	if s.sink != nil {
		s.sink.PanelInserted(*p)
	}
	return p, nil
}

// Lookup returns the cached result a panel was built from
func (s *Service) Lookup(index int) (*jsonx.Object, bool) {
	return s.cache.Get(index)
}

// ResolveStream rebuilds stream number stream of the panel stored under index
// from its cached result
func (s *Service) ResolveStream(index, stream int) (panel.StreamItem, error) {
	obj, ok := s.Lookup(index)
	if !ok {
		s.logger.Warn("stream of evicted panel", "index", index, "stream", stream)
		return panel.StreamItem{}, fmt.Errorf("panel %d: %w", index, ErrEvicted)
	}

	inq := model.InquiryFromObject(obj)
	if stream < 0 || stream >= len(inq.Streams) {
		return panel.StreamItem{}, fmt.Errorf("panel %d has no stream %d", index, stream)
	}
	st := inq.Streams[stream]
	return panel.StreamItem{
		Panel:   index,
		Index:   st.Index,
		VID:     inq.VID,
		SID:     st.SID,
		Display: st.Display,
	}, nil
}

// Close removes the panel stored under index and its cached result
func (s *Service) Close(index int) {
	s.board.Close(index)
	if s.cache.Remove(index) {
		s.logger.Debug("panel closed", "index", index, "cached", s.cache.Len())
	}
}

// Clear removes every panel and purges the cache. It returns the number of
// panels removed.
func (s *Service) Clear() int {
	n := s.board.Clear()
	cached := s.cache.Len()
	s.cache.Purge()
	s.logger.Debug("panels cleared", "panels", n, "purged", cached)
	return n
}
