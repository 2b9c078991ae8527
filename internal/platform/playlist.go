package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 30 * time.Second
)

// URL parameters
const (
	PlaylistURLParam       = "list="
	PlaylistParamSeparator = "&"
)

// Default values
const (
	DefaultPlaylistTitle = "Untitled Playlist"
	DefaultTitleSuffix   = " - Playlist"
	MaxTitleLength       = 50
	TitleTruncateSuffix  = "..."
	NoLimit              = 0
)

// ErrNoVideos is returned for playlists without any video
var ErrNoVideos = errors.New("playlist has no videos")

// Video is one entry of a playlist
type Video struct {
	ID    string
	Title string
}

// Playlist is an expanded playlist
type Playlist struct {
	ID     string
	URL    string
	Title  string
	Videos []Video
}

// VideoIDs returns the ids of all videos in order
func (p *Playlist) VideoIDs() []string {
	ids := make([]string, 0, len(p.Videos))
	for _, v := range p.Videos {
		ids = append(ids, v.ID)
	}
	return ids
}

// ItemSource lists the videos of a playlist id
type ItemSource interface {
	PlaylistItems(ctx context.Context, playlistID string, limit int) ([]Video, error)
}

// ytdlpSource reads playlists through the ytdlp library
type ytdlpSource struct{}

func (ytdlpSource) PlaylistItems(ctx context.Context, playlistID string, limit int) ([]Video, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, limit)
	if err != nil {
		return nil, err
	}
	videos := make([]Video, 0, len(items))
	for _, it := range items {
		videos = append(videos, Video{ID: it.VideoID, Title: it.Title})
	}
	return videos, nil
}

// PlaylistParserService expands playlist URLs into videos
type PlaylistParserService struct {
	timeout time.Duration
	source  ItemSource
}

// NewPlaylistParserService creates a parser backed by ytdlp
func NewPlaylistParserService() *PlaylistParserService {
	return &PlaylistParserService{
		timeout: DefaultPlaylistParseTimeout,
		source:  ytdlpSource{},
	}
}

// NewPlaylistParserServiceWithSource creates a parser with a custom source
func NewPlaylistParserServiceWithSource(source ItemSource) *PlaylistParserService {
	p := NewPlaylistParserService()
	p.source = source
	return p
}

// SetTimeout sets the timeout for playlist parsing
func (p *PlaylistParserService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ParsePlaylist fetches the videos of a playlist URL
func (p *PlaylistParserService) ParsePlaylist(ctx context.Context, url string) (*Playlist, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	videos, err := p.source.PlaylistItems(ctx, playlistID, NoLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := &Playlist{ID: playlistID, URL: url}
	for _, v := range videos {
		if v.ID == "" {
			continue
		}
		playlist.Videos = append(playlist.Videos, v)
	}
	if len(playlist.Videos) == 0 {
		return playlist, fmt.Errorf("%w: %s", ErrNoVideos, playlistID)
	}
	playlist.Title = extractPlaylistTitle(playlist.Videos)
	return playlist, nil
}

// IsPlaylistURL reports whether input carries a playlist parameter
func IsPlaylistURL(input string) bool {
	return strings.Contains(input, PlaylistURLParam)
}

// ExtractPlaylistID extracts the playlist ID from a playlist URL. Supported:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) (string, error) {
	if !IsPlaylistURL(url) {
		return "", fmt.Errorf("URL does not contain playlist parameter: %s", url)
	}

	_, playlistID, _ := strings.Cut(url, PlaylistURLParam)
	playlistID, _, _ = strings.Cut(playlistID, PlaylistParamSeparator)

	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}
	return playlistID, nil
}

// extractPlaylistTitle uses the first video title with a playlist suffix
func extractPlaylistTitle(videos []Video) string {
	if len(videos) == 0 {
		return DefaultPlaylistTitle
	}

	firstTitle := videos[0].Title
	if firstTitle == "" {
		return DefaultPlaylistTitle
	}
	if len(firstTitle) > MaxTitleLength {
		firstTitle = firstTitle[:MaxTitleLength] + TitleTruncateSuffix
	}
	return firstTitle + DefaultTitleSuffix
}
