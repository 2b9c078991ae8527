package config

import (
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/cache"
	"github.com/ytget/clipy/internal/download"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyPollInterval   = "poll_interval_ms"
	KeyCacheSize      = "panel_cache_size"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultServerURL      = "http://127.0.0.1:8080"
	DefaultPollInterval   = download.DefaultPollInterval
	DefaultCacheSize      = cache.DefaultSize
	DefaultRequestTimeout = api.DefaultTimeout
	DefaultLanguage       = "system"
)

// Limits
const (
	MinPollInterval   = download.MinPollInterval
	MaxPollInterval   = download.MaxPollInterval
	MinCacheSize      = cache.MinSize
	MaxCacheSize      = cache.MaxSize
	MinRequestTimeout = time.Second
	MaxRequestTimeout = 5 * time.Minute
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the base URL of the clipy server
func (s *Settings) GetServerURL() string {
	value := s.app.Preferences().String(KeyServerURL)
	if value == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return value
}

// SetServerURL sets the server URL. Values that are not absolute http(s)
// URLs reset it to the default.
func (s *Settings) SetServerURL(raw string) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if !ValidServerURL(raw) {
		raw = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, raw)
}

// GetPollInterval returns how often the progress endpoint is polled
func (s *Settings) GetPollInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyPollInterval)
	if ms <= 0 {
		s.SetPollInterval(DefaultPollInterval)
		return DefaultPollInterval
	}
	return time.Duration(ms) * time.Millisecond
}

// SetPollInterval sets the poll interval
func (s *Settings) SetPollInterval(d time.Duration) {
	d = ClampDuration(d, MinPollInterval, MaxPollInterval)
	s.app.Preferences().SetInt(KeyPollInterval, int(d/time.Millisecond))
}

// GetCacheSize returns the number of inquiry results kept for panels
func (s *Settings) GetCacheSize() int {
	value := s.app.Preferences().Int(KeyCacheSize)
	if value <= 0 {
		s.SetCacheSize(DefaultCacheSize)
		return DefaultCacheSize
	}
	return value
}

// SetCacheSize sets the panel cache size
func (s *Settings) SetCacheSize(size int) {
	if size < MinCacheSize {
		size = MinCacheSize
	}
	if size > MaxCacheSize {
		size = MaxCacheSize
	}
	s.app.Preferences().SetInt(KeyCacheSize, size)
}

// GetRequestTimeout returns the HTTP request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().Int(KeyRequestTimeout)
	if sec <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return time.Duration(sec) * time.Second
}

// SetRequestTimeout sets the HTTP request timeout, rounded to seconds
func (s *Settings) SetRequestTimeout(d time.Duration) {
	d = ClampDuration(d, MinRequestTimeout, MaxRequestTimeout)
	s.app.Preferences().SetInt(KeyRequestTimeout, int(d/time.Second))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Apply stores every option that was given explicitly
func (s *Settings) Apply(opts *Options) {
	if opts == nil {
		return
	}
	if opts.Server != "" {
		s.SetServerURL(opts.Server)
	}
	if opts.PollInterval > 0 {
		s.SetPollInterval(opts.PollInterval)
	}
	if opts.CacheSize > 0 {
		s.SetCacheSize(opts.CacheSize)
	}
	if opts.Timeout > 0 {
		s.SetRequestTimeout(opts.Timeout)
	}
}

// ValidServerURL reports whether raw is an absolute http(s) URL with a host
func ValidServerURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ClampDuration keeps d within [lo, hi]
func ClampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
