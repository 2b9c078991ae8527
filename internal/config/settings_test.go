package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/clipy/internal/cache"
	"github.com/ytget/clipy/internal/download"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, got)
	}

	// Test setting custom value, trailing slash is dropped
	settings.SetServerURL("http://10.0.0.5:9000/")
	if got := settings.GetServerURL(); got != "http://10.0.0.5:9000" {
		t.Errorf("Expected server URL http://10.0.0.5:9000, got %s", got)
	}

	// Invalid values fall back to default
	for _, bad := range []string{"", "localhost:8080", "ftp://host", "http://"} {
		settings.SetServerURL(bad)
		if got := settings.GetServerURL(); got != DefaultServerURL {
			t.Errorf("SetServerURL(%q) should reset to default, got %s", bad, got)
		}
	}
}

func TestPollInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetPollInterval(); got != DefaultPollInterval {
		t.Errorf("Expected default poll interval %v, got %v", DefaultPollInterval, got)
	}

	tests := []struct {
		name     string
		value    time.Duration
		expected time.Duration
	}{
		{"custom", 5 * time.Second, 5 * time.Second},
		{"below minimum", 10 * time.Millisecond, MinPollInterval},
		{"above maximum", time.Hour, MaxPollInterval},
		{"sub-second", 750 * time.Millisecond, 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings.SetPollInterval(tt.value)
			if got := settings.GetPollInterval(); got != tt.expected {
				t.Errorf("GetPollInterval() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCacheSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetCacheSize(); got != DefaultCacheSize {
		t.Errorf("Expected default cache size %d, got %d", DefaultCacheSize, got)
	}

	settings.SetCacheSize(64)
	if got := settings.GetCacheSize(); got != 64 {
		t.Errorf("Expected cache size 64, got %d", got)
	}

	// Test boundary values
	settings.SetCacheSize(0) // Should be clamped to 1
	if settings.GetCacheSize() != MinCacheSize {
		t.Error("Cache size should be clamped to minimum 1")
	}

	settings.SetCacheSize(MaxCacheSize + 1)
	if settings.GetCacheSize() != MaxCacheSize {
		t.Errorf("Cache size should be clamped to maximum %d", MaxCacheSize)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRequestTimeout(); got != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, got)
	}

	settings.SetRequestTimeout(10 * time.Second)
	if got := settings.GetRequestTimeout(); got != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", got)
	}

	settings.SetRequestTimeout(time.Millisecond)
	if got := settings.GetRequestTimeout(); got != MinRequestTimeout {
		t.Errorf("Expected timeout clamped to %v, got %v", MinRequestTimeout, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("ru")
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("Expected language ru, got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Expected language option %s", code)
		}
	}
}

func TestApply(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetCacheSize(32)
	settings.Apply(&Options{
		Server:       "http://192.168.1.2:8080",
		PollInterval: 3 * time.Second,
	})

	if got := settings.GetServerURL(); got != "http://192.168.1.2:8080" {
		t.Errorf("Expected applied server URL, got %s", got)
	}
	if got := settings.GetPollInterval(); got != 3*time.Second {
		t.Errorf("Expected applied poll interval 3s, got %v", got)
	}
	if got := settings.GetCacheSize(); got != 32 {
		t.Errorf("Cache size without explicit option should stay 32, got %d", got)
	}

	settings.Apply(nil)
}

func TestClampedSettingsFitServices(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	for _, size := range []int{-5, 0, MaxCacheSize + 1} {
		settings.SetCacheSize(size)
		if _, err := cache.New(settings.GetCacheSize(), nil); err != nil {
			t.Errorf("cache.New(%d) after SetCacheSize(%d): %v", settings.GetCacheSize(), size, err)
		}
	}

	for _, d := range []time.Duration{time.Millisecond, time.Hour} {
		settings.SetPollInterval(d)
		if got := settings.GetPollInterval(); download.ClampPollInterval(got) != got {
			t.Errorf("GetPollInterval() = %v after SetPollInterval(%v), outside the poller range", got, d)
		}
	}
}
