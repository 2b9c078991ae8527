package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. CLIPY_SERVER
const EnvPrefix = "CLIPY"

// Option keys shared by flags, environment and config file
const (
	OptServer       = "server"
	OptTimeout      = "timeout"
	OptPollInterval = "poll_interval"
	OptCacheSize    = "cache_size"
	OptLogLevel     = "log_level"
	OptConfig       = "config"
)

// DefaultLogLevel is used when no level is configured
const DefaultLogLevel = "info"

// Options are the settings given on the command line, in CLIPY_*
// environment variables or in a config file. Zero fields were not given.
type Options struct {
	Server       string
	Timeout      time.Duration
	PollInterval time.Duration
	CacheSize    int
	LogLevel     string
	ConfigFile   string
}

// NewViper creates a viper instance reading CLIPY_* variables
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// RegisterFlags adds the persistent flags to cmd and binds them to v
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()

	flags.StringP("server", "s", "", "clipy server URL (default "+DefaultServerURL+")")
	flags.Duration("timeout", 0, "HTTP request timeout (default 30s)")
	flags.Duration("poll-interval", 0, "progress poll interval (default 2s)")
	flags.Int("cache-size", 0, "number of inquiry results kept for panels (default 256)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.StringP("config", "c", "", "config file path")

	binds := map[string]string{
		OptServer:       "server",
		OptTimeout:      "timeout",
		OptPollInterval: "poll-interval",
		OptCacheSize:    "cache-size",
		OptLogLevel:     "log-level",
		OptConfig:       "config",
	}
	for key, flag := range binds {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// LoadOptions resolves options from v, reading the config file if one is set
func LoadOptions(v *viper.Viper) (*Options, error) {
	if file := v.GetString(OptConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	opts := &Options{
		Server:       v.GetString(OptServer),
		Timeout:      v.GetDuration(OptTimeout),
		PollInterval: v.GetDuration(OptPollInterval),
		CacheSize:    v.GetInt(OptCacheSize),
		LogLevel:     v.GetString(OptLogLevel),
		ConfigFile:   v.GetString(OptConfig),
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate rejects malformed explicit options
func (o *Options) Validate() error {
	var errs []error
	if o.Server != "" && !ValidServerURL(strings.TrimSpace(o.Server)) {
		errs = append(errs, fmt.Errorf("invalid server URL %q", o.Server))
	}
	if o.Timeout < 0 {
		errs = append(errs, fmt.Errorf("negative timeout %v", o.Timeout))
	}
	if o.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("negative poll interval %v", o.PollInterval))
	}
	if o.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("negative cache size %d", o.CacheSize))
	}
	if o.LogLevel != "" {
		if _, err := log.ParseLevel(o.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("invalid log level %q", o.LogLevel))
		}
	}
	return errors.Join(errs...)
}

// Resolved returns a copy with defaults filled in and values clamped, for
// callers that do not keep fyne preferences
func (o Options) Resolved() Options {
	if o.Server == "" {
		o.Server = DefaultServerURL
	}
	o.Server = strings.TrimRight(strings.TrimSpace(o.Server), "/")
	if o.Timeout == 0 {
		o.Timeout = DefaultRequestTimeout
	}
	o.Timeout = ClampDuration(o.Timeout, MinRequestTimeout, MaxRequestTimeout)
	if o.PollInterval == 0 {
		o.PollInterval = DefaultPollInterval
	}
	o.PollInterval = ClampDuration(o.PollInterval, MinPollInterval, MaxPollInterval)
	if o.CacheSize == 0 {
		o.CacheSize = DefaultCacheSize
	}
	o.CacheSize = min(max(o.CacheSize, MinCacheSize), MaxCacheSize)
	if o.LogLevel == "" {
		o.LogLevel = DefaultLogLevel
	}
	return o
}

// Level returns the parsed log level, info when unset
func (o Options) Level() log.Level {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
