package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/clipy/internal/config"
)

// AppName is the command name
const AppName = "clipy"

// optionsKey carries the resolved options through the command context
type optionsKey struct{}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:           AppName,
		Short:         "Desktop and terminal client for the clipy download server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, v)
		},
		RunE: runGUI,
	}

	if err := config.RegisterFlags(root, v); err != nil {
		panic(err)
	}

	root.AddCommand(
		newInquireCommand(),
		newProgressCommand(),
		newDownloadCommand(),
		newCancelCommand(),
		newShutdownCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code
func Execute(ctx context.Context, version string, args []string) int {
	root := NewRootCommand(version)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// setup resolves options and installs the logger for every command
func setup(cmd *cobra.Command, v *viper.Viper) error {
	opts, err := config.LoadOptions(v)
	if err != nil {
		return err
	}

	logger := NewLogger(cmd.ErrOrStderr(), opts.Level())
	log.SetDefault(logger)

	ctx := log.WithContext(cmd.Context(), logger)
	ctx = context.WithValue(ctx, optionsKey{}, opts)
	cmd.SetContext(ctx)

	logger.Debug("options resolved", "server", opts.Server, "config", opts.ConfigFile)
	return nil
}

// NewLogger creates the process logger writing to w
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// optionsFrom returns the explicit options stored by setup
func optionsFrom(ctx context.Context) *config.Options {
	if opts, ok := ctx.Value(optionsKey{}).(*config.Options); ok {
		return opts
	}
	return &config.Options{}
}
