package cli

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/clipy/internal/config"
	"github.com/ytget/clipy/internal/ui"
)

// AppID identifies the application for fyne preferences
const AppID = "com.ytget.clipy"

// runGUI opens the desktop window and polls progress until it is closed
func runGUI(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	logger := log.FromContext(ctx)

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(fyneApp)
	settings.Apply(optionsFrom(ctx))

	svc, err := newServices(ctx, serviceConfig{
		Server:    settings.GetServerURL(),
		Timeout:   settings.GetRequestTimeout(),
		CacheSize: settings.GetCacheSize(),
	})
	if err != nil {
		return err
	}

	window := fyneApp.NewWindow(fmt.Sprintf("%s v%s", AppName, cmd.Root().Version))
	window.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(ctx, window, settings, svc.inquiry, svc.board, svc.download, logger)
	svc.inquiry.SetSink(root)
	svc.tracker.SetListener(root)

	go func() {
		if err := svc.download.Run(ctx, settings.GetPollInterval()); err != nil {
			logger.Error("progress polling stopped", "error", err)
		}
	}()

	logger.Info("window opened", "server", svc.client.BaseURL())
	window.ShowAndRun()

	cancel()
	root.Wait()
	logger.Info("window closed")
	return nil
}
