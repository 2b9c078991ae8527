package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/download"
	"github.com/ytget/clipy/internal/textview"
)

func newProgressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show active downloads",
		Args:  cobra.NoArgs,
		RunE:  runProgress,
	}
	cmd.Flags().BoolP("watch", "w", false, "keep polling until interrupted")
	return cmd
}

func runProgress(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}

	svc, err := servicesFromOptions(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !watch {
		status := svc.download.Poll(ctx)
		printProgress(out, svc.download, svc.client)
		if !status.IsRunning() {
			return fmt.Errorf("server at %s is not answering", svc.client.BaseURL())
		}
		return nil
	}

	ticker := time.NewTicker(optionsFrom(ctx).Resolved().PollInterval)
	defer ticker.Stop()

	for {
		svc.download.Poll(ctx)
		printProgress(out, svc.download, svc.client)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func printProgress(out io.Writer, svc *download.Service, client *api.Client) {
	fmt.Fprintln(out, textview.Status(svc.Status(), client.BaseURL()))
	fmt.Fprintln(out, textview.ProgressTable(svc.Tracker().Bars()))
}
