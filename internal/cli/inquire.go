package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/clipy/internal/panel"
	"github.com/ytget/clipy/internal/textview"
)

// InquireParallel bounds concurrent inquiries
const InquireParallel = 4

func newInquireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquire <video>...",
		Short: "Show video details and streams",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInquire,
	}
	cmd.Flags().Bool("collapsed", false, "print only panel headers")
	return cmd
}

func runInquire(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	collapsed, err := cmd.Flags().GetBool("collapsed")
	if err != nil {
		return err
	}

	svc, err := servicesFromOptions(ctx)
	if err != nil {
		return err
	}

	results := make([][]panel.Panel, len(args))
	var g errgroup.Group
	g.SetLimit(InquireParallel)
	for i, video := range args {
		g.Go(func() error {
			panels, err := svc.inquiry.Inquire(ctx, video)
			if err != nil {
				return err
			}
			if len(panels) == 0 {
				logger.Warn("nothing to show", "video", video)
			}
			results[i] = panels
			return nil
		})
	}
	waitErr := g.Wait()

	var ordered []panel.Panel
	for _, panels := range results {
		for _, p := range panels {
			p.Expanded = !collapsed
			ordered = append(ordered, p)
		}
	}
	if len(ordered) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), textview.Panels(ordered))
	}
	return waitErr
}
