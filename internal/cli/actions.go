package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/clipy/internal/api"
	"github.com/ytget/clipy/internal/jsonx"
)

func newDownloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download <vid> <stream-index>",
		Short: "Start downloading a stream of a video",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid stream index %q", args[1])
			}
			svc, err := servicesFromOptions(cmd.Context())
			if err != nil {
				return err
			}
			reply, err := svc.client.Download(cmd.Context(), args[0], index)
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

func newCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <sid>",
		Short: "Cancel a running download",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := servicesFromOptions(cmd.Context())
			if err != nil {
				return err
			}
			reply, err := svc.client.Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

func newShutdownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shutdown",
		Short: "Stop the clipy server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := servicesFromOptions(cmd.Context())
			if err != nil {
				return err
			}
			reply, err := svc.client.Shutdown(cmd.Context())
			if err != nil {
				return err
			}
			return printReply(cmd.OutOrStdout(), reply)
		},
	}
}

// printReply writes a decoded server reply. An error reply becomes the
// command error.
func printReply(out io.Writer, reply any) error {
	if msg, ok := api.AppError(reply); ok {
		return errors.New(msg)
	}
	obj, ok := reply.(*jsonx.Object)
	if !ok {
		if !jsonx.IsNull(reply) {
			fmt.Fprintln(out, jsonx.String(reply))
		}
		return nil
	}
	for _, e := range obj.Entries() {
		fmt.Fprintf(out, "%s: %s\n", e.Key, jsonx.String(e.Value))
	}
	return nil
}
