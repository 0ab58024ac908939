package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kampdata/internal/ingest"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <report.txt> [more reports...]",
		Short: "Ingest one or more match report files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			var failures int
			err := ctx.withCoordinator(func(coord *ingest.Coordinator) error {
				for _, path := range args {
					result, err := coord.IngestFile(cmd.Context(), path)
					if err != nil {
						failures++
						fmt.Fprintln(out, renderStatusLine(result.Document, statusError, err.Error(), colorize))
						continue
					}
					fmt.Fprintln(out, renderStatusLine(result.Document, statusOK, describeResult(result), colorize))
				}
				return nil
			})
			if err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d reports failed", failures, len(args))
			}
			return nil
		},
	}
}

func describeResult(result *ingest.Result) string {
	parts := []string{
		fmt.Sprintf("%d events from %d chunks", result.EventsStored, result.Chunks),
	}
	if len(result.FailedChunks) > 0 {
		parts = append(parts, fmt.Sprintf("%d chunks failed", len(result.FailedChunks)))
	}
	if result.Summary != nil {
		parts = append(parts, fmt.Sprintf("score %d-%d", result.Summary.HomeScore, result.Summary.AwayScore))
	}
	return strings.Join(parts, ", ")
}

func newInboxCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "Ingest every report waiting in the inbox directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			return ctx.withCoordinator(func(coord *ingest.Coordinator) error {
				stats, err := coord.ProcessInbox(cmd.Context())
				if err != nil {
					return err
				}
				for _, result := range stats.Results {
					kind := statusOK
					message := describeResult(result)
					if result.MatchKey == "" || result.Chunks == 0 || len(result.FailedChunks) == result.Chunks {
						kind = statusError
						message = "moved to failed directory"
					} else if len(result.FailedChunks) > 0 {
						kind = statusWarn
					}
					fmt.Fprintln(out, renderStatusLine(result.Document, kind, message, colorize))
				}
				fmt.Fprintf(out, "Processed %d reports, %d failed\n", stats.Processed, stats.Failed)
				return nil
			})
		},
	}
}
