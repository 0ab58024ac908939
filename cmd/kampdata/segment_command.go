package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kampdata/internal/report"
)

// newSegmentCommand previews how a report splits into extraction chunks
// without touching the API or the database.
func newSegmentCommand() *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:         "segment <report.txt>",
		Short:       "Preview the event-table chunks of a report",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}
			content := string(raw)
			out := cmd.OutOrStdout()

			info, err := report.ExtractMatchInfo(content)
			if err == nil {
				fmt.Fprintf(out, "Match: %s  %s vs %s\n", info.Date, info.HomeTeam, info.AwayTeam)
			} else {
				fmt.Fprintf(out, "Match info: %v\n", err)
			}

			chunks := report.Segment(content)
			if len(chunks) == 0 {
				fmt.Fprintln(out, "No event tables found")
				return nil
			}
			for _, chunk := range chunks {
				fmt.Fprintf(out, "Chunk %d: %d rows\n", chunk.Number, len(chunk.Lines))
				if showText {
					fmt.Fprintln(out, chunk.Text())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showText, "text", false, "Print the full text of each chunk")
	return cmd
}
