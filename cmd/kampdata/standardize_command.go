package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kampdata/internal/config"
	"kampdata/internal/store"
)

// newStandardizeCommand reruns action standardization and summary derivation
// for matches already in the database. Useful after the cleanup rules change.
func newStandardizeCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "standardize [match-key...]",
		Short: "Rerun event cleanup and summary derivation for stored matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("provide match keys or --all")
			}
			out := cmd.OutOrStdout()
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				targets := make([]*store.Match, 0, len(args))
				if all {
					matches, err := st.ListMatches(cmd.Context())
					if err != nil {
						return err
					}
					targets = matches
				} else {
					for _, arg := range args {
						key := strings.TrimSpace(arg)
						match, err := st.MatchByKey(cmd.Context(), key)
						if err != nil {
							return err
						}
						if match == nil {
							return fmt.Errorf("no match with key %q", key)
						}
						targets = append(targets, match)
					}
				}

				for _, match := range targets {
					changed, err := st.StandardizeEvents(cmd.Context(), match.ID)
					if err != nil {
						return fmt.Errorf("standardize %s: %w", match.Key, err)
					}
					summary, err := st.UpdateMatchSummary(cmd.Context(), match.ID)
					if err != nil {
						return fmt.Errorf("summarize %s: %w", match.Key, err)
					}
					if summary != nil {
						fmt.Fprintf(out, "%s: %d events updated, score %d-%d\n",
							match.Key, changed, summary.HomeScore, summary.AwayScore)
					} else {
						fmt.Fprintf(out, "%s: %d events updated, no summary (need both teams)\n",
							match.Key, changed)
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Process every stored match")
	return cmd
}
