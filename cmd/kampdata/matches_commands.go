package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kampdata/internal/config"
	"kampdata/internal/store"
)

func newMatchesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List ingested matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				matches, err := st.ListMatches(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, matchViews(matches))
				}
				out := cmd.OutOrStdout()
				if len(matches) == 0 {
					fmt.Fprintln(out, "No matches ingested yet")
					return nil
				}
				rows := make([][]string, 0, len(matches))
				for _, match := range matches {
					rows = append(rows, []string{
						match.Date,
						matchupLabel(match),
						fmt.Sprintf("%d-%d", match.HomeScore, match.AwayScore),
						match.Key,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Date", "Match", "Score", "Key"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit matches as JSON")
	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <match-key>",
		Short: "Show one match with its rosters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				match, err := st.MatchByKey(cmd.Context(), key)
				if err != nil {
					return err
				}
				if match == nil {
					return fmt.Errorf("no match with key %q", key)
				}
				count, err := st.EventCount(cmd.Context(), match.ID)
				if err != nil {
					return err
				}
				players, err := st.PlayersForMatch(cmd.Context(), match.ID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, struct {
						Match   matchView      `json:"match"`
						Events  int            `json:"events"`
						Players []store.Player `json:"players"`
					}{newMatchView(match), count, players})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s  %s\n", match.Date, matchupLabel(match))
				fmt.Fprintf(out, "Score:  %d-%d\n", match.HomeScore, match.AwayScore)
				fmt.Fprintf(out, "Events: %d\n", count)
				fmt.Fprintf(out, "Source: %s\n", match.SourceFile)
				if len(players) > 0 {
					rows := make([][]string, 0, len(players))
					for _, p := range players {
						rows = append(rows, []string{p.TeamInitials, p.Name, p.Type})
					}
					fmt.Fprintln(out, renderTable(
						[]string{"Team", "Player", "Role"},
						rows,
						[]columnAlignment{alignLeft, alignLeft, alignLeft},
					))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit match details as JSON")
	return cmd
}

func matchupLabel(match *store.Match) string {
	home := match.HomeTeam
	away := match.AwayTeam
	if match.HomeCode != "" {
		home += " (" + match.HomeCode + ")"
	}
	if match.AwayCode != "" {
		away += " (" + match.AwayCode + ")"
	}
	return home + " vs " + away
}

type matchView struct {
	Key        string `json:"key"`
	Date       string `json:"date"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeCode   string `json:"home_code,omitempty"`
	AwayCode   string `json:"away_code,omitempty"`
	Score      string `json:"score"`
	SourceFile string `json:"source_file,omitempty"`
}

func newMatchView(match *store.Match) matchView {
	return matchView{
		Key:        match.Key,
		Date:       match.Date,
		HomeTeam:   match.HomeTeam,
		AwayTeam:   match.AwayTeam,
		HomeCode:   match.HomeCode,
		AwayCode:   match.AwayCode,
		Score:      strconv.Itoa(match.HomeScore) + "-" + strconv.Itoa(match.AwayScore),
		SourceFile: match.SourceFile,
	}
}

func matchViews(matches []*store.Match) []matchView {
	views := make([]matchView, 0, len(matches))
	for _, match := range matches {
		views = append(views, newMatchView(match))
	}
	return views
}
