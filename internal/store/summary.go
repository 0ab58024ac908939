package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TeamRoster lists the players observed for one side of a match.
type TeamRoster struct {
	Initials     string
	FieldPlayers []string
	Goalkeepers  []string
}

// Summary is the derived result of a match: the final score plus both
// rosters, keyed by the initials the events use.
type Summary struct {
	HomeScore int
	AwayScore int
	Home      TeamRoster
	Away      TeamRoster
}

// UpdateMatchSummary derives the final score and rosters from a match's
// stored events, persists them, and returns the summary. Matches whose
// events name fewer than two teams produce no summary.
func (s *Store) UpdateMatchSummary(ctx context.Context, matchID int64) (*Summary, error) {
	homeInitials, awayInitials, err := s.teamInitials(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if homeInitials == "" || awayInitials == "" {
		return nil, nil
	}

	homeScore, awayScore, err := s.finalScore(ctx, matchID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{HomeScore: homeScore, AwayScore: awayScore}
	summary.Home, err = s.teamRoster(ctx, matchID, homeInitials)
	if err != nil {
		return nil, err
	}
	summary.Away, err = s.teamRoster(ctx, matchID, awayInitials)
	if err != nil {
		return nil, err
	}

	if err := s.persistSummary(ctx, matchID, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// teamInitials returns the two sides of the match in order of first
// appearance; the home side acts first in the report.
func (s *Store) teamInitials(ctx context.Context, matchID int64) (string, string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_initials FROM game_events
         WHERE match_id = ? AND team_initials IS NOT NULL
         GROUP BY team_initials ORDER BY MIN(time) LIMIT 2`,
		matchID)
	if err != nil {
		return "", "", fmt.Errorf("query team initials: %w", err)
	}
	defer rows.Close()

	var initials []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return "", "", err
		}
		initials = append(initials, value)
	}
	if err := rows.Err(); err != nil {
		return "", "", err
	}
	if len(initials) != 2 {
		return "", "", nil
	}
	return initials[0], initials[1], nil
}

// finalScore parses the score update with the highest timestamp. Timestamps
// are compared numerically after stripping separators so "9.59" sorts below
// "10.00".
func (s *Store) finalScore(ctx context.Context, matchID int64) (int, int, error) {
	var update string
	err := s.db.QueryRowContext(ctx,
		`SELECT score_update FROM game_events
         WHERE match_id = ? AND score_update IS NOT NULL
         ORDER BY CAST(REPLACE(REPLACE(time, ':', ''), '.', '') AS INTEGER) DESC
         LIMIT 1`,
		matchID).Scan(&update)
	if errors.Is(err, sql.ErrNoRows) {
		// No score updates at all is a valid, scoreless report.
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("query final score: %w", err)
	}
	parts := strings.Split(update, "-")
	if len(parts) != 2 {
		return 0, 0, nil
	}
	home, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, nil
	}
	away, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, nil
	}
	return home, away, nil
}

// defensiveActions are secondary actions credited to the team that did NOT
// own the event row, so the named player belongs to the opposing side.
const defensiveActions = `'Blok af (ret)', 'Blokeret af', 'Bold erobret', 'Forårs. str.'`

func (s *Store) teamRoster(ctx context.Context, matchID int64, initials string) (TeamRoster, error) {
	roster := TeamRoster{Initials: initials}

	fieldPlayers := map[string]struct{}{}
	queries := []struct {
		sql  string
		args []any
	}{
		{
			`SELECT DISTINCT player_name FROM game_events
             WHERE match_id = ? AND team_initials = ? AND player_name IS NOT NULL AND player_name != ''`,
			[]any{matchID, initials},
		},
		{
			`SELECT DISTINCT player2_name FROM game_events
             WHERE match_id = ? AND team_initials = ? AND action_2 IN ('Assist', 'Mål')
             AND player2_name IS NOT NULL AND player2_name != ''`,
			[]any{matchID, initials},
		},
		{
			`SELECT DISTINCT player2_name FROM game_events
             WHERE match_id = ? AND team_initials != ? AND action_2 IN (` + defensiveActions + `)
             AND player2_name IS NOT NULL AND player2_name != ''`,
			[]any{matchID, initials},
		},
	}
	for _, query := range queries {
		if err := s.collectNames(ctx, query.sql, query.args, fieldPlayers); err != nil {
			return roster, err
		}
	}

	goalkeepers := map[string]struct{}{}
	err := s.collectNames(ctx,
		`SELECT DISTINCT goalkeeper_name FROM game_events
         WHERE match_id = ? AND team_initials != ?
         AND goalkeeper_name IS NOT NULL AND goalkeeper_name != ''`,
		[]any{matchID, initials}, goalkeepers)
	if err != nil {
		return roster, err
	}

	roster.FieldPlayers = sortedNames(fieldPlayers)
	roster.Goalkeepers = sortedNames(goalkeepers)
	return roster, nil
}

func (s *Store) collectNames(ctx context.Context, query string, args []any, into map[string]struct{}) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		into[name] = struct{}{}
	}
	return rows.Err()
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) persistSummary(ctx context.Context, matchID int64, summary *Summary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin summary tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE matches SET home_score = ?, away_score = ? WHERE id = ?`,
		summary.HomeScore, summary.AwayScore, matchID,
	); err != nil {
		return fmt.Errorf("update match score: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM players WHERE match_id = ?`, matchID,
	); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	for _, roster := range []TeamRoster{summary.Home, summary.Away} {
		for _, name := range roster.FieldPlayers {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO players (match_id, team_initials, player_name, player_type)
                 VALUES (?, ?, ?, 'Field player')`,
				matchID, roster.Initials, name,
			); err != nil {
				return fmt.Errorf("insert field player: %w", err)
			}
		}
		for _, name := range roster.Goalkeepers {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO players (match_id, team_initials, player_name, player_type)
                 VALUES (?, ?, ?, 'Goalkeeper')`,
				matchID, roster.Initials, name,
			); err != nil {
				return fmt.Errorf("insert goalkeeper: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit summary: %w", err)
	}
	return nil
}

// Player is a stored roster row.
type Player struct {
	TeamInitials string
	Name         string
	Type         string
}

// PlayersForMatch lists the stored roster for a match.
func (s *Store) PlayersForMatch(ctx context.Context, matchID int64) ([]Player, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT team_initials, player_name, player_type FROM players
         WHERE match_id = ? ORDER BY team_initials, player_type, player_name`,
		matchID)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.TeamInitials, &p.Name, &p.Type); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
