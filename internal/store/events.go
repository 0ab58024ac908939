package store

import (
	"context"
	"database/sql"
	"fmt"

	"kampdata/internal/events"
)

const eventColumns = `time, score_update, team_initials, action_1, position,
	player_number, player_name, action_2, player2_number, player2_name,
	goalkeeper_number, goalkeeper_name, section_number`

func scanEvent(row rowScanner) (events.MatchEvent, error) {
	var (
		event  events.MatchEvent
		fields [11]sql.NullString
	)
	err := row.Scan(
		&event.Time, &fields[0], &fields[1], &fields[2], &fields[3], &fields[4],
		&fields[5], &fields[6], &fields[7], &fields[8], &fields[9], &fields[10],
		&event.SectionNumber,
	)
	if err != nil {
		return event, err
	}
	event.ScoreUpdate = fields[0].String
	event.TeamInitials = fields[1].String
	event.Action1 = fields[2].String
	event.Position = fields[3].String
	event.PlayerNumber = fields[4].String
	event.PlayerName = fields[5].String
	event.Action2 = fields[6].String
	event.Player2Number = fields[7].String
	event.Player2Name = fields[8].String
	event.GoalkeeperNumber = fields[9].String
	event.GoalkeeperName = fields[10].String
	return event, nil
}

// ReplaceSectionEvents swaps out everything previously stored for one section
// of a match. Delete plus insert in a single transaction makes re-running
// extraction for a chunk idempotent.
func (s *Store) ReplaceSectionEvents(ctx context.Context, matchID int64, section int, batch []events.MatchEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin events tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM game_events WHERE match_id = ? AND section_number = ?`,
		matchID, section,
	); err != nil {
		return fmt.Errorf("clear section events: %w", err)
	}

	for _, event := range batch {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO game_events (match_id, `+eventColumns+`)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			matchID,
			event.Time,
			nullableString(event.ScoreUpdate),
			nullableString(event.TeamInitials),
			nullableString(event.Action1),
			nullableString(event.Position),
			nullableString(event.PlayerNumber),
			nullableString(event.PlayerName),
			nullableString(event.Action2),
			nullableString(event.Player2Number),
			nullableString(event.Player2Name),
			nullableString(event.GoalkeeperNumber),
			nullableString(event.GoalkeeperName),
			section,
		); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit events: %w", err)
	}
	return nil
}

// EventsForMatch returns a match's events ordered by section then insertion.
func (s *Store) EventsForMatch(ctx context.Context, matchID int64) ([]events.MatchEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM game_events WHERE match_id = ? ORDER BY section_number, id`,
		matchID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []events.MatchEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

// EventCount returns the number of stored events for a match.
func (s *Store) EventCount(ctx context.Context, matchID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM game_events WHERE match_id = ?`, matchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// StandardizeEvents rewrites a match's events through the action
// standardizer and reports how many rows changed.
func (s *Store) StandardizeEvents(ctx context.Context, matchID int64) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, `+eventColumns+` FROM game_events WHERE match_id = ? ORDER BY id`,
		matchID)
	if err != nil {
		return 0, fmt.Errorf("query events: %w", err)
	}

	type pending struct {
		id    int64
		event events.MatchEvent
	}
	var updates []pending
	for rows.Next() {
		var id int64
		event, err := scanEvent(&prefixedScanner{id: &id, inner: rows})
		if err != nil {
			rows.Close()
			return 0, err
		}
		if cleaned := events.Standardize(event); cleaned != event {
			updates = append(updates, pending{id: id, event: cleaned})
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin standardize tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, update := range updates {
		event := update.event
		if _, err := tx.ExecContext(ctx,
			`UPDATE game_events SET
                action_1 = ?, position = ?, player_number = ?, player_name = ?,
                action_2 = ?, player2_number = ?
             WHERE id = ?`,
			nullableString(event.Action1),
			nullableString(event.Position),
			nullableString(event.PlayerNumber),
			nullableString(event.PlayerName),
			nullableString(event.Action2),
			nullableString(event.Player2Number),
			update.id,
		); err != nil {
			return 0, fmt.Errorf("update event %d: %w", update.id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit standardize: %w", err)
	}
	return len(updates), nil
}

// prefixedScanner peels a leading id column off a row before handing the rest
// to scanEvent.
type prefixedScanner struct {
	id    *int64
	inner rowScanner
}

func (p *prefixedScanner) Scan(dest ...any) error {
	all := make([]any, 0, len(dest)+1)
	all = append(all, p.id)
	all = append(all, dest...)
	return p.inner.Scan(all...)
}
