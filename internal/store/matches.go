package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Match is one ingested match report.
type Match struct {
	ID         int64
	Key        string
	Date       string
	HomeTeam   string
	AwayTeam   string
	HomeCode   string
	AwayCode   string
	HomeScore  int
	AwayScore  int
	SourceFile string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const matchColumns = `id, match_key, match_date, home_team, away_team,
	home_code, away_code, home_score, away_score, source_file, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (*Match, error) {
	var (
		match      Match
		homeCode   sql.NullString
		awayCode   sql.NullString
		sourceFile sql.NullString
		createdAt  string
		updatedAt  string
	)
	err := row.Scan(
		&match.ID, &match.Key, &match.Date, &match.HomeTeam, &match.AwayTeam,
		&homeCode, &awayCode, &match.HomeScore, &match.AwayScore, &sourceFile,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	match.HomeCode = homeCode.String
	match.AwayCode = awayCode.String
	match.SourceFile = sourceFile.String
	if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		match.CreatedAt = parsed
	}
	if parsed, parseErr := time.Parse(time.RFC3339Nano, updatedAt); parseErr == nil {
		match.UpdatedAt = parsed
	}
	return &match, nil
}

// UpsertMatch creates or refreshes the match row for a key and returns it.
// Re-ingesting a report updates the identity columns in place, keeping the
// match id stable so existing events survive.
func (s *Store) UpsertMatch(ctx context.Context, match *Match) (*Match, error) {
	if match == nil {
		return nil, errors.New("match is nil")
	}
	if match.Key == "" {
		return nil, errors.New("match key is empty")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (
            match_key, match_date, home_team, away_team,
            home_code, away_code, source_file, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(match_key) DO UPDATE SET
            match_date = excluded.match_date,
            home_team = excluded.home_team,
            away_team = excluded.away_team,
            home_code = excluded.home_code,
            away_code = excluded.away_code,
            source_file = excluded.source_file,
            updated_at = excluded.updated_at`,
		match.Key,
		match.Date,
		match.HomeTeam,
		match.AwayTeam,
		nullableString(match.HomeCode),
		nullableString(match.AwayCode),
		nullableString(match.SourceFile),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert match: %w", err)
	}
	return s.MatchByKey(ctx, match.Key)
}

// MatchByKey fetches a match by its key, or nil when absent.
func (s *Store) MatchByKey(ctx context.Context, key string) (*Match, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE match_key = ?`, key)
	match, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

// MatchByID fetches a match by identifier, or nil when absent.
func (s *Store) MatchByID(ctx context.Context, id int64) (*Match, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	match, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	return match, nil
}

// ListMatches returns every match ordered by date then key.
func (s *Store) ListMatches(ctx context.Context) ([]*Match, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches
         ORDER BY substr(match_date, 7, 4), substr(match_date, 4, 2), substr(match_date, 1, 2), match_key`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}
