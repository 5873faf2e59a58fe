package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"matchcast/internal/domain"
)

type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

// UpsertBatch inserts the day's scored matches. A match already discovered
// today is left untouched (matches are immutable after creation). Returns
// the persisted matches with their row IDs filled in.
func (s *MatchStore) UpsertBatch(ctx context.Context, matches []domain.Match) ([]domain.Match, error) {
	query := `
		INSERT INTO matches (
			external_id, home_team_id, away_team_id, home_team, away_team,
			competition_id, kickoff_at, discovery_date, score, breakdown,
			opp_poll, opp_betting, opp_analysis, opp_live_updates, opp_summary,
			opp_premium_analysis, opp_multiple_polls, opp_live_commentary
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT (external_id, discovery_date) DO NOTHING
		RETURNING id`

	exec := GetExecutor(ctx, s.db)

	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		breakdown, err := json.Marshal(m.Breakdown)
		if err != nil {
			return out, fmt.Errorf("marshal breakdown: %w", err)
		}

		var id int64
		err = exec.QueryRowxContext(ctx, query,
			m.ExternalID,
			m.HomeTeamID,
			m.AwayTeamID,
			m.HomeTeam,
			m.AwayTeam,
			m.CompetitionID,
			m.KickoffAt,
			m.DiscoveryDate,
			m.Score,
			breakdown,
			m.Opportunities.Poll,
			m.Opportunities.Betting,
			m.Opportunities.Analysis,
			m.Opportunities.LiveUpdates,
			m.Opportunities.Summary,
			m.Opportunities.PremiumAnalysis,
			m.Opportunities.MultiplePolls,
			m.Opportunities.LiveCommentary,
		).Scan(&id)

		if err == sql.ErrNoRows {
			// Already discovered today.
			err = exec.QueryRowxContext(ctx,
				"SELECT id FROM matches WHERE external_id = $1 AND discovery_date = $2",
				m.ExternalID, m.DiscoveryDate,
			).Scan(&id)
		}
		if err != nil {
			return out, err
		}

		m.ID = id
		out = append(out, m)
	}

	return out, nil
}

// ListByDiscoveryDate returns the matches discovered on a given day, best
// first.
func (s *MatchStore) ListByDiscoveryDate(ctx context.Context, date time.Time) ([]domain.Match, error) {
	query := `
		SELECT id, external_id, home_team_id, away_team_id, home_team, away_team,
		       competition_id, kickoff_at, discovery_date, score, breakdown,
		       opp_poll, opp_betting, opp_analysis, opp_live_updates, opp_summary,
		       opp_premium_analysis, opp_multiple_polls, opp_live_commentary
		FROM matches
		WHERE discovery_date = $1
		ORDER BY score DESC, kickoff_at ASC`

	rows, err := s.db.QueryxContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// CountUpcoming counts persisted matches kicking off inside the window.
func (s *MatchStore) CountUpcoming(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM matches WHERE kickoff_at >= $1 AND kickoff_at <= $2",
		from, to,
	)
	return n, err
}

// CountKickingOffOn counts matches kicking off on the given calendar day.
func (s *MatchStore) CountKickingOffOn(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM matches WHERE kickoff_at >= $1 AND kickoff_at < $2",
		day, day.AddDate(0, 0, 1),
	)
	return n, err
}

// NearestKickoffs returns the latest kickoff before now and the earliest one
// at or after it. Either is zero when no such match exists.
func (s *MatchStore) NearestKickoffs(ctx context.Context, now time.Time) (prev, next time.Time, err error) {
	err = s.db.GetContext(ctx, &prev,
		"SELECT COALESCE(MAX(kickoff_at), 'epoch'::timestamptz) FROM matches WHERE kickoff_at < $1",
		now,
	)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	err = s.db.GetContext(ctx, &next,
		"SELECT COALESCE(MIN(kickoff_at), 'epoch'::timestamptz) FROM matches WHERE kickoff_at >= $1",
		now,
	)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	epoch := time.Unix(0, 0).UTC()
	if prev.Equal(epoch) {
		prev = time.Time{}
	}
	if next.Equal(epoch) {
		next = time.Time{}
	}
	return prev, next, nil
}

// DeleteDiscoveredBefore removes stale matches; dependent schedule rows go
// with them via the FK cascade.
func (s *MatchStore) DeleteDiscoveredBefore(ctx context.Context, date time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM matches WHERE discovery_date < $1",
		date,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanMatch(rows *sqlx.Rows) (domain.Match, error) {
	var m domain.Match
	var breakdown []byte
	err := rows.Scan(
		&m.ID, &m.ExternalID, &m.HomeTeamID, &m.AwayTeamID, &m.HomeTeam, &m.AwayTeam,
		&m.CompetitionID, &m.KickoffAt, &m.DiscoveryDate, &m.Score, &breakdown,
		&m.Opportunities.Poll, &m.Opportunities.Betting, &m.Opportunities.Analysis,
		&m.Opportunities.LiveUpdates, &m.Opportunities.Summary,
		&m.Opportunities.PremiumAnalysis, &m.Opportunities.MultiplePolls,
		&m.Opportunities.LiveCommentary,
	)
	if err != nil {
		return m, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &m.Breakdown); err != nil {
			return m, fmt.Errorf("unmarshal breakdown: %w", err)
		}
	}
	return m, nil
}
