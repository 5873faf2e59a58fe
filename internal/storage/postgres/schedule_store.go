package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchcast/internal/domain"
)

type ScheduleStore struct {
	db *sqlx.DB
}

func NewScheduleStore(db *sqlx.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

func (s *ScheduleStore) InsertBatch(ctx context.Context, items []domain.ScheduledContentItem) (int, error) {
	query := `
		INSERT INTO scheduled_content (
			match_id, content_type, subtype, language, channel_ids,
			scheduled_at, priority, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	exec := GetExecutor(ctx, s.db)

	inserted := 0
	for _, it := range items {
		_, err := exec.ExecContext(ctx, query,
			it.MatchID,
			string(it.ContentType),
			it.Subtype,
			it.Language,
			pq.Array(it.ChannelIDs),
			it.ScheduledAt,
			it.Priority,
			string(it.Status),
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

func (s *ScheduleStore) CountPendingByMatch(ctx context.Context, matchID int64) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		"SELECT COUNT(*) FROM scheduled_content WHERE match_id = $1 AND status = 'pending'",
		matchID,
	)
	return n, err
}

// CancelPendingByMatch transitions every pending item of a match to
// cancelled with an audit reason. Idempotent: items already sent, failed or
// cancelled are untouched.
func (s *ScheduleStore) CancelPendingByMatch(ctx context.Context, matchID int64, reason string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE scheduled_content
		 SET status = 'cancelled', cancel_reason = $2
		 WHERE match_id = $1 AND status = 'pending'`,
		matchID, reason,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ClaimDue atomically claims pending items whose time has arrived by moving
// them to sent; a delivery failure is downgraded afterwards with MarkFailed.
// The conditional status check makes overlapping trigger invocations safe:
// each row is claimed by exactly one of them.
func (s *ScheduleStore) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledContentItem, error) {
	return s.claim(ctx, now, limit, nil)
}

// ClaimDueByTypes is ClaimDue restricted to the given content types; the
// urgent cycle uses it to pull only live coverage forward.
func (s *ScheduleStore) ClaimDueByTypes(ctx context.Context, now time.Time, limit int, types []domain.ContentType) ([]domain.ScheduledContentItem, error) {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return s.claim(ctx, now, limit, names)
}

func (s *ScheduleStore) claim(ctx context.Context, now time.Time, limit int, types []string) ([]domain.ScheduledContentItem, error) {
	query := `
		UPDATE scheduled_content
		SET status = 'sent'
		WHERE id IN (
			SELECT id FROM scheduled_content
			WHERE status = 'pending' AND scheduled_at <= $1
			  AND ($3::text[] IS NULL OR content_type = ANY($3))
			ORDER BY priority DESC, scheduled_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, match_id, content_type, subtype, language, channel_ids,
		          scheduled_at, priority, status`

	var typesArg interface{}
	if types != nil {
		typesArg = pq.Array(types)
	}

	rows, err := s.db.QueryxContext(ctx, query, now, limit, typesArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ScheduledContentItem
	for rows.Next() {
		var it domain.ScheduledContentItem
		var contentType, status string
		err := rows.Scan(
			&it.ID, &it.MatchID, &contentType, &it.Subtype, &it.Language,
			pq.Array(&it.ChannelIDs), &it.ScheduledAt, &it.Priority, &status,
		)
		if err != nil {
			return nil, err
		}
		it.ContentType = domain.ContentType(contentType)
		it.Status = domain.ItemStatus(status)
		out = append(out, it)
	}

	return out, rows.Err()
}

// MarkFailed downgrades a claimed item after its delivery failed.
func (s *ScheduleStore) MarkFailed(ctx context.Context, id int64, reason string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE scheduled_content SET status = 'failed', cancel_reason = $2 WHERE id = $1",
		id, reason,
	)
	return err
}
