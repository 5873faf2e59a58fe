package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchcast/internal/domain"
)

type PushStore struct {
	db *sqlx.DB
}

func NewPushStore(db *sqlx.DB) *PushStore {
	return &PushStore{db: db}
}

func (s *PushStore) InsertBatch(ctx context.Context, items []domain.PushQueueItem) (int, error) {
	query := `
		INSERT INTO push_queue (
			content_type, channel_ids, language, scheduled_at, delay_minutes,
			status, context
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	exec := GetExecutor(ctx, s.db)

	inserted := 0
	for _, it := range items {
		payload, err := json.Marshal(it.Context)
		if err != nil {
			return inserted, fmt.Errorf("marshal context: %w", err)
		}
		_, err = exec.ExecContext(ctx, query,
			string(it.ContentType),
			pq.Array(it.ChannelIDs),
			it.Language,
			it.ScheduledAt,
			it.DelayMinutes,
			string(it.Status),
			payload,
		)
		if err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

// ClaimDue claims pending queue items whose scheduled time has arrived, the
// same way ScheduleStore.ClaimDue does.
func (s *PushStore) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.PushQueueItem, error) {
	query := `
		UPDATE push_queue
		SET status = 'sent'
		WHERE id IN (
			SELECT id FROM push_queue
			WHERE status = 'pending' AND scheduled_at <= $1
			ORDER BY scheduled_at ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, content_type, channel_ids, language, scheduled_at,
		          delay_minutes, status, context`

	rows, err := s.db.QueryxContext(ctx, query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PushQueueItem
	for rows.Next() {
		var it domain.PushQueueItem
		var contentType, status string
		var payload []byte
		err := rows.Scan(
			&it.ID, &contentType, pq.Array(&it.ChannelIDs), &it.Language,
			&it.ScheduledAt, &it.DelayMinutes, &status, &payload,
		)
		if err != nil {
			return nil, err
		}
		it.ContentType = domain.ContentType(contentType)
		it.Status = domain.ItemStatus(status)
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &it.Context); err != nil {
				return nil, fmt.Errorf("unmarshal context: %w", err)
			}
		}
		out = append(out, it)
	}

	return out, rows.Err()
}

func (s *PushStore) MarkFailed(ctx context.Context, id int64, reason string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE push_queue
		 SET status = 'failed',
		     context = context || jsonb_build_object('error', $2::text)
		 WHERE id = $1`,
		id, reason,
	)
	return err
}
