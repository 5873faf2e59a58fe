package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"matchcast/internal/domain"
)

type RuleStore struct {
	db *sqlx.DB
}

func NewRuleStore(db *sqlx.DB) *RuleStore {
	return &RuleStore{db: db}
}

// ListEnabled returns enabled rules in firing order: priority ascending
// (lower fires first), id ascending on ties.
func (s *RuleStore) ListEnabled(ctx context.Context) ([]domain.AutomationRule, error) {
	query := `
		SELECT id, name, content_type, automation_type, enabled, priority,
		       languages, anchor_times, days, match_day_only, weekend_only,
		       minutes_before_match, minutes_after_match
		FROM automation_rules
		WHERE enabled
		ORDER BY priority ASC, id ASC`

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AutomationRule
	for rows.Next() {
		var r domain.AutomationRule
		var contentType, automationType string
		var days []int64
		err := rows.Scan(
			&r.ID, &r.Name, &contentType, &automationType, &r.Enabled, &r.Priority,
			pq.Array(&r.Languages), pq.Array(&r.AnchorTimes), pq.Array(&days),
			&r.MatchDayOnly, &r.WeekendOnly,
			&r.MinutesBeforeMatch, &r.MinutesAfterMatch,
		)
		if err != nil {
			return nil, err
		}
		r.ContentType = domain.ContentType(contentType)
		r.Type = domain.AutomationType(automationType)
		for _, d := range days {
			r.Days = append(r.Days, time.Weekday(d))
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

func (s *ChannelStore) ListActive(ctx context.Context) ([]domain.Channel, error) {
	return s.list(ctx, "SELECT id, telegram_chat_id, title, language, active, push_enabled, push_max_per_day FROM channels WHERE active ORDER BY id")
}

func (s *ChannelStore) ListPushEnabled(ctx context.Context) ([]domain.Channel, error) {
	return s.list(ctx, "SELECT id, telegram_chat_id, title, language, active, push_enabled, push_max_per_day FROM channels WHERE active AND push_enabled ORDER BY id")
}

func (s *ChannelStore) list(ctx context.Context, query string) ([]domain.Channel, error) {
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Channel
	for rows.Next() {
		var ch domain.Channel
		if err := rows.Scan(&ch.ID, &ch.TelegramChatID, &ch.Title, &ch.Language, &ch.Active, &ch.PushEnabled, &ch.PushMaxPerDay); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}

	return out, rows.Err()
}
