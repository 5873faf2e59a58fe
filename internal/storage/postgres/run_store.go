package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"matchcast/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Insert(ctx context.Context, run *domain.RunSummary) error {
	query := `
		INSERT INTO run_summaries (
			id, trigger_name, started_at, duration_ms,
			matches_discovered, matches_cleaned, items_scheduled, slots_planned,
			rules_fired, rules_skipped, rule_errors, items_delivered,
			sent, failed, skipped, errors, limit_stops, emergency_stop, success, error
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)`

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.Trigger,
		run.StartedAt,
		run.Duration.Milliseconds(),
		run.MatchesDiscovered,
		run.MatchesCleaned,
		run.ItemsScheduled,
		run.SlotsPlanned,
		run.RulesFired,
		run.RulesSkipped,
		run.RuleErrors,
		run.ItemsDelivered,
		run.Sent,
		run.Failed,
		run.Skipped,
		run.Errors,
		run.LimitStops,
		run.EmergencyStop,
		run.Success,
		run.Error,
	)
	return err
}
