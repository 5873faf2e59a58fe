package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"matchcast/internal/domain"
)

type CounterStore struct {
	db *sqlx.DB
}

func NewCounterStore(db *sqlx.DB) *CounterStore {
	return &CounterStore{db: db}
}

// reserveQuery increments a counter row only while it is below its cap. The
// guarded upsert is a single atomic statement, so concurrent reservations
// cannot double-spend the budget; no row comes back when the cap is hit.
const reserveQuery = `
	INSERT INTO spam_counters (day, content_type, count, max)
	VALUES ($1, $2, 1, $3)
	ON CONFLICT (day, content_type) DO UPDATE
	SET count = spam_counters.count + 1, max = EXCLUDED.max
	WHERE spam_counters.count < EXCLUDED.max
	RETURNING count`

// ReserveSend reserves one send: the per-type counter and the aggregate
// emergency-brake counter are both incremented inside one transaction, and
// failure of either guard rolls back the whole reservation. Which guard
// failed distinguishes the verdict.
func (s *CounterStore) ReserveSend(ctx context.Context, day time.Time, contentType string, typeMax, totalMax int) (domain.SendStatus, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var count int
	err = tx.QueryRowxContext(ctx, reserveQuery, day, contentType, typeMax).Scan(&count)
	if err == sql.ErrNoRows {
		return domain.SendDailyLimit, nil
	}
	if err != nil {
		return "", err
	}

	err = tx.QueryRowxContext(ctx, reserveQuery, day, domain.AggregateCounterType, totalMax).Scan(&count)
	if err == sql.ErrNoRows {
		return domain.SendEmergencyStop, nil
	}
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return domain.SendNormal, nil
}

// Get returns the current counter for a day and type; zero when absent.
func (s *CounterStore) Get(ctx context.Context, day time.Time, contentType string) (domain.SpamCounter, error) {
	var c domain.SpamCounter
	err := s.db.GetContext(ctx, &c,
		`SELECT day, content_type, count, max FROM spam_counters WHERE day = $1 AND content_type = $2`,
		day, contentType,
	)
	if err == sql.ErrNoRows {
		return domain.SpamCounter{Day: day, ContentType: contentType}, nil
	}
	return c, err
}
