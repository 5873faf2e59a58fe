package spamguard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

// CounterStore performs the atomic check-and-increment against the
// persistent store. ReserveSend must be a single conditional read-modify-
// write: concurrent invocations must not be able to double-spend the budget.
type CounterStore interface {
	ReserveSend(ctx context.Context, day time.Time, contentType string, typeMax, totalMax int) (domain.SendStatus, error)
}

// Guard gates every automated outbound send against the daily volume caps.
// It holds no in-memory state; counters live in the store and reset
// implicitly when the day key changes.
type Guard struct {
	store  CounterStore
	limits config.LimitsConfig
	logger *slog.Logger
	now    func() time.Time
}

func New(store CounterStore, limits config.LimitsConfig, logger *slog.Logger) *Guard {
	return &Guard{
		store:  store,
		limits: limits,
		logger: logger.With("component", "spam_guard"),
		now:    time.Now,
	}
}

// TryReserve reserves one send of the given content type for today. On
// SendNormal the budget is already consumed; reservations are never returned.
// Callers must invoke this immediately before each outbound send, not once
// per batch.
func (g *Guard) TryReserve(ctx context.Context, contentType domain.ContentType) (domain.SendStatus, error) {
	day := g.now().UTC().Truncate(24 * time.Hour)
	typeMax := g.limits.MaxFor(string(contentType))

	status, err := g.store.ReserveSend(ctx, day, string(contentType), typeMax, g.limits.EmergencyMax)
	if err != nil {
		return "", fmt.Errorf("reserve send: %w", err)
	}

	switch status {
	case domain.SendDailyLimit:
		g.logger.Warn("daily limit reached",
			"content_type", contentType,
			"max", typeMax,
		)
	case domain.SendEmergencyStop:
		g.logger.Error("emergency brake engaged, all automated sends halted for today",
			"content_type", contentType,
			"max_total", g.limits.EmergencyMax,
		)
	}

	return status, nil
}
