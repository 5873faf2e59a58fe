package planner

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

// PushStore is the queue side of the persistent store.
type PushStore interface {
	InsertBatch(ctx context.Context, items []domain.PushQueueItem) (int, error)
}

// RandomSlots generates up to cfg.MaxPerDay randomized delivery slots for one
// channel on day, by rejection sampling: a candidate hour is drawn from the
// allowed-hour set and a random minute attached, and the candidate is kept
// only if it is strictly in the future and at least MinGapHours away from
// every slot already accepted. Each slot gets cfg.MaxRetries attempts before
// being given up on, so tight constraints legitimately yield fewer slots.
// Accepted slots come back chronologically sorted.
func RandomSlots(cfg config.PushConfig, day, now time.Time, rng *rand.Rand) []time.Time {
	hours := allowedHours(cfg)
	if len(hours) == 0 {
		return nil
	}
	minGap := time.Duration(cfg.MinGapHours) * time.Hour

	var slots []time.Time
	for i := 0; i < cfg.MaxPerDay; i++ {
		for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
			h := hours[rng.Intn(len(hours))]
			m := rng.Intn(60)
			candidate := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
			if !candidate.After(now) {
				continue
			}
			if tooClose(candidate, slots, minGap) {
				continue
			}
			slots = append(slots, candidate)
			break
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}

func tooClose(candidate time.Time, slots []time.Time, minGap time.Duration) bool {
	for _, s := range slots {
		d := candidate.Sub(s)
		if d < 0 {
			d = -d
		}
		if d < minGap {
			return true
		}
	}
	return false
}

// allowedHours is the allowed-hour band minus the blackout window. The
// blackout may wrap past midnight (e.g. 22..02).
func allowedHours(cfg config.PushConfig) []int {
	var hours []int
	for h := cfg.AllowedStartHour; h < cfg.AllowedEndHour; h++ {
		if inBlackout(h, cfg) {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}

func inBlackout(h int, cfg config.PushConfig) bool {
	start, end := cfg.BlackoutStartHour, cfg.BlackoutEndHour
	if start < 0 || end < 0 {
		return false
	}
	if start <= end {
		return h >= start && h < end
	}
	return h >= start || h < end
}

// PlanPushDay generates and persists the day's randomized coupon slots for
// every push-enabled channel. A channel's own per-day cap, when set, lowers
// the configured maximum.
func (p *Planner) PlanPushDay(ctx context.Context, channels []domain.Channel, day, now time.Time) (int, error) {
	var items []domain.PushQueueItem
	for _, ch := range channels {
		if !ch.PushEnabled {
			continue
		}
		chCfg := p.pushCfg
		if ch.PushMaxPerDay > 0 && ch.PushMaxPerDay < chCfg.MaxPerDay {
			chCfg.MaxPerDay = ch.PushMaxPerDay
		}
		slots := RandomSlots(chCfg, day, now, p.rng)
		for _, at := range slots {
			items = append(items, domain.PushQueueItem{
				ContentType: domain.ContentCoupons,
				ChannelIDs:  []int64{ch.ID},
				Language:    ch.Language,
				ScheduledAt: at,
				Status:      domain.ItemPending,
				Context: map[string]string{
					"trigger": "daily_random_plan",
					"channel": ch.Title,
				},
			})
		}
		if len(slots) < chCfg.MaxPerDay {
			p.logger.Debug("channel received fewer slots than configured",
				"channel_id", ch.ID,
				"planned", len(slots),
				"wanted", chCfg.MaxPerDay,
			)
		}
	}

	if len(items) == 0 {
		return 0, nil
	}
	inserted, err := p.pushes.InsertBatch(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("insert push queue: %w", err)
	}
	return inserted, nil
}
