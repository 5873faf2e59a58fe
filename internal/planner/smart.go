package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

// ErrAlreadyScheduled is returned when a match already has pending items and
// the caller did not force a reschedule.
var ErrAlreadyScheduled = errors.New("match already has pending scheduled content")

// ScheduleStore is the slice of the persistent store the planner needs.
type ScheduleStore interface {
	CountPendingByMatch(ctx context.Context, matchID int64) (int, error)
	CancelPendingByMatch(ctx context.Context, matchID int64, reason string) (int64, error)
	InsertBatch(ctx context.Context, items []domain.ScheduledContentItem) (int, error)
}

// Planner turns scored matches into persisted schedules and plans the
// randomized secondary pushes.
type Planner struct {
	schedules ScheduleStore
	pushes    PushStore
	pushCfg   config.PushConfig
	rng       *rand.Rand
	logger    *slog.Logger
	now       func() time.Time
}

func New(schedules ScheduleStore, pushes PushStore, pushCfg config.PushConfig, rng *rand.Rand, logger *slog.Logger) *Planner {
	return &Planner{
		schedules: schedules,
		pushes:    pushes,
		pushCfg:   pushCfg,
		rng:       rng,
		logger:    logger.With("component", "planner"),
		now:       time.Now,
	}
}

// BuildMatchSchedule expands one scored match into timed items across every
// (opportunity flag, language) pair. Pure: persists nothing, reads no clock
// beyond the now argument. Pre-match items whose slot already passed are
// pulled forward to shortly after now rather than dropped, so late discovery
// of a big match still produces its pre-match content.
func BuildMatchSchedule(m domain.Match, langs []string, channelsByLang map[string][]int64, now time.Time) []domain.ScheduledContentItem {
	tpl := templateFor(m.Score, m.KickoffAt)

	var items []domain.ScheduledContentItem
	for _, ct := range m.Opportunities.Types() {
		offset, ok := tpl.offsets[ct]
		if !ok {
			continue
		}
		at := m.KickoffAt.Add(offset)
		if offset < 0 && at.Before(now) {
			at = now.Add(5 * time.Minute)
		}
		for _, lang := range langs {
			channels := channelsByLang[lang]
			if len(channels) == 0 {
				continue
			}
			items = append(items, domain.ScheduledContentItem{
				MatchID:     m.ID,
				ContentType: ct,
				Subtype:     tpl.name,
				Language:    lang,
				ChannelIDs:  channels,
				ScheduledAt: at,
				Priority:    priorityFor(ct, m.Score),
				Status:      domain.ItemPending,
			})
		}
	}
	return items
}

// ScheduleMatch persists the schedule for one match. Re-entry is rejected
// with ErrAlreadyScheduled while pending items exist, unless force is set, in
// which case all pending items are cancelled (with an audit reason) strictly
// before the new ones are inserted.
func (p *Planner) ScheduleMatch(ctx context.Context, m domain.Match, langs []string, channelsByLang map[string][]int64, force bool) (int, error) {
	pending, err := p.schedules.CountPendingByMatch(ctx, m.ID)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}
	if pending > 0 {
		if !force {
			return 0, ErrAlreadyScheduled
		}
		cancelled, err := p.schedules.CancelPendingByMatch(ctx, m.ID, "force_reschedule")
		if err != nil {
			return 0, fmt.Errorf("cancel pending: %w", err)
		}
		p.logger.Info("cancelled pending items before reschedule",
			"match_id", m.ID,
			"cancelled", cancelled,
		)
	}

	items := BuildMatchSchedule(m, langs, channelsByLang, p.now())
	if len(items) == 0 {
		return 0, nil
	}

	inserted, err := p.schedules.InsertBatch(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("insert schedule: %w", err)
	}

	p.logger.Info("match scheduled",
		"match_id", m.ID,
		"score", m.Score,
		"items", inserted,
	)
	return inserted, nil
}
