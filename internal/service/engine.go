package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"matchcast/internal/config"
	"matchcast/internal/distribution"
	"matchcast/internal/domain"
	"matchcast/internal/planner"
	"matchcast/internal/rules"
	"matchcast/internal/scoring"
)

// claimBatchLimit bounds how many due items one trigger invocation drains,
// keeping every run bounded in duration. Leftovers wait for the next tick.
const claimBatchLimit = 50

// urgentTypes is the content delivered by the urgent cycle: coverage tied to
// imminent or running matches.
var urgentTypes = []domain.ContentType{
	domain.ContentLiveUpdates,
	domain.ContentLiveCommentary,
	domain.ContentSummary,
}

// Engine composes the scoring, planning, rule-evaluation and distribution
// components into the externally-triggered cycles. It holds no state between
// invocations: every run re-reads rules, matches and counters, so each cycle
// is safely re-runnable.
type Engine struct {
	fixtures    FixtureSource
	matches     MatchStore
	rules       RuleStore
	channels    ChannelStore
	schedules   ScheduleStore
	pushes      PushStore
	runs        RunStore
	scheduler   MatchScheduler
	pushPlanner PushPlanner
	dispatcher  Dispatcher
	txManager   TransactionManager
	publisher   Publisher
	logger      *slog.Logger

	cfg     config.EngineConfig
	evalCfg rules.EvalConfig
	now     func() time.Time
}

func NewEngine(
	fixtures FixtureSource,
	matches MatchStore,
	ruleStore RuleStore,
	channels ChannelStore,
	schedules ScheduleStore,
	pushes PushStore,
	runs RunStore,
	scheduler MatchScheduler,
	pushPlanner PushPlanner,
	dispatcher Dispatcher,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.EngineConfig,
) *Engine {
	return &Engine{
		fixtures:    fixtures,
		matches:     matches,
		rules:       ruleStore,
		channels:    channels,
		schedules:   schedules,
		pushes:      pushes,
		runs:        runs,
		scheduler:   scheduler,
		pushPlanner: pushPlanner,
		dispatcher:  dispatcher,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger.With("component", "engine"),
		cfg:         cfg,
		evalCfg: rules.EvalConfig{
			WindowMinutes:        cfg.Rules.WindowMinutes,
			ActiveStartHour:      cfg.Rules.ActiveStartHour,
			ActiveEndHour:        cfg.Rules.ActiveEndHour,
			ContextWindowMinutes: cfg.Rules.ContextWindowMinutes,
			ContextHourInterval:  cfg.Rules.ContextHourInterval,
		},
		now: time.Now,
	}
}

// RunDaily is the discovery cycle: clean up yesterday, fetch and score
// today's fixtures, persist the eligible matches, expand them into content
// schedules and plan the day's randomized coupon pushes.
func (e *Engine) RunDaily(ctx context.Context) (*domain.RunSummary, error) {
	run := e.newRun("daily")
	now := e.now()
	today := now.UTC().Truncate(24 * time.Hour)

	cleaned, err := e.matches.DeleteDiscoveredBefore(ctx, today)
	if err != nil {
		return e.fail(ctx, run, "cleanup", err)
	}
	run.MatchesCleaned = int(cleaned)

	raw, err := e.fixtures.FetchFixtures(ctx, now, now.AddDate(0, 0, e.cfg.MaxDaysAhead))
	if err != nil {
		return e.fail(ctx, run, "fetch fixtures", err)
	}

	scored := scoring.ScoreMatches(raw, scoring.Context{
		Now:           now,
		MinScore:      e.cfg.MinScore,
		MaxDaysAhead:  e.cfg.MaxDaysAhead,
		FinishedGrace: e.cfg.FinishedGrace,
	})

	e.logger.Info("fixtures scored",
		"fetched", len(raw),
		"eligible", len(scored),
	)

	activeChannels, err := e.channels.ListActive(ctx)
	if err != nil {
		return e.fail(ctx, run, "list channels", err)
	}
	langs, channelsByLang := groupChannelIDs(activeChannels)

	var persisted []domain.Match
	err = e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		persisted, txErr = e.matches.UpsertBatch(txCtx, scored)
		return txErr
	})
	if err != nil {
		return e.fail(ctx, run, "persist matches", err)
	}
	run.MatchesDiscovered = len(persisted)

	for _, m := range persisted {
		n, err := e.scheduler.ScheduleMatch(ctx, m, langs, channelsByLang, false)
		if errors.Is(err, planner.ErrAlreadyScheduled) {
			run.Skipped++
			continue
		}
		if err != nil {
			run.Errors++
			e.logger.Error("match scheduling failed",
				"match_id", m.ID,
				"error", err,
			)
			continue
		}
		run.ItemsScheduled += n
	}

	pushChannels, err := e.channels.ListPushEnabled(ctx)
	if err != nil {
		run.Errors++
		e.logger.Error("list push channels failed", "error", err)
	} else {
		slots, err := e.pushPlanner.PlanPushDay(ctx, pushChannels, today, now)
		if err != nil {
			run.Errors++
			e.logger.Error("push planning failed", "error", err)
		} else {
			run.SlotsPlanned = slots
		}
	}

	return e.finish(ctx, run), nil
}

// RunHourly evaluates every enabled rule against the current instant, fans
// out the ones that fire, then delivers due scheduled and queued items.
func (e *Engine) RunHourly(ctx context.Context) (*domain.RunSummary, error) {
	run := e.newRun("hourly")
	now := e.now()

	ruleList, err := e.rules.ListEnabled(ctx)
	if err != nil {
		return e.fail(ctx, run, "list rules", err)
	}
	activeChannels, err := e.channels.ListActive(ctx)
	if err != nil {
		return e.fail(ctx, run, "list channels", err)
	}

	matchesToday, err := e.matches.CountKickingOffOn(ctx, now.UTC().Truncate(24*time.Hour))
	if err != nil {
		run.Errors++
		e.logger.Error("count match days failed", "error", err)
	}

	prevKickoff, nextKickoff, err := e.matches.NearestKickoffs(ctx, now)
	if err != nil {
		run.Errors++
		e.logger.Error("nearest kickoffs failed", "error", err)
	}

	ectx := rules.EvalContext{
		Now:          now,
		MatchesToday: matchesToday,
		NextKickoff:  nextKickoff,
		PrevKickoff:  prevKickoff,
	}

rulesLoop:
	for _, rule := range ruleList {
		decision := rules.Evaluate(rule, ectx, e.evalCfg)
		if !decision.Fire {
			run.RulesSkipped++
			e.logger.Debug("rule skipped",
				"rule", rule.Name,
				"reason", decision.Reason,
			)
			continue
		}

		langs, groups := channelsForRule(rule, activeChannels)
		if len(langs) == 0 {
			run.RulesSkipped++
			e.logger.Info("rule fired but no matching channels",
				"rule", rule.Name,
			)
			continue
		}

		run.RulesFired++
		for _, lang := range langs {
			report, err := e.dispatcher.Dispatch(ctx, distribution.Request{
				ContentType: rule.ContentType,
				Language:    lang,
				Channels:    groups[lang],
				Origin:      rule.ContentType,
			})
			if err != nil {
				run.RuleErrors++
				e.logger.Error("rule dispatch failed",
					"rule", rule.Name,
					"language", lang,
					"error", err,
				)
				continue
			}
			e.accumulate(run, report)
			e.publishDelivery(ctx, run.ID, lang, report)
			if run.EmergencyStop {
				break rulesLoop
			}
		}
	}

	if !run.EmergencyStop {
		e.deliverDueSchedule(ctx, run, now, activeChannels, nil)
		e.deliverDuePush(ctx, run, now, activeChannels)
	}

	return e.finish(ctx, run), nil
}

// RunUrgent delivers only due live-coverage items, so a missed hourly tick
// close to kickoff still gets covered.
func (e *Engine) RunUrgent(ctx context.Context) (*domain.RunSummary, error) {
	run := e.newRun("urgent")
	now := e.now()

	activeChannels, err := e.channels.ListActive(ctx)
	if err != nil {
		return e.fail(ctx, run, "list channels", err)
	}

	e.deliverDueSchedule(ctx, run, now, activeChannels, urgentTypes)

	return e.finish(ctx, run), nil
}

// RunCoupons drains the due portion of the push queue.
func (e *Engine) RunCoupons(ctx context.Context) (*domain.RunSummary, error) {
	run := e.newRun("coupons")
	now := e.now()

	activeChannels, err := e.channels.ListActive(ctx)
	if err != nil {
		return e.fail(ctx, run, "list channels", err)
	}

	e.deliverDuePush(ctx, run, now, activeChannels)

	return e.finish(ctx, run), nil
}

func (e *Engine) deliverDueSchedule(ctx context.Context, run *domain.RunSummary, now time.Time, activeChannels []domain.Channel, types []domain.ContentType) {
	var items []domain.ScheduledContentItem
	var err error
	if types == nil {
		items, err = e.schedules.ClaimDue(ctx, now, claimBatchLimit)
	} else {
		items, err = e.schedules.ClaimDueByTypes(ctx, now, claimBatchLimit, types)
	}
	if err != nil {
		run.Errors++
		e.logger.Error("claim due schedule failed", "error", err)
		return
	}

	byID := channelsByID(activeChannels)
	for _, item := range items {
		run.ItemsDelivered++
		report, err := e.dispatcher.Dispatch(ctx, distribution.Request{
			ContentType: item.ContentType,
			Language:    item.Language,
			Channels:    resolveChannels(item.ChannelIDs, byID),
			Origin:      item.ContentType,
		})
		if err != nil {
			run.Errors++
			e.markScheduleFailed(ctx, item.ID, err.Error())
			continue
		}
		e.accumulate(run, report)
		e.publishDelivery(ctx, run.ID, item.Language, report)
		if report.LimitStatus != domain.SendNormal {
			// Claimed but not sent: downgrade so the row does not lie.
			e.markScheduleFailed(ctx, item.ID, string(report.LimitStatus))
			if run.EmergencyStop {
				return
			}
			continue
		}
		if report.Skipped() {
			// Claimed but nothing went out: downgrade with the skip
			// reason so the row does not read as delivered.
			e.markScheduleFailed(ctx, item.ID, report.SkippedReason)
			continue
		}
		if report.Sent == 0 {
			e.markScheduleFailed(ctx, item.ID, "all_channels_failed")
		}
	}
}

func (e *Engine) deliverDuePush(ctx context.Context, run *domain.RunSummary, now time.Time, activeChannels []domain.Channel) {
	items, err := e.pushes.ClaimDue(ctx, now, claimBatchLimit)
	if err != nil {
		run.Errors++
		e.logger.Error("claim due push failed", "error", err)
		return
	}

	byID := channelsByID(activeChannels)
	for _, item := range items {
		run.ItemsDelivered++
		report, err := e.dispatcher.Dispatch(ctx, distribution.Request{
			ContentType: item.ContentType,
			Language:    item.Language,
			Channels:    resolveChannels(item.ChannelIDs, byID),
			Origin:      item.ContentType,
		})
		if err != nil {
			run.Errors++
			e.markPushFailed(ctx, item.ID, err.Error())
			continue
		}
		e.accumulate(run, report)
		e.publishDelivery(ctx, run.ID, item.Language, report)
		if report.LimitStatus != domain.SendNormal {
			e.markPushFailed(ctx, item.ID, string(report.LimitStatus))
			if run.EmergencyStop {
				return
			}
			continue
		}
		if report.Skipped() {
			e.markPushFailed(ctx, item.ID, report.SkippedReason)
			continue
		}
		if report.Sent == 0 {
			e.markPushFailed(ctx, item.ID, "all_channels_failed")
		}
	}
}

// publishDelivery emits the per-channel outcomes of one fan-out. Event loss
// is logged, never propagated: the broker is an observer, not a dependency.
func (e *Engine) publishDelivery(ctx context.Context, runID, language string, report *distribution.Report) {
	if e.publisher == nil || len(report.Results) == 0 {
		return
	}
	if err := e.publisher.PublishDelivery(ctx, runID, report.ContentType, language, report.Results); err != nil {
		e.logger.Warn("publish delivery event failed", "run_id", runID, "error", err)
	}
}

func (e *Engine) markScheduleFailed(ctx context.Context, id int64, reason string) {
	if err := e.schedules.MarkFailed(ctx, id, reason); err != nil {
		e.logger.Error("mark schedule item failed", "item_id", id, "error", err)
	}
}

func (e *Engine) markPushFailed(ctx context.Context, id int64, reason string) {
	if err := e.pushes.MarkFailed(ctx, id, reason); err != nil {
		e.logger.Error("mark push item failed", "item_id", id, "error", err)
	}
}

func (e *Engine) accumulate(run *domain.RunSummary, report *distribution.Report) {
	run.Sent += report.Sent
	run.Failed += report.Failed
	if report.Skipped() {
		run.Skipped++
	}
	switch report.LimitStatus {
	case domain.SendDailyLimit:
		run.LimitStops++
	case domain.SendEmergencyStop:
		run.LimitStops++
		run.EmergencyStop = true
		e.logger.Error("emergency stop reached, halting run")
	}
}

func (e *Engine) newRun(trigger string) *domain.RunSummary {
	return &domain.RunSummary{
		ID:        uuid.NewString(),
		Trigger:   trigger,
		StartedAt: e.now(),
	}
}

// finish stamps, persists and publishes the summary. Persistence failures
// are logged, not propagated: the summary still goes back to the caller.
func (e *Engine) finish(ctx context.Context, run *domain.RunSummary) *domain.RunSummary {
	run.Duration = e.now().Sub(run.StartedAt)
	run.Success = run.Error == ""

	if err := e.runs.Insert(ctx, run); err != nil {
		e.logger.Error("persist run summary failed", "run_id", run.ID, "error", err)
	}
	if e.publisher != nil {
		if err := e.publisher.PublishRun(ctx, run); err != nil {
			e.logger.Error("publish run summary failed", "run_id", run.ID, "error", err)
		}
	}

	e.logger.Info("run completed",
		"run_id", run.ID,
		"trigger", run.Trigger,
		"success", run.Success,
		"discovered", run.MatchesDiscovered,
		"scheduled", run.ItemsScheduled,
		"fired", run.RulesFired,
		"sent", run.Sent,
		"failed", run.Failed,
		"skipped", run.Skipped,
		"duration", run.Duration,
	)
	return run
}

func (e *Engine) fail(ctx context.Context, run *domain.RunSummary, stage string, err error) (*domain.RunSummary, error) {
	run.Error = fmt.Sprintf("%s: %v", stage, err)
	return e.finish(ctx, run), fmt.Errorf("%s: %w", stage, err)
}

// groupChannelIDs groups active channel IDs by language, with languages in
// stable sorted order.
func groupChannelIDs(channels []domain.Channel) ([]string, map[string][]int64) {
	byLang := map[string][]int64{}
	for _, ch := range channels {
		byLang[ch.Language] = append(byLang[ch.Language], ch.ID)
	}
	langs := make([]string, 0, len(byLang))
	for lang := range byLang {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, byLang
}

// channelsForRule resolves the channels a fired rule targets, grouped by
// language in stable order.
func channelsForRule(rule domain.AutomationRule, channels []domain.Channel) ([]string, map[string][]domain.Channel) {
	groups := map[string][]domain.Channel{}
	for _, ch := range channels {
		if rule.TargetsLanguage(ch.Language) {
			groups[ch.Language] = append(groups[ch.Language], ch)
		}
	}
	langs := make([]string, 0, len(groups))
	for lang := range groups {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs, groups
}

func channelsByID(channels []domain.Channel) map[int64]domain.Channel {
	m := make(map[int64]domain.Channel, len(channels))
	for _, ch := range channels {
		m[ch.ID] = ch
	}
	return m
}

func resolveChannels(ids []int64, byID map[int64]domain.Channel) []domain.Channel {
	out := make([]domain.Channel, 0, len(ids))
	for _, id := range ids {
		if ch, ok := byID[id]; ok {
			out = append(out, ch)
		}
	}
	return out
}
