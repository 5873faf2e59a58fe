package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"matchcast/internal/domain"
)

// EvalConfig is the injected evaluation environment; there is no environment
// sniffing inside the evaluator, so it stays a pure function of its inputs.
type EvalConfig struct {
	// WindowMinutes is the half-width of the firing window around a
	// scheduled rule's anchor time. Production deployments run this wider
	// (60) than local ones (30): a missed exact-minute trigger must not
	// mean a missed day.
	WindowMinutes int
	// ActiveStartHour/ActiveEndHour bound event-driven content. The band
	// may wrap past midnight when start > end.
	ActiveStartHour int
	ActiveEndHour   int
	// Context-aware rules fire in the first ContextWindowMinutes of every
	// ContextHourInterval-th hour.
	ContextWindowMinutes int
	ContextHourInterval  int
}

// EvalContext is the world state at evaluation time.
type EvalContext struct {
	Now time.Time
	// MatchesToday is supplied by the orchestrator so the match-day-only
	// condition does not require the evaluator to touch storage.
	MatchesToday int
	// NextKickoff is the earliest kickoff at or after Now, PrevKickoff the
	// latest one before it. Zero when no such match exists. Supplied by the
	// orchestrator for the minutes-before/after-match conditions.
	NextKickoff time.Time
	PrevKickoff time.Time
}

// Decision is the outcome of evaluating one rule at one instant.
type Decision struct {
	Fire   bool
	Reason string
}

// Evaluate decides whether a rule should fire at ectx.Now. Pure.
func Evaluate(rule domain.AutomationRule, ectx EvalContext, cfg EvalConfig) Decision {
	if !rule.Enabled {
		return Decision{Reason: "disabled"}
	}
	if len(rule.Days) > 0 && !containsWeekday(rule.Days, ectx.Now.Weekday()) {
		return Decision{Reason: "day_of_week_restricted"}
	}
	if rule.WeekendOnly && !isWeekend(ectx.Now) {
		return Decision{Reason: "weekend_only"}
	}
	if rule.MatchDayOnly && ectx.MatchesToday == 0 {
		return Decision{Reason: "match_day_only_no_matches"}
	}
	if rule.MinutesBeforeMatch > 0 && !withinPreMatch(ectx, rule.MinutesBeforeMatch) {
		return Decision{Reason: "outside_pre_match_window"}
	}
	if rule.MinutesAfterMatch > 0 && !withinPostMatch(ectx, rule.MinutesAfterMatch) {
		return Decision{Reason: "outside_post_match_window"}
	}

	switch rule.Type {
	case domain.AutomationScheduled:
		return evaluateScheduled(rule, ectx.Now, cfg)
	case domain.AutomationEventDriven:
		return evaluateEventDriven(ectx.Now, cfg)
	case domain.AutomationContextAware:
		return evaluateContextAware(ectx.Now, cfg)
	default:
		return Decision{Reason: fmt.Sprintf("unknown_automation_type:%s", rule.Type)}
	}
}

// evaluateScheduled fires when now is within WindowMinutes of an anchor time.
// The window is symmetric and computed on absolute times, so anchors near an
// hour boundary or midnight behave: yesterday's and tomorrow's instance of
// each anchor are considered too.
func evaluateScheduled(rule domain.AutomationRule, now time.Time, cfg EvalConfig) Decision {
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	for _, anchor := range rule.AnchorTimes {
		hh, mm, err := ParseAnchor(anchor)
		if err != nil {
			continue
		}
		base := time.Date(now.Year(), now.Month(), now.Day(), hh, mm, 0, 0, now.Location())
		for _, at := range []time.Time{base.AddDate(0, 0, -1), base, base.AddDate(0, 0, 1)} {
			d := now.Sub(at)
			if d < 0 {
				d = -d
			}
			if d <= window {
				return Decision{Fire: true, Reason: "within_window_of_" + anchor}
			}
		}
	}
	return Decision{Reason: "outside_schedule_windows"}
}

// evaluateEventDriven answers "is it generally an acceptable hour to push
// this content type"; binding content to a specific match is the smart
// scheduler's job.
func evaluateEventDriven(now time.Time, cfg EvalConfig) Decision {
	h := now.Hour()
	var inside bool
	if cfg.ActiveStartHour <= cfg.ActiveEndHour {
		inside = h >= cfg.ActiveStartHour && h < cfg.ActiveEndHour
	} else {
		// Band wraps past midnight.
		inside = h >= cfg.ActiveStartHour || h < cfg.ActiveEndHour
	}
	if inside {
		return Decision{Fire: true, Reason: "inside_active_hours"}
	}
	return Decision{Reason: "outside_active_hours"}
}

func evaluateContextAware(now time.Time, cfg EvalConfig) Decision {
	interval := cfg.ContextHourInterval
	if interval <= 0 {
		interval = 1
	}
	if now.Hour()%interval == 0 && now.Minute() < cfg.ContextWindowMinutes {
		return Decision{Fire: true, Reason: "context_window_open"}
	}
	return Decision{Reason: "context_window_closed"}
}

// ParseAnchor parses an "HH:MM" anchor time.
func ParseAnchor(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed anchor time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("malformed anchor hour %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("malformed anchor minute %q", s)
	}
	return hour, minute, nil
}

// withinPreMatch reports whether now falls in the [kickoff-minutes, kickoff]
// window of the next kickoff.
func withinPreMatch(ectx EvalContext, minutes int) bool {
	if ectx.NextKickoff.IsZero() {
		return false
	}
	lead := ectx.NextKickoff.Sub(ectx.Now)
	return lead >= 0 && lead <= time.Duration(minutes)*time.Minute
}

// withinPostMatch reports whether now falls in the [kickoff, kickoff+minutes]
// window of the previous kickoff.
func withinPostMatch(ectx EvalContext, minutes int) bool {
	if ectx.PrevKickoff.IsZero() {
		return false
	}
	since := ectx.Now.Sub(ectx.PrevKickoff)
	return since >= 0 && since <= time.Duration(minutes)*time.Minute
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
