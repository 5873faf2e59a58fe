package domain

import "time"

// DeliveryResult is the outcome of one channel send. Never persisted as its
// own entity; rolled up into RunSummary counts.
type DeliveryResult struct {
	ChannelID int64  `json:"channel_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// RunSummary is the structured result of one orchestration entry point run.
// Entry points always return a well-formed summary, even on partial failure.
type RunSummary struct {
	ID        string        `json:"id"`
	Trigger   string        `json:"trigger"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	MatchesDiscovered int `json:"matches_discovered"`
	MatchesCleaned    int `json:"matches_cleaned"`
	ItemsScheduled    int `json:"items_scheduled"`
	SlotsPlanned      int `json:"slots_planned"`
	RulesFired        int `json:"rules_fired"`
	RulesSkipped      int `json:"rules_skipped"`
	RuleErrors        int `json:"rule_errors"`
	ItemsDelivered    int `json:"items_delivered"`
	Sent              int `json:"sent"`
	Failed            int `json:"failed"`
	Skipped           int `json:"skipped"`
	Errors            int `json:"errors"`

	// LimitStops counts sends refused by the spam guard during the run.
	LimitStops    int  `json:"limit_stops"`
	EmergencyStop bool `json:"emergency_stop"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
