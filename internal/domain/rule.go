package domain

import "time"

// AutomationType classifies how a rule decides whether to fire.
type AutomationType string

const (
	AutomationScheduled    AutomationType = "scheduled"
	AutomationEventDriven  AutomationType = "event_driven"
	AutomationContextAware AutomationType = "context_aware"
)

// AutomationRule is engine-read-only configuration describing one automated
// content push. Lower Priority fires first on ties.
type AutomationRule struct {
	ID          int64
	Name        string
	ContentType ContentType
	Type        AutomationType
	Enabled     bool
	Priority    int

	// Languages the rule targets, or the single sentinel LanguageAll.
	Languages []string

	// AnchorTimes are "HH:MM" strings for scheduled rules.
	AnchorTimes []string
	// Days restricts firing to these weekdays when non-empty.
	Days []time.Weekday

	// Optional conditions.
	MatchDayOnly bool
	WeekendOnly  bool

	// MinutesBeforeMatch restricts firing to the window that many minutes
	// ahead of the next kickoff; MinutesAfterMatch to the window that many
	// minutes past the previous one. Zero disables the condition.
	MinutesBeforeMatch int
	MinutesAfterMatch  int
}

// TargetsLanguage reports whether the rule applies to a channel language.
func (r AutomationRule) TargetsLanguage(lang string) bool {
	for _, l := range r.Languages {
		if l == LanguageAll || l == lang {
			return true
		}
	}
	return false
}

// Channel is a Telegram destination the engine delivers to.
type Channel struct {
	ID             int64
	TelegramChatID int64
	Title          string
	Language       string
	Active         bool
	PushEnabled    bool
	PushMaxPerDay  int
}
