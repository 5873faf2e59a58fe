package domain

import "time"

// RawMatch is a fixture as delivered by the fixtures source, before scoring.
type RawMatch struct {
	ExternalID    int64
	HomeTeamID    int64
	AwayTeamID    int64
	HomeTeam      string
	AwayTeam      string
	CompetitionID string
	KickoffAt     time.Time
}

// Opportunities are the content types a match's importance score justifies.
type Opportunities struct {
	Poll            bool `json:"poll"`
	Betting         bool `json:"betting"`
	Analysis        bool `json:"analysis"`
	LiveUpdates     bool `json:"live_updates"`
	Summary         bool `json:"summary"`
	PremiumAnalysis bool `json:"premium_analysis"`
	MultiplePolls   bool `json:"multiple_polls"`
	LiveCommentary  bool `json:"live_commentary"`
}

// Types returns the flagged content types in a fixed expansion order, so
// schedule generation is deterministic for a given match.
func (o Opportunities) Types() []ContentType {
	var types []ContentType
	if o.Poll {
		types = append(types, ContentPoll)
	}
	if o.Betting {
		types = append(types, ContentBetting)
	}
	if o.Analysis {
		types = append(types, ContentAnalysis)
	}
	if o.LiveUpdates {
		types = append(types, ContentLiveUpdates)
	}
	if o.Summary {
		types = append(types, ContentSummary)
	}
	if o.PremiumAnalysis {
		types = append(types, ContentPremiumAnalysis)
	}
	if o.MultiplePolls {
		types = append(types, ContentMultiplePolls)
	}
	if o.LiveCommentary {
		types = append(types, ContentLiveCommentary)
	}
	return types
}

// Match is a scored fixture persisted by the daily discovery cycle.
// Immutable after creation; deleted with its schedule rows the following day.
type Match struct {
	ID            int64
	ExternalID    int64
	HomeTeamID    int64
	AwayTeamID    int64
	HomeTeam      string
	AwayTeam      string
	CompetitionID string
	KickoffAt     time.Time
	DiscoveryDate time.Time // date only, UTC midnight
	Score         int
	Breakdown     map[string]int // scoring factor -> contribution
	Opportunities Opportunities
	CreatedAt     time.Time
}
