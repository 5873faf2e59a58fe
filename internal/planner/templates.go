package planner

import (
	"time"

	"matchcast/internal/domain"
	"matchcast/internal/scoring"
)

// A timing template maps each content type to its offset from kickoff.
// Negative offsets are pre-match, zero is kickoff, positive is post-kickoff.
type timingTemplate struct {
	name    string
	offsets map[domain.ContentType]time.Duration
}

var templateStandard = timingTemplate{
	name: "standard",
	offsets: map[domain.ContentType]time.Duration{
		domain.ContentPoll:        -3 * time.Hour,
		domain.ContentBetting:     -90 * time.Minute,
		domain.ContentAnalysis:    -5 * time.Hour,
		domain.ContentLiveUpdates: 0,
		domain.ContentSummary:     115 * time.Minute,
	},
}

var templateMajor = timingTemplate{
	name: "major",
	offsets: map[domain.ContentType]time.Duration{
		domain.ContentPoll:        -4 * time.Hour,
		domain.ContentBetting:     -2 * time.Hour,
		domain.ContentAnalysis:    -6 * time.Hour,
		domain.ContentLiveUpdates: 0,
		domain.ContentSummary:     115 * time.Minute,
	},
}

var templatePremium = timingTemplate{
	name: "premium",
	offsets: map[domain.ContentType]time.Duration{
		domain.ContentPoll:            -4 * time.Hour,
		domain.ContentBetting:         -2 * time.Hour,
		domain.ContentAnalysis:        -6 * time.Hour,
		domain.ContentLiveUpdates:     0,
		domain.ContentSummary:         115 * time.Minute,
		domain.ContentPremiumAnalysis: -8 * time.Hour,
		domain.ContentMultiplePolls:   -5 * time.Hour,
		domain.ContentLiveCommentary:  45 * time.Minute,
	},
}

// templateWeekendSpecial spreads pre-match content earlier: weekend audiences
// are reachable through the whole afternoon, not just the commute hours.
var templateWeekendSpecial = timingTemplate{
	name: "weekend_special",
	offsets: map[domain.ContentType]time.Duration{
		domain.ContentPoll:            -6 * time.Hour,
		domain.ContentBetting:         -3 * time.Hour,
		domain.ContentAnalysis:        -8 * time.Hour,
		domain.ContentLiveUpdates:     0,
		domain.ContentSummary:         115 * time.Minute,
		domain.ContentPremiumAnalysis: -10 * time.Hour,
		domain.ContentMultiplePolls:   -7 * time.Hour,
		domain.ContentLiveCommentary:  45 * time.Minute,
	},
}

// templateFor selects a timing template by importance bracket, with the
// weekend special overriding for important Saturday/Sunday matches.
func templateFor(score int, kickoff time.Time) timingTemplate {
	wd := kickoff.Weekday()
	if (wd == time.Saturday || wd == time.Sunday) && score >= scoring.AnalysisThreshold {
		return templateWeekendSpecial
	}
	switch {
	case score >= scoring.PremiumThreshold:
		return templatePremium
	case score >= scoring.AnalysisThreshold:
		return templateMajor
	default:
		return templateStandard
	}
}

// basePriority reflects expected engagement per content type.
var basePriority = map[domain.ContentType]int{
	domain.ContentPremiumAnalysis: 75,
	domain.ContentLiveCommentary:  72,
	domain.ContentLiveUpdates:     70,
	domain.ContentBetting:         65,
	domain.ContentPoll:            60,
	domain.ContentMultiplePolls:   58,
	domain.ContentAnalysis:        55,
	domain.ContentSummary:         50,
	domain.ContentNews:            40,
	domain.ContentCoupons:         30,
}

// priorityFor is the base score per type plus a bonus proportional to how far
// the match clears the eligibility threshold, capped at 100.
func priorityFor(ct domain.ContentType, score int) int {
	p := basePriority[ct]
	bonus := 2 * (score - scoring.MinScore)
	if bonus > 0 {
		p += bonus
	}
	if p > 100 {
		p = 100
	}
	return p
}
