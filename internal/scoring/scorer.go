package scoring

import (
	"sort"
	"strings"
	"time"

	"matchcast/internal/domain"
)

// Eligibility and opportunity thresholds over the importance score.
const (
	MinScore          = 15
	PollThreshold     = 18
	AnalysisThreshold = 20
	PremiumThreshold  = 25
)

// Context carries the parameters of one scoring pass.
type Context struct {
	Now           time.Time
	ContentType   domain.ContentType
	MinScore      int
	MaxDaysAhead  int
	FinishedGrace time.Duration
	Language      string
}

// competitionPoints ranks competitions by tier. Unknown competitions get the
// base tier.
var competitionPoints = map[string]int{
	"world_cup":        15,
	"champions_league": 12,
	"europa_league":    8,
	"premier_league":   10,
	"la_liga":          9,
	"serie_a":          9,
	"bundesliga":       9,
	"ligue_1":          8,
	"fa_cup":           6,
	"copa_del_rey":     6,
}

const competitionBase = 4

// teamPoints ranks clubs by audience reach. Unknown teams get teamBase.
var teamPoints = map[string]int{
	"real madrid":       5,
	"barcelona":         5,
	"manchester united": 5,
	"manchester city":   5,
	"liverpool":         5,
	"arsenal":           4,
	"chelsea":           4,
	"tottenham":         3,
	"bayern munich":     5,
	"borussia dortmund": 3,
	"juventus":          4,
	"inter":             3,
	"ac milan":          3,
	"napoli":            3,
	"psg":               4,
	"atletico madrid":   3,
}

const teamBase = 1

// ScoreMatches computes an importance score for each raw match and returns
// the ones that pass the threshold, annotated with their score, breakdown and
// content-opportunity flags, ordered by score descending then kickoff
// ascending. Pure: no clock reads, no I/O.
func ScoreMatches(raw []domain.RawMatch, sc Context) []domain.Match {
	minScore := sc.MinScore
	if minScore == 0 {
		minScore = MinScore
	}
	grace := sc.FinishedGrace
	if grace == 0 {
		grace = 3 * time.Hour
	}
	horizon := sc.Now.AddDate(0, 0, sc.MaxDaysAhead)

	var out []domain.Match
	for _, rm := range raw {
		// Window exclusions apply regardless of score.
		if sc.MaxDaysAhead > 0 && rm.KickoffAt.After(horizon) {
			continue
		}
		if rm.KickoffAt.Before(sc.Now.Add(-grace)) {
			continue
		}

		score, breakdown := scoreOne(rm, sc)
		if score < minScore {
			continue
		}

		out = append(out, domain.Match{
			ExternalID:    rm.ExternalID,
			HomeTeamID:    rm.HomeTeamID,
			AwayTeamID:    rm.AwayTeamID,
			HomeTeam:      rm.HomeTeam,
			AwayTeam:      rm.AwayTeam,
			CompetitionID: rm.CompetitionID,
			KickoffAt:     rm.KickoffAt,
			DiscoveryDate: sc.Now.UTC().Truncate(24 * time.Hour),
			Score:         score,
			Breakdown:     breakdown,
			Opportunities: OpportunitiesFor(score),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].KickoffAt.Before(out[j].KickoffAt)
	})

	return out
}

// OpportunitiesFor derives the content-opportunity flags from a score.
func OpportunitiesFor(score int) domain.Opportunities {
	o := domain.Opportunities{}
	if score >= MinScore {
		o.Betting = true
		o.LiveUpdates = true
		o.Summary = true
	}
	if score >= PollThreshold {
		o.Poll = true
	}
	if score >= AnalysisThreshold {
		o.Analysis = true
	}
	if score >= PremiumThreshold {
		o.PremiumAnalysis = true
		o.MultiplePolls = true
		o.LiveCommentary = true
	}
	return o
}

func scoreOne(rm domain.RawMatch, sc Context) (int, map[string]int) {
	breakdown := map[string]int{
		"competition": competitionScore(rm.CompetitionID),
		"teams":       teamScore(rm.HomeTeam) + teamScore(rm.AwayTeam),
		"proximity":   proximityScore(rm.KickoffAt, sc.Now),
		"relevance":   relevanceScore(rm.KickoffAt, sc.Now, sc.ContentType),
	}

	total := 0
	for _, v := range breakdown {
		total += v
	}
	return total, breakdown
}

func competitionScore(competitionID string) int {
	if p, ok := competitionPoints[strings.ToLower(competitionID)]; ok {
		return p
	}
	return competitionBase
}

func teamScore(name string) int {
	if p, ok := teamPoints[strings.ToLower(name)]; ok {
		return p
	}
	return teamBase
}

// proximityScore rewards matches close to kickoff; content about a match four
// days out is far less newsworthy than one tonight.
func proximityScore(kickoff, now time.Time) int {
	until := kickoff.Sub(now)
	switch {
	case until <= 24*time.Hour:
		return 6
	case until <= 48*time.Hour:
		return 4
	default:
		return 2
	}
}

// relevanceScore reflects how well the match timing suits the requested
// content type. Zero when no specific type was requested.
func relevanceScore(kickoff, now time.Time, ct domain.ContentType) int {
	switch ct {
	case domain.ContentBetting:
		// Betting tips need a future match.
		if kickoff.After(now) {
			return 3
		}
		return 0
	case domain.ContentLiveUpdates, domain.ContentSummary:
		// Live coverage wants kickoff nearby on either side.
		d := kickoff.Sub(now)
		if d < 0 {
			d = -d
		}
		if d <= 3*time.Hour {
			return 3
		}
		return 0
	case domain.ContentPoll, domain.ContentAnalysis:
		if kickoff.After(now) {
			return 2
		}
		return 0
	default:
		return 0
	}
}
