package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcast/internal/domain"
)

var testNow = time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

func defaultCtx() Context {
	return Context{
		Now:           testNow,
		MinScore:      MinScore,
		MaxDaysAhead:  7,
		FinishedGrace: 3 * time.Hour,
	}
}

func rawMatch(home, away, competition string, kickoff time.Time) domain.RawMatch {
	return domain.RawMatch{
		ExternalID:    1,
		HomeTeam:      home,
		AwayTeam:      away,
		CompetitionID: competition,
		KickoffAt:     kickoff,
	}
}

func TestBigMatchCrossesPremiumThreshold(t *testing.T) {
	// CL (12) + Liverpool (5) + Tottenham (3) + kickoff tonight (6) = 26.
	raw := rawMatch("Liverpool", "Tottenham", "champions_league", testNow.Add(8*time.Hour))

	out := ScoreMatches([]domain.RawMatch{raw}, defaultCtx())
	require.Len(t, out, 1)

	m := out[0]
	assert.Equal(t, 26, m.Score)
	assert.Equal(t, 12, m.Breakdown["competition"])
	assert.Equal(t, 8, m.Breakdown["teams"])
	assert.Equal(t, 6, m.Breakdown["proximity"])

	assert.True(t, m.Opportunities.Betting)
	assert.True(t, m.Opportunities.Poll)
	assert.True(t, m.Opportunities.Analysis)
	assert.True(t, m.Opportunities.PremiumAnalysis)
	assert.True(t, m.Opportunities.MultiplePolls)
	assert.True(t, m.Opportunities.LiveCommentary)
	assert.Len(t, m.Opportunities.Types(), 8)
}

func TestSmallMatchFallsBelowThreshold(t *testing.T) {
	// Unknown competition (4) + unknown teams (2) + 3 days out (2) = 8.
	raw := rawMatch("Lokomotiv", "Akhmat", "regional_cup", testNow.Add(72*time.Hour))

	out := ScoreMatches([]domain.RawMatch{raw}, defaultCtx())
	assert.Empty(t, out)
}

func TestOpportunityTiers(t *testing.T) {
	tests := []struct {
		score    int
		poll     bool
		analysis bool
		premium  bool
	}{
		{15, false, false, false},
		{17, false, false, false},
		{18, true, false, false},
		{19, true, false, false},
		{20, true, true, false},
		{24, true, true, false},
		{25, true, true, true},
		{30, true, true, true},
	}
	for _, tt := range tests {
		o := OpportunitiesFor(tt.score)
		assert.True(t, o.Betting, tt.score)
		assert.True(t, o.LiveUpdates, tt.score)
		assert.True(t, o.Summary, tt.score)
		assert.Equal(t, tt.poll, o.Poll, tt.score)
		assert.Equal(t, tt.analysis, o.Analysis, tt.score)
		assert.Equal(t, tt.premium, o.PremiumAnalysis, tt.score)
		assert.Equal(t, tt.premium, o.MultiplePolls, tt.score)
		assert.Equal(t, tt.premium, o.LiveCommentary, tt.score)
	}
}

func TestWindowExclusions(t *testing.T) {
	sc := defaultCtx()
	sc.MaxDaysAhead = 2

	matches := []domain.RawMatch{
		rawMatch("Real Madrid", "Barcelona", "la_liga", testNow.Add(72*time.Hour)),            // beyond horizon
		rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(-4*time.Hour)),           // finished past grace
		rawMatch("Liverpool", "Manchester City", "premier_league", testNow.Add(-2*time.Hour)), // inside grace
	}

	out := ScoreMatches(matches, sc)
	require.Len(t, out, 1)
	assert.Equal(t, "Liverpool", out[0].HomeTeam)
}

func TestOrderingScoreDescThenKickoffAsc(t *testing.T) {
	early := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(6*time.Hour))
	late := rawMatch("Juventus", "Inter", "serie_a", testNow.Add(10*time.Hour))
	big := rawMatch("Real Madrid", "Barcelona", "la_liga", testNow.Add(20*time.Hour))
	late.ExternalID = 2
	big.ExternalID = 3

	out := ScoreMatches([]domain.RawMatch{late, big, early}, defaultCtx())
	require.Len(t, out, 3)

	// la_liga clasico: 9+10+6 = 25; PL derby: 10+8+6 = 24; serie_a: 9+7+6 = 22.
	assert.Equal(t, int64(3), out[0].ExternalID)
	assert.Equal(t, int64(1), out[1].ExternalID)
	assert.Equal(t, int64(2), out[2].ExternalID)
	assert.True(t, out[0].Score >= out[1].Score && out[1].Score >= out[2].Score)
}

func TestTieBreakOnKickoff(t *testing.T) {
	a := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(9*time.Hour))
	b := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(3*time.Hour))
	b.ExternalID = 2

	out := ScoreMatches([]domain.RawMatch{a, b}, defaultCtx())
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ExternalID)
}

func TestBettingRelevanceNeedsFutureMatch(t *testing.T) {
	sc := defaultCtx()
	sc.ContentType = domain.ContentBetting

	future := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(2*time.Hour))
	started := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(-time.Hour))
	started.ExternalID = 2

	out := ScoreMatches([]domain.RawMatch{future, started}, sc)
	require.Len(t, out, 2)

	byID := map[int64]domain.Match{out[0].ExternalID: out[0], out[1].ExternalID: out[1]}
	assert.Equal(t, 3, byID[1].Breakdown["relevance"])
	assert.Equal(t, 0, byID[2].Breakdown["relevance"])
}

func TestDiscoveryDateStampedFromNow(t *testing.T) {
	raw := rawMatch("Arsenal", "Chelsea", "premier_league", testNow.Add(2*time.Hour))

	out := ScoreMatches([]domain.RawMatch{raw}, defaultCtx())
	require.Len(t, out, 1)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), out[0].DiscoveryDate)
}
