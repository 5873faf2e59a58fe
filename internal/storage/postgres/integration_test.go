//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"matchcast/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	_, err = RunMigrations(db)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM scheduled_content")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM push_queue")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM matches")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM spam_counters")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM automation_rules")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM channels")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM run_summaries")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertMatch(externalID int64, kickoff time.Time, discovery time.Time) domain.Match {
	store := NewMatchStore(s.db)
	matches, err := store.UpsertBatch(s.ctx, []domain.Match{{
		ExternalID:    externalID,
		HomeTeam:      "Liverpool",
		AwayTeam:      "Tottenham",
		CompetitionID: "champions_league",
		KickoffAt:     kickoff,
		DiscoveryDate: discovery,
		Score:         26,
		Breakdown:     map[string]int{"competition": 12, "teams": 8, "proximity": 6},
		Opportunities: domain.Opportunities{Betting: true, Poll: true, LiveUpdates: true, Summary: true},
	}})
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Require().NotZero(matches[0].ID)
	return matches[0]
}

func (s *PostgresIntegrationSuite) TestMatchStore_UpsertIsIdempotentPerDiscoveryDay() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	today := now.Truncate(24 * time.Hour)

	first := s.insertMatch(42, now.Add(6*time.Hour), today)
	second := s.insertMatch(42, now.Add(6*time.Hour), today)
	s.Equal(first.ID, second.ID)

	var count int
	s.Require().NoError(s.db.Get(&count, "SELECT COUNT(*) FROM matches"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestMatchStore_CleanupCascadesToSchedule() {
	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	old := s.insertMatch(1, now.Add(-20*time.Hour), yesterday)
	fresh := s.insertMatch(2, now.Add(6*time.Hour), today)

	schedules := NewScheduleStore(s.db)
	_, err := schedules.InsertBatch(s.ctx, []domain.ScheduledContentItem{
		{MatchID: old.ID, ContentType: domain.ContentPoll, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now, Priority: 60, Status: domain.ItemPending},
		{MatchID: fresh.ID, ContentType: domain.ContentPoll, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now, Priority: 60, Status: domain.ItemPending},
	})
	s.Require().NoError(err)

	matches := NewMatchStore(s.db)
	deleted, err := matches.DeleteDiscoveredBefore(s.ctx, today)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	var remaining int
	s.Require().NoError(s.db.Get(&remaining, "SELECT COUNT(*) FROM scheduled_content"))
	s.Equal(1, remaining, "old match's schedule rows should cascade away")
}

func (s *PostgresIntegrationSuite) TestScheduleStore_ClaimMarksSentAndIsExclusive() {
	now := time.Now().UTC()
	m := s.insertMatch(3, now.Add(2*time.Hour), now.Truncate(24*time.Hour))

	store := NewScheduleStore(s.db)
	_, err := store.InsertBatch(s.ctx, []domain.ScheduledContentItem{
		{MatchID: m.ID, ContentType: domain.ContentBetting, Language: "en", ChannelIDs: []int64{1, 2}, ScheduledAt: now.Add(-time.Minute), Priority: 87, Status: domain.ItemPending},
		{MatchID: m.ID, ContentType: domain.ContentSummary, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now.Add(4 * time.Hour), Priority: 72, Status: domain.ItemPending},
	})
	s.Require().NoError(err)

	claimed, err := store.ClaimDue(s.ctx, now, 50)
	s.Require().NoError(err)
	s.Require().Len(claimed, 1, "future items must not be claimed")
	s.Equal(domain.ContentBetting, claimed[0].ContentType)
	s.Equal([]int64{1, 2}, claimed[0].ChannelIDs)
	s.Equal(domain.ItemSent, claimed[0].Status)

	again, err := store.ClaimDue(s.ctx, now, 50)
	s.Require().NoError(err)
	s.Empty(again, "a claimed item must not be claimable twice")
}

func (s *PostgresIntegrationSuite) TestScheduleStore_ClaimDueByTypesFilters() {
	now := time.Now().UTC()
	m := s.insertMatch(4, now.Add(time.Hour), now.Truncate(24*time.Hour))

	store := NewScheduleStore(s.db)
	_, err := store.InsertBatch(s.ctx, []domain.ScheduledContentItem{
		{MatchID: m.ID, ContentType: domain.ContentLiveUpdates, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now.Add(-time.Minute), Priority: 70, Status: domain.ItemPending},
		{MatchID: m.ID, ContentType: domain.ContentBetting, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now.Add(-time.Minute), Priority: 87, Status: domain.ItemPending},
	})
	s.Require().NoError(err)

	claimed, err := store.ClaimDueByTypes(s.ctx, now, 50, []domain.ContentType{domain.ContentLiveUpdates, domain.ContentSummary})
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Equal(domain.ContentLiveUpdates, claimed[0].ContentType)
}

func (s *PostgresIntegrationSuite) TestScheduleStore_CancelPendingOnlyTouchesPending() {
	now := time.Now().UTC()
	m := s.insertMatch(5, now.Add(time.Hour), now.Truncate(24*time.Hour))

	store := NewScheduleStore(s.db)
	_, err := store.InsertBatch(s.ctx, []domain.ScheduledContentItem{
		{MatchID: m.ID, ContentType: domain.ContentPoll, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now.Add(-time.Minute), Priority: 60, Status: domain.ItemPending},
		{MatchID: m.ID, ContentType: domain.ContentBetting, Language: "en", ChannelIDs: []int64{1}, ScheduledAt: now.Add(time.Hour), Priority: 87, Status: domain.ItemPending},
	})
	s.Require().NoError(err)

	// Claim one so it transitions to sent.
	claimed, err := store.ClaimDue(s.ctx, now, 50)
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)

	cancelled, err := store.CancelPendingByMatch(s.ctx, m.ID, "force_reschedule")
	s.Require().NoError(err)
	s.Equal(int64(1), cancelled, "sent items must survive a cancel")

	pending, err := store.CountPendingByMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Zero(pending)
}

func (s *PostgresIntegrationSuite) TestCounterStore_ReserveSendEnforcesCaps() {
	store := NewCounterStore(s.db)
	day := time.Now().UTC().Truncate(24 * time.Hour)

	// Type cap 2, aggregate cap 3.
	status, err := store.ReserveSend(s.ctx, day, "betting", 2, 3)
	s.Require().NoError(err)
	s.Equal(domain.SendNormal, status)

	status, err = store.ReserveSend(s.ctx, day, "betting", 2, 3)
	s.Require().NoError(err)
	s.Equal(domain.SendNormal, status)

	status, err = store.ReserveSend(s.ctx, day, "betting", 2, 3)
	s.Require().NoError(err)
	s.Equal(domain.SendDailyLimit, status)

	// A different type still has budget, but consumes the aggregate.
	status, err = store.ReserveSend(s.ctx, day, "news", 2, 3)
	s.Require().NoError(err)
	s.Equal(domain.SendNormal, status)

	// Aggregate now at 3: everything stops.
	status, err = store.ReserveSend(s.ctx, day, "poll", 2, 3)
	s.Require().NoError(err)
	s.Equal(domain.SendEmergencyStop, status)

	// A rejected reservation must not have consumed type budget.
	counter, err := store.Get(s.ctx, day, "poll")
	s.Require().NoError(err)
	s.Zero(counter.Count)
}

func (s *PostgresIntegrationSuite) TestCounterStore_NewDayResetsBudget() {
	store := NewCounterStore(s.db)
	yesterday := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -1)
	today := yesterday.AddDate(0, 0, 1)

	status, err := store.ReserveSend(s.ctx, yesterday, "news", 1, 10)
	s.Require().NoError(err)
	s.Equal(domain.SendNormal, status)

	status, err = store.ReserveSend(s.ctx, yesterday, "news", 1, 10)
	s.Require().NoError(err)
	s.Equal(domain.SendDailyLimit, status)

	status, err = store.ReserveSend(s.ctx, today, "news", 1, 10)
	s.Require().NoError(err)
	s.Equal(domain.SendNormal, status)
}

func (s *PostgresIntegrationSuite) TestPushStore_ClaimAndMarkFailed() {
	store := NewPushStore(s.db)
	now := time.Now().UTC()

	n, err := store.InsertBatch(s.ctx, []domain.PushQueueItem{
		{ContentType: domain.ContentCoupons, ChannelIDs: []int64{1}, Language: "en", ScheduledAt: now.Add(-time.Minute), Status: domain.ItemPending, Context: map[string]string{"trigger": "daily_random_plan"}},
		{ContentType: domain.ContentCoupons, ChannelIDs: []int64{2}, Language: "am", ScheduledAt: now.Add(3 * time.Hour), Status: domain.ItemPending, Context: map[string]string{"trigger": "daily_random_plan"}},
	})
	s.Require().NoError(err)
	s.Equal(2, n)

	claimed, err := store.ClaimDue(s.ctx, now, 50)
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Equal("daily_random_plan", claimed[0].Context["trigger"])

	s.Require().NoError(store.MarkFailed(s.ctx, claimed[0].ID, "daily_limit_reached"))

	var status, errVal string
	row := s.db.QueryRowx("SELECT status, context->>'error' FROM push_queue WHERE id = $1", claimed[0].ID)
	s.Require().NoError(row.Scan(&status, &errVal))
	s.Equal("failed", status)
	s.Equal("daily_limit_reached", errVal)
}

func (s *PostgresIntegrationSuite) TestRuleStore_ListEnabledOrdersByPriority() {
	_, err := s.db.Exec(`
		INSERT INTO automation_rules (name, content_type, automation_type, enabled, priority, languages, anchor_times, days, match_day_only, weekend_only, minutes_before_match, minutes_after_match)
		VALUES
			('evening-news', 'news', 'scheduled', TRUE, 20, '{all}', '{"19:00"}', '{}', FALSE, FALSE, 0, 0),
			('morning-news', 'news', 'scheduled', TRUE, 10, '{en}', '{"08:00","09:30"}', '{1,2,3,4,5}', FALSE, FALSE, 60, 0),
			('disabled-rule', 'poll', 'event_driven', FALSE, 5, '{all}', '{}', '{}', FALSE, FALSE, 0, 0)
	`)
	s.Require().NoError(err)

	store := NewRuleStore(s.db)
	rules, err := store.ListEnabled(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rules, 2)

	s.Equal("morning-news", rules[0].Name)
	s.Equal([]string{"en"}, rules[0].Languages)
	s.Equal([]string{"08:00", "09:30"}, rules[0].AnchorTimes)
	s.Equal([]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, rules[0].Days)
	s.Equal(60, rules[0].MinutesBeforeMatch)
	s.Zero(rules[0].MinutesAfterMatch)
	s.Equal("evening-news", rules[1].Name)
}

func (s *PostgresIntegrationSuite) TestMatchStore_NearestKickoffs() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	today := now.Truncate(24 * time.Hour)

	store := NewMatchStore(s.db)

	// Empty table: both sides are zero.
	prev, next, err := store.NearestKickoffs(s.ctx, now)
	s.Require().NoError(err)
	s.True(prev.IsZero())
	s.True(next.IsZero())

	s.insertMatch(201, now.Add(-5*time.Hour), today)
	s.insertMatch(202, now.Add(-1*time.Hour), today)
	s.insertMatch(203, now.Add(2*time.Hour), today)
	s.insertMatch(204, now.Add(8*time.Hour), today)

	prev, next, err = store.NearestKickoffs(s.ctx, now)
	s.Require().NoError(err)
	s.True(prev.Equal(now.Add(-1 * time.Hour)))
	s.True(next.Equal(now.Add(2 * time.Hour)))
}

func (s *PostgresIntegrationSuite) TestChannelStore_ActiveAndPushFilters() {
	_, err := s.db.Exec(`
		INSERT INTO channels (telegram_chat_id, title, language, active, push_enabled, push_max_per_day)
		VALUES
			(-100, 'EN Main', 'en', TRUE, TRUE, 2),
			(-200, 'AM Main', 'am', TRUE, FALSE, 0),
			(-300, 'Archived', 'en', FALSE, TRUE, 0)
	`)
	s.Require().NoError(err)

	store := NewChannelStore(s.db)

	active, err := store.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 2)

	push, err := store.ListPushEnabled(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(push, 1)
	s.Equal("EN Main", push[0].Title)
	s.Equal(2, push[0].PushMaxPerDay)
}

func (s *PostgresIntegrationSuite) TestRunStore_InsertRoundTrip() {
	store := NewRunStore(s.db)
	run := &domain.RunSummary{
		ID:                "3f0e8f1a-9a93-4e9c-a6ff-5a2a1f6f37bd",
		Trigger:           "hourly",
		StartedAt:         time.Now().UTC(),
		Duration:          1500 * time.Millisecond,
		MatchesDiscovered: 2,
		ItemsScheduled:    16,
		RulesFired:        3,
		Sent:              5,
		Success:           true,
	}
	s.Require().NoError(store.Insert(s.ctx, run))

	var got struct {
		Trigger    string `db:"trigger_name"`
		DurationMS int64  `db:"duration_ms"`
		Sent       int    `db:"sent"`
		Success    bool   `db:"success"`
	}
	s.Require().NoError(s.db.Get(&got, "SELECT trigger_name, duration_ms, sent, success FROM run_summaries WHERE id = $1", run.ID))
	s.Equal("hourly", got.Trigger)
	s.Equal(int64(1500), got.DurationMS)
	s.Equal(5, got.Sent)
	s.True(got.Success)
}
