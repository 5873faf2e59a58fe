package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"matchcast/internal/distribution"
	"matchcast/internal/domain"
)

type MatchStore interface {
	UpsertBatch(ctx context.Context, matches []domain.Match) ([]domain.Match, error)
	CountKickingOffOn(ctx context.Context, day time.Time) (int, error)
	NearestKickoffs(ctx context.Context, now time.Time) (prev, next time.Time, err error)
	DeleteDiscoveredBefore(ctx context.Context, date time.Time) (int64, error)
}

type RuleStore interface {
	ListEnabled(ctx context.Context) ([]domain.AutomationRule, error)
}

type ChannelStore interface {
	ListActive(ctx context.Context) ([]domain.Channel, error)
	ListPushEnabled(ctx context.Context) ([]domain.Channel, error)
}

type ScheduleStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.ScheduledContentItem, error)
	ClaimDueByTypes(ctx context.Context, now time.Time, limit int, types []domain.ContentType) ([]domain.ScheduledContentItem, error)
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type PushStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.PushQueueItem, error)
	MarkFailed(ctx context.Context, id int64, reason string) error
}

type RunStore interface {
	Insert(ctx context.Context, run *domain.RunSummary) error
}

type FixtureSource interface {
	ID() string
	FetchFixtures(ctx context.Context, from, to time.Time) ([]domain.RawMatch, error)
}

type MatchScheduler interface {
	ScheduleMatch(ctx context.Context, m domain.Match, langs []string, channelsByLang map[string][]int64, force bool) (int, error)
}

type PushPlanner interface {
	PlanPushDay(ctx context.Context, channels []domain.Channel, day, now time.Time) (int, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req distribution.Request) (*distribution.Report, error)
}

type Publisher interface {
	PublishRun(ctx context.Context, run *domain.RunSummary) error
	PublishDelivery(ctx context.Context, runID string, contentType domain.ContentType, language string, results []domain.DeliveryResult) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
