package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"matchcast/internal/domain"
	"matchcast/internal/generator"
)

// ErrNoContent is the soft "nothing to send" outcome. Callers record a skip,
// never a failure.
var ErrNoContent = errors.New("no content available")

// Generator is the content-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, req generator.Request) (*generator.Response, error)
}

// MatchCounter answers whether any qualifying match exists in a window.
type MatchCounter interface {
	CountUpcoming(ctx context.Context, from, to time.Time) (int, error)
}

// Request asks for content of one type in one language.
type Request struct {
	ContentType domain.ContentType
	Language    string
	ChannelIDs  []int64
	MaxItems    int
}

// Result reports what was actually generated. ContentType is the produced
// type, which differs from the requested one when a fallback fired; the
// metadata flags are load-bearing for downstream analytics and for the
// smart-coupon trigger, so a substitution is never silent.
type Result struct {
	ContentType           domain.ContentType
	Items                 []generator.Item
	FallbackUsed          bool
	DataSource            string
	BettingFallbackToNews bool
}

// Router maps logical content types onto generation calls and applies the
// fallback chain. The one hard rule: betting tips need a live or future
// match, and when none exists the router substitutes news and says so.
type Router struct {
	gen            Generator
	matches        MatchCounter
	upcomingWindow time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func NewRouter(gen Generator, matches MatchCounter, upcomingWindow time.Duration, logger *slog.Logger) *Router {
	return &Router{
		gen:            gen,
		matches:        matches,
		upcomingWindow: upcomingWindow,
		logger:         logger.With("component", "content_router"),
		now:            time.Now,
	}
}

// Fetch produces content for the request, falling back where the primary
// type cannot deliver. Returns ErrNoContent when nothing could be produced.
func (r *Router) Fetch(ctx context.Context, req Request) (*Result, error) {
	actual := req.ContentType
	bettingFallback := false

	if req.ContentType == domain.ContentBetting {
		now := r.now()
		n, err := r.matches.CountUpcoming(ctx, now, now.Add(r.upcomingWindow))
		if err != nil {
			return nil, fmt.Errorf("count upcoming matches: %w", err)
		}
		if n == 0 {
			actual = domain.ContentNews
			bettingFallback = true
			r.logger.Info("no qualifying match for betting content, falling back to news",
				"language", req.Language,
			)
		}
	}

	resp, err := r.generate(ctx, actual, req)
	if err != nil {
		return nil, err
	}

	// The generation service itself may come back empty for betting when
	// its odds feed has nothing usable; the chain then degrades to news.
	if len(resp.Items) == 0 && actual == domain.ContentBetting {
		actual = domain.ContentNews
		bettingFallback = true
		r.logger.Info("betting generation returned no items, falling back to news",
			"language", req.Language,
		)
		resp, err = r.generate(ctx, actual, req)
		if err != nil {
			return nil, err
		}
	}

	if len(resp.Items) == 0 {
		return nil, ErrNoContent
	}

	return &Result{
		ContentType:           actual,
		Items:                 resp.Items,
		FallbackUsed:          resp.FallbackUsed || bettingFallback,
		DataSource:            resp.DataSource,
		BettingFallbackToNews: bettingFallback,
	}, nil
}

func (r *Router) generate(ctx context.Context, ct domain.ContentType, req Request) (*generator.Response, error) {
	resp, err := r.gen.Generate(ctx, generator.Request{
		ContentType: ct,
		Language:    req.Language,
		ChannelIDs:  req.ChannelIDs,
		MaxItems:    req.MaxItems,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", ct, err)
	}
	return resp, nil
}
