package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"matchcast/internal/content"
	"matchcast/internal/domain"
	"matchcast/internal/generator"
)

// ContentRouter produces the content to fan out.
type ContentRouter interface {
	Fetch(ctx context.Context, req content.Request) (*content.Result, error)
}

// Gateway delivers one message to one channel.
type Gateway interface {
	Send(ctx context.Context, chatID int64, text string) domain.DeliveryResult
}

// Guard gates each outbound send against the daily caps.
type Guard interface {
	TryReserve(ctx context.Context, contentType domain.ContentType) (domain.SendStatus, error)
}

// CouponQueue receives the post-send coupon follow-up.
type CouponQueue interface {
	InsertBatch(ctx context.Context, items []domain.PushQueueItem) (int, error)
}

// Request is one fan-out: a content type delivered to the channels of one
// language group. Origin tags what triggered the request, so auto-triggered
// follow-ups can refuse to re-trigger their own category.
type Request struct {
	ContentType domain.ContentType
	Language    string
	Channels    []domain.Channel
	MaxItems    int
	Origin      domain.ContentType
}

// Report collects per-channel outcomes. One channel's failure never aborts
// its siblings; there is no retry here, the next trigger cycle is the retry.
type Report struct {
	ContentType           domain.ContentType
	Results               []domain.DeliveryResult
	Sent                  int
	Failed                int
	LimitStatus           domain.SendStatus
	SkippedReason         string
	FallbackUsed          bool
	BettingFallbackToNews bool
	CouponFollowUp        bool
}

// Skipped reports whether the fan-out produced nothing to send (soft outcome).
func (r *Report) Skipped() bool { return r.SkippedReason != "" }

type Dispatcher struct {
	router  ContentRouter
	gateway Gateway
	guard   Guard
	coupons CouponQueue

	maxItems       int
	couponDelayMin time.Duration
	couponDelayMax time.Duration

	rng    *rand.Rand
	logger *slog.Logger
	now    func() time.Time
}

func NewDispatcher(
	router ContentRouter,
	gateway Gateway,
	guard Guard,
	coupons CouponQueue,
	maxItems int,
	couponDelayMin, couponDelayMax time.Duration,
	rng *rand.Rand,
	logger *slog.Logger,
) *Dispatcher {
	if maxItems <= 0 {
		maxItems = 1
	}
	return &Dispatcher{
		router:         router,
		gateway:        gateway,
		guard:          guard,
		coupons:        coupons,
		maxItems:       maxItems,
		couponDelayMin: couponDelayMin,
		couponDelayMax: couponDelayMax,
		rng:            rng,
		logger:         logger.With("component", "dispatcher"),
		now:            time.Now,
	}
}

// Dispatch generates content once for the language group and delivers it to
// every channel, consulting the guard immediately before each send.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Report, error) {
	report := &Report{ContentType: req.ContentType, LimitStatus: domain.SendNormal}

	if len(req.Channels) == 0 {
		report.SkippedReason = "no_matching_channels"
		return report, nil
	}

	channelIDs := make([]int64, len(req.Channels))
	for i, ch := range req.Channels {
		channelIDs[i] = ch.ID
	}

	res, err := d.router.Fetch(ctx, content.Request{
		ContentType: req.ContentType,
		Language:    req.Language,
		ChannelIDs:  channelIDs,
		MaxItems:    d.maxItems,
	})
	if errors.Is(err, content.ErrNoContent) {
		report.SkippedReason = "no_content"
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("fetch content: %w", err)
	}

	report.ContentType = res.ContentType
	report.FallbackUsed = res.FallbackUsed
	report.BettingFallbackToNews = res.BettingFallbackToNews

	// Every generated item rides in one message, so a multi-item
	// generation still costs one send per channel.
	text := Render(res.Items)

	for _, ch := range req.Channels {
		status, err := d.guard.TryReserve(ctx, res.ContentType)
		if err != nil {
			return report, fmt.Errorf("spam guard: %w", err)
		}
		if status != domain.SendNormal {
			report.LimitStatus = status
			break
		}

		dr := d.gateway.Send(ctx, ch.TelegramChatID, text)
		dr.ChannelID = ch.ID
		report.Results = append(report.Results, dr)
		if dr.Success {
			report.Sent++
		} else {
			report.Failed++
			d.logger.Warn("delivery failed",
				"channel_id", ch.ID,
				"content_type", res.ContentType,
				"error", dr.Error,
			)
		}
	}

	if report.Sent > 0 && d.shouldTriggerCoupon(res.ContentType, req.Origin) {
		if err := d.scheduleCouponFollowUp(ctx, req, res.ContentType); err != nil {
			// Follow-up loss is not a delivery failure.
			d.logger.Warn("coupon follow-up not scheduled", "error", err)
		} else {
			report.CouponFollowUp = true
		}
	}

	return report, nil
}

// shouldTriggerCoupon refuses to re-trigger when either the produced content
// or the origin of this dispatch is already the coupon category, breaking
// the send -> coupon -> send cycle.
func (d *Dispatcher) shouldTriggerCoupon(produced, origin domain.ContentType) bool {
	if d.coupons == nil {
		return false
	}
	return produced != domain.ContentCoupons && origin != domain.ContentCoupons
}

func (d *Dispatcher) scheduleCouponFollowUp(ctx context.Context, req Request, produced domain.ContentType) error {
	delay := d.couponDelayMin
	if spread := d.couponDelayMax - d.couponDelayMin; spread > 0 {
		delay += time.Duration(d.rng.Int63n(int64(spread)))
	}

	channelIDs := make([]int64, len(req.Channels))
	for i, ch := range req.Channels {
		channelIDs[i] = ch.ID
	}

	_, err := d.coupons.InsertBatch(ctx, []domain.PushQueueItem{{
		ContentType:  domain.ContentCoupons,
		ChannelIDs:   channelIDs,
		Language:     req.Language,
		ScheduledAt:  d.now().Add(delay),
		DelayMinutes: int(delay / time.Minute),
		Status:       domain.ItemPending,
		Context: map[string]string{
			"origin":  string(produced),
			"trigger": "post_send_coupon",
		},
	}})
	return err
}

// Render formats generated items for Telegram HTML mode, one block per item.
func Render(items []generator.Item) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if item.Title != "" {
			b.WriteString("<b>")
			b.WriteString(item.Title)
			b.WriteString("</b>\n\n")
		}
		b.WriteString(item.Body)
	}
	return b.String()
}
