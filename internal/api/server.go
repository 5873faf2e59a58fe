package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"matchcast/internal/domain"
)

// Runner is the engine surface the trigger endpoints expose. Each call is one
// complete cycle; the returned summary is reported to the caller even when
// the run failed partway.
type Runner interface {
	RunDaily(ctx context.Context) (*domain.RunSummary, error)
	RunHourly(ctx context.Context) (*domain.RunSummary, error)
	RunUrgent(ctx context.Context) (*domain.RunSummary, error)
	RunCoupons(ctx context.Context) (*domain.RunSummary, error)
}

type Handler struct {
	runner     Runner
	db         *sqlx.DB
	logger     *slog.Logger
	runTimeout time.Duration
	accessKey  string
}

func NewHandler(runner Runner, db *sqlx.DB, logger *slog.Logger, runTimeout time.Duration, accessKey string) *Handler {
	if runTimeout <= 0 {
		runTimeout = 5 * time.Minute
	}
	return &Handler{
		runner:     runner,
		db:         db,
		logger:     logger.With("component", "api"),
		runTimeout: runTimeout,
		accessKey:  accessKey,
	}
}

// NewServer builds the HTTP surface: one POST trigger per cycle plus a
// health endpoint.
func NewServer(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", h.Health)

	triggers := r.Group("/triggers")
	triggers.Use(h.authorize)
	{
		triggers.POST("/daily", h.trigger("daily", func(ctx context.Context) (*domain.RunSummary, error) {
			return h.runner.RunDaily(ctx)
		}))
		triggers.POST("/hourly", h.trigger("hourly", func(ctx context.Context) (*domain.RunSummary, error) {
			return h.runner.RunHourly(ctx)
		}))
		triggers.POST("/urgent", h.trigger("urgent", func(ctx context.Context) (*domain.RunSummary, error) {
			return h.runner.RunUrgent(ctx)
		}))
		triggers.POST("/coupons", h.trigger("coupons", func(ctx context.Context) (*domain.RunSummary, error) {
			return h.runner.RunCoupons(ctx)
		}))
	}

	return r
}

// authorize gates the trigger endpoints behind a shared key when one is
// configured. The health endpoint stays open for probes.
func (h *Handler) authorize(c *gin.Context) {
	if h.accessKey == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-Access-Key") != h.accessKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access key"})
		return
	}
	c.Next()
}

func (h *Handler) trigger(name string, run func(ctx context.Context) (*domain.RunSummary, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.runTimeout)
		defer cancel()

		h.logger.Info("trigger received", "trigger", name)

		summary, err := run(ctx)
		if err != nil {
			h.logger.Error("run failed", "trigger", name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
				"summary": summaryJSON(summary),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"summary": summaryJSON(summary),
		})
	}
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func summaryJSON(run *domain.RunSummary) gin.H {
	if run == nil {
		return nil
	}
	return gin.H{
		"run_id":             run.ID,
		"trigger":            run.Trigger,
		"started_at":         run.StartedAt.UTC().Format(time.RFC3339),
		"duration_ms":        run.Duration.Milliseconds(),
		"matches_discovered": run.MatchesDiscovered,
		"matches_cleaned":    run.MatchesCleaned,
		"items_scheduled":    run.ItemsScheduled,
		"slots_planned":      run.SlotsPlanned,
		"rules_fired":        run.RulesFired,
		"rules_skipped":      run.RulesSkipped,
		"rule_errors":        run.RuleErrors,
		"items_delivered":    run.ItemsDelivered,
		"sent":               run.Sent,
		"failed":             run.Failed,
		"skipped":            run.Skipped,
		"errors":             run.Errors,
		"limit_stops":        run.LimitStops,
		"emergency_stop":     run.EmergencyStop,
		"success":            run.Success,
		"error":              run.Error,
	}
}
