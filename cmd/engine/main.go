package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"matchcast/internal/api"
	"matchcast/internal/config"
	"matchcast/internal/content"
	"matchcast/internal/distribution"
	"matchcast/internal/fixtures"
	"matchcast/internal/generator"
	"matchcast/internal/planner"
	"matchcast/internal/publisher"
	"matchcast/internal/service"
	"matchcast/internal/spamguard"
	"matchcast/internal/storage/postgres"
	"matchcast/internal/telegram"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	version, err := postgres.RunMigrations(db)
	if err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("schema up to date", "version", version)

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	gateway, err := telegram.New(cfg.Telegram, logger)
	if err != nil {
		logger.Error("failed to initialize telegram gateway", "error", err)
		os.Exit(1)
	}

	// Initialize stores
	matchStore := postgres.NewMatchStore(db)
	ruleStore := postgres.NewRuleStore(db)
	channelStore := postgres.NewChannelStore(db)
	scheduleStore := postgres.NewScheduleStore(db)
	pushStore := postgres.NewPushStore(db)
	counterStore := postgres.NewCounterStore(db)
	runStore := postgres.NewRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Outbound collaborators
	fixtureSource := fixtures.New(cfg.Fixtures, logger)
	genClient := generator.New(cfg.Generator, logger)

	guard := spamguard.New(counterStore, cfg.Engine.Limits, logger)
	router := content.NewRouter(genClient, matchStore, 24*time.Hour, logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	dispatcher := distribution.NewDispatcher(
		router,
		gateway,
		guard,
		pushStore,
		cfg.Engine.MaxItemsPerGen,
		cfg.Engine.CouponDelayMin,
		cfg.Engine.CouponDelayMax,
		rng,
		logger,
	)

	matchPlanner := planner.New(scheduleStore, pushStore, cfg.Engine.Push, rng, logger)

	engine := service.NewEngine(
		fixtureSource,
		matchStore,
		ruleStore,
		channelStore,
		scheduleStore,
		pushStore,
		runStore,
		matchPlanner,
		matchPlanner,
		dispatcher,
		txManager,
		rabbitMQ,
		logger,
		cfg.Engine,
	)

	handler := api.NewHandler(engine, db, logger, cfg.Triggers.RunTimeout, cfg.Triggers.AccessKey)
	srv := &http.Server{
		Addr:    cfg.Triggers.Addr,
		Handler: api.NewServer(handler),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cronRunner *cron.Cron
	if cfg.Triggers.Cron.Enabled {
		cronRunner = startCron(ctx, cfg.Triggers.Cron, engine, cfg.Triggers.RunTimeout, logger)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
		if cronRunner != nil {
			<-cronRunner.Stop().Done()
		}
	}()

	logger.Info("starting automation engine",
		"addr", cfg.Triggers.Addr,
		"cron", cfg.Triggers.Cron.Enabled,
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

// startCron registers in-process triggers for single-binary deployments.
// External schedulers hitting the HTTP surface are the usual setup; this
// covers environments without one.
func startCron(ctx context.Context, cfg config.CronConfig, engine *service.Engine, runTimeout time.Duration, logger *slog.Logger) *cron.Cron {
	c := cron.New()

	add := func(spec, name string, run func(context.Context) error) {
		if spec == "" {
			return
		}
		if _, err := c.AddFunc(spec, func() {
			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()
			if err := run(runCtx); err != nil {
				logger.Error("cron run failed", "trigger", name, "error", err)
			}
		}); err != nil {
			logger.Error("cron registration failed", "trigger", name, "spec", spec, "error", err)
		}
	}

	add(cfg.Daily, "daily", func(ctx context.Context) error {
		_, err := engine.RunDaily(ctx)
		return err
	})
	add(cfg.Hourly, "hourly", func(ctx context.Context) error {
		_, err := engine.RunHourly(ctx)
		return err
	})
	add(cfg.Coupons, "coupons", func(ctx context.Context) error {
		_, err := engine.RunCoupons(ctx)
		return err
	})

	c.Start()
	return c
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
