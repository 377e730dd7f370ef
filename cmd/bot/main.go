package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"offertracker/internal/bot"
	"offertracker/internal/bot/throttle"
	"offertracker/internal/config"
	"offertracker/internal/deps"
	"offertracker/internal/logger"
	"offertracker/internal/scheduler"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log := logger.NewLogger("info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.NewLogger(cfg.LogLevel)

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := deps.NewDeps(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to init dependencies")
	}
	defer app.Close()

	thr, err := throttle.New(ctx, cfg.RedisURL, cfg.BotRateWindow, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, anti-flood falls back to process memory")
		thr = throttle.NewMemoryThrottle(cfg.BotRateWindow)
	}
	defer thr.Close()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot api")
	}
	log.Info().Str("account", api.Self.UserName).Msg("bot authorized")

	settings := bot.Settings{
		BaseURL:  cfg.BaseURL,
		Salt:     cfg.UserHashSalt,
		AdminIDs: cfg.AdminIDs,
	}
	if app.AdminAuth != nil {
		settings.Tokens = app.AdminAuth
	}

	b, err := bot.New(api, app.Tracker, app.Analytics, thr, settings, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	if cfg.DailyReportAt != "" {
		sched := scheduler.NewScheduler(cfg.Location, log)
		if _, err := sched.ScheduleDaily(ctx, "daily_report", cfg.DailyReportAt, b.SendDailyReport); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule daily report")
		}
		sched.Start()
		defer sched.Stop()
		log.Info().Str("at", cfg.DailyReportAt).Str("tz", cfg.ReportTimezone).Msg("daily report scheduled")
	}

	if err := b.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Bot stopped")
	}
	log.Info().Msg("Bot exited")
}
