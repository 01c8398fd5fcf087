package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deptcal/internal/bot"
	"deptcal/internal/config"
	"deptcal/internal/holiday"
	"deptcal/internal/logging"
	"deptcal/internal/repository"
	"deptcal/internal/service"
	"deptcal/internal/web"
)

func main() {
	configPath := flag.String("config", "deptcal.yaml", "path to configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("config", "err", err)
	}

	logging.Init(logging.Config{Debug: cfg.Debug, File: cfg.LogFile})

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Fatal("timezone", "tz", cfg.Timezone, "err", err)
	}

	db, err := repository.NewDB(cfg.Database)
	if err != nil {
		logging.Fatal("db", "err", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	eventRepo := repository.NewEventRepository(db)
	holidays := holiday.NewKorean()

	scheduleSvc := service.NewScheduleService(eventRepo)
	copySvc := service.NewCopyService(scheduleSvc, holidays)

	if err := scheduleSvc.SeedIfEmpty(ctx); err != nil {
		logging.Fatal("seed", "err", err)
	}

	if cfg.Telegram != nil && cfg.Telegram.Token != "" {
		agendaBot, err := bot.New(cfg.Telegram, scheduleSvc, holidays, loc)
		if err != nil {
			logging.Fatal("bot", "err", err)
		}

		if cfg.Telegram.DailyAgenda != "" {
			scheduler := service.NewSchedulerService(loc)
			if _, err := scheduler.ScheduleDaily(cfg.Telegram.DailyAgenda, func() {
				jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := agendaBot.DailyAgenda(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
					logging.Error("daily agenda", "err", err)
				}
			}); err != nil {
				logging.Fatal("schedule daily agenda", "err", err)
			}
			scheduler.Start()
			defer scheduler.Stop()
		}

		go func() {
			if err := agendaBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logging.Error("bot stopped", "err", err)
			}
		}()
	}

	server := web.NewServer(cfg, scheduleSvc, copySvc, holidays)
	httpServer := &http.Server{
		Addr:    cfg.Listen,
		Handler: server.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("shutdown", "err", err)
		}
	}()

	logging.Info("deptcal started", "listen", "http://"+cfg.Listen)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("server stopped", "err", err)
	}
	logging.Info("shutdown complete")
}
