package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smoketaper/internal/config"
	httpapi "smoketaper/internal/http"
	"smoketaper/internal/repository"
	"smoketaper/internal/service"
	"smoketaper/internal/store"
	"smoketaper/pkg/database"
	"smoketaper/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "smoketaper")
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	kv := store.NewRedisKV(redisClient)

	// Postgres when available; otherwise the in-memory store keeps local
	// dev usable with plain `go run`.
	var db *sql.DB
	var daysRepo repository.DaysRepository
	var remindersRepo repository.RemindersRepository
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for smoketaper")
		} else {
			log.Warn("DB enabled but connection failed, falling back to in-memory store", zap.Error(err))
		}
	}
	if db != nil {
		daysRepo = repository.NewPostgresDaysRepo(db)
		remindersRepo = repository.NewPostgresRemindersRepo(db)
	} else {
		mem := repository.NewMemoryStore()
		daysRepo = mem
		remindersRepo = mem
	}

	dayService := service.NewDayService(daysRepo, log)
	reminderService := service.NewReminderService(remindersRepo, log)
	statsService := service.NewStatsService(daysRepo, remindersRepo, log)

	router := httpapi.NewRouter(log)
	router.RegisterDayRoutes(httpapi.NewDayHandler(dayService, log))
	router.RegisterReminderRoutes(httpapi.NewReminderHandler(reminderService, log))
	router.RegisterStatsRoutes(httpapi.NewStatsHandler(statsService, cfg.Stats.WindowDays, log))
	router.RegisterPreferenceRoutes(httpapi.NewPreferencesHandler(kv, log))
	router.RegisterHealthRoute()

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	_ = redisClient.Close()
	_ = database.Close(db)
}
