package main

import (
	"context"
	"log"

	"github.com/brandcanvas/brand-canvas-backend/config"
	"github.com/brandcanvas/brand-canvas-backend/internal/bootstrap"
	cronjob "github.com/brandcanvas/brand-canvas-backend/internal/brand/cron"
	"github.com/brandcanvas/brand-canvas-backend/internal/brand/repository"
	"github.com/brandcanvas/brand-canvas-backend/internal/brand/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "brand-canvas-backend",
		Version:       cfg.App.Version,
		DB:            db,
		Redis:         rdb,
		GenerateRate:  cfg.Generate.RatePerSecond,
		GenerateBurst: cfg.Generate.Burst,
	})

	svc := service.NewProjectService(
		repository.NewSessionRepository(rdb),
		repository.NewDocumentRepository(db),
	)
	sweeper := cronjob.NewSweeper(svc, cfg.Sessions.Retention, cfg.Sessions.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("sweeper: %v", err)
	}
	defer sweeper.Stop()

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
