package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/eduboost/eduboost-back/internal/ai"
	"github.com/eduboost/eduboost-back/internal/api"
	"github.com/eduboost/eduboost-back/internal/cache"
	"github.com/eduboost/eduboost-back/internal/config"
	"github.com/eduboost/eduboost-back/internal/cron"
	"github.com/eduboost/eduboost-back/internal/db"
	"github.com/eduboost/eduboost-back/internal/records"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system env")
	}

	cfg := config.Load()

	db.InitDB(cfg.DBUrl)

	c := cache.New(cfg.RedisAddr)

	svc := records.NewService(db.NewBlobStore())
	svc.SetCommitHook(func(owner, key string) {
		// A committed mutation makes the cached digest stale.
		c.Delete(context.Background(), api.DigestKey(owner, time.Now()))
	})

	gateway, err := ai.New(context.Background(), cfg.GeminiAPIKey, cfg.DefaultYear)
	if err != nil {
		log.Println("⚠️ AI drafting disabled:", err)
		gateway = nil
	}

	s := api.NewServer(cfg, svc, gateway, c)
	r := api.SetupRouter(cfg, s)

	// Start cron jobs
	cron.StartJobs(s, c)

	log.Println("Server running on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}
