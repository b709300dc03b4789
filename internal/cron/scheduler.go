package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/eduboost/eduboost-back/internal/api"
	"github.com/eduboost/eduboost-back/internal/cache"
	"github.com/eduboost/eduboost-back/internal/db"
)

const digestTTL = 24 * time.Hour

// StartJobs schedules the daily dashboard digest refresh. The derivations
// depend on "today", so the digest is rebuilt once per day for every
// onboarded teacher and cached for fast dashboard loads.
func StartJobs(s *api.Server, c *cache.Cache) {
	jobs := cron.New()

	jobs.AddFunc("@daily", func() {
		log.Println("Running dashboard digest job...")

		ctx := context.Background()
		emails, err := db.ListUserEmails(ctx)
		if err != nil {
			log.Println("❌ Failed to list users:", err)
			return
		}

		now := time.Now()
		refreshed := 0
		for _, email := range emails {
			summary, err := s.BuildDigest(ctx, email, now)
			if err != nil {
				log.Printf("❌ Failed to build digest for %s: %v", email, err)
				continue
			}
			if summary == nil {
				continue
			}
			raw, err := json.Marshal(summary)
			if err != nil {
				continue
			}
			c.Set(ctx, api.DigestKey(email, now), string(raw), digestTTL)
			refreshed++
		}

		log.Printf("✅ Refreshed %d dashboard digests", refreshed)
	})

	jobs.Start()
}
