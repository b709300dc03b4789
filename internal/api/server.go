package api

import (
	"time"

	"github.com/eduboost/eduboost-back/internal/ai"
	"github.com/eduboost/eduboost-back/internal/cache"
	"github.com/eduboost/eduboost-back/internal/config"
	"github.com/eduboost/eduboost-back/internal/records"
)

// Server bundles the handlers' dependencies. Gateway may be nil when no
// Gemini API key is configured; drafting endpoints then answer 503.
type Server struct {
	cfg     *config.Config
	records *records.Service
	gateway *ai.Gateway
	cache   *cache.Cache
}

func NewServer(cfg *config.Config, svc *records.Service, gateway *ai.Gateway, c *cache.Cache) *Server {
	return &Server{cfg: cfg, records: svc, gateway: gateway, cache: c}
}

// DigestKey is the cache key of one owner's precomputed dashboard summary.
// The derivations depend on "today", so the day is part of the key and a
// digest built before midnight cannot be served after rollover.
func DigestKey(owner string, day time.Time) string {
	return "edu_boost_digest:" + owner + ":" + day.Format("2006-01-02")
}
