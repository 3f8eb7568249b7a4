package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/db"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/socialstats"
	"go.uber.org/zap"
)

// The worker periodically re-reads the public pages behind creators' social
// links and refreshes the stored follower counts plus the derived total.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	profileRepo := repositories.NewProfileRepo(pool)
	fetcher := socialstats.NewFetcher(cfg.StatsFetchTimeoutMS, cfg.StatsFetchMaxRetries, log)

	log.Info("worker started", zap.Duration("interval", cfg.StatsRefreshInterval))

	refreshTicker := time.NewTicker(cfg.StatsRefreshInterval)
	defer refreshTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// One refresh on startup, then on the ticker.
	runStatsRefresh(ctx, profileRepo, fetcher, log)

	for {
		select {
		case <-refreshTicker.C:
			runStatsRefresh(ctx, profileRepo, fetcher, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runStatsRefresh(ctx context.Context, profileRepo *repositories.ProfileRepo, fetcher *socialstats.Fetcher, log *zap.Logger) {
	profiles, err := profileRepo.ListCreatorsWithSocialLinks(ctx)
	if err != nil {
		log.Error("failed to list creators for stats refresh", zap.Error(err))
		return
	}

	for _, p := range profiles {
		changed := false
		for i, link := range p.SocialLinks {
			if link.URL == "" {
				continue
			}

			count, err := fetcher.FetchFollowers(ctx, link.URL)
			if err != nil {
				log.Warn("failed to fetch followers",
					zap.String("profile_id", p.ID.String()),
					zap.String("url", link.URL),
					zap.Error(err))
				continue
			}
			// A page that exposes no counter yields 0; keep the stored value.
			if count > 0 && count != link.Followers {
				p.SocialLinks[i].Followers = count
				changed = true
			}

			time.Sleep(1 * time.Second) // rate limiting
		}

		if !changed {
			continue
		}

		total := p.TotalLinkedFollowers()
		if err := profileRepo.UpdateSocialFollowers(ctx, p.ID, p.SocialLinks, total); err != nil {
			log.Error("failed to persist refreshed followers",
				zap.String("profile_id", p.ID.String()),
				zap.Error(err))
			continue
		}
		log.Info("refreshed follower counts",
			zap.String("profile_id", p.ID.String()),
			zap.Int("followers_count", total))

		if ctx.Err() != nil {
			return
		}
	}
}
