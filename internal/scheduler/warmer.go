package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/presets"
	"github.com/codr1/tintkit/internal/themecolor"
)

const (
	cacheWarmJobName = "scheme_cache_warm"
	cacheWarmTimeout = 30 * time.Second
)

// WarmCache builds light and dark schemes for every preset plus extraSeeds.
// It returns how many entries were newly added.
func WarmCache(ctx context.Context, cache *themecolor.Cache, extraSeeds ...color.Color) (int, error) {
	if cache == nil {
		return 0, fmt.Errorf("cache warming requires a cache")
	}

	all, err := presets.All()
	if err != nil {
		return 0, fmt.Errorf("load presets: %w", err)
	}

	seeds := make([]color.Color, 0, len(all)+len(extraSeeds))
	for _, p := range all {
		seeds = append(seeds, p.Seed)
	}
	seeds = append(seeds, extraSeeds...)

	added := 0
	for _, seed := range seeds {
		for _, dark := range []bool{false, true} {
			if err := ctx.Err(); err != nil {
				return added, err
			}
			if cache.Warm(seed, dark) {
				added++
			}
		}
	}
	return added, nil
}

// RegisterCacheWarmJob schedules WarmCache on cronExpr. An empty expression
// disables the job.
func RegisterCacheWarmJob(svc *Service, cache *themecolor.Cache, cronExpr string, extraSeeds ...color.Color) error {
	if cronExpr == "" {
		log.Info().Msg("Scheme cache warming disabled")
		return nil
	}
	if cache == nil {
		return fmt.Errorf("cache warm job requires a cache")
	}

	jobLogger := log.With().
		Str("component", "scheme_cache_warm_job").
		Str("job_name", cacheWarmJobName).
		Str("cron", cronExpr).
		Logger()

	_, err := svc.AddJob(cacheWarmJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheWarmTimeout)
		defer cancel()

		start := time.Now()
		added, err := WarmCache(ctx, cache, extraSeeds...)
		if err != nil {
			jobLogger.Error().Err(err).Int("added", added).Msg("Failed to warm scheme cache")
			return
		}
		stats := cache.Stats()
		jobLogger.Info().
			Int("added", added).
			Int("entries", stats.Entries).
			Uint64("hits", stats.Hits).
			Uint64("misses", stats.Misses).
			Dur("duration", time.Since(start)).
			Msg("Scheme cache warmed")
	}, gocron.WithSingletonMode(gocron.LimitModeReschedule))
	if err != nil {
		return fmt.Errorf("add scheme cache warm job: %w", err)
	}

	jobLogger.Info().Msg("Scheme cache warm job registered")
	return nil
}
