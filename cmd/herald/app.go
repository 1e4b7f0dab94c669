package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XavierBriggs/Herald/adapters/thesportsdb"
	"github.com/XavierBriggs/Herald/internal/config"
	"github.com/XavierBriggs/Herald/internal/delta"
	"github.com/XavierBriggs/Herald/internal/linker"
	"github.com/XavierBriggs/Herald/internal/registry"
	"github.com/XavierBriggs/Herald/internal/scheduler"
	"github.com/XavierBriggs/Herald/internal/store"
	"github.com/XavierBriggs/Herald/internal/transform"
	"github.com/XavierBriggs/Herald/internal/writer"
	"github.com/XavierBriggs/Herald/pkg/contracts"
	"github.com/XavierBriggs/Herald/sports/basketball_nba"
	"github.com/XavierBriggs/Herald/sports/soccer"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// availableSports lists every sport module compiled into the binary
func availableSports() []contracts.SportModule {
	return []contracts.SportModule{
		soccer.NewModule(),
		basketball_nba.NewModule(),
	}
}

// buildRegistry registers the enabled sports, or only the one named by --sport
func buildRegistry(enabled []string, only string) (*registry.SportRegistry, error) {
	all := registry.NewSportRegistry()
	for _, sport := range availableSports() {
		if err := all.Register(sport); err != nil {
			return nil, fmt.Errorf("register %s: %w", sport.GetSportKey(), err)
		}
	}

	keys := enabled
	if only != "" {
		keys = []string{only}
	}

	selected := registry.NewSportRegistry()
	for _, key := range keys {
		sport, err := all.Lookup(key)
		if err != nil {
			return nil, err
		}
		if err := selected.Register(sport); err != nil {
			return nil, err
		}
	}
	return selected, nil
}

func openDB(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func openRedis(ctx context.Context, c config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func newAdapter(c config.ProviderConfig) *thesportsdb.Client {
	return thesportsdb.NewClient(thesportsdb.Config{
		BaseURL: c.BaseURL,
		APIKey:  c.APIKey,
		Timeout: c.Timeout,
		Source:  c.SourceName,
	})
}

func newLinker(adapter contracts.ScheduleAdapter) *linker.Linker {
	return linker.NewLinker(
		transform.NewTransformer(adapter.SourceName(), transform.DefaultCountryTable()),
		cfg.Scheduler.Workers,
		logger,
	)
}

// app holds the connected dependencies of a linking command
type app struct {
	db        *sql.DB
	redis     *redis.Client
	registry  *registry.SportRegistry
	scheduler *scheduler.Scheduler
}

// newApp connects Postgres and Redis and assembles the scheduler
func newApp(ctx context.Context, syncFixtures bool) (*app, error) {
	if cfg.Provider.APIKey == "" {
		return nil, fmt.Errorf("provider.api_key is required (set HERALD_PROVIDER_API_KEY)")
	}

	sportRegistry, err := buildRegistry(cfg.Sports.Enabled, sportFlag)
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	redisClient, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.WithField("addr", cfg.Redis.Addr).Info("connected to redis")

	adapter := newAdapter(cfg.Provider)
	sched := scheduler.NewScheduler(
		adapter,
		store.NewFixtureStore(db),
		newLinker(adapter),
		delta.NewEngine(redisClient, cfg.Redis.LinkTTL),
		writer.NewWriter(db, redisClient, cfg.Scheduler.BatchSize, logger),
		sportRegistry,
		scheduler.Options{RunTimeout: cfg.Scheduler.RunTimeout, SyncFixtures: syncFixtures},
		logger,
	)

	return &app{
		db:        db,
		redis:     redisClient,
		registry:  sportRegistry,
		scheduler: sched,
	}, nil
}

func (a *app) Close() {
	a.redis.Close()
	a.db.Close()
}

// resolveDate validates a --date value, defaulting to today (UTC)
func resolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().UTC().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}
	return date, nil
}
