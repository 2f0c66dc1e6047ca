package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	appMigrations "github.com/yigit/mentorhub/internal/app/migrations"
	appRepos "github.com/yigit/mentorhub/internal/app/repositories"
	"github.com/yigit/mentorhub/internal/config"
	"github.com/yigit/mentorhub/internal/db"
)

// Store is the explicitly opened persistence handle: the repositories of the
// configured driver plus the connection behind them
type Store struct {
	Driver string
	Repos  *appRepos.Repositories

	postgres *db.PostgresDB
	mongo    *db.MongoDB
}

// OpenStore connects to the configured driver and builds its repositories
func OpenStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	store := &Store{Driver: cfg.Database.Driver}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Establishing PostgreSQL connection...")
		pg, err := db.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store.postgres = pg
		store.Repos = appRepos.NewPostgresRepositories(pg.Pool)

	case config.DriverMongo:
		lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing MongoDB connection...")
		mg, err := db.NewMongoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store.mongo = mg
		store.Repos = appRepos.NewMongoRepositories(mg.Database)

	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		store.Repos = appRepos.NewMemoryRepositories(appRepos.NewMemoryStore())

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	lgr.Info().Str("driver", store.Driver).Msg("Database connection successfully established.")
	return store, nil
}

// Migrate brings the schema up to date: SQL migrations for postgres, indexes for mongo
func (s *Store) Migrate(ctx context.Context, migrationsDir string, lgr zerolog.Logger) error {
	switch {
	case s.postgres != nil:
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}
		lgr.Info().Str("dir", migrationsDir).Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(s.postgres.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
			return fmt.Errorf("database migrations failed: %w", err)
		}
	case s.mongo != nil:
		if err := appMigrations.EnsureMongoIndexes(ctx, s.mongo.Database, lgr); err != nil {
			return err
		}
	default:
		lgr.Debug().Str("driver", s.Driver).Msg("Nothing to migrate")
	}
	return nil
}

// Ping checks the underlying connection
func (s *Store) Ping(ctx context.Context) error {
	switch {
	case s.postgres != nil:
		return s.postgres.Ping(ctx)
	case s.mongo != nil:
		return s.mongo.Ping(ctx)
	default:
		return nil
	}
}

// Close releases the underlying connection
func (s *Store) Close(ctx context.Context) error {
	switch {
	case s.postgres != nil:
		return s.postgres.Close(ctx)
	case s.mongo != nil:
		return s.mongo.Close(ctx)
	default:
		return nil
	}
}
