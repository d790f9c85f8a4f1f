package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/georgemunganga/productions-api/internal/config"
	"github.com/georgemunganga/productions-api/internal/database"
	"github.com/georgemunganga/productions-api/internal/modules/action"
	"github.com/georgemunganga/productions-api/internal/modules/production"
	"github.com/georgemunganga/productions-api/internal/modules/productiondata"
	"github.com/georgemunganga/productions-api/internal/modules/user"
)

// stores bundles one repository per module for the configured backend.
type stores struct {
	users         user.Repository
	data          productiondata.Repository
	announcements action.AnnouncementRepository
	articles      action.ArticleRepository
	productions   production.Repository
	close         func()
}

func openStores(ctx context.Context, cfg config.DatabaseConfig) (*stores, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := database.OpenPostgres(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return postgresStores(db), nil
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		s, err := mongoStores(ctx, client.Database(cfg.Name))
		if err != nil {
			database.DisconnectMongo(client)
			return nil, err
		}
		s.close = func() { database.DisconnectMongo(client) }
		return s, nil
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		return &stores{
			users:         user.NewMemoryRepository(),
			data:          productiondata.NewMemoryRepository(),
			announcements: action.NewMemoryAnnouncementRepository(),
			articles:      action.NewMemoryArticleRepository(),
			productions:   production.NewMemoryRepository(),
			close:         func() {},
		}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func postgresStores(db *sql.DB) *stores {
	return &stores{
		users:         user.NewPostgresRepository(db),
		data:          productiondata.NewPostgresRepository(db),
		announcements: action.NewPostgresAnnouncementRepository(db),
		articles:      action.NewPostgresArticleRepository(db),
		productions:   production.NewPostgresRepository(db),
		close:         func() { db.Close() },
	}
}

func mongoStores(ctx context.Context, db *mongo.Database) (*stores, error) {
	users, err := user.NewMongoRepository(ctx, db)
	if err != nil {
		return nil, err
	}
	announcements, err := action.NewMongoAnnouncementRepository(ctx, db)
	if err != nil {
		return nil, err
	}
	productions, err := production.NewMongoRepository(ctx, db)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:         users,
		data:          productiondata.NewMongoRepository(db),
		announcements: announcements,
		articles:      action.NewMongoArticleRepository(db),
		productions:   productions,
	}, nil
}
