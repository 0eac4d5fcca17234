package app

import (
	"context"
	"documint/internal/cache/redis"
	"documint/internal/config"
	"documint/internal/dbs/postgres"
	cachelistingrepo "documint/internal/repositories/cache/listing"
	documentrepo "documint/internal/repositories/db/document"
	folderrepo "documint/internal/repositories/db/folder"
	documentservice "documint/internal/services/document"
	folderservice "documint/internal/services/folder"
	"fmt"
	"log/slog"
)

type App struct {
	FolderService   *folderservice.FolderService
	DocumentService *documentservice.DocumentService

	closers []func() error
}

func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheCfg config.Cache) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB,
		MaxConns: dbCfg.MaxConns})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	listingCache := cachelistingrepo.New(cache, cacheCfg.ListingTTL)

	folderRepo := folderrepo.NewRepository(db)

	docRepo := documentrepo.NewRepository(db)

	folderService := folderservice.New(log, folderRepo, listingCache)

	documentService := documentservice.New(log, docRepo, folderService, listingCache)

	return &App{
		FolderService:   folderService,
		DocumentService: documentService,
		closers:         []func() error{db.Close, cache.Close},
	}, nil
}

// Close releases the database pool and the cache client.
func (a *App) Close() error {
	var firstErr error

	for _, close := range a.closers {
		if err := close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
