// Package cachelistingrepo caches rendered folder and document listings.
// Every mutation in the domain services deletes the affected keys, so a
// cached listing never outlives the data it was built from within this
// process. Existence checks and search always bypass the cache.
package cachelistingrepo

import (
	"context"
	cacherepo "documint/internal/repositories/cache"
	"fmt"
	"time"
)

// Cache key namespace shared by both domain services. The folder service
// deletes document keys too when a cascade delete empties a folder.
const (
	FoldersKey      = "folders:all"
	DocumentsAllKey = "docs:all"
)

// DocumentsKey is the listing key for a single folder's documents.
func DocumentsKey(folderID int64) string {
	return fmt.Sprintf("docs:folder:%d", folderID)
}

type repository struct {
	cache      cacherepo.Cache
	listingTTL time.Duration
}

func New(cache cacherepo.Cache, listingTTL time.Duration) *repository {
	return &repository{
		cache:      cache,
		listingTTL: listingTTL,
	}
}

func (r *repository) Get(ctx context.Context, key string) (string, error) {
	listingJSON, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}

	return listingJSON, nil
}

func (r *repository) Set(ctx context.Context, key string, value interface{}) error {
	return r.cache.Set(ctx, key, value, r.listingTTL).Err()
}

func (r *repository) Del(ctx context.Context, keys ...string) error {
	return r.cache.Del(ctx, keys...).Err()
}
