package main

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/udisondev/itemforge/internal/admin"
	"github.com/udisondev/itemforge/internal/config"
	"github.com/udisondev/itemforge/internal/db"
	"github.com/udisondev/itemforge/internal/idfactory"
	"github.com/udisondev/itemforge/internal/model"
)

// idStoreAdapter adapts db.TemplateRepository to idfactory.Store.
type idStoreAdapter struct {
	repo *db.TemplateRepository
}

func (a *idStoreAdapter) MaxEntry(ctx context.Context) (int32, error) {
	return a.repo.MaxCustomEntry(ctx)
}

func (a *idStoreAdapter) PurgeOrphans(ctx context.Context) (idfactory.PurgeStats, error) {
	res, err := a.repo.PurgeOrphans(ctx)
	if err != nil {
		return idfactory.PurgeStats{}, err
	}
	return idfactory.PurgeStats{Instances: res.Instances, Templates: res.Templates}, nil
}

func (a *idStoreAdapter) EntriesFrom(ctx context.Context, start int32) ([]int32, error) {
	return a.repo.CustomEntriesFrom(ctx, start)
}

// templateStoreAdapter adapts db.TemplateRepository to itemgen.TemplateStore.
type templateStoreAdapter struct {
	repo *db.TemplateRepository
}

func (a *templateStoreAdapter) SaveTemplate(ctx context.Context, tmpl *model.ItemTemplate, perfect bool) error {
	return a.repo.SaveCustom(ctx, tmpl, perfect)
}

// apiKeys converts configured keys, rejecting hashes bcrypt cannot read.
func apiKeys(in []config.APIKeyConfig) ([]admin.APIKey, error) {
	out := make([]admin.APIKey, 0, len(in))
	for _, k := range in {
		hash := []byte(k.Hash)
		if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("api key %q: %w", k.Name, err)
		}
		out = append(out, admin.APIKey{Name: k.Name, Hash: hash, AccessLevel: k.AccessLevel})
	}
	return out, nil
}
