// Package itemgen creates enchanted item templates.
//
// One call clones a base template under a freshly allocated entry, rolls a
// quality upgrade, rolls and applies enchantments, composes the new name and
// persists the result. The allocator is peeked before generation and only
// committed once the template is ready, so failed attempts consume no entry.
package itemgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/game/naming"
	"github.com/udisondev/itemforge/internal/metrics"
	"github.com/udisondev/itemforge/internal/model"
)

var (
	// ErrNotEnchantable is returned for templates that are neither weapons nor armor.
	ErrNotEnchantable = errors.New("item is not enchantable")
	// ErrNothingApplied is returned when no rolled enchantment found a free stat slot.
	ErrNothingApplied = errors.New("no enchantment could be applied")
)

// TemplateStore persists generated templates.
type TemplateStore interface {
	SaveTemplate(ctx context.Context, tmpl *model.ItemTemplate, perfect bool) error
}

// IDAllocator hands out entries for generated templates.
type IDAllocator interface {
	PeekNextID() int32
	CommitID() int32
	Reclaim(id int32) error
}

// Created describes a generated template.
type Created struct {
	GenID        string
	Template     *model.ItemTemplate
	Enchantments []model.CustomStat // applied, in enchantment order
	Perfect      bool
	BaseQuality  model.Quality
}

// Upgraded reports whether the quality roll raised the quality.
func (c Created) Upgraded() bool {
	return c.Template.Quality > c.BaseQuality
}

// Service generates and stores enchanted templates.
type Service struct {
	mu    sync.Mutex
	gen   *enchant.Generator
	names *naming.Composer
	ids   IDAllocator
	store TemplateStore
}

// NewService creates a Service.
func NewService(gen *enchant.Generator, names *naming.Composer, ids IDAllocator, store TemplateStore) *Service {
	return &Service{
		gen:   gen,
		names: names,
		ids:   ids,
		store: store,
	}
}

// Generator returns the enchantment generator.
func (s *Service) Generator() *enchant.Generator {
	return s.gen
}

// CreateEnchantedItem generates a new template from base for an item dropped by creature.
// base is not modified. creature may be nil (treated as a normal rank creature).
func (s *Service) CreateEnchantedItem(ctx context.Context, base *model.ItemTemplate, creature *model.Creature) (Created, error) {
	if !base.IsEnchantable() {
		metrics.GenerationsTotal.WithLabelValues(metrics.ResultNotEquipment).Inc()
		return Created{}, fmt.Errorf("template %d (%s): %w", base.Entry, base.ClassPair(), ErrNotEnchantable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	genID := uuid.NewString()
	log := slog.With("gen_id", genID, "base", base.Entry)
	rank := creature.Rank()

	entry := s.ids.PeekNextID()
	tmpl := base.Clone(entry)
	tmpl.Quality = s.gen.RollQuality(base.Quality, rank)

	res, err := s.gen.Generate(tmpl, rank)
	if err != nil {
		if errors.Is(err, enchant.ErrNoEnchantments) {
			metrics.GenerationsTotal.WithLabelValues(metrics.ResultNoEnchants).Inc()
			log.Debug("no enchantments rolled", "quality", tmpl.Quality, "rank", rank)
		} else {
			metrics.GenerationsTotal.WithLabelValues(metrics.ResultError).Inc()
			log.Warn("generating enchantments", "error", err)
		}
		return Created{}, fmt.Errorf("generating enchantments for %d: %w", base.Entry, err)
	}

	applied := tmpl.ApplyStats(res.Enchantments)
	if len(applied) == 0 {
		metrics.GenerationsTotal.WithLabelValues(metrics.ResultNotApplied).Inc()
		log.Warn("no free stat slots", "rolled", len(res.Enchantments))
		return Created{}, fmt.Errorf("template %d: %w", base.Entry, ErrNothingApplied)
	}
	if len(applied) < len(res.Enchantments) {
		// Частичное применение допустимо: имя строится только по применённым статам
		log.Warn("some enchantments were not applied",
			"rolled", len(res.Enchantments),
			"applied", len(applied))
	}

	statList := make([]model.Stat, len(applied))
	for i, cs := range applied {
		statList[i] = cs.Stat
	}
	name, err := s.names.Compose(base.Name, statList, res.Perfect)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return Created{}, fmt.Errorf("composing name for %d: %w", base.Entry, err)
	}
	tmpl.Name = name

	if committed := s.ids.CommitID(); committed != entry {
		log.Warn("allocator moved between peek and commit", "peeked", entry, "committed", committed)
		tmpl.Entry = committed
	}

	if err := s.store.SaveTemplate(ctx, tmpl, res.Perfect); err != nil {
		if rerr := s.ids.Reclaim(tmpl.Entry); rerr != nil {
			log.Error("reclaiming entry after failed save", "entry", tmpl.Entry, "error", rerr)
		}
		metrics.GenerationsTotal.WithLabelValues(metrics.ResultError).Inc()
		return Created{}, fmt.Errorf("saving template %d: %w", tmpl.Entry, err)
	}

	created := Created{
		GenID:        genID,
		Template:     tmpl,
		Enchantments: applied,
		Perfect:      res.Perfect,
		BaseQuality:  base.Quality,
	}

	metrics.GenerationsTotal.WithLabelValues(metrics.ResultCreated).Inc()
	metrics.EnchantedItems.WithLabelValues(tmpl.Quality.String()).Inc()
	metrics.EnchantCount.Observe(float64(len(applied)))
	if created.Upgraded() {
		metrics.QualityUpgrades.Add(float64(tmpl.Quality - base.Quality))
	}
	if res.Perfect {
		metrics.PerfectItems.Inc()
	}

	log.Info("enchanted item created",
		"entry", tmpl.Entry,
		"name", tmpl.Name,
		"quality", tmpl.Quality,
		"enchantments", len(applied),
		"perfect", res.Perfect)

	return created, nil
}

// Reclaim releases a generated entry for reuse.
// Serialized with generation so a reclaimed id cannot slip between peek and commit.
func (s *Service) Reclaim(entry int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids.Reclaim(entry)
}
