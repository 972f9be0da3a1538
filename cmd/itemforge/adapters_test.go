package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemforge/internal/db"
	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/game/naming"
	"github.com/udisondev/itemforge/internal/idfactory"
	"github.com/udisondev/itemforge/internal/itemgen"
	"github.com/udisondev/itemforge/internal/model"
	"github.com/udisondev/itemforge/internal/testutil"
)

const testIDStart int32 = 100000

// Легендарный базовый шаблон высокого уровня: всегда выпадает хотя бы одно зачарование
func legendaryBlade() *model.ItemTemplate {
	return &model.ItemTemplate{
		Entry:     5000,
		Name:      "Ancient Blade",
		Class:     model.ItemClassWeapon,
		Subclass:  model.WeaponSword,
		Quality:   model.QualityLegendary,
		ItemLevel: 60,
		Material:  1,
	}
}

func newPersistentService(t *testing.T, repo *db.TemplateRepository) (*itemgen.Service, *idfactory.Factory) {
	t.Helper()

	ids := idfactory.New(testIDStart)
	require.NoError(t, ids.Reconcile(context.Background(), &idStoreAdapter{repo: repo}))

	gen := enchant.NewGenerator(enchant.Options{Source: dice.Seeded(7)})
	names := naming.NewComposer(naming.Options{Source: dice.Seeded(11)})
	return itemgen.NewService(gen, names, ids, &templateStoreAdapter{repo: repo}), ids
}

func TestAdapters_GenerateReconcileReuse(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	templates := db.NewTemplateRepository(pool)
	items := db.NewItemRepository(pool)

	base := legendaryBlade()
	require.NoError(t, templates.SaveBase(ctx, base))

	service, ids := newPersistentService(t, templates)
	assert.Equal(t, testIDStart, ids.Stats().Next)

	var created []itemgen.Created
	for range 3 {
		c, err := service.CreateEnchantedItem(ctx, base, nil)
		require.NoError(t, err)
		created = append(created, c)
	}
	for i, c := range created {
		assert.Equal(t, testIDStart+int32(i), c.Template.Entry)

		stored, perfect, err := templates.GetCustom(ctx, c.Template.Entry)
		require.NoError(t, err)
		assert.Equal(t, c.Template.Name, stored.Name)
		assert.Equal(t, base.Entry, stored.BaseEntry)
		assert.Equal(t, c.Perfect, perfect)
		assert.Equal(t, len(c.Enchantments), int(stored.StatsCount))
	}

	// Первый и третий предметы лежат в инвентаре, второй никому не выдан
	const owner int64 = 42
	for _, c := range []itemgen.Created{created[0], created[2]} {
		item, err := model.NewItem(c.Template.Entry, owner, 1, c.Template)
		require.NoError(t, err)
		require.NoError(t, items.GiveItem(ctx, item))
	}

	// Новый аллокатор после "рестарта": сирота удалён, его entry снова свободен
	restarted := idfactory.New(testIDStart)
	require.NoError(t, restarted.Reconcile(ctx, &idStoreAdapter{repo: templates}))

	st := restarted.Stats()
	assert.Equal(t, testIDStart+2, st.Max)
	assert.Equal(t, 1, st.Free)
	assert.Equal(t, 2, st.Used)
	assert.Equal(t, testIDStart+1, st.Next)

	_, _, err := templates.GetCustom(ctx, testIDStart+1)
	assert.True(t, errors.Is(err, db.ErrTemplateNotFound))

	reused := itemgen.NewService(
		enchant.NewGenerator(enchant.Options{Source: dice.Seeded(3)}),
		naming.NewComposer(naming.Options{Source: dice.Seeded(5)}),
		restarted,
		&templateStoreAdapter{repo: templates},
	)
	c, err := reused.CreateEnchantedItem(ctx, base, nil)
	require.NoError(t, err)
	assert.Equal(t, testIDStart+1, c.Template.Entry)
	assert.Equal(t, testIDStart+3, restarted.Stats().Next)
}

func TestAdapters_PurgeStats(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	templates := db.NewTemplateRepository(pool)
	base := legendaryBlade()
	require.NoError(t, templates.SaveBase(ctx, base))

	service, _ := newPersistentService(t, templates)
	for range 2 {
		_, err := service.CreateEnchantedItem(ctx, base, nil)
		require.NoError(t, err)
	}

	adapter := &idStoreAdapter{repo: templates}

	maxEntry, err := adapter.MaxEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, testIDStart+1, maxEntry)

	entries, err := adapter.EntriesFrom(ctx, testIDStart)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int32{testIDStart, testIDStart + 1}, entries)

	purged, err := adapter.PurgeOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, idfactory.PurgeStats{Instances: 0, Templates: 2}, purged)

	maxEntry, err = adapter.MaxEntry(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxEntry)
}
