package itemgen

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/game/dice/dicetest"
	"github.com/udisondev/itemforge/internal/game/enchant"
	"github.com/udisondev/itemforge/internal/game/naming"
	"github.com/udisondev/itemforge/internal/idfactory"
	"github.com/udisondev/itemforge/internal/model"
)

const idStart int32 = 100000

type memStore struct {
	mu      sync.Mutex
	saved   []*model.ItemTemplate
	perfect map[int32]bool
	err     error
}

func (s *memStore) SaveTemplate(_ context.Context, tmpl *model.ItemTemplate, perfect bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.perfect == nil {
		s.perfect = make(map[int32]bool)
	}
	s.saved = append(s.saved, tmpl)
	s.perfect[tmpl.Entry] = perfect
	return nil
}

func sword(quality model.Quality) *model.ItemTemplate {
	return &model.ItemTemplate{
		Entry:     25,
		Name:      "Sword",
		Class:     model.ItemClassWeapon,
		Subclass:  model.WeaponSword,
		Quality:   quality,
		ItemLevel: 50,
		Material:  1,
	}
}

func boss() *model.Creature {
	return model.NewCreature(1, model.NewCreatureTemplate(500, "Hogger", 11, model.RankBoss))
}

func newService(genDice, nameDice dice.Source, store TemplateStore) (*Service, *idfactory.Factory) {
	ids := idfactory.New(idStart)
	gen := enchant.NewGenerator(enchant.Options{Source: genDice})
	names := naming.NewComposer(naming.Options{Source: nameDice})
	return NewService(gen, names, ids, store), ids
}

func TestCreateEnchantedItem_RareSword(t *testing.T) {
	t.Parallel()

	// quality roll 0 (no upgrade), then variance/count/cut/picks
	genDice := dicetest.NewDice(0, 40, 60, 75, 10, 3, 8).WithFloats(0.5)
	store := &memStore{}
	svc, ids := newService(genDice, dicetest.NewDice(1, 2), store)

	base := sword(model.QualityRare)
	created, err := svc.CreateEnchantedItem(context.Background(), base, nil)
	require.NoError(t, err)

	tmpl := created.Template
	assert.Equal(t, idStart, tmpl.Entry)
	assert.Equal(t, int32(25), tmpl.BaseEntry)
	assert.Equal(t, "Mighty Sword of the Slayer", tmpl.Name)
	assert.Equal(t, model.QualityRare, tmpl.Quality)
	assert.Equal(t, int32(1), tmpl.Material)
	assert.False(t, created.Perfect)
	assert.False(t, created.Upgraded())
	assert.NotEmpty(t, created.GenID)
	assert.Equal(t, []model.CustomStat{
		{Stat: model.StatStrength, Value: 23},
		{Stat: model.StatCritRating, Value: 23},
	}, created.Enchantments)
	assert.Equal(t, int32(2), tmpl.StatsCount)

	// base untouched
	assert.Equal(t, "Sword", base.Name)
	assert.Zero(t, base.StatsCount)

	require.Len(t, store.saved, 1)
	assert.Same(t, tmpl, store.saved[0])
	assert.False(t, store.perfect[idStart])
	assert.Equal(t, idStart+1, ids.PeekNextID())
	assert.Zero(t, genDice.Remaining())
}

func TestCreateEnchantedItem_PerfectLegendary(t *testing.T) {
	t.Parallel()

	// Legendary skips the quality roll
	genDice := dicetest.NewDice(40, 0, 45, 90, 0, 0, 0).WithFloats(0.25, 0.75)
	store := &memStore{}
	svc, _ := newService(genDice, dicetest.NewDice(1, 0, 1), store)

	created, err := svc.CreateEnchantedItem(context.Background(), sword(model.QualityLegendary), nil)
	require.NoError(t, err)

	assert.True(t, created.Perfect)
	assert.Equal(t, "Perfect Vital Energized Sword of the Fox", created.Template.Name)
	assert.True(t, store.perfect[created.Template.Entry])
}

func TestCreateEnchantedItem_BossUpgradesQuality(t *testing.T) {
	t.Parallel()

	// 70*1.35 = 95 >= 85 -> RARE; 0 stops. Boss enchant bonus +50 keeps the count at 2.
	genDice := dicetest.NewDice(70, 0, 40, 60, 75, 10, 3, 8).WithFloats(0.5)
	svc, _ := newService(genDice, dicetest.NewDice(0, 0), &memStore{})

	created, err := svc.CreateEnchantedItem(context.Background(), sword(model.QualityUncommon), boss())
	require.NoError(t, err)

	assert.True(t, created.Upgraded())
	assert.Equal(t, model.QualityUncommon, created.BaseQuality)
	assert.Equal(t, model.QualityRare, created.Template.Quality)
	assert.Len(t, created.Enchantments, 2)
	assert.Equal(t, "Powerful Sword of the Assassin", created.Template.Name)
}

func TestCreateEnchantedItem_PartialApply(t *testing.T) {
	t.Parallel()

	base := sword(model.QualityLegendary)
	// nine slots taken by stats the generator never rolls
	for _, s := range []model.Stat{
		model.StatDefenseSkillRating, model.StatDodgeRating, model.StatParryRating,
		model.StatHitRating, model.StatHasteRating, model.StatExpertiseRating,
		model.StatAttackPower, model.StatSpellPower, model.StatResilienceRating,
	} {
		require.True(t, base.AddOrUpdateStat(model.CustomStat{Stat: s, Value: 1}))
	}

	genDice := dicetest.NewDice(40, 0, 45, 90, 0, 0, 0).WithFloats(0.25, 0.75)
	svc, _ := newService(genDice, dicetest.NewDice(1), &memStore{})

	created, err := svc.CreateEnchantedItem(context.Background(), base, nil)
	require.NoError(t, err)

	assert.Equal(t, []model.CustomStat{{Stat: model.StatHealth, Value: 280}}, created.Enchantments)
	assert.Equal(t, "Perfect Vital Sword", created.Template.Name)
	assert.Equal(t, int32(model.MaxItemStats), created.Template.StatsCount)
	assert.Equal(t, int32(9), base.StatsCount)
}

func TestCreateEnchantedItem_Failures(t *testing.T) {
	t.Parallel()

	full := sword(model.QualityLegendary)
	for s := range model.MaxItemStats {
		full.Stats[s] = model.StatSlot{Type: model.StatSpellPower, Value: 1}
	}
	full.StatsCount = model.MaxItemStats

	potion := &model.ItemTemplate{Entry: 159, Name: "Water", Class: model.ItemClassConsumable, ItemLevel: 5}

	tests := []struct {
		name    string
		base    *model.ItemTemplate
		dice    *dicetest.Dice
		store   *memStore
		wantErr error
	}{
		{
			name:    "not equipment",
			base:    potion,
			dice:    dicetest.NewDice(),
			store:   &memStore{},
			wantErr: ErrNotEnchantable,
		},
		{
			name: "no enchantments rolled",
			base: sword(model.QualityNormal),
			// no upgrade; variance; count roll 0 < 90
			dice:    dicetest.NewDice(0, 20, 0),
			store:   &memStore{},
			wantErr: enchant.ErrNoEnchantments,
		},
		{
			name:    "no free slots",
			base:    full,
			dice:    dicetest.NewDice(40, 0, 45, 90, 0, 0, 0).WithFloats(0.25, 0.75),
			store:   &memStore{},
			wantErr: ErrNothingApplied,
		},
		{
			name:    "store failure",
			base:    sword(model.QualityLegendary),
			dice:    dicetest.NewDice(40, 0, 45, 90, 0, 0, 0).WithFloats(0.25, 0.75),
			store:   &memStore{err: errors.New("connection reset")},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, ids := newService(tt.dice, dicetest.NewDice(0, 0, 0), tt.store)

			_, err := svc.CreateEnchantedItem(context.Background(), tt.base, nil)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}

			// failed attempts do not consume an entry
			assert.Equal(t, idStart, ids.PeekNextID())
			assert.Empty(t, tt.store.saved)
		})
	}
}

func TestCreateEnchantedItem_ConcurrentEntriesAreUnique(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc, ids := newService(dice.Seeded(7), dice.Seeded(8), store)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateEnchantedItem(context.Background(), sword(model.QualityLegendary), nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	entries := make([]int32, 0, n)
	for _, tmpl := range store.saved {
		entries = append(entries, tmpl.Entry)
	}
	slices.Sort(entries)
	for i, e := range entries {
		assert.Equal(t, idStart+int32(i), e)
	}
	assert.Equal(t, n, ids.Stats().Used)
}

func TestService_Reclaim(t *testing.T) {
	t.Parallel()

	genDice := dicetest.NewDice(40, 0, 45, 90, 0, 0, 0).WithFloats(0.25, 0.75)
	svc, ids := newService(genDice, dicetest.NewDice(0, 0, 0), &memStore{})

	created, err := svc.CreateEnchantedItem(context.Background(), sword(model.QualityLegendary), nil)
	require.NoError(t, err)
	require.Equal(t, idStart+1, ids.PeekNextID())

	require.NoError(t, svc.Reclaim(created.Template.Entry))
	assert.Equal(t, idStart, ids.PeekNextID())

	err = svc.Reclaim(idStart - 1)
	assert.True(t, errors.Is(err, idfactory.ErrBelowStart))
}
