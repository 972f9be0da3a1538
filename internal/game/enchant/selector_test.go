package enchant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/game/dice/dicetest"
	"github.com/udisondev/itemforge/internal/game/stats"
	"github.com/udisondev/itemforge/internal/model"
)

var (
	swordPair = model.ItemClassPair{Class: model.ItemClassWeapon, Subclass: model.WeaponSword}
	platePair = model.ItemClassPair{Class: model.ItemClassArmor, Subclass: model.ArmorPlate}
)

func TestPickStats_NoDuplicates(t *testing.T) {
	t.Parallel()

	reg := stats.NewDefaultRegistry()
	src := dice.Seeded(3)

	for count := 1; count <= reg.Len(); count++ {
		for range 50 {
			picked := PickStats(src, reg, count, swordPair, false)
			assert.LessOrEqual(t, len(picked), count)

			seen := make(map[model.Stat]bool)
			for _, s := range picked {
				assert.False(t, seen[s], "duplicate %s", s)
				seen[s] = true

				settings, ok := reg.SettingsFor(s)
				require.True(t, ok)
				assert.True(t, settings.ValidFor(swordPair))
			}
		}
	}
}

func TestPickStats_CountAbovePool(t *testing.T) {
	t.Parallel()

	reg := stats.NewDefaultRegistry()
	src := dicetest.NewDice(0, 0, 0)

	assert.Nil(t, PickStats(src, reg, reg.Len()+1, swordPair, false))
	assert.Equal(t, 3, src.Remaining(), "fails before any draw")
}

func TestPickStats_InvalidStatsDrainPool(t *testing.T) {
	t.Parallel()

	// Plate armor: block rating, block value and crit are invalid.
	reg := stats.NewDefaultRegistry()
	picked := PickStats(dice.Seeded(11), reg, reg.Len(), platePair, false)

	assert.Len(t, picked, reg.Len()-3)
	assert.NotContains(t, picked, model.StatCritRating)
	assert.NotContains(t, picked, model.StatBlockRating)
	assert.NotContains(t, picked, model.StatBlockValue)
}

func TestPickStats_Scripted(t *testing.T) {
	t.Parallel()

	reg := stats.NewDefaultRegistry()
	// Pool order: HEALTH MANA AGILITY STRENGTH INTELLECT SPIRIT STAMINA BLOCK_RATING BLOCK_VALUE CRIT_RATING.
	// Draw 3 -> STRENGTH; pool shrinks to 9, draw 8 -> CRIT_RATING.
	src := dicetest.NewDice(3, 8)

	picked := PickStats(src, reg, 2, swordPair, false)
	assert.Equal(t, []model.Stat{model.StatStrength, model.StatCritRating}, picked)
}

func TestPickStats_SkipsInvalidAndRedraws(t *testing.T) {
	t.Parallel()

	reg := stats.NewDefaultRegistry()
	// Draw 9 -> CRIT_RATING (invalid on plate, removed); pool of 9, draw 0 -> HEALTH.
	src := dicetest.NewDice(9, 0)

	picked := PickStats(src, reg, 1, platePair, false)
	assert.Equal(t, []model.Stat{model.StatHealth}, picked)
}

func TestPickStats_Repeats(t *testing.T) {
	t.Parallel()

	reg := stats.NewRegistry()
	reg.Populate([]model.Stat{model.StatStamina})

	picked := PickStats(dicetest.NewDice(), reg, 3, swordPair, true)
	assert.Equal(t, []model.Stat{model.StatStamina, model.StatStamina, model.StatStamina}, picked)

	assert.Nil(t, PickStats(dicetest.NewDice(), reg, 3, swordPair, false))
}

func TestPickStats_ZeroCount(t *testing.T) {
	t.Parallel()
	assert.Nil(t, PickStats(dice.Global(), stats.NewDefaultRegistry(), 0, swordPair, false))
}
