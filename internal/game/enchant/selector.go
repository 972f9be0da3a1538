package enchant

import (
	"slices"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/game/stats"
	"github.com/udisondev/itemforge/internal/model"
)

// PickStats draws up to count stats valid for pair from the registry.
//
// Each draw is uniform over the remaining pool. Stats invalid for pair are
// dropped from the pool; valid ones are accepted and, unless allowRepeats,
// dropped as well. Without repeats, asking for more stats than the registry
// holds returns nil at once. The result may be shorter than count when the
// pool runs dry.
func PickStats(src dice.Source, reg *stats.Registry, count int, pair model.ItemClassPair, allowRepeats bool) []model.Stat {
	if count <= 0 {
		return nil
	}
	pool := reg.StatList()
	if !allowRepeats && count > len(pool) {
		return nil
	}

	picked := make([]model.Stat, 0, count)
	for len(picked) < count && len(pool) > 0 {
		idx := src.IntN(len(pool))
		stat := pool[idx]

		settings, ok := reg.SettingsFor(stat)
		if !ok || !settings.ValidFor(pair) {
			pool = removeAt(pool, idx)
			continue
		}

		picked = append(picked, stat)
		if !allowRepeats {
			pool = removeAt(pool, idx)
		}
	}
	return picked
}

func removeAt(pool []model.Stat, i int) []model.Stat {
	return slices.Delete(pool, i, i+1)
}
