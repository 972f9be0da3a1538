// Package naming composes display names for enchanted items from stat affixes.
//
// One stat:   "<prefix> <base>"
// Many stats: "<prefix1> ... <prefixN-1> <base> <suffixN>"
// Perfect items get the perfect marker in front of the whole name.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/itemforge/internal/game/dice"
	"github.com/udisondev/itemforge/internal/model"
)

// ErrNoAffixes is returned when a stat has no name fragments configured.
var ErrNoAffixes = errors.New("no affixes for stat")

// Options configures a Composer. Zero fields fall back to defaults.
type Options struct {
	Affixes       map[model.Stat]Affixes
	PerfectPrefix string
	// PrefixesOnly names multi-stat items "<prefix1> ... <prefixN> <base>".
	PrefixesOnly bool
	Source       dice.Source
}

// Composer builds item names. Read-only after construction.
type Composer struct {
	affixes      map[model.Stat]Affixes
	perfect      string
	prefixesOnly bool
	src          dice.Source
}

// NewComposer creates a composer.
func NewComposer(opts Options) *Composer {
	c := &Composer{
		affixes:      opts.Affixes,
		perfect:      opts.PerfectPrefix,
		prefixesOnly: opts.PrefixesOnly,
		src:          opts.Source,
	}
	if c.affixes == nil {
		c.affixes = DefaultAffixes()
	}
	if c.perfect == "" {
		c.perfect = DefaultPerfectPrefix
	}
	if c.src == nil {
		c.src = dice.Global()
	}
	return c
}

// HasAffixes reports whether stat can be named in any position.
func (c *Composer) HasAffixes(stat model.Stat) bool {
	a, ok := c.affixes[stat]
	if !ok || len(a.Prefixes) == 0 {
		return false
	}
	return c.prefixesOnly || len(a.Suffixes) > 0
}

// Compose builds the name of an item carrying stats (in enchantment order).
// An empty stat list returns base unchanged apart from the perfect marker.
func (c *Composer) Compose(base string, stats []model.Stat, perfect bool) (string, error) {
	var b strings.Builder
	if perfect {
		b.WriteString(c.perfect)
		b.WriteByte(' ')
	}

	last := len(stats) - 1
	for i, stat := range stats {
		if i == last && last > 0 && !c.prefixesOnly {
			break
		}
		prefix, err := c.pick(stat, true)
		if err != nil {
			return "", err
		}
		b.WriteString(prefix)
		b.WriteByte(' ')
	}

	b.WriteString(base)

	if last > 0 && !c.prefixesOnly {
		suffix, err := c.pick(stats[last], false)
		if err != nil {
			return "", err
		}
		b.WriteByte(' ')
		b.WriteString(suffix)
	}

	return b.String(), nil
}

func (c *Composer) pick(stat model.Stat, prefix bool) (string, error) {
	a := c.affixes[stat]
	list := a.Suffixes
	if prefix {
		list = a.Prefixes
	}
	if len(list) == 0 {
		kind := "suffix"
		if prefix {
			kind = "prefix"
		}
		return "", fmt.Errorf("%s for %s: %w", kind, stat, ErrNoAffixes)
	}
	return list[c.src.IntN(len(list))], nil
}
