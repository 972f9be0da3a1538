package model

import "fmt"

// CreatureRank is the classification of a creature (creature_template.rank).
// Higher ranks grant better quality and enchant rolls.
type CreatureRank int32

const (
	RankNormal    CreatureRank = 0
	RankElite     CreatureRank = 1
	RankRareElite CreatureRank = 2
	RankBoss      CreatureRank = 3
	RankRare      CreatureRank = 4
)

var creatureRankNames = map[CreatureRank]string{
	RankNormal:    "NORMAL",
	RankElite:     "ELITE",
	RankRareElite: "RARE_ELITE",
	RankBoss:      "BOSS",
	RankRare:      "RARE",
}

func (r CreatureRank) String() string {
	if name, ok := creatureRankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RANK_%d", int32(r))
}

// ParseCreatureRank parses a rank name such as "BOSS".
func ParseCreatureRank(s string) (CreatureRank, error) {
	return parseName("creature rank", creatureRankNames, s)
}

// UnmarshalText lets config files and JSON requests use rank names.
func (r *CreatureRank) UnmarshalText(text []byte) error {
	v, err := ParseCreatureRank(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// CreatureTemplate holds the creature data the loot pipeline cares about.
type CreatureTemplate struct {
	entry int32
	name  string
	level int32
	rank  CreatureRank
}

// NewCreatureTemplate creates a new creature template.
func NewCreatureTemplate(entry int32, name string, level int32, rank CreatureRank) *CreatureTemplate {
	return &CreatureTemplate{
		entry: entry,
		name:  name,
		level: level,
		rank:  rank,
	}
}

// Entry returns template ID
func (t *CreatureTemplate) Entry() int32 { return t.entry }

// Name returns creature name
func (t *CreatureTemplate) Name() string { return t.name }

// Level returns creature level
func (t *CreatureTemplate) Level() int32 { return t.level }

// Rank returns creature rank
func (t *CreatureTemplate) Rank() CreatureRank { return t.rank }

// Creature is a spawned creature whose death produced loot.
type Creature struct {
	guid     int64
	template *CreatureTemplate
}

// NewCreature creates a creature instance.
func NewCreature(guid int64, template *CreatureTemplate) *Creature {
	return &Creature{guid: guid, template: template}
}

// GUID returns the spawn GUID.
func (c *Creature) GUID() int64 { return c.guid }

// Template returns the creature template.
func (c *Creature) Template() *CreatureTemplate { return c.template }

// Rank returns the creature rank, RankNormal for a nil creature or template.
func (c *Creature) Rank() CreatureRank {
	if c == nil || c.template == nil {
		return RankNormal
	}
	return c.template.rank
}
