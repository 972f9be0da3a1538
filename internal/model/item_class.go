package model

import (
	"fmt"
	"strings"
)

// ItemClass определяет категорию предмета (item_template.class).
type ItemClass int32

const (
	ItemClassConsumable ItemClass = 0
	ItemClassContainer  ItemClass = 1
	ItemClassWeapon     ItemClass = 2
	ItemClassGem        ItemClass = 3
	ItemClassArmor      ItemClass = 4
	ItemClassReagent    ItemClass = 5
	ItemClassProjectile ItemClass = 6
	ItemClassTradeGoods ItemClass = 7
	ItemClassGeneric    ItemClass = 8
	ItemClassRecipe     ItemClass = 9
	ItemClassMoney      ItemClass = 10
	ItemClassQuiver     ItemClass = 11
	ItemClassQuest      ItemClass = 12
	ItemClassKey        ItemClass = 13
	ItemClassPermanent  ItemClass = 14
	ItemClassMisc       ItemClass = 15
	ItemClassGlyph      ItemClass = 16
)

var itemClassNames = map[ItemClass]string{
	ItemClassConsumable: "CONSUMABLE",
	ItemClassContainer:  "CONTAINER",
	ItemClassWeapon:     "WEAPON",
	ItemClassGem:        "GEM",
	ItemClassArmor:      "ARMOR",
	ItemClassReagent:    "REAGENT",
	ItemClassProjectile: "PROJECTILE",
	ItemClassTradeGoods: "TRADE_GOODS",
	ItemClassGeneric:    "GENERIC",
	ItemClassRecipe:     "RECIPE",
	ItemClassMoney:      "MONEY",
	ItemClassQuiver:     "QUIVER",
	ItemClassQuest:      "QUEST",
	ItemClassKey:        "KEY",
	ItemClassPermanent:  "PERMANENT",
	ItemClassMisc:       "MISC",
	ItemClassGlyph:      "GLYPH",
}

func (c ItemClass) String() string {
	if name, ok := itemClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS_%d", int32(c))
}

// ParseItemClass parses a class name such as "ARMOR" (case-insensitive).
func ParseItemClass(s string) (ItemClass, error) {
	return parseName("item class", itemClassNames, s)
}

// UnmarshalText lets config files use class names.
func (c *ItemClass) UnmarshalText(text []byte) error {
	v, err := ParseItemClass(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ItemSubclass is the subclass within an ItemClass. Its meaning depends on the class.
type ItemSubclass int32

// Armor subclasses.
const (
	ArmorMiscellaneous ItemSubclass = 0
	ArmorCloth         ItemSubclass = 1
	ArmorLeather       ItemSubclass = 2
	ArmorMail          ItemSubclass = 3
	ArmorPlate         ItemSubclass = 4
	ArmorBuckler       ItemSubclass = 5
	ArmorShield        ItemSubclass = 6
	ArmorLibram        ItemSubclass = 7
	ArmorIdol          ItemSubclass = 8
	ArmorTotem         ItemSubclass = 9
	ArmorSigil         ItemSubclass = 10
)

// Weapon subclasses.
const (
	WeaponAxe         ItemSubclass = 0
	WeaponAxe2        ItemSubclass = 1
	WeaponBow         ItemSubclass = 2
	WeaponGun         ItemSubclass = 3
	WeaponMace        ItemSubclass = 4
	WeaponMace2       ItemSubclass = 5
	WeaponPolearm     ItemSubclass = 6
	WeaponSword       ItemSubclass = 7
	WeaponSword2      ItemSubclass = 8
	WeaponStaff       ItemSubclass = 10
	WeaponExotic      ItemSubclass = 11
	WeaponExotic2     ItemSubclass = 12
	WeaponFist        ItemSubclass = 13
	WeaponMisc        ItemSubclass = 14
	WeaponDagger      ItemSubclass = 15
	WeaponThrown      ItemSubclass = 16
	WeaponSpear       ItemSubclass = 17
	WeaponCrossbow    ItemSubclass = 18
	WeaponWand        ItemSubclass = 19
	WeaponFishingPole ItemSubclass = 20
)

var armorSubclassNames = map[ItemSubclass]string{
	ArmorMiscellaneous: "MISCELLANEOUS",
	ArmorCloth:         "CLOTH",
	ArmorLeather:       "LEATHER",
	ArmorMail:          "MAIL",
	ArmorPlate:         "PLATE",
	ArmorBuckler:       "BUCKLER",
	ArmorShield:        "SHIELD",
	ArmorLibram:        "LIBRAM",
	ArmorIdol:          "IDOL",
	ArmorTotem:         "TOTEM",
	ArmorSigil:         "SIGIL",
}

var weaponSubclassNames = map[ItemSubclass]string{
	WeaponAxe:         "AXE",
	WeaponAxe2:        "AXE2",
	WeaponBow:         "BOW",
	WeaponGun:         "GUN",
	WeaponMace:        "MACE",
	WeaponMace2:       "MACE2",
	WeaponPolearm:     "POLEARM",
	WeaponSword:       "SWORD",
	WeaponSword2:      "SWORD2",
	WeaponStaff:       "STAFF",
	WeaponExotic:      "EXOTIC",
	WeaponExotic2:     "EXOTIC2",
	WeaponFist:        "FIST",
	WeaponMisc:        "MISC",
	WeaponDagger:      "DAGGER",
	WeaponThrown:      "THROWN",
	WeaponSpear:       "SPEAR",
	WeaponCrossbow:    "CROSSBOW",
	WeaponWand:        "WAND",
	WeaponFishingPole: "FISHING_POLE",
}

func subclassNames(class ItemClass) map[ItemSubclass]string {
	switch class {
	case ItemClassArmor:
		return armorSubclassNames
	case ItemClassWeapon:
		return weaponSubclassNames
	default:
		return nil
	}
}

// Name returns the subclass name in the context of class.
func (s ItemSubclass) Name(class ItemClass) string {
	if name, ok := subclassNames(class)[s]; ok {
		return name
	}
	return fmt.Sprintf("SUBCLASS_%d", int32(s))
}

// ParseSubclass parses a subclass name for the given class.
// Numeric values are accepted for classes without named subclasses.
func ParseSubclass(class ItemClass, s string) (ItemSubclass, error) {
	names := subclassNames(class)
	if names == nil {
		var n int32
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return 0, fmt.Errorf("unknown subclass %q for class %s", s, class)
		}
		return ItemSubclass(n), nil
	}
	v, err := parseName("subclass", names, s)
	if err != nil {
		return 0, fmt.Errorf("class %s: %w", class, err)
	}
	return v, nil
}

// ItemClassPair: class/subclass pair of a concrete item.
type ItemClassPair struct {
	Class    ItemClass
	Subclass ItemSubclass
}

func (p ItemClassPair) String() string {
	return p.Class.String() + "/" + p.Subclass.Name(p.Class)
}

// Quality is the rarity tier of an item.
type Quality int32

const (
	QualityPoor      Quality = 0 // grey
	QualityNormal    Quality = 1 // white
	QualityUncommon  Quality = 2 // green
	QualityRare      Quality = 3 // blue
	QualityEpic      Quality = 4 // purple
	QualityLegendary Quality = 5 // orange
	QualityArtifact  Quality = 6
	QualityHeirloom  Quality = 7
)

var qualityNames = map[Quality]string{
	QualityPoor:      "POOR",
	QualityNormal:    "NORMAL",
	QualityUncommon:  "UNCOMMON",
	QualityRare:      "RARE",
	QualityEpic:      "EPIC",
	QualityLegendary: "LEGENDARY",
	QualityArtifact:  "ARTIFACT",
	QualityHeirloom:  "HEIRLOOM",
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("QUALITY_%d", int32(q))
}

// ParseQuality parses a quality name such as "RARE".
func ParseQuality(s string) (Quality, error) {
	return parseName("quality", qualityNames, s)
}

// UnmarshalText lets config files use quality names.
func (q *Quality) UnmarshalText(text []byte) error {
	v, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func parseName[T ~int32](kind string, names map[T]string, s string) (T, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for v, name := range names {
		if name == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
