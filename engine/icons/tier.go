package icons

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// Tier is a bag progression level.
type Tier string

const (
	Basic     Tier = "basic"
	Advanced  Tier = "advanced"
	Superior  Tier = "superior"
	Masterful Tier = "masterful"
	Ultimate  Tier = "ultimate"
)

// Tiers lists bag tiers from lowest to highest.
var Tiers = []Tier{Basic, Advanced, Superior, Masterful, Ultimate}

// Index returns the tier's position in Tiers, or -1 if unknown.
func (t Tier) Index() int {
	for i, v := range Tiers {
		if v == t {
			return i
		}
	}
	return -1
}

func (t Tier) Known() bool { return t.Index() >= 0 }

// Capacity is the slot count: 108 doubling per tier.
func (t Tier) Capacity() int {
	i := t.Index()
	if i < 0 {
		return 0
	}
	return 108 << i
}

// StackMultiplier is 4^index: 1, 4, 16, 64, 256.
func (t Tier) StackMultiplier() int {
	i := t.Index()
	if i < 0 {
		return 0
	}
	return 1 << (2 * i)
}

func (t Tier) DisplayName() string { return titleCase(string(t)) }

// PouchStyle is one entry of the tier-only bag table.
type PouchStyle struct {
	Tier    Tier
	Primary color.NRGBA
	Accent  color.NRGBA
}

// Pouches lists the tier-only bag icons.
var Pouches = []PouchStyle{
	{Basic, pixel.RGB(139, 69, 19), pixel.RGB(101, 67, 33)},       // brown
	{Advanced, pixel.RGB(65, 105, 225), pixel.RGB(30, 144, 255)},  // royal blue
	{Superior, pixel.RGB(147, 112, 219), pixel.RGB(138, 43, 226)}, // medium purple
	{Masterful, pixel.RGB(255, 215, 0), pixel.RGB(255, 193, 37)},  // gold
	{Ultimate, pixel.RGB(255, 20, 147), pixel.RGB(255, 105, 180)}, // deep pink
}

// UpgradeTier numbers stack upgrades from I to IV.
type UpgradeTier int

const (
	UpgradeI UpgradeTier = iota + 1
	UpgradeII
	UpgradeIII
	UpgradeIV
)

var romans = map[UpgradeTier]string{
	UpgradeI:   "i",
	UpgradeII:  "ii",
	UpgradeIII: "iii",
	UpgradeIV:  "iv",
}

func (u UpgradeTier) Known() bool {
	_, ok := romans[u]
	return ok
}

// Roman returns the lowercase numeral, or "" for an unknown tier.
func (u UpgradeTier) Roman() string { return romans[u] }

// Multiplier is 4^n for a known tier, 1 otherwise.
func (u UpgradeTier) Multiplier() int {
	if !u.Known() {
		return 1
	}
	return 1 << (2 * int(u))
}

func (u UpgradeTier) String() string {
	if !u.Known() {
		return fmt.Sprintf("tier_%d", int(u))
	}
	return "tier_" + u.Roman()
}

// UpgradeStyle is one entry of the stack upgrade table.
type UpgradeStyle struct {
	Tier  UpgradeTier
	Color color.NRGBA
}

// Upgrades lists the stack upgrade icons.
var Upgrades = []UpgradeStyle{
	{UpgradeI, pixel.RGB(100, 200, 100)},   // light green
	{UpgradeII, pixel.RGB(100, 150, 255)},  // light blue
	{UpgradeIII, pixel.RGB(200, 100, 255)}, // light purple
	{UpgradeIV, pixel.RGB(255, 200, 50)},   // gold
}
