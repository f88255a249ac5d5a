package icons

import (
	"image/color"
	"strings"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// Category is a bag's item-type classification.
type Category string

const (
	Materials  Category = "materials"
	Food       Category = "food"
	Ore        Category = "ore"
	Tool       Category = "tool"
	MobDrop    Category = "mob_drop"
	Liquid     Category = "liquid"
	Redstone   Category = "redstone"
	Potion     Category = "potion"
	Enchanting Category = "enchanting"
	Trade      Category = "trade"
	Combat     Category = "combat"
	Adventure  Category = "adventure"
	Treasure   Category = "treasure"
)

// BagType pairs a category with its theme color and tooltip label.
type BagType struct {
	Category Category
	Color    color.NRGBA
	Label    string
}

// BagTypes lists every bag category in generation order.
var BagTypes = []BagType{
	{Materials, pixel.Hex(0x8B4513), "Building Blocks"},    // brown
	{Food, pixel.Hex(0xFF6347), "Food Items"},              // tomato
	{Ore, pixel.Hex(0xC0C0C0), "Ores & Minerals"},          // silver
	{Tool, pixel.Hex(0xFFD700), "Tools & Equipment"},       // gold
	{MobDrop, pixel.Hex(0x8B4513), "Mob Drops"},            // brown
	{Liquid, pixel.Hex(0x1E90FF), "Liquids & Buckets"},     // dodger blue
	{Redstone, pixel.Hex(0xFF0000), "Redstone Components"}, // red
	{Potion, pixel.Hex(0x9370DB), "Potions & Brewing"},     // medium purple
	{Enchanting, pixel.Hex(0x7B68EE), "Enchantments & XP"}, // medium slate blue
	{Trade, pixel.Hex(0x32CD32), "Tradeable Items"},        // lime green
	{Combat, pixel.Hex(0xDC143C), "Combat Gear"},           // crimson
	{Adventure, pixel.Hex(0x228B22), "Exploration Gear"},   // forest green
	{Treasure, pixel.Hex(0xFFD700), "Valuables & Loot"},    // gold
}

// LookupBagType finds the table entry for c.
func LookupBagType(c Category) (BagType, bool) {
	for _, bt := range BagTypes {
		if bt.Category == c {
			return bt, true
		}
	}
	return BagType{}, false
}

// DisplayName turns mob_drop into "Mob Drop".
func (c Category) DisplayName() string {
	return titleCase(string(c))
}

func titleCase(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Fixed accent colors used by ornaments and micro-icons.
var (
	colWhite     = pixel.RGB(255, 255, 255)
	colGold      = pixel.RGB(255, 215, 0)
	colDeepPink  = pixel.RGB(255, 20, 147)
	colPinkGlow  = pixel.RGB(255, 192, 203)
	colEMCCore   = color.NRGBA{255, 255, 255, 200}
	colRed       = pixel.RGB(255, 0, 0)
	colLeaf      = pixel.RGB(0, 128, 0)
	colIron      = pixel.RGB(192, 192, 192)
	colIronDark  = pixel.RGB(160, 160, 160)
	colHandle    = pixel.RGB(139, 69, 19)
	colWater     = pixel.RGB(0, 0, 255)
	colRedGlow   = pixel.RGB(255, 100, 100)
	colPotion    = pixel.RGB(128, 0, 128)
	colCork      = pixel.RGB(64, 64, 64)
	colEmerald   = pixel.RGB(0, 255, 0)
	colEmeraldLo = pixel.RGB(0, 200, 0)
	colShield    = pixel.RGB(100, 100, 100)
	colDiamond   = pixel.RGB(0, 255, 255)
	colDiamondLo = pixel.RGB(0, 200, 200)
)
