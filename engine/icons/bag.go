package icons

import (
	"fmt"
	"image/color"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// BagFilename is the texture name for a (tier, category) bag.
func BagFilename(t Tier, c Category) string {
	return fmt.Sprintf("%s_%s_bag.png", t, c)
}

// RenderBag composes a categorized bag icon: pouch body, tier ornament, then
// the category's corner micro-icon. An unknown tier or category skips its
// layer and leaves the rest intact.
func RenderBag(c Category, t Tier, primary color.NRGBA) *pixel.Canvas {
	cv := pixel.NewIcon()
	s := newShades(primary)
	drawBagBody(cv, s)
	drawTierOrnament(cv, t, s)
	drawCategoryIcon(cv, c)
	return cv
}

type shades struct {
	base, light, dark, veryDark color.NRGBA
}

func newShades(base color.NRGBA) shades {
	return shades{
		base:     base,
		light:    pixel.Lighten(base, pixel.LightFactor),
		dark:     pixel.Darken(base, pixel.DarkFactor),
		veryDark: pixel.Darken(base, pixel.VeryDarkFactor),
	}
}

// drawBagBody draws the rounded pouch with a shaded left side, lit right side
// and a dark mouth and bottom.
func drawBagBody(cv *pixel.Canvas, s shades) {
	cv.Rect(4, 3, 11, 13, s.base)
	cv.Rect(3, 5, 12, 11, s.base)

	cv.Rect(5, 2, 10, 3, s.dark)

	for y := 5; y <= 11; y++ {
		cv.Set(3, y, s.dark)
		cv.Set(12, y, s.light)
	}

	cv.Rect(4, 12, 11, 13, s.dark)

	cv.Set(4, 4, s.dark)
	cv.Set(11, 4, s.light)
	cv.Set(4, 12, s.veryDark)
	cv.Set(11, 12, s.dark)
}

func drawTierOrnament(cv *pixel.Canvas, t Tier, s shades) {
	switch t {
	case Basic:
		// plain strap
		cv.Rect(6, 1, 9, 2, s.veryDark)
		cv.Line(6, 2, 6, 4, s.veryDark)
		cv.Line(9, 2, 9, 4, s.veryDark)

	case Advanced:
		cv.Rect(6, 0, 9, 2, s.veryDark)
		cv.Line(6, 2, 6, 5, s.veryDark)
		cv.Line(9, 2, 9, 5, s.veryDark)
		// chest
		cv.Rect(6, 7, 9, 9, s.light)
		cv.Line(7, 8, 8, 8, s.dark)

	case Superior:
		cv.Rect(6, 0, 9, 2, s.light)
		cv.Line(6, 2, 5, 5, s.light)
		cv.Line(9, 2, 10, 5, s.light)
		// diamond
		cv.Set(7, 6, colWhite)
		cv.Set(8, 7, colWhite)
		cv.Set(7, 8, colWhite)
		cv.Set(6, 7, colWhite)

	case Masterful:
		cv.Rect(6, 0, 9, 2, colGold)
		cv.Line(5, 2, 5, 6, colGold)
		cv.Line(10, 2, 10, 6, colGold)
		// checkered crafting grid
		for x := 6; x <= 8; x++ {
			for y := 7; y <= 9; y++ {
				if (x+y)%2 == 0 {
					cv.Set(x, y, colGold)
				}
			}
		}

	case Ultimate:
		cv.Rect(6, 0, 9, 2, colDeepPink)
		cv.Line(5, 2, 5, 6, colDeepPink)
		cv.Line(10, 2, 10, 6, colDeepPink)
		// EMC sparks
		cv.Set(5, 7, colPinkGlow)
		cv.Set(10, 7, colPinkGlow)
		cv.Set(7, 10, colPinkGlow)
		cv.Set(8, 10, colPinkGlow)
		cv.Rect(7, 7, 8, 8, colEMCCore)
	}
}

// drawCategoryIcon stamps the bottom-right hint. Materials has none.
func drawCategoryIcon(cv *pixel.Canvas, c Category) {
	switch c {
	case Food:
		// apple
		cv.Rect(10, 11, 11, 12, colRed)
		cv.Set(10, 10, colLeaf)

	case Ore:
		// pickaxe tip
		cv.Line(10, 10, 11, 11, colIron)
		cv.Set(11, 10, colIronDark)

	case Tool:
		// sword
		cv.Line(11, 9, 11, 12, colIron)
		cv.Set(11, 8, colHandle)

	case MobDrop:
		// bone
		cv.Line(10, 11, 12, 11, colWhite)
		cv.Set(10, 10, colWhite)
		cv.Set(12, 12, colWhite)

	case Liquid:
		// drop
		cv.Set(11, 10, colWater)
		cv.Line(10, 11, 12, 11, colWater)
		cv.Set(11, 12, colWater)

	case Redstone:
		// torch
		cv.Set(11, 12, colHandle)
		cv.Set(11, 11, colRed)
		cv.Set(11, 10, colRedGlow)

	case Potion:
		cv.Line(11, 10, 11, 12, colPotion)
		cv.Set(11, 9, colCork)

	case Enchanting:
		// book with gold spine
		cv.Rect(10, 10, 12, 12, colHandle)
		cv.Line(11, 10, 11, 12, colGold)

	case Trade:
		// emerald
		cv.Set(11, 10, colEmerald)
		cv.Line(10, 11, 12, 11, colEmerald)
		cv.Set(11, 12, colEmeraldLo)

	case Combat:
		// sword over shield
		cv.Line(10, 10, 12, 12, colIron)
		cv.Rect(11, 11, 12, 12, colShield)

	case Adventure:
		// compass
		cv.Rect(10, 10, 12, 12, colHandle)
		cv.Set(11, 11, colRed)

	case Treasure:
		// diamond
		cv.Set(11, 10, colDiamond)
		cv.Line(10, 11, 12, 11, colDiamond)
		cv.Set(11, 12, colDiamondLo)
	}
}
