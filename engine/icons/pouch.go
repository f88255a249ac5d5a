package icons

import (
	"image/color"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

var (
	colPouchOutline = pixel.RGB(74, 47, 24)
	colStackOutline = pixel.RGB(60, 60, 60)
	colTierDot      = pixel.RGB(255, 255, 100)
)

// PouchFilename is the texture name for a tier-only bag.
func PouchFilename(t Tier) string { return string(t) + "_bag.png" }

// UpgradeFilename is the texture name for a stack upgrade.
func UpgradeFilename(u UpgradeTier) string {
	if !u.Known() {
		return "stack_upgrade_" + u.String() + ".png"
	}
	return "stack_upgrade_" + u.Roman() + ".png"
}

// RenderPouch draws the outlined tier bag: a body fading darker toward the
// bottom, an accent stripe, and a row of tier marks.
func RenderPouch(primary, accent color.NRGBA, t Tier) *pixel.Canvas {
	cv := pixel.NewIcon()

	for x := 5; x <= 10; x++ {
		cv.Set(x, 2, colPouchOutline)
	}
	cv.Set(4, 3, colPouchOutline)
	cv.Set(11, 3, colPouchOutline)
	for y := 4; y <= 12; y++ {
		cv.Set(3, y, colPouchOutline)
		cv.Set(12, y, colPouchOutline)
	}
	for x := 4; x <= 11; x++ {
		cv.Set(x, 13, colPouchOutline)
	}
	for _, x := range []int{4, 5, 10, 11} {
		cv.Set(x, 12, colPouchOutline)
	}

	for y := 4; y <= 11; y++ {
		f := 1.0 - float64(y-4)*0.1
		for x := 4; x <= 11; x++ {
			if cv.At(x, y) == pixel.Transparent {
				cv.Set(x, y, opaque(pixel.Darken(primary, f)))
			}
		}
	}

	for x := 5; x <= 10; x++ {
		cv.Set(x, 7, accent)
	}

	switch t {
	case Ultimate:
		for x := 6; x <= 9; x++ {
			cv.Set(x, 9, accent)
		}
	case Masterful:
		cv.Set(6, 9, accent)
		cv.Set(8, 9, accent)
		cv.Set(9, 9, accent)
	case Superior:
		cv.Set(7, 9, accent)
		cv.Set(8, 9, accent)
	case Advanced:
		cv.Set(7, 9, accent)
	}

	mouth := pixel.Darken(colPouchOutline, 0.5)
	for x := 5; x <= 10; x++ {
		cv.Set(x, 3, mouth)
	}
	return cv
}

// RenderStackUpgrade draws three stacked squares with one indicator dot per
// upgrade level. An unknown tier gets no dots.
func RenderStackUpgrade(u UpgradeTier, c color.NRGBA) *pixel.Canvas {
	cv := pixel.NewIcon()

	// bottom square
	for x := 3; x <= 12; x++ {
		cv.Set(x, 11, colStackOutline)
		cv.Set(x, 12, colStackOutline)
	}
	for y := 7; y <= 12; y++ {
		cv.Set(3, y, colStackOutline)
		cv.Set(12, y, colStackOutline)
	}
	cv.Rect(4, 8, 11, 11, opaque(pixel.Darken(c, pixel.DarkFactor)))

	// middle square
	for x := 5; x <= 10; x++ {
		cv.Set(x, 5, colStackOutline)
		cv.Set(x, 6, colStackOutline)
	}
	for y := 4; y <= 6; y++ {
		cv.Set(5, y, colStackOutline)
		cv.Set(10, y, colStackOutline)
	}
	cv.Rect(6, 5, 9, 5, c)

	// top square
	cv.Set(7, 3, colStackOutline)
	cv.Set(8, 3, colStackOutline)
	cv.Set(7, 2, c)
	cv.Set(8, 2, c)

	if u.Known() {
		for i := 0; i < int(u); i++ {
			cv.Set(7+i, 9, colTierDot)
		}
	}
	return cv
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
