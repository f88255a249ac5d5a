package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// SheetColumns matches the number of bag tiers so each sheet row is one
// category.
const SheetColumns = 5

const sheetPad = 4

var sheetBG = color.NRGBA{40, 40, 48, 255}

func PreviewFilename(set string) string { return "preview_" + set + ".png" }

// ContactSheet lays icons out in a grid, each upscaled by scale with
// nearest-neighbor so pixels stay crisp.
func ContactSheet(icons []*pixel.Canvas, columns, scale int) *image.NRGBA {
	if columns < 1 {
		columns = 1
	}
	if scale < 1 {
		scale = 1
	}
	rows := (len(icons) + columns - 1) / columns
	cell := pixel.IconSize*scale + sheetPad
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*cell+sheetPad, rows*cell+sheetPad))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBG), image.Point{}, draw.Src)

	for i, cv := range icons {
		x := sheetPad + (i%columns)*cell
		y := sheetPad + (i/columns)*cell
		src := cv.Bounds()
		dst := image.Rect(x, y, x+src.Dx()*scale, y+src.Dy()*scale)
		xdraw.NearestNeighbor.Scale(sheet, dst, cv.Image(), src, xdraw.Over, nil)
	}
	return sheet
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
