// iconview opens a window showing every generated icon, upscaled, so a
// texture pass can be reviewed without starting the game.
package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/1siamBot/combinedpe-icons/engine/config"
	"github.com/1siamBot/combinedpe-icons/engine/gallery"
	applog "github.com/1siamBot/combinedpe-icons/engine/log"
	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 720

	iconScale  = 4
	cellSize   = 96
	labelChars = cellSize / 6 // debug font glyphs are 6px wide
	scrollStep = 24
)

var bgColor = color.NRGBA{28, 30, 38, 255}

// Viewer implements ebiten.Game.
type Viewer struct {
	dir    string
	log    zerolog.Logger
	icons  []gallery.Icon
	images []*ebiten.Image
	grid   gallery.Grid
}

func NewViewer(dir string, log zerolog.Logger) (*Viewer, error) {
	v := &Viewer{
		dir:  dir,
		log:  log,
		grid: gallery.Grid{Width: ScreenWidth, Cell: cellSize, Margin: 8},
	}
	if err := v.reload(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) reload() error {
	icons, err := gallery.Load(v.dir)
	if err != nil {
		return err
	}
	v.icons = icons
	v.images = make([]*ebiten.Image, len(icons))
	for i, ic := range icons {
		v.images[i] = ebiten.NewImageFromImage(ic.Image)
	}
	v.log.Info().Int("count", len(icons)).Str("dir", v.dir).Msg("icons loaded")
	return nil
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.reload(); err != nil {
			v.log.Error().Err(err).Msg("reload failed")
		}
	}

	_, wheel := ebiten.Wheel()
	v.grid.Scroll -= int(wheel * scrollStep)
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		v.grid.Scroll += scrollStep / 3
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		v.grid.Scroll -= scrollStep / 3
	}
	v.grid.Scroll = v.grid.ClampScroll(len(v.icons), ScreenHeight)
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	iconPx := pixel.IconSize * iconScale
	inset := (cellSize - iconPx) / 2
	for i, img := range v.images {
		p := v.grid.Pos(i)
		if p.Y+cellSize < 0 || p.Y > ScreenHeight {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(iconScale, iconScale)
		op.GeoM.Translate(float64(p.X+inset), float64(p.Y+4))
		screen.DrawImage(img, op)

		label := v.icons[i].Label
		if len(label) > labelChars {
			label = label[:labelChars]
		}
		ebitenutil.DebugPrintAt(screen, label, p.X, p.Y+iconPx+8)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d icons  [wheel/arrows] scroll  [R] reload  [Esc] quit", len(v.icons)))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := applog.Stderr("info")
		log.Fatal().Err(err).Msg("config")
	}
	log := applog.Stderr(cfg.LogLevel)

	dir := flag.String("dir", cfg.OutputDir, "directory of generated icons")
	flag.Parse()

	viewer, err := NewViewer(*dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load icons")
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("CombinedPE item icons")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("viewer")
	}
}
