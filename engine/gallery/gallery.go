// Package gallery loads generated icons from disk and lays them out for the
// review window.
package gallery

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/1siamBot/combinedpe-icons/engine/assets"
)

// Icon is a decoded texture and the label to show under it.
type Icon struct {
	File  string
	Label string
	Image image.Image
}

// Load reads every PNG in dir, sorted by filename. Preview sheets are
// skipped. Labels come from any icon manifests found in dir, falling back to
// the filename. A missing manifest is fine; an unreadable one is an error.
func Load(dir string) ([]Icon, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	labels := make(map[string]string)
	for _, set := range []string{assets.SetBags, assets.SetTextures} {
		m, err := assets.ReadManifest(filepath.Join(dir, assets.ManifestFilename(set)))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, e := range m.Icons {
			labels[e.File] = e.Name
		}
	}

	var icons []Icon
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".png" || strings.HasPrefix(name, "preview_") {
			continue
		}
		img, err := decode(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		label := labels[name]
		if label == "" {
			label = strings.TrimSuffix(name, ".png")
		}
		icons = append(icons, Icon{File: name, Label: label, Image: img})
	}
	sort.Slice(icons, func(i, j int) bool { return icons[i].File < icons[j].File })
	return icons, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Grid places fixed-size cells left to right, top to bottom.
type Grid struct {
	Width  int // viewport width in pixels
	Cell   int // cell edge in pixels
	Margin int
	Scroll int // vertical scroll offset in pixels
}

// Columns is how many cells fit across the viewport, at least one.
func (g Grid) Columns() int {
	n := (g.Width - g.Margin) / (g.Cell + g.Margin)
	if n < 1 {
		return 1
	}
	return n
}

// Pos returns the top-left corner of cell i.
func (g Grid) Pos(i int) image.Point {
	cols := g.Columns()
	return image.Pt(
		g.Margin+(i%cols)*(g.Cell+g.Margin),
		g.Margin+(i/cols)*(g.Cell+g.Margin)-g.Scroll,
	)
}

// Height is the total content height for n cells.
func (g Grid) Height(n int) int {
	rows := (n + g.Columns() - 1) / g.Columns()
	return g.Margin + rows*(g.Cell+g.Margin)
}

// ClampScroll keeps Scroll within [0, content - viewport].
func (g Grid) ClampScroll(n, viewport int) int {
	limit := g.Height(n) - viewport
	if limit < 0 {
		limit = 0
	}
	switch {
	case g.Scroll < 0:
		return 0
	case g.Scroll > limit:
		return limit
	}
	return g.Scroll
}
