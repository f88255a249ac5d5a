// Package termview prints icons to a terminal as true-color blocks.
package termview

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const block = "██"

// ForceTrueColor makes lipgloss emit 24-bit colors even when it cannot
// detect a capable terminal.
func ForceTrueColor() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// Render draws img two cells per pixel. Transparent pixels become spaces.
func Render(img image.Image) string {
	b := img.Bounds()
	styles := make(map[string]lipgloss.Style)
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			col, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				sb.WriteString("  ")
				continue
			}
			hex := col.Hex()
			st, found := styles[hex]
			if !found {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			sb.WriteString(st.Render(block))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
