package assets

import (
	"image/color"
	"strings"

	"github.com/1siamBot/combinedpe-icons/engine/icons"
	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// Job set names, used for preview and manifest filenames.
const (
	SetBags     = "bags"
	SetTextures = "textures"
)

// Job is one icon to render and write, with the item stats the mod shows
// for it. Stats that do not apply are zero.
type Job struct {
	File            string
	Category        string
	Tier            string
	Name            string
	Label           string // tooltip line
	Color           color.NRGBA
	Capacity        int
	StackMultiplier int
	Multiplier      int // stack upgrades only
	Render          func() *pixel.Canvas
}

// BagJob builds the job for one category and tier, or false if either is
// not in the tables.
func BagJob(c icons.Category, t icons.Tier) (Job, bool) {
	bt, ok := icons.LookupBagType(c)
	if !ok || !t.Known() {
		return Job{}, false
	}
	return Job{
		File:            icons.BagFilename(t, c),
		Category:        string(c),
		Tier:            string(t),
		Name:            t.DisplayName() + " " + c.DisplayName() + " Bag",
		Label:           bt.Label,
		Color:           bt.Color,
		Capacity:        t.Capacity(),
		StackMultiplier: t.StackMultiplier(),
		Render: func() *pixel.Canvas {
			return icons.RenderBag(c, t, bt.Color)
		},
	}, true
}

// BagJobs is every category × tier bag followed by the workbench.
func BagJobs() []Job {
	jobs := make([]Job, 0, len(icons.BagTypes)*len(icons.Tiers)+1)
	for _, bt := range icons.BagTypes {
		for _, tier := range icons.Tiers {
			if job, ok := BagJob(bt.Category, tier); ok {
				jobs = append(jobs, job)
			}
		}
	}
	jobs = append(jobs, Job{
		File:   icons.WorkbenchFilename,
		Name:   "Enhanced Workbench",
		Color:  icons.WorkbenchColor,
		Render: icons.RenderWorkbench,
	})
	return jobs
}

// TextureJobs is the tier-only bags followed by the stack upgrades.
func TextureJobs() []Job {
	jobs := make([]Job, 0, len(icons.Pouches)+len(icons.Upgrades))
	for _, p := range icons.Pouches {
		jobs = append(jobs, Job{
			File:            icons.PouchFilename(p.Tier),
			Tier:            string(p.Tier),
			Name:            p.Tier.DisplayName() + " Bag",
			Color:           p.Primary,
			Capacity:        p.Tier.Capacity(),
			StackMultiplier: p.Tier.StackMultiplier(),
			Render: func() *pixel.Canvas {
				return icons.RenderPouch(p.Primary, p.Accent, p.Tier)
			},
		})
	}
	for _, u := range icons.Upgrades {
		jobs = append(jobs, Job{
			File:       icons.UpgradeFilename(u.Tier),
			Tier:       u.Tier.String(),
			Name:       "Stack Upgrade " + strings.ToUpper(u.Tier.Roman()),
			Color:      u.Color,
			Multiplier: u.Tier.Multiplier(),
			Render: func() *pixel.Canvas {
				return icons.RenderStackUpgrade(u.Tier, u.Color)
			},
		})
	}
	return jobs
}
