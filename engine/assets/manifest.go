package assets

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

// Manifest lists the icons of one job set.
type Manifest struct {
	Set   string  `toml:"set"`
	Count int     `toml:"count"`
	Icons []Entry `toml:"icons"`
}

// Entry describes a single icon file.
type Entry struct {
	File            string `toml:"file"`
	Name            string `toml:"name"`
	Label           string `toml:"label,omitempty"`
	Category        string `toml:"category,omitempty"`
	Tier            string `toml:"tier,omitempty"`
	Color           string `toml:"color"`
	Capacity        int    `toml:"capacity,omitempty"`
	StackMultiplier int    `toml:"stack_multiplier,omitempty"`
	Multiplier      int    `toml:"multiplier,omitempty"`
}

func ManifestFilename(set string) string { return "icons_" + set + ".toml" }

// NewManifest builds the manifest for written results.
func NewManifest(set string, results []Result) Manifest {
	m := Manifest{Set: set, Count: len(results)}
	for _, r := range results {
		m.Icons = append(m.Icons, Entry{
			File:            r.Job.File,
			Name:            r.Job.Name,
			Label:           r.Job.Label,
			Category:        r.Job.Category,
			Tier:            r.Job.Tier,
			Color:           pixel.HexString(r.Job.Color),
			Capacity:        r.Job.Capacity,
			StackMultiplier: r.Job.StackMultiplier,
			Multiplier:      r.Job.Multiplier,
		})
	}
	return m
}

// WriteManifest encodes m as TOML at path.
func WriteManifest(path string, m Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(m); err != nil {
		f.Close()
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return m, nil
}
