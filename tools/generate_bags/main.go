// generate_bags draws every bag texture (13 categories × 5 tiers) plus the
// enhanced workbench into the mod's item texture directory.
package main

import (
	"github.com/1siamBot/combinedpe-icons/engine/assets"
	"github.com/1siamBot/combinedpe-icons/engine/config"
	applog "github.com/1siamBot/combinedpe-icons/engine/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := applog.Stderr("info")
		log.Fatal().Err(err).Msg("config")
	}
	log := applog.Stderr(cfg.LogLevel)

	log.Info().Msg("generating bag textures")
	if _, err := assets.Run(cfg, assets.SetBags, assets.BagJobs(), log); err != nil {
		log.Fatal().Err(err).Msg("generate bags")
	}
}
