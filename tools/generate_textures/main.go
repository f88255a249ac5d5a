// generate_textures draws the tier-only bag textures and the four stack
// upgrade textures.
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

	log.Info().Msg("generating tier bag and stack upgrade textures")
	if _, err := assets.Run(cfg, assets.SetTextures, assets.TextureJobs(), log); err != nil {
		log.Fatal().Err(err).Msg("generate textures")
	}
}
