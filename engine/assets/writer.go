package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/1siamBot/combinedpe-icons/engine/config"
	"github.com/1siamBot/combinedpe-icons/engine/pixel"
	"github.com/1siamBot/combinedpe-icons/engine/termview"
)

// Result is an icon that has been written to disk.
type Result struct {
	Job    Job
	Path   string
	Canvas *pixel.Canvas
}

// Writer renders jobs one at a time and saves them under Dir. There is no
// rollback: a failed write leaves the files written so far.
type Writer struct {
	Dir  string
	Log  zerolog.Logger
	Show io.Writer // optional terminal preview of each icon
}

// Write renders and saves every job in order, stopping at the first error.
func (w *Writer) Write(jobs []Job) ([]Result, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	results := make([]Result, 0, len(jobs))
	for i, job := range jobs {
		cv := job.Render()
		path := filepath.Join(w.Dir, job.File)
		if err := cv.Save(path); err != nil {
			return results, fmt.Errorf("write %s: %w", job.File, err)
		}
		w.Log.Info().Str("file", job.File).Msgf("[%d/%d] created", i+1, len(jobs))
		if w.Show != nil {
			fmt.Fprintf(w.Show, "%s\n%s", job.File, termview.Render(cv.Image()))
		}
		results = append(results, Result{Job: job, Path: path, Canvas: cv})
	}
	return results, nil
}

// Run writes one job set and, when enabled, its manifest and preview sheet.
func Run(cfg config.Config, set string, jobs []Job, log zerolog.Logger) ([]Result, error) {
	w := &Writer{Dir: cfg.OutputDir, Log: log}
	if cfg.Show {
		termview.ForceTrueColor()
		w.Show = os.Stdout
	}
	results, err := w.Write(jobs)
	if err != nil {
		return results, err
	}
	log.Info().Int("count", len(results)).Str("dir", cfg.OutputDir).Msgf("%s generated", set)

	if cfg.Manifest {
		path := filepath.Join(cfg.OutputDir, ManifestFilename(set))
		if err := WriteManifest(path, NewManifest(set, results)); err != nil {
			return results, err
		}
		log.Info().Str("file", path).Msg("manifest written")
	}
	if cfg.Preview {
		path := filepath.Join(cfg.OutputDir, PreviewFilename(set))
		sheet := ContactSheet(canvases(results), SheetColumns, cfg.PreviewScale)
		if err := savePNG(path, sheet); err != nil {
			return results, err
		}
		log.Info().Str("file", path).Msg("preview written")
	}
	return results, nil
}

func canvases(results []Result) []*pixel.Canvas {
	out := make([]*pixel.Canvas, len(results))
	for i, r := range results {
		out[i] = r.Canvas
	}
	return out
}
