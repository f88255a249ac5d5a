package assets

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/1siamBot/combinedpe-icons/engine/config"
	"github.com/1siamBot/combinedpe-icons/engine/icons"
	"github.com/1siamBot/combinedpe-icons/engine/pixel"
)

func TestBagJobs(t *testing.T) {
	jobs := BagJobs()
	if len(jobs) != 66 {
		t.Fatalf("got %d jobs, want 66", len(jobs))
	}
	if jobs[0].File != "basic_materials_bag.png" {
		t.Errorf("first job = %q", jobs[0].File)
	}
	if jobs[4].File != "ultimate_materials_bag.png" {
		t.Errorf("fifth job = %q", jobs[4].File)
	}
	if last := jobs[len(jobs)-1]; last.File != "enhanced_workbench.png" {
		t.Errorf("last job = %q", last.File)
	}
	if jobs[25].Name != "Basic Liquid Bag" {
		t.Errorf("name = %q", jobs[25].Name)
	}

	if j := jobs[25]; j.Label != "Liquids & Buckets" || j.Capacity != 108 || j.StackMultiplier != 1 {
		t.Errorf("basic liquid = %+v", j)
	}
	if j := jobs[64]; j.File != "ultimate_treasure_bag.png" || j.Capacity != 1728 || j.StackMultiplier != 256 {
		t.Errorf("ultimate treasure = %+v", j)
	}
	if last := jobs[len(jobs)-1]; last.Color != icons.WorkbenchColor || last.Capacity != 0 {
		t.Errorf("workbench = %+v", last)
	}

	seen := make(map[string]bool)
	for _, j := range jobs {
		if seen[j.File] {
			t.Errorf("duplicate %q", j.File)
		}
		seen[j.File] = true
	}
}

func TestBagJobRejectsUnknown(t *testing.T) {
	if _, ok := BagJob(icons.Category("furniture"), icons.Basic); ok {
		t.Error("unknown category accepted")
	}
	if _, ok := BagJob(icons.Liquid, icons.Tier("legendary")); ok {
		t.Error("unknown tier accepted")
	}
	j, ok := BagJob(icons.Liquid, icons.Superior)
	if !ok || j.File != "superior_liquid_bag.png" || j.Capacity != 432 {
		t.Errorf("superior liquid = %+v, %v", j, ok)
	}
}

func TestTextureJobs(t *testing.T) {
	want := []string{
		"basic_bag.png", "advanced_bag.png", "superior_bag.png", "masterful_bag.png", "ultimate_bag.png",
		"stack_upgrade_i.png", "stack_upgrade_ii.png", "stack_upgrade_iii.png", "stack_upgrade_iv.png",
	}
	jobs := TextureJobs()
	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}
	for i, j := range jobs {
		if j.File != want[i] {
			t.Errorf("job %d = %q, want %q", i, j.File, want[i])
		}
	}
	if jobs[8].Name != "Stack Upgrade IV" || jobs[8].Multiplier != 256 {
		t.Errorf("upgrade iv = %+v", jobs[8])
	}
	if jobs[3].Capacity != 864 || jobs[3].StackMultiplier != 64 {
		t.Errorf("masterful bag = %+v", jobs[3])
	}
}

func TestWriterWritesEveryIcon(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "textures", "item")
	w := &Writer{Dir: dir, Log: zerolog.Nop()}

	results, err := w.Write(BagJobs())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 66 {
		t.Fatalf("got %d results", len(results))
	}
	for _, r := range results {
		f, err := os.Open(r.Path)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", r.Job.File, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
			t.Errorf("%s: bounds %v", r.Job.File, b)
		}
	}
}

func TestWriterOutputIsByteIdentical(t *testing.T) {
	a := &Writer{Dir: t.TempDir(), Log: zerolog.Nop()}
	b := &Writer{Dir: t.TempDir(), Log: zerolog.Nop()}
	if _, err := a.Write(TextureJobs()); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Write(TextureJobs()); err != nil {
		t.Fatal(err)
	}
	for _, j := range TextureJobs() {
		da, err := os.ReadFile(filepath.Join(a.Dir, j.File))
		if err != nil {
			t.Fatal(err)
		}
		db, err := os.ReadFile(filepath.Join(b.Dir, j.File))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(da, db) {
			t.Errorf("%s differs between runs", j.File)
		}
	}
}

func TestWriterShowsPreview(t *testing.T) {
	var out bytes.Buffer
	w := &Writer{Dir: t.TempDir(), Log: zerolog.Nop(), Show: &out}
	if _, err := w.Write(TextureJobs()[:1]); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out.Bytes(), []byte("basic_bag.png\n")) {
		t.Errorf("preview output = %q", out.String())
	}
}

func TestWriterFailsOnBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	w := &Writer{Dir: file, Log: zerolog.Nop()}
	if _, err := w.Write(TextureJobs()); err == nil {
		t.Fatal("expected error")
	}
}

func TestWriterStopsAtFirstFailedFile(t *testing.T) {
	dir := t.TempDir()
	jobs := TextureJobs()
	// A directory where a file should go makes that one create fail.
	if err := os.Mkdir(filepath.Join(dir, jobs[3].File), 0755); err != nil {
		t.Fatal(err)
	}

	w := &Writer{Dir: dir, Log: zerolog.Nop()}
	results, err := w.Write(jobs)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "write masterful_bag.png: ") {
		t.Errorf("error = %q", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, j := range jobs[:3] {
		if results[i].Job.File != j.File {
			t.Errorf("result %d = %q, want %q", i, results[i].Job.File, j.File)
		}
		if _, err := os.Stat(filepath.Join(dir, j.File)); err != nil {
			t.Errorf("%s missing after failure: %v", j.File, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, jobs[4].File)); !os.IsNotExist(err) {
		t.Errorf("%s written after failure", jobs[4].File)
	}
}

func TestRunWritesManifestAndPreview(t *testing.T) {
	cfg := config.Config{
		OutputDir:    t.TempDir(),
		Manifest:     true,
		Preview:      true,
		PreviewScale: 2,
	}
	if _, err := Run(cfg, SetTextures, TextureJobs(), zerolog.Nop()); err != nil {
		t.Fatal(err)
	}

	m, err := ReadManifest(filepath.Join(cfg.OutputDir, ManifestFilename(SetTextures)))
	if err != nil {
		t.Fatal(err)
	}
	if m.Set != SetTextures || m.Count != 9 || len(m.Icons) != 9 {
		t.Fatalf("manifest = %+v", m)
	}
	if e := m.Icons[0]; e.File != "basic_bag.png" || e.Tier != "basic" || e.Color != "#8b4513" || e.Capacity != 108 {
		t.Errorf("first entry = %+v", e)
	}
	if e := m.Icons[8]; e.Multiplier != 256 || e.Capacity != 0 {
		t.Errorf("upgrade entry = %+v", e)
	}

	f, err := os.Open(filepath.Join(cfg.OutputDir, PreviewFilename(SetTextures)))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// 5 columns × 2 rows of 32px icons with 4px padding.
	if b := img.Bounds(); b.Dx() != 184 || b.Dy() != 76 {
		t.Errorf("preview bounds = %v", b)
	}

	bags := config.Config{OutputDir: t.TempDir(), Manifest: true, PreviewScale: 1}
	if _, err := Run(bags, SetBags, BagJobs(), zerolog.Nop()); err != nil {
		t.Fatal(err)
	}
	bm, err := ReadManifest(filepath.Join(bags.OutputDir, ManifestFilename(SetBags)))
	if err != nil {
		t.Fatal(err)
	}
	e := bm.Icons[3]
	if e.File != "masterful_materials_bag.png" || e.Label != "Building Blocks" || e.Capacity != 864 || e.StackMultiplier != 64 {
		t.Errorf("bag entry = %+v", e)
	}
}

func TestRunDefaultsWriteIconsOnly(t *testing.T) {
	cfg := config.Config{OutputDir: t.TempDir(), PreviewScale: 8}
	if _, err := Run(cfg, SetTextures, TextureJobs(), zerolog.Nop()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 9 {
		t.Errorf("got %d files, want 9", len(entries))
	}
}

func TestContactSheetScalesNearest(t *testing.T) {
	red := pixel.RGB(255, 0, 0)
	cv := pixel.NewIcon()
	cv.Set(0, 0, red)

	sheet := ContactSheet([]*pixel.Canvas{cv, pixel.NewIcon()}, 5, 3)
	for y := 4; y < 7; y++ {
		for x := 4; x < 7; x++ {
			if got := sheet.NRGBAAt(x, y); got != red {
				t.Errorf("(%d,%d) = %v, want red", x, y, got)
			}
		}
	}
	if got := sheet.NRGBAAt(7, 4); got != sheetBG {
		t.Errorf("(7,4) = %v, want background", got)
	}
	if got := sheet.NRGBAAt(0, 0); got != (color.NRGBA{40, 40, 48, 255}) {
		t.Errorf("padding = %v", got)
	}
}
