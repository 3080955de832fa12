package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/curvelab/lrplot/internal/render"
	"github.com/curvelab/lrplot/internal/schedule"
)

func testScheduleConfig() schedule.Config {
	return schedule.Config{
		Steps:     4000,
		Warmup:    400,
		InitialLR: 1e-4,
		FinalLR:   1e-7,
		Powers:    []float64{0.5, 1, 2},
	}
}

func TestAutoFilename(t *testing.T) {
	cfg := testScheduleConfig()
	opts := render.Options{Scale: render.ScaleNone, Notation: render.NotationScientific, DPI: 300}

	got := autoFilename(cfg, opts)
	want := "lr_decay_p0.5-1-2_lr1e-04_lre1e-07_s4000_w400_scale_none_not_s_dpi300.png"
	if got != want {
		t.Fatalf("unexpected filename:\n got %q\nwant %q", got, want)
	}

	// Every configuration parameter shows up.
	for _, part := range []string{"p0.5-1-2", "lr1e-04", "lre1e-07", "s4000", "w400", "scale_none", "not_s", "dpi300"} {
		if !strings.Contains(got, part) {
			t.Fatalf("filename %q missing %q", got, part)
		}
	}
}

func TestAutoFilenameTracksOptions(t *testing.T) {
	cfg := testScheduleConfig()
	opts := render.Options{Scale: render.ScaleFine, Notation: render.NotationDecimal, DPI: 150}

	got := autoFilename(cfg, opts)
	for _, part := range []string{"scale_fine", "not_d", "dpi150"} {
		if !strings.Contains(got, part) {
			t.Fatalf("filename %q missing %q", got, part)
		}
	}
}

func TestResolveOutput(t *testing.T) {
	cfg := testScheduleConfig()
	opts := render.Options{Scale: render.ScaleNone, Notation: render.NotationScientific, DPI: 300}

	t.Run("explicit output wins", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "nested", "chart.png")

		got, generated, err := resolveOutput(outPath, cfg, opts, "")
		if err != nil {
			t.Fatalf("resolveOutput returned error: %v", err)
		}
		if generated {
			t.Fatalf("explicit output should not be flagged as generated")
		}
		if got != filepath.Clean(outPath) {
			t.Fatalf("unexpected output path: got %q want %q", got, filepath.Clean(outPath))
		}
		if _, err := os.Stat(filepath.Dir(got)); err != nil {
			t.Fatalf("expected output directory to exist: %v", err)
		}
	})

	t.Run("config output dir used for auto names", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "charts")
		t.Setenv(envOutputDir, "")

		got, generated, err := resolveOutput("", cfg, opts, dir)
		if err != nil {
			t.Fatalf("resolveOutput returned error: %v", err)
		}
		if !generated {
			t.Fatalf("expected generated name")
		}
		if filepath.Dir(got) != dir {
			t.Fatalf("output dir: got %q want %q", filepath.Dir(got), dir)
		}
		if filepath.Base(got) != autoFilename(cfg, opts) {
			t.Fatalf("unexpected auto name %q", filepath.Base(got))
		}
	})

	t.Run("env output dir overrides default", func(t *testing.T) {
		envDir := filepath.Join(t.TempDir(), "out")
		t.Setenv(envOutputDir, envDir)

		got, generated, err := resolveOutput("", cfg, opts, "")
		if err != nil {
			t.Fatalf("resolveOutput returned error: %v", err)
		}
		if !generated {
			t.Fatalf("expected generated name")
		}
		if filepath.Dir(got) != envDir {
			t.Fatalf("output dir: got %q want %q", filepath.Dir(got), envDir)
		}
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		t.Setenv(envOutputDir, "")

		got, _, err := resolveOutput("", cfg, opts, "")
		if err != nil {
			t.Fatalf("resolveOutput returned error: %v", err)
		}
		if filepath.Dir(got) != "." {
			t.Fatalf("output dir: got %q want %q", filepath.Dir(got), ".")
		}
	})
}
