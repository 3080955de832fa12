package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/curvelab/lrplot/internal/render"
	"github.com/curvelab/lrplot/internal/schedule"
)

const envOutputDir = "LRPLOT_OUT_DIR"

// resolveOutput returns the image path to write, creating parent
// directories. An empty outFlag auto-generates a descriptive filename in
// outputDir, the LRPLOT_OUT_DIR directory, or the working directory, in
// that order. The second return reports whether the name was generated.
func resolveOutput(outFlag string, cfg schedule.Config, opts render.Options, outputDir string) (string, bool, error) {
	outFlag = strings.TrimSpace(outFlag)
	if outFlag != "" {
		outPath := filepath.Clean(outFlag)
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return "", false, err
		}
		return outPath, false, nil
	}

	dir := strings.TrimSpace(outputDir)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(envOutputDir))
	}
	if dir == "" {
		dir = "."
	}
	outPath := filepath.Join(dir, autoFilename(cfg, opts))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", true, err
	}
	return outPath, true, nil
}

// autoFilename concatenates every parameter into a descriptive name:
//
//	lr_decay_p<powers>_lr<initial>_lre<final>_s<steps>_w<warmup>_scale_<preset>_not_<notation>_dpi<dpi>.png
//
// Powers are dash-joined; rates use %.0e.
func autoFilename(cfg schedule.Config, opts render.Options) string {
	parts := make([]string, 0, len(cfg.Powers))
	for _, p := range cfg.Powers {
		parts = append(parts, schedule.FormatPower(p))
	}
	return fmt.Sprintf("lr_decay_p%s_lr%.0e_lre%.0e_s%d_w%d_scale_%s_not_%s_dpi%d.png",
		strings.Join(parts, "-"),
		cfg.InitialLR, cfg.FinalLR,
		cfg.Steps, cfg.Warmup,
		opts.Scale, string(opts.Notation), opts.DPI)
}
