// Package doctor inspects a generated icon set and reports whether each
// file is present, decodable, and sized to match its name.
package doctor

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"mkicons/internal/icons"
)

// Result holds the outcome of checking a single icon file.
type Result struct {
	Size int
	Name string
	Err  error
}

// Check examines icon-<size>.png in dir for every supported size.
// A file fails when it is missing, not a PNG, or its pixel dimensions
// differ from the size in its name.
func Check(dir string) []Result {
	results := make([]Result, 0, len(icons.Sizes))
	for _, size := range icons.Sizes {
		name := icons.FileName(size)
		results = append(results, Result{Size: size, Name: name, Err: checkFile(filepath.Join(dir, name), size)})
	}
	return results
}

func checkFile(path string, size int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not a valid PNG: %w", err)
	}
	if cfg.Width != size || cfg.Height != size {
		return fmt.Errorf("dimensions %dx%d, want %dx%d", cfg.Width, cfg.Height, size, size)
	}
	return nil
}

// Report runs Check and prints one PASS/FAIL line per file to out.
// It returns an error if any check failed.
func Report(dir string, out io.Writer) error {
	failed := 0
	for _, r := range Check(dir) {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "  FAIL %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "  PASS %s (%dx%d)\n", r.Name, r.Size, r.Size)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d icon files failed verification", failed, len(icons.Sizes))
	}
	return nil
}
