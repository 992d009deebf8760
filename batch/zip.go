package batch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// packRun zips every file generated by the run, plus the batch summary,
// into <dir>/bill_output_<runID>.zip. Paths inside the archive are
// relative to the output dir so per-bill directories survive extraction.
func packRun(dir string, result Result) (string, error) {
	zipPath := filepath.Join(dir, fmt.Sprintf("bill_output_%s.zip", result.RunID))

	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("create zip: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	add := func(path string) error {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("relativize %s: %w", path, err)
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("add %s: %w", rel, err)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		if _, err := io.Copy(w, f); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		return nil
	}

	for _, fr := range result.Files {
		for _, path := range fr.Written {
			if err := add(path); err != nil {
				zw.Close()
				return "", err
			}
		}
	}
	if err := add(filepath.Join(dir, "batch_summary.txt")); err != nil {
		zw.Close()
		return "", err
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("close zip: %w", err)
	}
	return zipPath, nil
}
