// Package batch drives concurrent processing of bill workbooks: each
// input file runs the full compute-and-render pipeline in its own worker,
// failures are isolated per file, and the run ends with a plain-text
// summary and an optional zip of everything generated.
package batch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/documents"
	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/excel"
)

// Options configures one batch run. Zero workers means one.
type Options struct {
	OutputDir string
	Workers   int
	Billing   billing.Options
	Render    documents.Options
	Zip       bool
}

// FileResult records the outcome for one input workbook.
type FileResult struct {
	File        string
	OutputDir   string
	Written     []string
	Diagnostics []billing.Diagnostic
	Err         error
}

// Result is the outcome of a whole run.
type Result struct {
	RunID   string
	Files   []FileResult
	ZipPath string
	Elapsed time.Duration
}

// Failed returns the results that ended in error, in input order.
func (r Result) Failed() []FileResult {
	var failed []FileResult
	for _, fr := range r.Files {
		if fr.Err != nil {
			failed = append(failed, fr)
		}
	}
	return failed
}

// Process runs the pipeline over every input file with at most
// opts.Workers files in flight. A canceled context stops scheduling new
// files; files already started run to completion and are recorded.
func Process(ctx context.Context, files []string, opts Options) (Result, error) {
	start := time.Now()
	result := Result{
		RunID: uuid.NewString(),
		Files: make([]FileResult, len(files)),
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return result, fmt.Errorf("create output dir: %w", err)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	var mu sync.Mutex
	for i, file := range files {
		if ctx.Err() != nil {
			mu.Lock()
			result.Files[i] = FileResult{File: file, Err: ctx.Err()}
			mu.Unlock()
			continue
		}
		i, file := i, file
		g.Go(func() error {
			fr := processFile(file, opts)
			mu.Lock()
			result.Files[i] = fr
			mu.Unlock()
			if fr.Err != nil {
				log.Printf("batch %s: %s failed: %v", result.RunID, filepath.Base(file), fr.Err)
			} else {
				log.Printf("batch %s: %s -> %d files", result.RunID, filepath.Base(file), len(fr.Written))
			}
			return nil
		})
	}
	g.Wait()

	result.Elapsed = time.Since(start)

	if err := writeSummary(opts.OutputDir, result); err != nil {
		return result, err
	}

	if opts.Zip {
		zipPath, err := packRun(opts.OutputDir, result)
		if err != nil {
			return result, err
		}
		result.ZipPath = zipPath
	}

	return result, nil
}

// processFile runs one workbook through parse, compute, and render.
func processFile(file string, opts Options) FileResult {
	fr := FileResult{File: file}

	wb, err := excel.ReadWorkbook(file)
	if err != nil {
		fr.Err = fmt.Errorf("read %s: %w", filepath.Base(file), err)
		return fr
	}

	res, err := billing.Compute(wb, opts.Billing)
	if err != nil {
		fr.Err = fmt.Errorf("compute %s: %w", filepath.Base(file), err)
		return fr
	}
	fr.Diagnostics = res.Diagnostics

	dir := filepath.Join(opts.OutputDir, billDirName(res.Metadata.WorkName, time.Now()))
	written, err := documents.Generate(res.Views(), dir, opts.Render)
	if err != nil {
		fr.Err = fmt.Errorf("render %s: %w", filepath.Base(file), err)
		return fr
	}

	fr.OutputDir = dir
	fr.Written = written
	return fr
}

// billDirName builds the per-bill output directory name
// bill_<slug>_<timestamp>.
func billDirName(workName string, now time.Time) string {
	slug := slugify(workName)
	if slug == "" {
		slug = "untitled"
	}
	return fmt.Sprintf("bill_%s_%s", slug, now.Format("20060102_150405"))
}

func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// writeSummary writes batch_summary.txt into the output dir.
func writeSummary(dir string, result Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch run %s\n", result.RunID)
	fmt.Fprintf(&b, "Completed in %s\n", result.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "Files: %d total, %d failed\n\n", len(result.Files), len(result.Failed()))

	for _, fr := range result.Files {
		if fr.Err != nil {
			fmt.Fprintf(&b, "FAIL %s: %v\n", filepath.Base(fr.File), fr.Err)
			continue
		}
		fmt.Fprintf(&b, "OK   %s -> %s (%d files", filepath.Base(fr.File), filepath.Base(fr.OutputDir), len(fr.Written))
		if len(fr.Diagnostics) > 0 {
			fmt.Fprintf(&b, ", %d warnings", len(fr.Diagnostics))
		}
		b.WriteString(")\n")
		for _, d := range fr.Diagnostics {
			fmt.Fprintf(&b, "     warn [%s] %s\n", d.Kind, d.Message)
		}
	}

	path := filepath.Join(dir, "batch_summary.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write batch summary: %w", err)
	}
	return nil
}

// CollectInputs expands paths into the list of .xlsx files to process.
// Directories are scanned one level deep; files are taken as given.
// The returned list is sorted for a stable processing order.
func CollectInputs(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", p, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasPrefix(name, "~$") {
				continue
			}
			if strings.EqualFold(filepath.Ext(name), ".xlsx") {
				files = append(files, filepath.Join(p, name))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
