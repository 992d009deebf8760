// Package documents renders a computed bill into its output documents:
// HTML, PDF, and DOCX per statutory document, plus one financial summary
// workbook. Renderers are pure projections; no money figure is computed
// here.
package documents

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

// Options selects which formats Generate writes.
type Options struct {
	HTML        bool
	PDF         bool
	DOCX        bool
	Excel       bool
	ReverseFont bool
}

// documentOrder fixes the output ordering across all formats.
var documentOrder = []string{
	billing.DocFirstPage,
	billing.DocDeviationStatement,
	billing.DocExtraItems,
	billing.DocNoteSheet,
	billing.DocCertificateII,
	billing.DocCertificateIII,
}

// Generate writes the selected formats for every document of the bill
// into dir and returns the paths written. Running bills produce no
// deviation statement in any format.
func Generate(views billing.DocumentViews, dir string, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	byName := views.Map()
	var written []string

	for _, name := range documentOrder {
		view, ok := byName[name]
		if !ok {
			continue
		}

		if opts.HTML {
			html, err := RenderHTML(name, view, opts.ReverseFont)
			if err != nil {
				return written, fmt.Errorf("render %s html: %w", name, err)
			}
			path := filepath.Join(dir, name+".html")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}

		if opts.PDF {
			pdf, err := RenderPDF(name, view)
			if err != nil {
				return written, fmt.Errorf("render %s pdf: %w", name, err)
			}
			path := filepath.Join(dir, name+".pdf")
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}

		if opts.DOCX {
			docx, err := RenderDOCX(name, view)
			if err != nil {
				return written, fmt.Errorf("render %s docx: %w", name, err)
			}
			path := filepath.Join(dir, name+".docx")
			if err := os.WriteFile(path, docx, 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	if opts.Excel {
		xlsx, err := GenerateSummaryWorkbook(views)
		if err != nil {
			return written, fmt.Errorf("generate summary workbook: %w", err)
		}
		path := filepath.Join(dir, "financial_summary.xlsx")
		if err := os.WriteFile(path, xlsx, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}
