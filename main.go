package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/batch"
	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/config"
	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/documents"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "priyanka-tender",
		Short:         "Contractor bill computation and document generation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		premium     float64
		outputDir   string
		workers     int
		reverseFont bool
		withHTML    bool
		withPDF     bool
		withDOCX    bool
		withZip     bool
	)

	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Process bill workbooks into statutory documents",
		Long: "Each path is a .xlsx workbook or a directory scanned for .xlsx files. " +
			"Every bill is rendered into its own bill_<name>_<timestamp> directory.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over config file and environment.
			if cmd.Flags().Changed("premium") {
				cfg.Premium.Percent = premium
			}
			if cmd.Flags().Changed("output") {
				cfg.Batch.OutputDir = outputDir
			}
			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}

			files, err := batch.CollectInputs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .xlsx files found in %v", args)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Printf("processing %d file(s) with %d worker(s)", len(files), cfg.Batch.Workers)

			result, err := batch.Process(ctx, files, batch.Options{
				OutputDir: cfg.Batch.OutputDir,
				Workers:   cfg.Batch.Workers,
				Billing:   cfg.BillingOptions(),
				Render: documents.Options{
					HTML:        withHTML,
					PDF:         withPDF,
					DOCX:        withDOCX,
					Excel:       true,
					ReverseFont: reverseFont,
				},
				Zip: withZip,
			})
			if err != nil {
				return err
			}

			printSummary(result)

			if failed := result.Failed(); len(failed) > 0 {
				return fmt.Errorf("%d of %d file(s) failed", len(failed), len(result.Files))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&premium, "premium", 0.10, "tender premium as a fraction (0.10 = 10%)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "output directory")
	cmd.Flags().IntVar(&workers, "workers", 4, "maximum files processed concurrently")
	cmd.Flags().BoolVar(&reverseFont, "reverse-font", false, "render HTML white-on-black for photocopying")
	cmd.Flags().BoolVar(&withHTML, "html", true, "generate HTML documents")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "generate PDF documents")
	cmd.Flags().BoolVar(&withDOCX, "docx", false, "generate DOCX documents")
	cmd.Flags().BoolVar(&withZip, "zip", false, "pack all outputs into a single zip")

	return cmd
}

func printSummary(result batch.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, fr := range result.Files {
		name := filepath.Base(fr.File)
		if fr.Err != nil {
			fmt.Printf("%s %s: %v\n", red("FAIL"), name, fr.Err)
			continue
		}
		line := fmt.Sprintf("%s %s -> %s (%d files)", green("OK"), name, fr.OutputDir, len(fr.Written))
		if n := len(fr.Diagnostics); n > 0 {
			line += " " + yellow(fmt.Sprintf("[%d warning(s)]", n))
		}
		fmt.Println(line)
	}
	if result.ZipPath != "" {
		fmt.Printf("archive: %s\n", result.ZipPath)
	}
	fmt.Printf("run %s finished in %s\n", result.RunID, result.Elapsed.Round(time.Millisecond))
}
