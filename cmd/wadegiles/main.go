package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jusunglee/wadegiles/internal/docx"
	"github.com/jusunglee/wadegiles/internal/logger"
	"github.com/jusunglee/wadegiles/internal/report"
	"github.com/jusunglee/wadegiles/internal/review"
	"github.com/jusunglee/wadegiles/internal/wadegiles"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("wadegiles")

	var (
		output     = fs_.StringLong("output", "", "output path (default: <input>_pinyin.docx)")
		aggressive = fs_.BoolLong("aggressive", "convert every match, English-collision filters included")
		doReview   = fs_.BoolLong("review", "interactively review changes before writing")
		reportPath = fs_.StringLong("report", "", "record applied conversions in a SQLite database at this path")
		dryRun     = fs_.BoolLong("dry-run", "list changes without writing anything")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	args := fs_.GetArgs()
	if len(args) < 1 {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return errors.New("input file is required")
	}
	inPath := args[0]

	outPath := *output
	if outPath == "" && len(args) > 1 {
		outPath = args[1]
	}
	if outPath == "" {
		ext := filepath.Ext(inPath)
		outPath = strings.TrimSuffix(inPath, ext) + "_pinyin" + ext
	}

	if strings.EqualFold(filepath.Ext(inPath), ".pdf") {
		return errors.New("pdf input is not supported by this build; convert the document to docx first")
	}
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	log := logger.New()

	mode := wadegiles.Conservative
	if *aggressive {
		mode = wadegiles.Aggressive
	}
	conv := wadegiles.New()

	log.Info("converting", "input", inPath, "mode", mode)

	opts := docx.Options{Mode: mode}

	if *doReview || *dryRun {
		plan, err := docx.Plan(inPath, conv, mode)
		if err != nil {
			return err
		}
		if *dryRun {
			for _, ch := range plan.Changes {
				fmt.Printf("%s\t%s -> %s\n", ch.Part, ch.Original, ch.Converted)
			}
			log.Info("dry run complete", "changes", len(plan.Changes))
			return nil
		}

		accepted, ok, err := review.Run(plan.Changes)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("review aborted, nothing written")
			return nil
		}
		log.Info("review complete", "accepted", len(accepted), "proposed", len(plan.Changes))
		opts.Filter = review.Filter(accepted)
	}

	res, err := docx.ConvertFile(inPath, outPath, conv, opts)
	if err != nil {
		return err
	}

	for _, part := range res.FallbackParts {
		log.Warn("structured parse failed, used raw strategy", "part", part)
	}
	log.Info("wrote converted document", "output", outPath, "changes", len(res.Changes))

	if *reportPath != "" {
		if err := recordReport(context.Background(), *reportPath, inPath, mode, res.Changes); err != nil {
			return err
		}
		log.Info("recorded report", "path", *reportPath, "entries", len(res.Changes))
	}

	fmt.Println(outPath)
	return nil
}

func recordReport(ctx context.Context, path, sourceFile string, mode wadegiles.Mode, changes []docx.Change) error {
	store, err := report.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries := make([]report.Entry, 0, len(changes))
	for _, ch := range changes {
		entries = append(entries, report.Entry{
			SourceFile:  filepath.Base(sourceFile),
			Part:        ch.Part,
			Ordinal:     ch.Ordinal,
			Original:    ch.Original,
			Replacement: ch.Converted,
			Mode:        mode.String(),
		})
	}
	return store.Record(ctx, entries)
}
