// Package docx rewrites Wade-Giles text inside .docx packages. Every
// text-bearing part (body, tables, headers, footers, foot/endnotes, and the
// text boxes embedded in any of them) goes through the conversion engine;
// all other package contents are copied through untouched.
//
// Each part is processed by one of two explicit strategies: a structured
// XML walk that preserves markup byte for byte, and a raw regex pass used
// when the structured walk reports an error (very large or slightly
// malformed parts, typically PDF-converted documents).
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/jusunglee/wadegiles/internal/wadegiles"
	"golang.org/x/sync/errgroup"
)

// Change records one rewritten text element. Ordinal is the change's index
// within its part, stable across passes because the engine is deterministic.
type Change struct {
	Part      string
	Ordinal   int
	Original  string
	Converted string
}

// Options controls a conversion pass.
type Options struct {
	Mode wadegiles.Mode
	// Filter vetoes individual changes; nil accepts everything. Used by
	// review mode to apply only the accepted subset of a dry run.
	Filter func(Change) bool
}

// Result reports what a pass did.
type Result struct {
	Changes []Change
	// FallbackParts lists parts the structured strategy could not parse.
	FallbackParts []string
}

var textPart = regexp.MustCompile(`^word/(document|footnotes|endnotes|header\d*|footer\d*)\.xml$`)

// Plan runs a dry conversion pass: same work, no output file. The returned
// changes are what ConvertFile would apply.
func Plan(inPath string, conv *wadegiles.Converter, mode wadegiles.Mode) (*Result, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inPath, err)
	}
	_, res, err := processParts(data, conv, Options{Mode: mode})
	return res, err
}

// ConvertFile converts inPath and writes the result to outPath. The output
// preserves entry order, compression and all non-text parts of the package.
func ConvertFile(inPath, outPath string, conv *wadegiles.Converter, opts Options) (*Result, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", inPath, err)
	}

	rewritten, res, err := processParts(data, conv, opts)
	if err != nil {
		return nil, err
	}

	zr, _ := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := writePackage(out, zr, rewritten); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", outPath, err)
	}
	return res, nil
}

// processParts converts every text part concurrently. The engine is
// immutable, so parts only need their own change bookkeeping.
func processParts(data []byte, conv *wadegiles.Converter, opts Options) (map[string][]byte, *Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("opening package: %w", err)
	}

	var parts []*zip.File
	hasDocument := false
	for _, f := range zr.File {
		if textPart.MatchString(f.Name) {
			parts = append(parts, f)
		}
		if f.Name == "word/document.xml" {
			hasDocument = true
		}
	}
	if !hasDocument {
		return nil, nil, fmt.Errorf("not a docx package: missing word/document.xml")
	}

	type partResult struct {
		data     []byte
		changes  []Change
		fallback bool
	}
	results := make([]partResult, len(parts))

	var eg errgroup.Group
	for i, f := range parts {
		i, f := i, f
		eg.Go(func() error {
			src, err := readPart(f)
			if err != nil {
				return fmt.Errorf("reading part %s: %w", f.Name, err)
			}
			out, changes, fallback := rewritePart(f.Name, src, conv, opts)
			results[i] = partResult{data: out, changes: changes, fallback: fallback}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	rewritten := make(map[string][]byte, len(parts))
	res := &Result{}
	for i, f := range parts {
		r := results[i]
		if len(r.changes) > 0 {
			rewritten[f.Name] = r.data
		}
		res.Changes = append(res.Changes, r.changes...)
		if r.fallback {
			res.FallbackParts = append(res.FallbackParts, f.Name)
		}
	}
	return rewritten, res, nil
}

// rewritePart converts one part, trying the structured strategy first and
// explicitly selecting the raw strategy when it fails.
func rewritePart(name string, data []byte, conv *wadegiles.Converter, opts Options) ([]byte, []Change, bool) {
	var changes []Change
	ordinal := 0
	replace := func(text string) (string, bool) {
		converted := conv.Convert(text, opts.Mode)
		if converted == text {
			return "", false
		}
		ch := Change{Part: name, Ordinal: ordinal, Original: text, Converted: converted}
		ordinal++
		if opts.Filter != nil && !opts.Filter(ch) {
			return "", false
		}
		changes = append(changes, ch)
		return converted, true
	}

	out, err := rewriteStructured(data, replace)
	if err == nil {
		return out, changes, false
	}

	changes = nil
	ordinal = 0
	raw := rewriteRaw(data, replace)
	return raw, changes, true
}

// writePackage copies the archive, substituting rewritten parts. Untouched
// entries are copied in compressed form.
func writePackage(w io.Writer, zr *zip.Reader, rewritten map[string][]byte) error {
	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		if data, ok := rewritten[f.Name]; ok {
			hdr := f.FileHeader
			fw, err := zw.CreateHeader(&hdr)
			if err != nil {
				return err
			}
			if _, err := fw.Write(data); err != nil {
				return err
			}
			continue
		}
		if err := zw.Copy(f); err != nil {
			return err
		}
	}
	return zw.Close()
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
