// Command exampaper serves and renders exam paper PDFs.
//
// Subcommands:
//
//	serve     start the HTTP API
//	render    render a paper JSON file to a PDF file
//	generate  run a generator script and write the paper JSON or PDF
//	ingest    OCR scanned page images into draft paper JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/nahadgur/11PlusExamPapers/fonts"
	"github.com/nahadgur/11PlusExamPapers/httpapi"
	"github.com/nahadgur/11PlusExamPapers/layout"
	"github.com/nahadgur/11PlusExamPapers/observability"
	"github.com/nahadgur/11PlusExamPapers/ocr"
	_ "github.com/nahadgur/11PlusExamPapers/ocr/tesseract"
	"github.com/nahadgur/11PlusExamPapers/paper"
	"github.com/nahadgur/11PlusExamPapers/scripting"
	"github.com/nahadgur/11PlusExamPapers/writer"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "ingest":
		err = runIngest(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "exampaper: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: exampaper <serve|render|generate|ingest> [flags]")
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := observability.NewStdLogger(os.Stderr)
	opts := []httpapi.Option{httpapi.WithLogger(log)}
	if m, err := fonts.NewMeasurer(); err == nil {
		opts = append(opts, httpapi.WithMeasurer(m.Width))
	} else {
		log.Warn("measurement face unavailable, falling back to core metrics",
			observability.Error("err", err))
	}
	srv := httpapi.New(opts...)

	log.Info("listening", observability.String("addr", *addr))
	return http.ListenAndServe(*addr, srv.Handler())
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "paper JSON file")
	out := fs.String("out", "", "output PDF file (defaults to the derived filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("render: -in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	var p paper.ExamPaper
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse %s: %w", *in, err)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	p.EnsureID()

	path := *out
	if path == "" {
		path = paper.FileStem(p.Title) + ".pdf"
	}
	return writePDF(path, layout.PaperLines(&p))
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	script := fs.String("script", "", "generator script file")
	out := fs.String("out", "", "output file (.json or .pdf)")
	seed := fs.Int64("seed", 0, "random seed for reproducible papers (0 picks one)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *script == "" || *out == "" {
		return fmt.Errorf("generate: -script and -out are required")
	}

	src, err := os.ReadFile(*script)
	if err != nil {
		return err
	}
	p, err := scripting.NewEngine(*seed).GeneratePaper(context.Background(), string(src))
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("script produced an invalid paper: %w", err)
	}
	p.EnsureID()

	if strings.EqualFold(filepath.Ext(*out), ".pdf") {
		return writePDF(*out, layout.PaperLines(p))
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*out, append(data, '\n'), 0o644)
}

func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	lang := fs.String("lang", "eng", "recognition language hint")
	out := fs.String("out", "", "output paper JSON file (defaults to stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("ingest: at least one scanned image is required")
	}

	var pages []ocr.Input
	for _, path := range fs.Args() {
		img, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		pages = append(pages, ocr.Input{
			ID:     filepath.Base(path),
			Image:  img,
			Format: formatForPath(path),
		})
	}

	p, err := ocr.ScanPaper(context.Background(), ocr.DefaultEngine(), pages,
		ocr.WithLanguages(*lang))
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if *out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(*out, data, 0o644)
}

func formatForPath(path string) ocr.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ocr.ImageFormatJPEG
	case ".tif", ".tiff":
		return ocr.ImageFormatTIFF
	default:
		return ocr.ImageFormatPNG
	}
}

func writePDF(path string, lines []layout.Line) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := (&writer.WriterBuilder{}).Build()
	if err := w.Write(context.Background(), lines, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
