// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bind assembles the page images of a single issue into one PDF.
package bind

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/ngbind/pkg/types"
)

// OutputName returns the PDF filename for an issue identifier.
func OutputName(issue string) string {
	return "NGM_" + issue + ".pdf"
}

// Assemble writes the given pages, in order, into a single PDF at outPath.
// Each PDF page takes the native pixel size of its image at one point per
// pixel, so nothing is scaled or cropped. The file is written through a
// temporary name and renamed into place once complete. It returns the number
// of pages written.
func Assemble(pages []types.Page, outPath string) (int, error) {
	if len(pages) == 0 {
		return 0, fmt.Errorf("no pages to assemble")
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	for _, p := range pages {
		data, err := os.ReadFile(p.Path)
		if err != nil {
			return 0, fmt.Errorf("page %s: %w", p.Name, err)
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, fmt.Errorf("page %s: %w", p.Name, err)
		}

		w, h := float64(cfg.Width), float64(cfg.Height)
		// Orientation stays "P" regardless of the image shape; "L" would
		// swap the dimensions we just measured.
		doc.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		opts := fpdf.ImageOptions{ImageType: "JPEG"}
		doc.RegisterImageOptionsReader(p.Name, opts, bytes.NewReader(data))
		doc.ImageOptions(p.Name, 0, 0, w, h, false, opts, 0, "")
		if doc.Err() {
			return 0, fmt.Errorf("page %s: %w", p.Name, doc.Error())
		}
	}

	if err := writePDF(doc, outPath); err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// writePDF renders the document to outPath via a temporary file in the same
// directory, removing the temporary on any failure.
func writePDF(doc *fpdf.Fpdf, outPath string) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".bind-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	outErr := doc.Output(tmp)
	closeErr := tmp.Close()
	if outErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if outErr != nil {
			return outErr
		}
		return closeErr
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
