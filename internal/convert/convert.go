// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns obfuscated .cng archives back into plain JPEG files.
//
// A run walks a source tree, decodes every .cng file it finds, and writes the
// result under the destination root with the source's relative layout
// preserved. Individual failures are reported and skipped so one bad file
// cannot stop a multi-disc run.
package convert

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ngbind/internal/cng"
	"github.com/pdiddy/ngbind/pkg/types"
)

const (
	// cngExt is the extension of obfuscated source files.
	cngExt = ".cng"
	// jpegExt is the extension given to decoded output files.
	jpegExt = ".jpg"
)

// Result holds the outcome of a tree conversion run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of .cng files processed.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Tree walks cfg.SourceDir and decodes every .cng file found, however deep,
// into the destination root. When cfg.DestDir is empty the decoded files are
// written next to the sources. Per-file status lines go to w. Unreadable
// entries and failed files are reported and skipped; Tree returns an error
// only when the source root itself is unusable.
func Tree(cfg types.ConvertConfig, w io.Writer) (Result, error) {
	srcRoot := filepath.Clean(cfg.SourceDir)
	info, err := os.Stat(srcRoot)
	if err != nil {
		return Result{}, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("source %s is not a directory", srcRoot)
	}

	dstRoot := srcRoot
	if cfg.DestDir != "" {
		dstRoot = filepath.Clean(cfg.DestDir)
	}

	var result Result
	walkErr := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(w, "warning: cannot read %s: %v\n", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), cngExt) {
			return nil
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dstRoot, withJPEGExt(rel))

		skipped, err := File(path, dstPath, cfg.RemoveOriginals, w)
		switch {
		case err != nil:
			fmt.Fprintf(w, "failed:  %s (%v)\n", rel, err)
			result.Failed++
		case skipped:
			fmt.Fprintf(w, "skipped: %s (already exists)\n", rel)
			result.Skipped++
		default:
			fmt.Fprintf(w, "converted: %s\n", rel)
			result.Converted++
		}
		return nil
	})
	if walkErr != nil {
		return result, walkErr
	}

	fmt.Fprintf(w, "\nConversion summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// File decodes a single .cng file at srcPath into a JPEG at dstPath. It
// returns skipped=true without touching anything when dstPath already exists.
// The output lands atomically: it is written to a temporary file and renamed
// into place, so a crash mid-write never leaves a half-decoded JPEG behind.
// When removeOriginal is set the source is deleted only after the rename; a
// failed delete is reported on w but does not fail the conversion.
func File(srcPath, dstPath string, removeOriginal bool, w io.Writer) (skipped bool, err error) {
	if _, err := os.Stat(dstPath); err == nil {
		return true, nil
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return false, err
	}

	decoded := cng.Transform(data)
	if err := cng.CheckSignature(decoded); err != nil {
		return false, fmt.Errorf("corrupt source: %w", err)
	}

	if err := writeFileAtomic(dstPath, decoded); err != nil {
		return false, err
	}

	if removeOriginal {
		if err := os.Remove(srcPath); err != nil {
			fmt.Fprintf(w, "warning: could not remove original %s: %v\n", srcPath, err)
		}
	}
	return false, nil
}

// writeFileAtomic writes data to path via a temporary file in the same
// directory, renaming it into place once fully written. The temporary file is
// removed on any failure.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".convert-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return writeErr
		}
		return closeErr
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// withJPEGExt swaps the extension on a relative path for .jpg.
func withJPEGExt(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + jpegExt
}
