// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFile_UnwritableDestination(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "page.cng")
	writeCNG(t, srcPath, sampleJPEG(t))

	dstDir := filepath.Join(dir, "out")
	if err := os.Mkdir(dstDir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dstDir, 0o755) })

	var log bytes.Buffer
	_, err := File(srcPath, filepath.Join(dstDir, "page.jpg"), true, &log)
	if err == nil {
		t.Fatal("expected an error writing into a read-only directory")
	}
	if _, statErr := os.Stat(srcPath); statErr != nil {
		t.Errorf("source should survive a failed write: %v", statErr)
	}
}
