//go:build mage

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"

	"github.com/pdiddy/ngbind/internal/cng"
)

const (
	fixtureRoot  = "testdata/disc"
	fixtureIssue = "199408"
)

// fixturePages lists the page files generated for the sample issue. The mix
// covers numbered pages, a letter-suffixed insert, and an unstructured extra.
var fixturePages = []string{
	"NGM_1994_08_001.cng",
	"NGM_1994_08_002.cng",
	"NGM_1994_08_051.cng",
	"NGM_1994_08_051B.cng",
	"map_insert.cng",
}

// Fixtures generates a sample obfuscated disc tree under testdata/disc.
func Fixtures() error {
	issueDir := filepath.Join(fixtureRoot, fixtureIssue+"_Disc3")
	if err := os.MkdirAll(issueDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", issueDir, err)
	}

	jpegData, err := sampleJPEG()
	if err != nil {
		return err
	}
	obfuscated := cng.Transform(jpegData)

	for _, name := range fixturePages {
		path := filepath.Join(issueDir, name)
		if err := os.WriteFile(path, obfuscated, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	fmt.Println("Fixtures generated.")
	return nil
}

// Smoke builds the CLI, generates fixtures, and runs a convert and bind
// pass over them end to end.
func Smoke() error {
	mg.Deps(Build, Fixtures)

	bin := filepath.Join(binDir, binName)
	if err := run(bin, "convert", fixtureRoot); err != nil {
		return err
	}
	return run(bin, "bind", fixtureRoot, fixtureIssue, "--output", binDir)
}

// run executes a command with output attached to the terminal.
func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}

// sampleJPEG encodes a small flat-color JPEG.
func sampleJPEG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 230, G: 200, B: 60, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("encoding sample jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
