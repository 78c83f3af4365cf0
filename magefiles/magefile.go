//go:build mage

// Package main contains Mage build targets for ngbind developer tooling.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

const (
	binDir  = "bin"
	binName = "ngbind"
	cmdPkg  = "./cmd/ngbind"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Stats prints non-blank Go line counts per package, split into production
// and test code.
func Stats() error {
	type count struct{ prod, test int }
	counts := map[string]*count{}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(name, ".") || name == binDir || name == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}

		lines, err := countNonBlank(path)
		if err != nil {
			return err
		}
		pkg := filepath.Dir(path)
		c, ok := counts[pkg]
		if !ok {
			c = &count{}
			counts[pkg] = c
		}
		if strings.HasSuffix(name, "_test.go") {
			c.test += lines
		} else {
			c.prod += lines
		}
		return nil
	})
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(counts))
	for pkg := range counts {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	var totalProd, totalTest int
	fmt.Printf("%-30s  %10s  %10s\n", "package", "production", "test")
	for _, pkg := range pkgs {
		c := counts[pkg]
		fmt.Printf("%-30s  %10d  %10d\n", pkg, c.prod, c.test)
		totalProd += c.prod
		totalTest += c.test
	}
	fmt.Printf("%-30s  %10d  %10d\n", "total", totalProd, totalTest)
	return nil
}

// countNonBlank counts the non-blank lines in a file.
func countNonBlank(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	total := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			total++
		}
	}
	return total, nil
}
