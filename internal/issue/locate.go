// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package issue

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// idPattern is the exact form of a YYYYMM issue identifier.
var idPattern = regexp.MustCompile(`^\d{6}$`)

// idRunPattern finds the first 6-digit run inside a directory name.
var idRunPattern = regexp.MustCompile(`\d{6}`)

// NotFoundError reports that no subdirectory of Root matches the issue
// identifier.
type NotFoundError struct {
	Root string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no issue directory under %s matches %s", e.Root, e.ID)
}

// AmbiguousError reports that more than one subdirectory matches the issue
// identifier. Candidates are sorted; the caller disambiguates by naming an
// exact directory.
type AmbiguousError struct {
	ID         string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("issue %s matches %d directories (%s); rerun with --dir to pick one",
		e.ID, len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// ValidID reports whether id is a 6-digit YYYYMM identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ExtractID returns the first 6-digit run in a directory name. Exact-dir
// mode uses it to take the identifier from the folder itself.
func ExtractID(name string) (string, bool) {
	id := idRunPattern.FindString(name)
	return id, id != ""
}

// Locate scans the immediate subdirectories of root and returns the sole
// one whose name starts with the issue identifier. Zero matches yield a
// *NotFoundError, more than one a *AmbiguousError; an issue is never bound
// from an arbitrary pick among several candidate directories.
func Locate(root, id string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("reading root directory: %w", err)
	}

	var matches []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), id) {
			matches = append(matches, e.Name())
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Root: root, ID: id}
	case 1:
		return filepath.Join(root, matches[0]), nil
	default:
		sort.Strings(matches)
		return "", &AmbiguousError{ID: id, Candidates: matches}
	}
}
