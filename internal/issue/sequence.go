// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package issue

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/ngbind/pkg/types"
)

// Pages scans an issue directory (non-recursively, matching the converter's
// output layout) and returns the final render order: files following the
// strict page naming convention first, sorted by parsed page name, then all
// remaining images sorted by filename. Numbered pages are the issue's
// actual content and must render before inserts, foldouts and covers no
// matter how the extra filenames collate.
func Pages(dir string) ([]types.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading issue directory: %w", err)
	}

	type numbered struct {
		page types.Page
		key  PageName
	}

	var pages []numbered
	var extras []types.Page

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".jpg" && ext != ".jpeg" {
			continue
		}

		p := types.Page{Name: name, Path: filepath.Join(dir, name)}
		if key, ok := ParsePageName(name); ok {
			p.Kind = types.PageNumbered
			pages = append(pages, numbered{page: p, key: key})
		} else {
			p.Kind = types.PageExtra
			extras = append(extras, p)
		}
	}

	sort.SliceStable(pages, func(i, j int) bool { return pages[i].key.Less(pages[j].key) })
	sort.SliceStable(extras, func(i, j int) bool { return extras[i].Name < extras[j].Name })

	out := make([]types.Page, 0, len(pages)+len(extras))
	for _, n := range pages {
		out = append(out, n.page)
	}
	return append(out, extras...), nil
}
