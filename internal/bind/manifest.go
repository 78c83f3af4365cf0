// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bind

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ngbind/pkg/types"
)

// Manifest is the on-disk record of the page sequence that went into a bound
// PDF. A saved manifest can reproduce the same PDF later without re-scanning
// the issue directory.
type Manifest struct {
	Issue     string          `yaml:"issue"`
	SourceDir string          `yaml:"source_dir"`
	Generated time.Time       `yaml:"generated"`
	Summary   ManifestSummary `yaml:"summary"`
	Pages     []ManifestPage  `yaml:"pages"`
}

// ManifestSummary counts the recorded pages by kind.
type ManifestSummary struct {
	Total    int `yaml:"total"`
	Numbered int `yaml:"numbered"`
	Extra    int `yaml:"extra"`
}

// ManifestPage is one entry in the bound sequence.
type ManifestPage struct {
	Name string         `yaml:"name"`
	Kind types.PageKind `yaml:"kind"`
}

// ManifestName returns the manifest filename for an issue identifier.
func ManifestName(issue string) string {
	return "NGM_" + issue + ".yaml"
}

// WriteManifest saves the page sequence for issue to a YAML file at path.
func WriteManifest(path, issue, sourceDir string, pages []types.Page) error {
	m := Manifest{
		Issue:     issue,
		SourceDir: sourceDir,
		Generated: time.Now().UTC(),
	}
	for _, p := range pages {
		m.Pages = append(m.Pages, ManifestPage{Name: p.Name, Kind: p.Kind})
		m.Summary.Total++
		switch p.Kind {
		case types.PageNumbered:
			m.Summary.Numbered++
		case types.PageExtra:
			m.Summary.Extra++
		}
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a previously saved manifest from disk.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// PageList rebuilds the page slice from the manifest, resolving each name
// against the recorded source directory.
func (m *Manifest) PageList() []types.Page {
	pages := make([]types.Page, len(m.Pages))
	for i, p := range m.Pages {
		pages[i] = types.Page{
			Name: p.Name,
			Path: filepath.Join(m.SourceDir, p.Name),
			Kind: p.Kind,
		}
	}
	return pages
}
