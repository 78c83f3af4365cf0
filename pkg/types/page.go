// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageKind classifies an image file within an issue directory.
type PageKind string

const (
	// PageNumbered marks a file that follows the strict page naming
	// convention; numbered pages are the issue's actual content and render
	// first, in parsed order.
	PageNumbered PageKind = "numbered"

	// PageExtra marks every other image (covers, inserts, foldouts, maps);
	// extras render after the numbered pages, in filename order.
	PageExtra PageKind = "extra"
)

// Page is one image file of an issue, in render order once sequenced.
type Page struct {
	// Name is the base filename (e.g. "NGM_1994_08_051B.jpg").
	Name string `json:"name" yaml:"name"`

	// Path is the full path to the image file.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Kind records which ordering group the page belongs to.
	Kind PageKind `json:"kind" yaml:"kind"`
}
