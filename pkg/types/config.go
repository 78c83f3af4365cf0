package types

// ConvertConfig holds settings for the CNG conversion stage.
type ConvertConfig struct {
	// SourceDir is the root directory scanned recursively for .cng files.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// DestDir is the root directory converted .jpg files are written under,
	// mirroring the source layout. When empty, output is written beside each
	// source file (DestDir = SourceDir).
	DestDir string `json:"dest_dir,omitempty" yaml:"dest_dir,omitempty"`

	// RemoveOriginals deletes each source file, but only after its converted
	// output has been renamed into place.
	RemoveOriginals bool `json:"remove_originals" yaml:"remove_originals"`
}

// BindConfig holds settings for the issue binding stage.
type BindConfig struct {
	// RootDir is the directory whose immediate subdirectories are issue
	// folders, named with the YYYYMM identifier as a prefix.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// IssueDir is an exact issue directory; when set, discovery under
	// RootDir is skipped and the identifier is extracted from its name.
	IssueDir string `json:"issue_dir,omitempty" yaml:"issue_dir,omitempty"`

	// Issue is the 6-digit YYYYMM issue identifier.
	Issue string `json:"issue" yaml:"issue"`

	// OutputDir is the directory the bound PDF is written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// WriteManifest also saves a YAML manifest of the page sequence beside
	// the PDF, for later replay without re-scanning.
	WriteManifest bool `json:"write_manifest" yaml:"write_manifest"`
}
