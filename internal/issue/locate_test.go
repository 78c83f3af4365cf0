// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package issue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"199408_Disc3", "199501_Disc4", "extras"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}
	// A plain file carrying the identifier must not count as a match.
	require.NoError(t, os.WriteFile(filepath.Join(root, "199502_notes.txt"), []byte("x"), 0o644))

	dir, err := Locate(root, "199408")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "199408_Disc3"), dir)

	_, err = Locate(root, "199502")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "199502", notFound.ID)
	assert.Equal(t, root, notFound.Root)
}

func TestLocateAmbiguous(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"199408_Disc3_copy", "199408_Disc3"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}

	_, err := Locate(root, "199408")
	var ambiguous *AmbiguousError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"199408_Disc3", "199408_Disc3_copy"}, ambiguous.Candidates)
}

func TestLocateMissingRoot(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "gone"), "199408")
	require.Error(t, err)
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"199408", "200112", "000000"} {
		assert.True(t, ValidID(id), id)
	}
	for _, id := range []string{"", "19940", "1994088", "19940a", "1994-8", "august"} {
		assert.False(t, ValidID(id), id)
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "199408_Disc3", want: "199408", ok: true},
		{in: "Disc_199408", want: "199408", ok: true},
		{in: "1234567", want: "123456", ok: true},
		{in: "12345", ok: false},
		{in: "no digits", ok: false},
	}
	for _, tt := range tests {
		got, ok := ExtractID(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
