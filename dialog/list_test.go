package dialog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSmartSize(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.000 B"},
		{1023, "1023.000 B"},
		{1024, "1.000 KiB"},
		{1536, "1.500 KiB"},
		{5 << 20, "5.000 MiB"},
		{3 << 30, "3.000 GiB"},
		{2048 << 40, "2048.000 TiB"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewSmartSize(c.bytes).String(), "bytes=%d", c.bytes)
	}
}

func listingDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeFile(t, filepath.Join(dir, "b.txt"), 300, base.Add(2*time.Hour))
	writeFile(t, filepath.Join(dir, "A.txt"), 100, base.Add(3*time.Hour))
	writeFile(t, filepath.Join(dir, "c.png"), 200, base.Add(1*time.Hour))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zeta"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Alpha"), 0o755))
	return dir
}

func TestListContent_DirectoriesFirst(t *testing.T) {
	dir := listingDir(t)
	d, _ := newTestDialog(t, dir)

	assert.Equal(t, []string{"Alpha", "zeta", "A.txt", "b.txt", "c.png"}, names(d.Content()))

	d.SortContent(SortBySize, Ascending)
	assert.Equal(t, []string{"Alpha", "zeta", "A.txt", "c.png", "b.txt"}, names(d.Content()))

	d.SortContent(SortByDate, Descending)
	assert.Equal(t, []string{"A.txt", "b.txt", "c.png"}, names(d.Content()[2:]))

	d.SortContent(SortByName, Descending)
	assert.Equal(t, []string{"zeta", "Alpha", "c.png", "b.txt", "A.txt"}, names(d.Content()))
}

func TestListContent_SortSurvivesRefresh(t *testing.T) {
	dir := listingDir(t)
	d, _ := newTestDialog(t, dir)

	d.SortContent(SortBySize, Descending)
	d.Refresh()
	assert.Equal(t, []string{"b.txt", "c.png", "A.txt"}, names(d.Content()[2:]))

	col, direction := d.SortOrder()
	assert.Equal(t, SortBySize, col)
	assert.Equal(t, Descending, direction)
}

func TestListContent_OpenDirectoryHidesFiles(t *testing.T) {
	dir := listingDir(t)
	d, _ := newTestDialog(t, dir)

	require.True(t, d.Open("d", "Folder", "", false, dir))
	assert.Equal(t, []string{"Alpha", "zeta"}, names(d.Content()))
}

func TestListContent_FilterAndSearch(t *testing.T) {
	dir := listingDir(t)
	d, _ := newTestDialog(t, dir)

	require.True(t, d.Open("o", "Open", "Text{.TXT}", false, dir))
	assert.Equal(t, []string{"Alpha", "zeta", "A.txt", "b.txt"}, names(d.Content()))

	d.SetSearch(string(filepath.Separator) + "B.T")
	assert.Equal(t, []string{"b.txt"}, names(d.Content()))
}

func TestFileEntry_Metadata(t *testing.T) {
	dir := t.TempDir()
	mod := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)
	writeFile(t, filepath.Join(dir, "f.bin"), 2048, mod)

	e := newFileEntry(filepath.Join(dir, "f.bin"))
	assert.NoError(t, e.Err)
	assert.False(t, e.IsDir)
	assert.Equal(t, uint64(2048), e.Size.Bytes)
	assert.Equal(t, "KiB", e.Size.Unit)
	assert.True(t, e.Modified.Equal(mod))

	missing := newFileEntry(filepath.Join(dir, "nope"))
	assert.Error(t, missing.Err)
	assert.Equal(t, int64(0), missing.Modified.Unix())

	d := newFileEntry(dir)
	assert.True(t, d.IsDir)
	assert.Equal(t, uint64(0), d.Size.Bytes)
}

func TestSortPreferencesPersist(t *testing.T) {
	prefs := newMemPreferences()
	dir := listingDir(t)
	d, _ := newTestDialog(t, dir, WithPreferences(prefs))
	d.SortContent(SortByDate, Descending)

	again, _ := newTestDialog(t, dir, WithPreferences(prefs))
	col, direction := again.SortOrder()
	assert.Equal(t, SortByDate, col)
	assert.Equal(t, Descending, direction)
	assert.Equal(t, []string{"A.txt", "b.txt", "c.png"}, names(again.Content()[2:]))
}
