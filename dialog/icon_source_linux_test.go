//go:build linux && !android

package dialog

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func iconTheme(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "custom", "32x32", "places"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, defaultIconTheme, "32x32", "mimetypes"), 0o755))
	writePNG(t, filepath.Join(base, "custom", "32x32", "places", "folder.png"), 32, 32)
	writePNG(t, filepath.Join(base, defaultIconTheme, "32x32", "mimetypes", "text-plain.png"), 16, 32)
	return base
}

func TestThemeIconSource(t *testing.T) {
	base := iconTheme(t)
	src := newThemeIconSource(func() string { return "custom" }, []string{filepath.Join(base, "missing"), base}, zap.NewNop())

	dir := t.TempDir()
	folder, err := src.Icon(dir)
	require.NoError(t, err)
	assert.True(t, folder.valid())
	assert.Equal(t, DefaultIconSize, folder.Width)

	// Pseudo directories have no file behind them.
	_, err = src.Icon(QuickAccess)
	require.NoError(t, err)

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain words\n"), 0o644))
	icon, err := src.Icon(text)
	require.NoError(t, err)
	assert.Equal(t, PixelRGBA, icon.Format)

	bin := filepath.Join(dir, "blob.bin")
	require.NoError(t, os.WriteFile(bin, []byte{0x00, 0x01, 0x02, 0xff}, 0o644))
	_, err = src.Icon(bin)
	assert.Error(t, err)
}

func TestThemeIconSource_LocateCaches(t *testing.T) {
	base := iconTheme(t)
	src := newThemeIconSource(func() string { return "custom" }, []string{base}, zap.NewNop())

	file := src.locate("custom", "folder")
	require.NotEmpty(t, file)
	require.NoError(t, os.Remove(file))
	assert.Equal(t, file, src.locate("custom", "folder"))

	assert.Empty(t, src.locate("custom", "nothing"))
	assert.Empty(t, src.locate("absent-theme", "folder"))
}

func TestIconNames(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, []string{"folder"}, iconNames(dir))
	assert.Equal(t, []string{"folder"}, iconNames(ThisPC))

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain words\n"), 0o644))
	got := iconNames(text)
	require.NotEmpty(t, got)
	assert.Equal(t, "text-plain", got[0])
	assert.Contains(t, got, "text-x-generic")
	assert.Equal(t, "text-x-generic", got[len(got)-1])

	script := filepath.Join(dir, "run")
	require.NoError(t, os.WriteFile(script, []byte("plain words\n"), 0o755))
	assert.Contains(t, iconNames(script), "application-x-executable")
}

type variant struct{ v any }

func (v variant) Value() any { return v.v }

func TestUnwrapString(t *testing.T) {
	s, ok := unwrapString(variant{variant{"Adwaita"}})
	assert.True(t, ok)
	assert.Equal(t, "Adwaita", s)

	_, ok = unwrapString(42)
	assert.False(t, ok)
}

func TestIconThemeName_Env(t *testing.T) {
	t.Setenv(iconThemeEnv, "Papirus")
	assert.Equal(t, "Papirus", iconThemeName())
}

func TestThemeIconSource_ReadsThemeOnce(t *testing.T) {
	base := iconTheme(t)
	calls := 0
	src := newThemeIconSource(func() string { calls++; return "custom" }, []string{base}, zap.NewNop())

	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("file%d.txt", i))
		require.NoError(t, os.WriteFile(p, []byte("plain words\n"), 0o644))
		_, err := src.Icon(p)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)

	cache := newIconCache(newCountingTextures(), src, nil, zap.NewNop())
	cache.get(dir)
	assert.Equal(t, 1, calls)

	cache.clear()
	cache.get(dir)
	assert.Equal(t, 2, calls)
}
