package dialog

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingTextures struct {
	next    TextureID
	live    map[TextureID]bool
	created int
	deleted []TextureID
}

func newCountingTextures() *countingTextures {
	return &countingTextures{live: map[TextureID]bool{}}
}

func (c *countingTextures) CreateTexture(pix []byte, w, h int, _ PixelFormat) TextureID {
	c.next++
	c.created++
	c.live[c.next] = true
	return c.next
}

func (c *countingTextures) DeleteTexture(id TextureID) {
	delete(c.live, id)
	c.deleted = append(c.deleted, id)
}

type countingIconSource struct {
	calls map[string]int
	fail  bool
}

func (s *countingIconSource) Icon(path string) (*IconImage, error) {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[path]++
	if s.fail {
		return nil, errors.New("no icon")
	}
	return &IconImage{Pix: make([]byte, 4*4*4), Width: 4, Height: 4, Format: PixelRGBA}, nil
}

type memPreferences struct {
	lists  map[string][]string
	ints   map[string]int
	floats map[string]float64
}

func newMemPreferences() *memPreferences {
	return &memPreferences{lists: map[string][]string{}, ints: map[string]int{}, floats: map[string]float64{}}
}

func (p *memPreferences) StringList(key string) []string { return p.lists[key] }
func (p *memPreferences) SetStringList(key string, v []string) {
	p.lists[key] = append([]string(nil), v...)
}

func (p *memPreferences) IntWithFallback(key string, fallback int) int {
	if v, ok := p.ints[key]; ok {
		return v
	}
	return fallback
}
func (p *memPreferences) SetInt(key string, v int) { p.ints[key] = v }

func (p *memPreferences) FloatWithFallback(key string, fallback float64) float64 {
	if v, ok := p.floats[key]; ok {
		return v
	}
	return fallback
}
func (p *memPreferences) SetFloat(key string, v float64) { p.floats[key] = v }

type recordingHost struct {
	titles []string
	frames int
	quit   bool
}

func (h *recordingHost) Begin(title string) { h.titles = append(h.titles, title) }
func (h *recordingHost) Frame(*Dialog) bool {
	h.frames++
	return !h.quit
}

// newTestDialog starts in dir with no disk cache and a fake icon source.
func newTestDialog(t *testing.T, dir string, opts ...Option) (*Dialog, *countingTextures) {
	t.Helper()
	tex := newCountingTextures()
	base := []Option{
		WithTextures(tex),
		WithIconSource(&countingIconSource{}),
		WithPreviewCache(""),
		WithDarkTheme(func() bool { return false }),
		WithStartingDirectory(dir),
	}
	d := New(append(base, opts...)...)
	t.Cleanup(d.Close)
	return d, tex
}

func writeFile(t *testing.T, path string, size int, mod time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	if !mod.IsZero() {
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func names(entries []*FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}
