package dialog

import (
	"image"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFyneTextures(t *testing.T) {
	tex := NewFyneTextures()

	bgra := tex.CreateTexture([]byte{1, 2, 3, 4}, 1, 1, PixelBGRA)
	rgba := tex.CreateTexture([]byte{1, 2, 3, 4}, 1, 1, PixelRGBA)
	assert.NotEqual(t, bgra, rgba)
	assert.Equal(t, 2, tex.Len())

	img := tex.Image(bgra).Image.(*image.NRGBA)
	assert.Equal(t, []byte{3, 2, 1, 4}, img.Pix)
	img = tex.Image(rgba).Image.(*image.NRGBA)
	assert.Equal(t, []byte{1, 2, 3, 4}, img.Pix)

	tex.DeleteTexture(bgra)
	assert.Nil(t, tex.Image(bgra))
	assert.Equal(t, 1, tex.Len())
}

func newHostedDialog(t *testing.T, dir string) (*Dialog, *FyneHost) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	host := NewFyneHost(a)
	d := New(
		WithFyneApp(a),
		WithHost(host),
		WithTextures(host.Textures()),
		WithIconSource(nil),
		WithPreviewCache(""),
		WithStartingDirectory(dir),
	)
	t.Cleanup(d.Close)
	return d, host
}

func TestFyneHost_WindowCloseCancels(t *testing.T) {
	dir := t.TempDir()
	d, host := newHostedDialog(t, dir)

	require.True(t, d.Open("k", "Pick", ".*", false, dir))
	assert.False(t, d.IsDone("k"))
	require.NotNil(t, host.Window())
	assert.Equal(t, "Pick", host.Window().Title())

	host.Window().Close()
	assert.True(t, d.IsDone("k"))
	assert.Empty(t, d.Results())
}

func TestFyneHost_FollowsDialog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(dir, "b.txt"), 1, time.Time{})
	d, host := newHostedDialog(t, dir)

	require.True(t, d.Open("k", "Pick", "Text{.txt}", false, dir))
	require.False(t, d.IsDone("k"))
	assert.Equal(t, 2, host.list.Length())
	assert.Equal(t, dir, host.pathEntry.Text)

	d.Select(filepath.Join(dir, "b.txt"), false)
	require.False(t, d.IsDone("k"))
	assert.Equal(t, "b.txt", host.nameEntry.Text)

	host.nameEntry.SetText("c.txt")
	assert.Equal(t, "c.txt", d.Input())

	d.SetZoom(ZoomPreview)
	require.False(t, d.IsDone("k"))
	require.NotNil(t, host.grid)
	assert.Equal(t, 2, host.grid.Length())

	d.Finalize("a.txt")
	assert.True(t, d.IsDone("k"))
	host.Close()
	assert.Nil(t, host.Window())
	assert.Equal(t, filepath.Join(dir, "a.txt"), d.Result())
}

func TestFyneHost_TypeToSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "apple.txt"), 1, time.Time{})
	writeFile(t, filepath.Join(dir, "berry.txt"), 1, time.Time{})
	d, host := newHostedDialog(t, dir)

	require.True(t, d.Open("k", "Pick", ".*", false, dir))
	require.False(t, d.IsDone("k"))

	c := host.Window().Canvas()
	c.Unfocus()
	host.typedRuneHook('b')
	assert.Equal(t, "b", host.search.Text)
	assert.Equal(t, host.search, c.Focused())
	assert.Equal(t, "b", d.Search())

	// The search entry handles its own typing.
	host.typedRuneHook('e')
	assert.Equal(t, "b", host.search.Text)

	// Other entries keep their input.
	host.search.SetText("")
	c.Focus(host.nameEntry)
	host.typedRuneHook('x')
	assert.Empty(t, host.search.Text)
}

func TestFyneHost_EnterFinalizesSelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), 1, time.Time{})
	d, host := newHostedDialog(t, dir)

	require.True(t, d.Open("k", "Pick", ".*", false, dir))
	require.False(t, d.IsDone("k"))
	c := host.Window().Canvas()

	// Nothing selected yet.
	c.Unfocus()
	host.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.False(t, d.IsDone("k"))

	d.Select(filepath.Join(dir, "a.txt"), false)
	c.Focus(host.search)
	host.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyEnter})
	assert.False(t, d.IsDone("k"))

	c.Unfocus()
	host.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyEnter})
	assert.True(t, d.IsDone("k"))
	assert.Equal(t, filepath.Join(dir, "a.txt"), d.Result())
}

func TestFyneHost_EnterOpensSelectedFolder(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	writeFile(t, filepath.Join(sub, "x.txt"), 1, time.Time{})
	d, host := newHostedDialog(t, dir)

	require.True(t, d.Open("k", "Folder", "", false, dir))
	require.False(t, d.IsDone("k"))

	d.Select(sub, false)
	host.Window().Canvas().Unfocus()
	host.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, sub, d.Directory())
	assert.False(t, d.IsDone("k"))

	host.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.True(t, d.IsDone("k"))
	assert.Empty(t, d.Results())
}
