package dialog

import (
	"image"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeThumbnail_Fits(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wide.png")
	writePNG(t, p, 600, 300)

	img, err := decodeThumbnail(p)
	require.NoError(t, err)
	assert.Equal(t, MaxPreviewSize, img.Bounds().Dx())
	assert.Equal(t, MaxPreviewSize/2, img.Bounds().Dy())

	small := filepath.Join(t.TempDir(), "small.png")
	writePNG(t, small, 10, 20)
	img, err = decodeThumbnail(small)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())
}

func TestDecodeThumbnail_NotAnImage(t *testing.T) {
	p := filepath.Join(t.TempDir(), "fake.png")
	writeFile(t, p, 64, time.Time{})

	_, err := decodeThumbnail(p)
	assert.Error(t, err)
}

func TestApplyOrientation(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))

	assert.Equal(t, 4, applyOrientation(img, 1).Bounds().Dx())
	assert.Equal(t, 4, applyOrientation(img, 3).Bounds().Dx())
	for _, o := range []int{5, 6, 7, 8} {
		b := applyOrientation(img, o).Bounds()
		assert.Equal(t, 2, b.Dx(), "orientation %d", o)
		assert.Equal(t, 4, b.Dy(), "orientation %d", o)
	}
}

func TestToPreview(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	p := toPreview(src)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 2, p.Height)
	assert.Len(t, p.Pix, 3*2*4)
}

func previewDialog(t *testing.T) (*Dialog, *countingTextures) {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "one.png"), 40, 30)
	writePNG(t, filepath.Join(dir, "two.png"), 300, 20)
	writeFile(t, filepath.Join(dir, "notes.txt"), 5, time.Time{})
	writeFile(t, filepath.Join(dir, "broken.jpg"), 5, time.Time{})
	return newTestDialog(t, dir)
}

func waitForPreviews(t *testing.T, d *Dialog, n int) {
	t.Helper()
	entries := d.Content()
	require.Eventually(t, func() bool {
		ready := 0
		for _, e := range entries {
			if e.HasPreview() {
				ready++
			}
		}
		return ready == n
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPreviews_LoadedInIconView(t *testing.T) {
	d, tex := previewDialog(t)

	d.SetZoom(ZoomPreview - 1)
	assert.False(t, d.previews.running())

	d.SetZoom(ZoomPreview)
	require.True(t, d.previews.running())
	waitForPreviews(t, d, 2)

	assert.Equal(t, 2, d.PromotePreviews())
	assert.Equal(t, 0, d.PromotePreviews())
	assert.Equal(t, 2, tex.created)

	for _, e := range d.Content() {
		if e.Name() == "two.png" {
			id, ok := e.PreviewTexture(tex)
			require.True(t, ok)
			assert.True(t, tex.live[id])
			assert.Nil(t, e.Preview())
		}
	}

	d.SetZoom(ZoomListView)
	assert.False(t, d.previews.running())
	assert.Empty(t, tex.live)
	for _, e := range d.Content() {
		assert.False(t, e.HasPreview())
	}
}

func TestPreviews_JoinedBeforeDirectoryChange(t *testing.T) {
	d, tex := previewDialog(t)

	d.SetZoom(MaxZoom)
	waitForPreviews(t, d, 2)
	d.PromotePreviews()
	old := d.Content()

	d.SetDirectory(t.TempDir())
	assert.Empty(t, tex.live)
	for _, e := range old {
		assert.False(t, e.HasPreview())
	}
}

func TestPreviews_ReleasedOnClose(t *testing.T) {
	d, tex := previewDialog(t)
	dir := d.Directory()

	require.True(t, d.Open("o", "Open", "Images{.png,.jpg}", false, dir))
	d.SetZoom(ZoomPreview + 2)
	waitForPreviews(t, d, 2)
	d.PromotePreviews()
	d.Icon(filepath.Join(dir, "one.png"))

	d.Cancel()
	require.True(t, d.IsDone("o"))
	d.Close()

	assert.False(t, d.previews.running())
	assert.Empty(t, tex.live)
}

func TestZoom(t *testing.T) {
	prefs := newMemPreferences()
	d, _ := newTestDialog(t, t.TempDir(), WithPreferences(prefs))

	assert.False(t, d.IconView())
	assert.Equal(t, float64(DefaultIconSize+16), d.CellSize())

	d.SetZoom(100)
	assert.Equal(t, MaxZoom, d.Zoom())
	assert.True(t, d.IconView())
	assert.Equal(t, MaxZoom, prefs.floats[zoomKey])

	d.AdjustZoom(-30)
	assert.Equal(t, ZoomListView, d.Zoom())

	// Half a notch does nothing, the second half zooms in.
	d.ScrollZoom(zoomScrollNotch / 2)
	assert.Equal(t, ZoomListView, d.Zoom())
	d.ScrollZoom(zoomScrollNotch / 2)
	assert.Equal(t, ZoomListView+1, d.Zoom())

	again, _ := newTestDialog(t, t.TempDir(), WithPreferences(prefs))
	assert.Equal(t, ZoomListView+1, again.Zoom())
}

func TestZoomScroller(t *testing.T) {
	var z zoomScroller
	assert.Equal(t, 0, z.steps(10))
	assert.Equal(t, 1, z.steps(30))
	assert.Equal(t, 2, z.steps(80))
	assert.Equal(t, -1, z.steps(-40))
	assert.Equal(t, 0, z.steps(float32(math.NaN())))
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, ZoomListView, clampZoom(-5))
	assert.Equal(t, ZoomListView, clampZoom(math.NaN()))
	assert.Equal(t, MaxZoom, clampZoom(MaxZoom+1))
	assert.Equal(t, 7.5, clampZoom(7.5))
}
