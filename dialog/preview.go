package dialog

import (
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// MaxPreviewSize bounds both edges of a decoded thumbnail.
const MaxPreviewSize = 256

var previewExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tga"}

func isPreviewable(e *FileEntry) bool {
	if e.IsDir {
		return false
	}
	return slices.Contains(previewExtensions, strings.ToLower(filepath.Ext(e.Path)))
}

// previewLoader decodes thumbnails for one content list on a single worker.
// The owner calls stop before touching the list the worker was given.
type previewLoader struct {
	log   *zap.Logger
	cache *previewCache

	cancel context.CancelFunc
	group  *errgroup.Group
}

func (l *previewLoader) running() bool {
	return l.group != nil
}

// start walks a snapshot of entries once, unless a pass is already active.
func (l *previewLoader) start(entries []*FileEntry) {
	if l.running() {
		return
	}

	snapshot := slices.Clone(entries)
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	l.cancel = cancel
	l.group = g

	g.Go(func() error {
		for _, e := range snapshot {
			if ctx.Err() != nil {
				return nil
			}
			if e.HasPreview() || !isPreviewable(e) {
				continue
			}

			p, err := l.load(e.Path)
			if err != nil {
				l.log.Debug("skipping preview", zap.String("path", e.Path), zap.Error(err))
				continue
			}
			e.preview.Store(p)
		}
		return nil
	})
}

// stop cancels the worker and waits for it to return.
func (l *previewLoader) stop() {
	if l.group == nil {
		return
	}
	l.cancel()
	_ = l.group.Wait()
	l.cancel = nil
	l.group = nil
}

func (l *previewLoader) load(path string) (*Preview, error) {
	if l.cache != nil {
		if img, ok := l.cache.load(path); ok {
			return toPreview(img), nil
		}
	}

	img, err := decodeThumbnail(path)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		l.cache.store(path, img)
	}
	return toPreview(img), nil
}

func decodeThumbnail(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		img = applyOrientation(img, readOrientation(f))
	}

	b := img.Bounds()
	if b.Dx() > MaxPreviewSize || b.Dy() > MaxPreviewSize {
		return imaging.Fit(img, MaxPreviewSize, MaxPreviewSize, imaging.Linear), nil
	}
	return img, nil
}

func readOrientation(f *os.File) int {
	x, err := exif.Decode(f)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

// applyOrientation undoes the EXIF orientation so the preview is upright.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func toPreview(img image.Image) *Preview {
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != 4*nrgba.Rect.Dx() {
		b := img.Bounds()
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	return &Preview{
		Pix:    nrgba.Pix,
		Width:  nrgba.Rect.Dx(),
		Height: nrgba.Rect.Dy(),
	}
}

// refreshIconPreview starts the loader in icon views and drops previews otherwise.
func (d *Dialog) refreshIconPreview() {
	if d.zoom >= ZoomPreview {
		d.previews.start(d.content)
		return
	}
	d.clearIconPreview()
}

// clearIconPreview joins the loader and releases every thumbnail.
func (d *Dialog) clearIconPreview() {
	d.previews.stop()
	for _, e := range d.content {
		e.releasePreview(d.textures)
	}
}

// PromotePreviews turns decoded thumbnails into textures.
// Call it once per frame from the render goroutine while in icon view.
func (d *Dialog) PromotePreviews() int {
	n := 0
	for _, e := range d.content {
		if e.preview.Load() == nil {
			continue
		}
		if _, ok := e.PreviewTexture(d.textures); ok {
			n++
		}
	}
	return n
}
