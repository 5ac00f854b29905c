package dialog

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

var sizeUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB"}

// SmartSize is a byte count scaled to a human readable unit.
type SmartSize struct {
	Bytes uint64
	Value float64
	Unit  string
}

// NewSmartSize picks the largest binary unit the byte count reaches,
// capped at TiB.
func NewSmartSize(bytes uint64) SmartSize {
	idx := 0
	for idx < len(sizeUnits)-1 && bytes >= uint64(1)<<(10*(idx+1)) {
		idx++
	}
	return SmartSize{
		Bytes: bytes,
		Value: float64(bytes) / float64(uint64(1)<<(10*idx)),
		Unit:  sizeUnits[idx],
	}
}

func (s SmartSize) String() string {
	return fmt.Sprintf("%.3f %s", s.Value, s.Unit)
}

// Preview is a decoded thumbnail in non premultiplied RGBA.
type Preview struct {
	Pix    []byte
	Width  int
	Height int
}

// FileEntry is one row of the content list.
type FileEntry struct {
	Path     string
	IsDir    bool
	Size     SmartSize
	Modified time.Time
	// Err holds the first error hit while reading metadata.
	Err error

	preview        atomic.Pointer[Preview]
	textured       atomic.Bool
	previewTexture TextureID
}

func newFileEntry(path string) *FileEntry {
	e := &FileEntry{Path: path, Modified: time.Unix(0, 0)}

	info, err := os.Stat(path)
	if err != nil {
		e.Err = err
		// Broken symlinks still describe themselves.
		info, err = os.Lstat(path)
		if err != nil {
			return e
		}
	}

	e.IsDir = info.IsDir()
	e.Modified = info.ModTime()
	if !e.IsDir && info.Size() > 0 {
		e.Size = NewSmartSize(uint64(info.Size()))
	} else {
		e.Size = NewSmartSize(0)
	}
	return e
}

// Name is the last path element.
func (e *FileEntry) Name() string {
	return displayName(e.Path)
}

// Preview returns the decoded thumbnail pixels, if the loader produced any
// and they were not yet turned into a texture.
func (e *FileEntry) Preview() *Preview {
	return e.preview.Load()
}

// HasPreview reports whether a thumbnail is available either as pixels or texture.
func (e *FileEntry) HasPreview() bool {
	return e.textured.Load() || e.preview.Load() != nil
}

// PreviewTexture turns the decoded thumbnail into a texture the first time it
// is asked for and frees the pixels. Must be called from the render goroutine.
func (e *FileEntry) PreviewTexture(b TextureBackend) (TextureID, bool) {
	if e.textured.Load() {
		return e.previewTexture, true
	}
	p := e.preview.Load()
	if p == nil || b == nil {
		return 0, false
	}
	e.previewTexture = b.CreateTexture(p.Pix, p.Width, p.Height, PixelRGBA)
	e.textured.Store(true)
	e.preview.Store(nil)
	return e.previewTexture, true
}

func (e *FileEntry) releasePreview(b TextureBackend) {
	if e.textured.Load() && b != nil {
		b.DeleteTexture(e.previewTexture)
	}
	e.textured.Store(false)
	e.previewTexture = 0
	e.preview.Store(nil)
}
