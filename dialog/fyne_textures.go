package dialog

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
)

// FyneTextures is a TextureBackend keeping every texture as a canvas image.
type FyneTextures struct {
	next   TextureID
	images map[TextureID]*canvas.Image
}

// NewFyneTextures returns an empty texture backend.
func NewFyneTextures() *FyneTextures {
	return &FyneTextures{images: map[TextureID]*canvas.Image{}}
}

// CreateTexture copies pix into an NRGBA canvas image.
func (t *FyneTextures) CreateTexture(pix []byte, width, height int, format PixelFormat) TextureID {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	if format == PixelBGRA {
		for i := 0; i+3 < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
		}
	}

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain

	t.next++
	t.images[t.next] = c
	return t.next
}

// DeleteTexture forgets id. Unknown ids are ignored.
func (t *FyneTextures) DeleteTexture(id TextureID) {
	delete(t.images, id)
}

// Image returns the image registered under id, nil once deleted.
func (t *FyneTextures) Image(id TextureID) *canvas.Image {
	return t.images[id]
}

// Len returns the number of live textures.
func (t *FyneTextures) Len() int {
	return len(t.images)
}

// WithFyneApp persists to the app preferences, translates through lang.L
// and follows the app's theme variant.
func WithFyneApp(a fyne.App) Option {
	return func(d *Dialog) {
		d.prefs = a.Preferences()
		d.l = func(s string) string { return lang.L(s) }
		d.dark = func() bool {
			return a.Settings().ThemeVariant() == theme.VariantDark
		}
	}
}
