package dialog

import (
	"errors"
	"os"

	"go.uber.org/zap"
)

var errNoIconService = errors.New("no platform icon service")

// IconImage is raw icon pixel data, 4 bytes per pixel.
type IconImage struct {
	Pix    []byte
	Width  int
	Height int
	Format PixelFormat
}

func (i *IconImage) valid() bool {
	return i != nil && i.Width > 0 && i.Height > 0 && len(i.Pix) >= i.Width*i.Height*4
}

// IconSource looks up the icon the desktop associates with a path.
// Paths that do not exist, like the sidebar pseudo directories, are valid input.
type IconSource interface {
	Icon(path string) (*IconImage, error)
}

// settingsResetter is implemented by sources that keep desktop settings
// between lookups.
type settingsResetter interface {
	reset()
}

// iconCache maps paths to textures for one session.
type iconCache struct {
	textures TextureBackend
	source   IconSource
	dark     func() bool
	log      *zap.Logger

	handles  map[string]TextureID
	fallback map[bool]TextureID
}

func newIconCache(textures TextureBackend, source IconSource, dark func() bool, log *zap.Logger) *iconCache {
	return &iconCache{
		textures: textures,
		source:   source,
		dark:     dark,
		log:      log,
		handles:  map[string]TextureID{},
		fallback: map[bool]TextureID{},
	}
}

func (c *iconCache) get(path string) TextureID {
	if id, ok := c.handles[path]; ok {
		return id
	}

	var id TextureID
	img, err := c.lookup(path)
	if err == nil {
		id = c.textures.CreateTexture(img.Pix, img.Width, img.Height, img.Format)
	} else {
		c.log.Debug("using fallback icon", zap.String("path", path), zap.Error(err))
		id = c.fallbackTexture(isFolderLike(path))
	}

	c.handles[path] = id
	return id
}

func (c *iconCache) lookup(path string) (*IconImage, error) {
	if c.source == nil {
		return nil, errNoIconService
	}
	img, err := c.source.Icon(path)
	if err != nil {
		return nil, err
	}
	if !img.valid() {
		return nil, errors.New("icon source returned an empty image")
	}
	return img, nil
}

// fallbackTexture shares one texture per icon kind among all paths.
func (c *iconCache) fallbackTexture(folder bool) TextureID {
	if id, ok := c.fallback[folder]; ok {
		return id
	}
	dark := c.dark != nil && c.dark()
	id := c.textures.CreateTexture(fallbackPixels(folder, dark), DefaultIconSize, DefaultIconSize, PixelBGRA)
	c.fallback[folder] = id
	return id
}

// clear deletes every texture exactly once and empties the cache.
func (c *iconCache) clear() {
	deleted := map[TextureID]bool{}
	release := func(id TextureID) {
		if deleted[id] {
			return
		}
		deleted[id] = true
		c.textures.DeleteTexture(id)
	}

	for _, id := range c.handles {
		release(id)
	}
	for _, id := range c.fallback {
		release(id)
	}

	c.handles = map[string]TextureID{}
	c.fallback = map[bool]TextureID{}

	if r, ok := c.source.(settingsResetter); ok {
		r.reset()
	}
}

func (c *iconCache) len() int {
	return len(c.handles)
}

// isFolderLike treats missing paths as folders so the sidebar pseudo
// directories get a folder icon.
func isFolderLike(path string) bool {
	info, err := os.Stat(path)
	return err != nil || info.IsDir()
}

// Icon returns the texture for path, resolving it on first use.
// Must be called from the render goroutine.
func (d *Dialog) Icon(path string) TextureID {
	return d.icons.get(path)
}
