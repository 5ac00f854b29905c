package dialog

import "go.uber.org/zap"

// Option configures a Dialog.
type Option func(*Dialog)

// WithLogger sets the logger. Dialogs are silent by default.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dialog) {
		if log != nil {
			d.log = log
		}
	}
}

// WithTextures sets the texture backend used for icons and thumbnails.
func WithTextures(b TextureBackend) Option {
	return func(d *Dialog) {
		d.textures = b
	}
}

// WithIconSource replaces the platform icon lookup. A nil source always
// uses the built in icons.
func WithIconSource(src IconSource) Option {
	return func(d *Dialog) {
		d.iconSource = src
		d.iconSourceSet = true
	}
}

// WithLocalizer translates the strings the dialog produces itself.
func WithLocalizer(l Localizer) Option {
	return func(d *Dialog) {
		if l != nil {
			d.l = l
		}
	}
}

// WithPreferences persists favorites, zoom and sort order.
func WithPreferences(p Preferences) Option {
	return func(d *Dialog) {
		d.prefs = p
	}
}

// WithDarkTheme tells the dialog whether the host currently uses a dark theme.
func WithDarkTheme(dark func() bool) Option {
	return func(d *Dialog) {
		d.dark = dark
	}
}

// WithHost attaches the presentation layer polled by IsDone.
func WithHost(h Host) Option {
	return func(d *Dialog) {
		d.host = h
	}
}

// WithPreviewCache stores thumbnails below dir. An empty dir disables the cache.
func WithPreviewCache(dir string) Option {
	return func(d *Dialog) {
		d.previewCacheDir = dir
	}
}

// WithStartingDirectory sets the directory shown before the first session.
func WithStartingDirectory(dir string) Option {
	return func(d *Dialog) {
		d.startDir = dir
	}
}
