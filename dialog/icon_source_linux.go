//go:build linux && !android

package dialog

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/storage"
	"github.com/FyshOS/fancyfs"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// themeIconSource resolves icons from the freedesktop icon theme directories.
type themeIconSource struct {
	theme func() string
	dirs  []string
	log   *zap.Logger

	// theme name read once until reset
	themeName string
	themeRead bool

	// resolved icon file per theme name and icon name, "" for misses
	resolved map[string]map[string]string
}

func newPlatformIconSource(log *zap.Logger) IconSource {
	return newThemeIconSource(iconThemeName, iconBaseDirs(), log)
}

func newThemeIconSource(theme func() string, dirs []string, log *zap.Logger) *themeIconSource {
	return &themeIconSource{
		theme:    theme,
		dirs:     dirs,
		log:      log,
		resolved: map[string]map[string]string{},
	}
}

func iconBaseDirs() []string {
	var dirs []string
	home, err := os.UserHomeDir()
	if err == nil {
		dirs = append(dirs, filepath.Join(home, ".icons"))
	}
	if data := os.Getenv("XDG_DATA_HOME"); data != "" {
		dirs = append(dirs, filepath.Join(data, "icons"))
	} else if home != "" {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "icons"))
	}
	return append(dirs, "/usr/share/icons")
}

func (s *themeIconSource) Icon(path string) (*IconImage, error) {
	if img := folderDecoration(path); img != nil {
		return img, nil
	}

	theme := s.currentTheme()
	for _, name := range iconNames(path) {
		file := s.locate(theme, name)
		if file == "" && theme != defaultIconTheme {
			file = s.locate(defaultIconTheme, name)
		}
		if file == "" {
			continue
		}

		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
		return iconFromImage(img), nil
	}
	return nil, fmt.Errorf("no icon in theme %q for %s", theme, path)
}

// currentTheme asks the desktop for the icon theme on first use only.
func (s *themeIconSource) currentTheme() string {
	if !s.themeRead {
		s.themeName = s.theme()
		s.themeRead = true
	}
	return s.themeName
}

// reset makes the next lookup read the icon theme again.
func (s *themeIconSource) reset() {
	s.themeRead = false
}

// locate finds <base>/<theme>/32x32/<context>/<name>.png.
func (s *themeIconSource) locate(theme, name string) string {
	cache, ok := s.resolved[theme]
	if !ok {
		cache = map[string]string{}
		s.resolved[theme] = cache
	} else if file, ok := cache[name]; ok {
		return file
	}

	size := fmt.Sprintf("%dx%d", DefaultIconSize, DefaultIconSize)
	for _, base := range s.dirs {
		contexts, err := os.ReadDir(filepath.Join(base, theme, size))
		if err != nil {
			continue
		}
		for _, ctx := range contexts {
			file := filepath.Join(base, theme, size, ctx.Name(), name+".png")
			if exists(file) {
				cache[name] = file
				return file
			}
		}
	}

	cache[name] = ""
	return ""
}

// iconNames lists the theme icon names to try for path, most specific first.
func iconNames(path string) []string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		var names []string
		if home, err := os.UserHomeDir(); err == nil && filepath.Clean(path) == filepath.Clean(home) {
			names = append(names, "user-home")
		}
		return append(names, "folder")
	}

	var names []string
	mtype, err := mimetype.DetectFile(path)
	if err == nil {
		for m := mtype; m != nil; m = m.Parent() {
			mime, _, _ := strings.Cut(m.String(), ";")
			names = append(names, strings.ReplaceAll(mime, "/", "-"))
		}
		if major, _, ok := strings.Cut(mtype.String(), "/"); ok {
			names = append(names, major+"-x-generic")
		}
	}
	if info.Mode()&0o111 != 0 {
		names = append(names, "application-x-executable")
	}
	return append(names, "text-x-generic")
}

// folderDecoration returns the custom icon a folder carries in its FancyFS metadata.
func folderDecoration(path string) *IconImage {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	details, err := fancyfs.DetailsForFolder(storage.NewFileURI(path))
	if err != nil || details == nil || details.BackgroundResource == nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(details.BackgroundResource.Content()))
	if err != nil {
		return nil
	}
	return iconFromImage(img)
}
