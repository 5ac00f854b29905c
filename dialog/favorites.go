package dialog

import (
	"path/filepath"
	"slices"
)

// Favorites returns the user's favorite locations in the order they were added.
func (d *Dialog) Favorites() []string {
	return slices.Clone(d.favorites)
}

// IsFavorite reports whether path is one of the favorites.
func (d *Dialog) IsFavorite(path string) bool {
	return slices.Contains(d.favorites, cleanPath(path))
}

// AddFavorite adds an existing location to the favorites and the Quick Access
// node. Duplicates and missing paths are ignored.
func (d *Dialog) AddFavorite(path string) bool {
	path = cleanPath(path)
	if d.IsFavorite(path) || !exists(path) {
		return false
	}

	d.favorites = append(d.favorites, path)
	if quick := d.root(QuickAccess); quick != nil {
		quick.Children = append(quick.Children, &TreeNode{Path: path})
	}
	d.saveFavorites()
	d.refreshIfShowing(QuickAccess)
	return true
}

// RemoveFavorite drops path from the favorites and the Quick Access node.
func (d *Dialog) RemoveFavorite(path string) bool {
	path = cleanPath(path)
	i := slices.Index(d.favorites, path)
	if i < 0 {
		return false
	}
	d.favorites = slices.Delete(d.favorites, i, i+1)

	// Favorites are appended after the built in places, so drop the last match.
	if quick := d.root(QuickAccess); quick != nil {
		for j := len(quick.Children) - 1; j >= 0; j-- {
			if quick.Children[j].Path == path {
				quick.Children = slices.Delete(quick.Children, j, j+1)
				break
			}
		}
	}
	d.saveFavorites()
	d.refreshIfShowing(QuickAccess)
	return true
}

func (d *Dialog) loadFavorites() {
	if d.prefs == nil {
		return
	}
	for _, p := range d.prefs.StringList(favoritesKey) {
		if p != "" && !slices.Contains(d.favorites, p) {
			d.favorites = append(d.favorites, p)
		}
	}
}

func (d *Dialog) saveFavorites() {
	if d.prefs == nil {
		return
	}
	d.prefs.SetStringList(favoritesKey, d.favorites)
}

func cleanPath(path string) string {
	if path == QuickAccess || path == ThisPC || path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
