package dialog

import (
	"path/filepath"
	"slices"
)

// Crumb is one clickable element of the path bar.
type Crumb struct {
	Name string
	Path string
}

// Breadcrumbs splits the current directory into its ancestors, root first.
func (d *Dialog) Breadcrumbs() []Crumb {
	if d.dir == "" {
		return nil
	}
	if d.root(d.dir) != nil {
		return []Crumb{{Name: d.l(d.dir), Path: d.dir}}
	}

	var crumbs []Crumb
	current := d.dir
	for {
		crumbs = append(crumbs, Crumb{Name: displayName(current), Path: current})

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	slices.Reverse(crumbs)
	return crumbs
}
