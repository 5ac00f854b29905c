package dialog

import (
	"path/filepath"
	"slices"
)

// Directory returns the directory being shown, possibly a pseudo directory.
func (d *Dialog) Directory() string {
	return d.dir
}

// SetDirectory shows path and records the previous directory in the back history.
func (d *Dialog) SetDirectory(path string) {
	d.setDirectory(path, true)
}

// NavigateTo is SetDirectory for typed paths: it does nothing unless the
// path exists.
func (d *Dialog) NavigateTo(path string) bool {
	path = normalizeDir(path)
	if d.root(path) == nil && !exists(path) {
		return false
	}
	d.setDirectory(path, true)
	return true
}

// Refresh lists the current directory again.
func (d *Dialog) Refresh() {
	d.setDirectory(d.dir, false)
}

// Back returns to the previously shown directory.
func (d *Dialog) Back() bool {
	if len(d.back) == 0 {
		return false
	}
	prev := d.back[len(d.back)-1]
	d.back = d.back[:len(d.back)-1]
	d.forward = append(d.forward, d.dir)
	d.setDirectory(prev, false)
	return true
}

// Forward undoes the last Back.
func (d *Dialog) Forward() bool {
	if len(d.forward) == 0 {
		return false
	}
	next := d.forward[len(d.forward)-1]
	d.forward = d.forward[:len(d.forward)-1]
	d.back = append(d.back, d.dir)
	d.setDirectory(next, false)
	return true
}

// Up shows the parent directory.
func (d *Dialog) Up() bool {
	if d.root(d.dir) != nil {
		return false
	}
	parent := filepath.Dir(d.dir)
	if parent == d.dir {
		return false
	}
	d.setDirectory(parent, true)
	return true
}

// CanBack reports whether Back would do anything.
func (d *Dialog) CanBack() bool { return len(d.back) > 0 }

// CanForward reports whether Forward would do anything.
func (d *Dialog) CanForward() bool { return len(d.forward) > 0 }

// History returns copies of the back and forward stacks, oldest first.
func (d *Dialog) History() (back, forward []string) {
	return slices.Clone(d.back), slices.Clone(d.forward)
}

// setDirectory swaps the content list for the listing of path. The preview
// worker is joined before the old list is dropped.
func (d *Dialog) setDirectory(path string, addHistory bool) {
	path = normalizeDir(path)
	same := path == d.dir

	if addHistory && !same {
		d.back = append(d.back, d.dir)
	}
	d.dir = path

	d.clearIconPreview()
	d.content = nil

	if d.kind != SaveFile {
		d.input = ""
	}
	d.selections = nil
	d.revokeConfirmation()

	if !same {
		d.search = ""
		d.icons.clear()
	}

	d.content = d.listContent()
	sortEntries(d.content, d.sortColumn, d.sortDir)
	d.refreshIconPreview()
	d.gen++
}

func (d *Dialog) refreshIfShowing(dir string) {
	if d.dir == dir {
		d.setDirectory(dir, false)
	}
}

// normalizeDir makes path absolute. Bare drive letters get their separator,
// they mean the drive's working directory otherwise.
func normalizeDir(path string) string {
	if path == "" {
		return path
	}
	if v := filepath.VolumeName(path); v != "" && v == path {
		path += string(filepath.Separator)
	}
	return cleanPath(path)
}
