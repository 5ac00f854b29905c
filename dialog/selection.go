package dialog

import (
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Select marks path as selected. With modifier held in a multiselect
// session the path is toggled instead of replacing the selection.
func (d *Dialog) Select(path string, modifier bool) {
	if modifier && d.multi {
		if i := slices.Index(d.selections, path); i >= 0 {
			d.selections = slices.Delete(d.selections, i, i+1)
		} else {
			d.selections = append(d.selections, path)
		}
	} else {
		d.selections = []string{path}
	}

	d.input = selectionText(d.selections)
	d.revokeConfirmation()
	d.gen++
}

// selectionText renders the selection the way the file name field shows it.
func selectionText(selections []string) string {
	if len(selections) == 1 {
		return selectionName(selections[0])
	}
	quoted := make([]string, len(selections))
	for i, sel := range selections {
		quoted[i] = `"` + selectionName(sel) + `"`
	}
	return strings.Join(quoted, ", ")
}

// selectionName is the file name, or the full path for drive roots.
func selectionName(path string) string {
	if filepath.Dir(path) == path {
		return path
	}
	return filepath.Base(path)
}

// Selections returns the selected paths in selection order.
func (d *Dialog) Selections() []string {
	return slices.Clone(d.selections)
}

// IsSelected reports whether path is part of the selection.
func (d *Dialog) IsSelected(path string) bool {
	return slices.Contains(d.selections, path)
}

// Input returns the text of the file name field.
func (d *Dialog) Input() string {
	return d.input
}

// SetInput replaces the file name field. Editing revokes a granted overwrite.
func (d *Dialog) SetInput(text string) {
	d.input = text
	d.revokeConfirmation()
}

// Click applies a click on content row index. Double clicks open
// directories and finalize files; single clicks select files, or
// directories when picking a directory.
func (d *Dialog) Click(index int, double, modifier bool) bool {
	if index < 0 || index >= len(d.content) {
		return false
	}
	e := d.content[index]

	if double {
		if e.IsDir {
			d.setDirectory(e.Path, true)
			return true
		}
		name := selectionName(e.Path)
		if d.root(d.dir) != nil {
			name = e.Path
		}
		return d.Finalize(name)
	}

	if !e.IsDir || d.kind == OpenDirectory {
		d.Select(e.Path, modifier)
	}
	return true
}

// Finalize commits input as the session result. An empty input outside
// directory mode ends the session without a result.
//
// Saving over an existing file first moves the session to
// StateConfirmPending and returns false; once ConfirmOverwrite(true) was
// called the same Finalize succeeds. Opening reports false and keeps the
// session open when a candidate path does not exist.
func (d *Dialog) Finalize(input string) bool {
	if !d.state.open() || d.state == StateConfirmPending {
		return false
	}

	if input == "" && d.kind != OpenDirectory {
		d.results = nil
		d.state = StateDone
		return true
	}

	path := input
	if d.kind == SaveFile {
		group := d.filter.Group(d.filterIndex)
		if !group.Wildcard() && filepath.Ext(path) == "" && group.Extensions[0] != wildcardExt {
			path += group.Extensions[0]
			d.input = path
			d.gen++
		}

		target := d.resolve(path)
		if target == "" {
			d.log.Debug("no directory to save into", zap.String("dir", d.dir), zap.String("input", path))
			return false
		}
		if exists(target) && d.state != StateConfirmGranted {
			d.state = StateConfirmPending
			return false
		}
	}

	var results []string
	if !d.multi || len(d.selections) <= 1 {
		results = []string{d.resolve(path)}
	} else {
		for _, sel := range d.selections {
			results = append(results, d.resolve(sel))
		}
	}

	if d.kind != SaveFile {
		for _, r := range results {
			if !exists(r) {
				d.results = nil
				d.log.Debug("finalize rejected", zap.String("path", r))
				return false
			}
		}
	}

	d.results = results
	d.state = StateDone
	return true
}

// ConfirmOverwrite answers the overwrite question raised by Finalize.
func (d *Dialog) ConfirmOverwrite(yes bool) {
	if d.state != StateConfirmPending {
		return
	}
	if yes {
		d.state = StateConfirmGranted
	} else {
		d.state = StateShowing
	}
}

// ConfirmationPending reports whether the host should ask about overwriting.
func (d *Dialog) ConfirmationPending() bool {
	return d.state == StateConfirmPending
}

func (d *Dialog) revokeConfirmation() {
	if d.state == StateConfirmGranted {
		d.state = StateShowing
	}
}

// resolve makes p absolute against the current directory. Pseudo
// directories only hold absolute children, so there p must name one of the
// listed entries; "" is returned otherwise.
func (d *Dialog) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if d.root(d.dir) == nil {
		return filepath.Join(d.dir, p)
	}

	for _, sel := range d.selections {
		if selectionName(sel) == p {
			return sel
		}
	}
	for _, e := range d.content {
		if selectionName(e.Path) == p {
			return e.Path
		}
	}
	return ""
}
