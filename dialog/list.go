package dialog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// listContent builds the content list for the current directory.
// The preview loader must not be running.
func (d *Dialog) listContent() []*FileEntry {
	if node := d.root(d.dir); node != nil {
		entries := make([]*FileEntry, 0, len(node.Children))
		for _, c := range node.Children {
			entries = append(entries, newFileEntry(c.Path))
		}
		return entries
	}

	items, err := os.ReadDir(d.dir)
	if err != nil {
		// ReadDir still returns what it read before the failure.
		d.log.Debug("could not list directory", zap.String("dir", d.dir), zap.Error(err))
	}

	group := d.filter.Group(d.filterIndex)
	query := strings.ToLower(d.search)

	entries := make([]*FileEntry, 0, len(items))
	for _, item := range items {
		e := newFileEntry(filepath.Join(d.dir, item.Name()))

		if !e.IsDir && d.kind == OpenDirectory {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Path), query) {
			continue
		}
		if !e.IsDir && d.kind != OpenDirectory && !group.Matches(e.Path) {
			continue
		}

		entries = append(entries, e)
	}
	return entries
}

// Content returns the current, filtered and sorted, directory listing.
func (d *Dialog) Content() []*FileEntry {
	return d.content
}
