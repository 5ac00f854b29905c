package dialog

import (
	"sort"
	"strings"
)

// SortContent orders the listing with directories first and remembers the
// column and direction for later refreshes.
func (d *Dialog) SortContent(column SortColumn, dir SortDirection) {
	d.sortColumn = column
	d.sortDir = dir
	if d.prefs != nil {
		d.prefs.SetInt(sortColumnKey, int(column))
		d.prefs.SetInt(sortDirectionKey, int(dir))
	}
	sortEntries(d.content, column, dir)
	d.gen++
}

// SortOrder returns the remembered sort column and direction.
func (d *Dialog) SortOrder() (SortColumn, SortDirection) {
	return d.sortColumn, d.sortDir
}

func sortEntries(entries []*FileEntry, column SortColumn, dir SortDirection) {
	dirs := partitionDirs(entries)

	less := entryLess(column)
	if dir == Descending {
		asc := less
		less = func(a, b *FileEntry) bool { return asc(b, a) }
	}

	for _, part := range [][]*FileEntry{entries[:dirs], entries[dirs:]} {
		sort.SliceStable(part, func(i, j int) bool {
			return less(part[i], part[j])
		})
	}
}

// partitionDirs moves directories in front of files, keeping the relative
// order inside each group, and returns the number of directories.
func partitionDirs(entries []*FileEntry) int {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsDir && !entries[j].IsDir
	})

	n := 0
	for n < len(entries) && entries[n].IsDir {
		n++
	}
	return n
}

func entryLess(column SortColumn) func(a, b *FileEntry) bool {
	switch column {
	case SortByDate:
		return func(a, b *FileEntry) bool {
			return a.Modified.Before(b.Modified)
		}
	case SortBySize:
		return func(a, b *FileEntry) bool {
			return a.Size.Bytes < b.Size.Bytes
		}
	default:
		return func(a, b *FileEntry) bool {
			return strings.ToLower(a.Path) < strings.ToLower(b.Path)
		}
	}
}
