package dialog

import (
	"path/filepath"
	"strings"
)

const (
	allFilesLabel = "All Files (*.*)"
	wildcardExt   = ".*"
)

// FilterGroup is one entry of the file type selector.
type FilterGroup struct {
	Label string
	// Extensions with their leading dot. Empty accepts every file.
	Extensions []string
}

// Wildcard reports whether the group accepts any file.
func (g FilterGroup) Wildcard() bool {
	return len(g.Extensions) == 0
}

// Matches reports whether the file name passes the group's extension list.
func (g FilterGroup) Matches(name string) bool {
	if g.Wildcard() {
		return true
	}
	ext := filepath.Ext(name)
	for _, e := range g.Extensions {
		if e == wildcardExt || strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// FilterSpec is a parsed filter string.
type FilterSpec struct {
	Groups []FilterGroup
}

// Display returns the group labels, each terminated by a NUL byte,
// ready for a combo control.
func (f FilterSpec) Display() string {
	var b strings.Builder
	for _, g := range f.Groups {
		b.WriteString(g.Label)
		b.WriteByte(0)
	}
	return b.String()
}

// Labels returns the group labels in order.
func (f FilterSpec) Labels() []string {
	labels := make([]string, len(f.Groups))
	for i, g := range f.Groups {
		labels[i] = g.Label
	}
	return labels
}

// Group returns group i, or a wildcard group when i is out of range.
func (f FilterSpec) Group(i int) FilterGroup {
	if i < 0 || i >= len(f.Groups) {
		return FilterGroup{}
	}
	return f.Groups[i]
}

// ParseFilter parses filters of the form
//
//	Images{.png,.jpg},Text{.txt},.*
//
// Labels precede a brace enclosed extension list, groups are separated by
// commas and a bare ".*" (or a list holding only ".*") is the "all files"
// group. Malformed input is never rejected, the scan keeps whatever it
// recognised.
func ParseFilter(filter string, l Localizer) FilterSpec {
	var spec FilterSpec
	if filter == "" {
		return spec
	}
	if l == nil {
		l = identity
	}

	var (
		exts      []string
		label     string
		lastSplit int
		lastExt   int
		inExts    bool
		consumed  bool
	)
	closeGroup := func() {
		spec.Groups = append(spec.Groups, newFilterGroup(label, exts, l))
		exts = nil
		inExts = false
		consumed = true
	}

	for i := 0; i < len(filter); i++ {
		switch filter[i] {
		case ',':
			if inExts {
				exts = append(exts, strings.TrimSpace(filter[lastExt:i]))
				lastExt = i + 1
				continue
			}
			lastSplit = i + 1
			consumed = false
		case '{':
			if inExts {
				continue
			}
			label = filter[lastSplit:i]
			inExts = true
			lastExt = i + 1
		case '}':
			if !inExts {
				continue
			}
			exts = append(exts, strings.TrimSpace(filter[lastExt:i]))
			closeGroup()
		}
	}

	if inExts {
		if rest := strings.TrimSpace(filter[lastExt:]); rest != "" {
			exts = append(exts, rest)
		}
		closeGroup()
	}

	if !consumed && (lastSplit != 0 || len(spec.Groups) == 0) {
		if rest := filter[lastSplit:]; rest != "" {
			spec.Groups = append(spec.Groups, newFilterGroup(rest, nil, l))
		}
	}

	return spec
}

func newFilterGroup(label string, exts []string, l Localizer) FilterGroup {
	if label == wildcardExt || (len(exts) == 1 && exts[0] == wildcardExt) {
		return FilterGroup{Label: l(allFilesLabel)}
	}
	return FilterGroup{Label: label, Extensions: exts}
}
