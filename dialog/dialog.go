package dialog

import (
	"os"
	"slices"

	"go.uber.org/zap"
)

// Dialog is an immediate mode file dialog. One Dialog runs at most one
// session at a time; all methods must be called from the goroutine that
// renders it.
type Dialog struct {
	log           *zap.Logger
	textures      TextureBackend
	iconSource    IconSource
	iconSourceSet bool
	l             Localizer
	prefs         Preferences
	dark          func() bool
	host          Host

	previewCacheDir string
	startDir        string

	icons    *iconCache
	previews *previewLoader
	scroll   zoomScroller

	tree      []*TreeNode
	favorites []string

	// session
	key         string
	title       string
	state       State
	kind        DialogType
	multi       bool
	filter      FilterSpec
	filterIndex int
	dir         string
	back        []string
	forward     []string
	content     []*FileEntry
	selections  []string
	input       string
	search      string
	sortColumn  SortColumn
	sortDir     SortDirection
	zoom        float64
	results     []string

	// bumped whenever something a host draws changes
	gen uint64
}

// New creates a dialog showing the working directory.
func New(opts ...Option) *Dialog {
	d := &Dialog{
		log:             zap.NewNop(),
		l:               identity,
		dark:            systemPrefersDark,
		previewCacheDir: DefaultPreviewCacheDir(),
		zoom:            ZoomListView,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.textures == nil {
		d.textures = &handleAllocator{}
	}
	if !d.iconSourceSet {
		d.iconSource = newPlatformIconSource(d.log)
	}
	d.icons = newIconCache(d.textures, d.iconSource, d.dark, d.log)

	cache := newPreviewCache(d.previewCacheDir, d.log)
	if cache != nil {
		go cache.cleanupCache()
	}
	d.previews = &previewLoader{log: d.log, cache: cache}

	d.loadPrefs()
	d.buildTree()

	start := d.startDir
	if start == "" {
		if wd, err := os.Getwd(); err == nil {
			start = wd
		} else {
			start = QuickAccess
		}
	}
	d.setDirectory(start, false)
	return d
}

func (d *Dialog) loadPrefs() {
	if d.prefs == nil {
		return
	}
	d.zoom = clampZoom(d.prefs.FloatWithFallback(zoomKey, ZoomListView))

	d.sortColumn = SortColumn(d.prefs.IntWithFallback(sortColumnKey, int(SortByName)))
	if d.sortColumn < SortByName || d.sortColumn > SortBySize {
		d.sortColumn = SortByName
	}
	d.sortDir = SortDirection(d.prefs.IntWithFallback(sortDirectionKey, int(Ascending)))
	if d.sortDir != Descending {
		d.sortDir = Ascending
	}

	d.loadFavorites()
}

// Save starts a save file session. It fails while another session holds a key.
func (d *Dialog) Save(key, title, filter, startingDir string) bool {
	return d.begin(key, title, filter, false, startingDir, SaveFile)
}

// Open starts an open file session, or an open directory session when filter
// is empty. It fails while another session holds a key.
func (d *Dialog) Open(key, title, filter string, multiselect bool, startingDir string) bool {
	kind := OpenFile
	if filter == "" {
		kind = OpenDirectory
	}
	return d.begin(key, title, filter, multiselect, startingDir, kind)
}

func (d *Dialog) begin(key, title, filter string, multiselect bool, startingDir string, kind DialogType) bool {
	if d.key != "" || key == "" {
		return false
	}

	d.key = key
	d.title = title
	d.state = StateOpening
	d.kind = kind
	d.multi = multiselect
	d.results = nil
	d.input = ""
	d.selections = nil
	d.filter = ParseFilter(filter, d.l)
	d.filterIndex = 0

	dir := d.dir
	if startingDir != "" {
		dir = startingDir
	}
	d.setDirectory(dir, false)

	d.log.Debug("session started",
		zap.String("key", key),
		zap.Stringer("type", kind),
		zap.String("dir", d.dir))
	return true
}

// IsDone reports whether the session started under key has finished. While
// the session is open every call lets the Host draw a frame.
func (d *Dialog) IsDone(key string) bool {
	if key == "" || d.key != key {
		return false
	}

	if d.state == StateOpening {
		d.state = StateShowing
		if d.host != nil {
			d.host.Begin(d.title)
		}
	}

	if d.state.open() && d.host != nil && !d.host.Frame(d) {
		d.Cancel()
	}

	return d.state == StateDone
}

// Cancel ends the session without a result.
func (d *Dialog) Cancel() {
	if !d.state.open() {
		return
	}
	d.results = nil
	d.state = StateDone
	d.log.Debug("session cancelled", zap.String("key", d.key))
}

// Close tears the session down. Call it once IsDone returned true.
// Results stay available until the next Open or Save.
func (d *Dialog) Close() {
	d.key = ""
	d.title = ""
	d.state = StateClosed
	d.back = nil
	d.forward = nil

	d.resetTree()
	d.clearIconPreview()
	d.icons.clear()
}

// Result returns the first finalized path, or "" if there is none.
func (d *Dialog) Result() string {
	if len(d.results) == 0 {
		return ""
	}
	return d.results[0]
}

// Results returns every finalized path.
func (d *Dialog) Results() []string {
	return slices.Clone(d.results)
}

// Key returns the key of the running session, "" when closed.
func (d *Dialog) Key() string { return d.key }

// Title returns the title the session was opened with.
func (d *Dialog) Title() string { return d.title }

// State returns the lifecycle state of the session.
func (d *Dialog) State() State { return d.state }

// Type returns the kind of the current session.
func (d *Dialog) Type() DialogType { return d.kind }

// IsMultiselect reports whether the session accepts several selections.
func (d *Dialog) IsMultiselect() bool { return d.multi }

// Filter returns the parsed filter of the session.
func (d *Dialog) Filter() FilterSpec { return d.filter }

// FilterIndex returns the active filter group.
func (d *Dialog) FilterIndex() int { return d.filterIndex }

// SetFilterIndex activates filter group i and relists the directory.
func (d *Dialog) SetFilterIndex(i int) bool {
	if i < 0 || i >= len(d.filter.Groups) {
		return false
	}
	d.filterIndex = i
	d.setDirectory(d.dir, false)
	return true
}

// Search returns the current search query.
func (d *Dialog) Search() string { return d.search }

// SetSearch filters the listing by a case insensitive substring of the path.
func (d *Dialog) SetSearch(query string) {
	d.search = query
	d.setDirectory(d.dir, false)
}

// Generation changes every time the listing, selection or zoom changed.
func (d *Dialog) Generation() uint64 { return d.gen }

// handleAllocator hands out texture handles without a renderer behind them.
type handleAllocator struct {
	next TextureID
}

func (h *handleAllocator) CreateTexture([]byte, int, int, PixelFormat) TextureID {
	h.next++
	return h.next
}

func (h *handleAllocator) DeleteTexture(TextureID) {}
