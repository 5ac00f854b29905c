package dialog

// DialogType selects what kind of interaction a session runs.
type DialogType int

const (
	// OpenFile picks one or more existing files
	OpenFile DialogType = iota
	// OpenDirectory picks an existing directory
	OpenDirectory
	// SaveFile picks a (possibly new) file name to write to
	SaveFile
)

func (t DialogType) String() string {
	switch t {
	case OpenFile:
		return "open-file"
	case OpenDirectory:
		return "open-directory"
	case SaveFile:
		return "save-file"
	}
	return "unknown"
}

// State is the lifecycle position of the dialog session.
type State int

const (
	// StateClosed means no session holds a key.
	StateClosed State = iota
	// StateOpening is entered by Open/Save; the host surface has not been shown yet.
	StateOpening
	// StateShowing is the normal interactive state, rendered every frame.
	StateShowing
	// StateConfirmPending waits for the user to answer the overwrite question.
	StateConfirmPending
	// StateConfirmGranted allows the next Finalize to overwrite an existing file.
	StateConfirmGranted
	// StateDone means the session finished, either finalized or cancelled.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateShowing:
		return "showing"
	case StateConfirmPending:
		return "confirm-pending"
	case StateConfirmGranted:
		return "confirm-granted"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// open reports whether the session is still interactive.
func (s State) open() bool {
	return s == StateOpening || s == StateShowing || s == StateConfirmPending || s == StateConfirmGranted
}

// SortColumn is a column of the content table.
type SortColumn int

const (
	// SortByName compares paths case insensitively.
	SortByName SortColumn = iota
	// SortByDate compares modification times.
	SortByDate
	// SortBySize compares file sizes in bytes.
	SortBySize
)

// SortDirection orders a SortColumn.
type SortDirection int

const (
	// Ascending puts the smallest value first.
	Ascending SortDirection = iota
	// Descending puts the largest value first.
	Descending
)

// TextureID is an opaque handle returned by a TextureBackend.
type TextureID uint64

// PixelFormat describes the channel order of 4 byte per pixel buffers.
type PixelFormat int

const (
	// PixelRGBA stores red first.
	PixelRGBA PixelFormat = iota
	// PixelBGRA stores blue first, as Windows bitmaps do.
	PixelBGRA
)

// TextureBackend registers pixel buffers with the host renderer.
// Both methods are only ever called from the goroutine driving the dialog.
type TextureBackend interface {
	CreateTexture(pix []byte, width, height int, format PixelFormat) TextureID
	DeleteTexture(id TextureID)
}

// Host is the presentation layer driving a session.
// Begin is called once when a session is first polled, Frame on every poll
// while the session is open. Frame returns false once the user dismissed the
// host surface, which cancels the session.
type Host interface {
	Begin(title string)
	Frame(d *Dialog) bool
}

// Localizer maps a display string to its translation.
type Localizer func(string) string

func identity(s string) string { return s }

// Preferences is the subset of fyne.Preferences the dialog persists to.
type Preferences interface {
	StringList(key string) []string
	SetStringList(key string, value []string)
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
	FloatWithFallback(key string, fallback float64) float64
	SetFloat(key string, value float64)
}

const (
	// QuickAccess is the pseudo directory listing the favorite locations.
	QuickAccess = "Quick Access"
	// ThisPC is the pseudo directory listing drives and top level places.
	ThisPC = "This PC"

	// DefaultIconSize is the edge length of file icons in pixels.
	DefaultIconSize = 32

	favoritesKey     = "fyne:fileDialogFavorites"
	zoomKey          = "fyne:fileDialogZoom"
	sortColumnKey    = "fyne:fileDialogSortColumn"
	sortDirectionKey = "fyne:fileDialogSortDirection"
)
