package dialog

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const listIconSize = 20

// FyneHost draws sessions into a window of a fyne app. Frames must run on
// the fyne thread, e.g. from fyne.Do.
type FyneHost struct {
	app      fyne.App
	textures *FyneTextures

	win    fyne.Window
	d      *Dialog
	closed bool
	gen    uint64
	zoom   float64
	asking bool

	nodes     map[string]*TreeNode
	sidebar   *widget.Tree
	crumbs    *fyne.Container
	pathEntry *widget.Entry
	search    *widget.Entry
	content   *fyne.Container
	list      *widget.List
	grid      *widget.GridWrap
	nameEntry *widget.Entry
	filter    *widget.Select
	back      *widget.Button
	forward   *widget.Button
	up        *widget.Button
	favorite  *widget.Button

	lastClickID   int
	lastClickTime time.Time
}

// NewFyneHost creates a host for a. Pass Textures() to the Dialog with
// WithTextures so icons end up in the same window.
func NewFyneHost(a fyne.App) *FyneHost {
	return &FyneHost{app: a, textures: NewFyneTextures(), lastClickID: -1}
}

// Textures returns the texture backend the host draws from.
func (h *FyneHost) Textures() *FyneTextures {
	return h.textures
}

// Window returns the window of the running session, nil between sessions.
func (h *FyneHost) Window() fyne.Window {
	return h.win
}

// Begin opens a fresh window for the session titled title.
func (h *FyneHost) Begin(title string) {
	h.Close()

	h.closed = false
	h.asking = false
	h.d = nil
	h.win = h.app.NewWindow(title)
	h.win.SetOnClosed(func() {
		h.closed = true
		h.win = nil
	})
	h.win.Resize(fyne.NewSize(900, 560))
	h.win.Show()
}

// Frame syncs the window with d. It reports false once the window was closed.
func (h *FyneHost) Frame(d *Dialog) bool {
	if h.closed || h.win == nil {
		return false
	}

	if h.d != d {
		h.d = d
		h.win.SetContent(h.makeUI())
		h.sync()
	} else if d.Generation() != h.gen {
		h.sync()
	}

	if n := d.PromotePreviews(); n > 0 && h.grid != nil {
		h.grid.Refresh()
	}

	if d.ConfirmationPending() && !h.asking {
		h.asking = true
		dialog.ShowConfirm(lang.L("Confirmation"), lang.L("File exists, do you want to overwrite it?"), func(ok bool) {
			h.asking = false
			h.d.ConfirmOverwrite(ok)
			if ok {
				h.d.Finalize(h.d.Input())
			}
		}, h.win)
	}
	return true
}

// Close hides the window of the finished session.
func (h *FyneHost) Close() {
	if h.win == nil {
		return
	}
	w := h.win
	h.win = nil
	w.SetOnClosed(nil)
	w.Close()
}

func (h *FyneHost) makeUI() fyne.CanvasObject {
	d := h.d
	h.nodes = map[string]*TreeNode{}

	h.back = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { d.Back() })
	h.forward = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { d.Forward() })
	h.up = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { d.Up() })

	h.pathEntry = widget.NewEntry()
	h.pathEntry.OnSubmitted = func(s string) {
		if !d.NavigateTo(strings.TrimSpace(s)) {
			h.pathEntry.SetText(d.Directory())
		}
	}

	h.search = widget.NewEntry()
	h.search.SetPlaceHolder(lang.L("Search"))
	h.search.OnChanged = func(s string) {
		if s != d.Search() {
			d.SetSearch(s)
		}
	}

	h.favorite = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if d.IsFavorite(d.Directory()) {
			d.RemoveFavorite(d.Directory())
		} else {
			d.AddFavorite(d.Directory())
		}
		h.sidebar.Refresh()
		h.syncFavorite()
	})

	newFolder := widget.NewButtonWithIcon("", theme.FolderNewIcon(), h.showNewFolder)
	zoomOut := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() { d.AdjustZoom(-1) })
	zoomIn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() { d.AdjustZoom(1) })

	sortSel := widget.NewSelect([]string{lang.L("Name"), lang.L("Date"), lang.L("Size")}, nil)
	column, direction := d.SortOrder()
	sortSel.SetSelectedIndex(int(column))
	sortSel.OnChanged = func(string) {
		_, dir := d.SortOrder()
		d.SortContent(SortColumn(sortSel.SelectedIndex()), dir)
	}
	sortDir := widget.NewButtonWithIcon("", directionIcon(direction), nil)
	sortDir.OnTapped = func() {
		col, dir := d.SortOrder()
		if dir == Ascending {
			dir = Descending
		} else {
			dir = Ascending
		}
		d.SortContent(col, dir)
		sortDir.SetIcon(directionIcon(dir))
	}

	nav := container.NewHBox(h.back, h.forward, h.up)
	tools := container.NewHBox(h.favorite, newFolder, sortSel, sortDir, zoomOut, zoomIn)
	top := container.NewBorder(nil, nil, nav, tools, h.pathEntry)

	h.crumbs = container.NewHBox()
	crumbScroll := container.NewHScroll(h.crumbs)
	header := container.NewVBox(top, container.NewBorder(nil, nil, nil, container.NewGridWrap(fyne.NewSize(200, h.search.MinSize().Height), h.search), crumbScroll))

	h.sidebar = h.makeSidebar()

	h.list = h.makeList()
	h.content = container.NewStack(h.list)
	overlay := newZoomScrollOverlay(d.ScrollZoom)

	h.nameEntry = widget.NewEntry()
	h.nameEntry.OnChanged = func(s string) {
		if s != d.Input() {
			d.SetInput(s)
		}
	}
	h.nameEntry.OnSubmitted = func(s string) { d.Finalize(s) }

	h.filter = widget.NewSelect(d.Filter().Labels(), func(string) {
		if i := h.filter.SelectedIndex(); i >= 0 && i != d.FilterIndex() {
			d.SetFilterIndex(i)
		}
	})
	if len(d.Filter().Groups) > 0 {
		h.filter.SetSelectedIndex(d.FilterIndex())
	} else {
		h.filter.Hide()
	}

	confirmLabel := lang.L("Open")
	if d.Type() == SaveFile {
		confirmLabel = lang.L("Save")
	}
	confirm := widget.NewButton(confirmLabel, func() { d.Finalize(h.nameEntry.Text) })
	confirm.Importance = widget.HighImportance
	cancel := widget.NewButton(lang.L("Cancel"), func() { d.Cancel() })

	footer := container.NewBorder(nil, nil, widget.NewLabel(lang.L("File name:")),
		container.NewHBox(h.filter, cancel, confirm), h.nameEntry)

	split := container.NewHSplit(h.sidebar, container.NewStack(h.content, overlay))
	split.Offset = 0.25

	h.win.Canvas().SetOnTypedRune(h.typedRuneHook)
	h.win.Canvas().SetOnTypedKey(h.typedKeyHook)

	return container.NewBorder(header, footer, nil, nil, split)
}

func directionIcon(dir SortDirection) fyne.Resource {
	if dir == Descending {
		return theme.MenuDropDownIcon()
	}
	return theme.MenuDropUpIcon()
}

// sync copies the dialog state into the widgets.
func (h *FyneHost) sync() {
	d := h.d
	h.gen = d.Generation()

	h.back.Enable()
	if !d.CanBack() {
		h.back.Disable()
	}
	h.forward.Enable()
	if !d.CanForward() {
		h.forward.Disable()
	}

	h.pathEntry.SetText(d.Directory())
	if h.search.Text != d.Search() {
		h.search.SetText(d.Search())
	}
	if h.nameEntry.Text != d.Input() {
		h.nameEntry.SetText(d.Input())
	}
	h.syncFavorite()

	h.crumbs.RemoveAll()
	for _, c := range d.Breadcrumbs() {
		path := c.Path
		b := widget.NewButton(c.Name, func() { d.SetDirectory(path) })
		b.Importance = widget.LowImportance
		h.crumbs.Add(b)
	}

	if d.IconView() {
		if h.grid == nil || h.zoom != d.Zoom() {
			h.grid = h.makeGrid()
		}
		h.content.Objects = []fyne.CanvasObject{h.grid}
		h.grid.Refresh()
	} else {
		h.grid = nil
		h.content.Objects = []fyne.CanvasObject{h.list}
		h.list.Refresh()
	}
	h.zoom = d.Zoom()
	h.content.Refresh()
}

func (h *FyneHost) syncFavorite() {
	dir := h.d.Directory()
	if h.d.root(dir) != nil {
		h.favorite.Disable()
		return
	}
	h.favorite.Enable()
	if h.d.IsFavorite(dir) {
		h.favorite.SetIcon(theme.ContentRemoveIcon())
	} else {
		h.favorite.SetIcon(theme.ContentAddIcon())
	}
}

// Sidebar node ids are the chain of paths from the root, so the same
// directory can show up below Quick Access and This PC.
func (h *FyneHost) makeSidebar() *widget.Tree {
	t := widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			var children []*TreeNode
			if uid == "" {
				children = h.d.Tree()
			} else {
				children = h.d.ExpandNode(h.nodes[uid])
			}

			ids := make([]widget.TreeNodeID, len(children))
			for i, c := range children {
				id := c.Path
				if uid != "" {
					id = uid + "\n" + c.Path
				}
				h.nodes[id] = c
				ids[i] = id
			}
			return ids
		},
		func(widget.TreeNodeID) bool { return true },
		func(bool) fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.FolderIcon()), widget.NewLabel(""))
		},
		func(uid widget.TreeNodeID, _ bool, o fyne.CanvasObject) {
			n := h.nodes[uid]
			if n == nil {
				return
			}
			row := o.(*fyne.Container)
			label := row.Objects[1].(*widget.Label)
			if h.d.root(n.Path) != nil {
				label.SetText(h.d.l(n.Name()))
				row.Objects[0].(*widget.Icon).SetResource(theme.ComputerIcon())
			} else {
				label.SetText(n.Name())
				row.Objects[0].(*widget.Icon).SetResource(theme.FolderIcon())
			}
		},
	)
	t.OnSelected = func(uid widget.TreeNodeID) {
		if n := h.nodes[uid]; n != nil {
			h.d.SetDirectory(n.Path)
		}
		t.UnselectAll()
	}
	return t
}

func (h *FyneHost) makeList() *widget.List {
	l := widget.NewList(
		func() int { return len(h.d.Content()) },
		func() fyne.CanvasObject {
			icon := canvas.NewImageFromImage(nil)
			icon.FillMode = canvas.ImageFillContain
			icon.SetMinSize(fyne.NewSquareSize(listIconSize))

			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			date := widget.NewLabel("")
			size := widget.NewLabel("")
			size.Alignment = fyne.TextAlignTrailing
			return container.NewBorder(nil, nil, icon, container.NewHBox(date, container.NewGridWrap(fyne.NewSize(100, size.MinSize().Height), size)), name)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			content := h.d.Content()
			if id >= len(content) {
				return
			}
			e := content[id]

			row := o.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(e.Name())
			h.setImage(row.Objects[1].(*canvas.Image), h.d.Icon(e.Path))

			details := row.Objects[2].(*fyne.Container)
			details.Objects[0].(*widget.Label).SetText(e.Modified.Format(time.DateTime))
			size := ""
			if !e.IsDir {
				size = e.Size.String()
			}
			details.Objects[1].(*fyne.Container).Objects[0].(*widget.Label).SetText(size)
		},
	)
	l.OnSelected = func(id widget.ListItemID) {
		h.itemTapped(id)
		l.UnselectAll()
	}
	return l
}

func (h *FyneHost) makeGrid() *widget.GridWrap {
	cell := float32(h.d.CellSize())
	g := widget.NewGridWrap(
		func() int { return len(h.d.Content()) },
		func() fyne.CanvasObject {
			icon := canvas.NewImageFromImage(nil)
			icon.FillMode = canvas.ImageFillContain
			icon.SetMinSize(fyne.NewSquareSize(cell))

			name := widget.NewLabel("")
			name.Alignment = fyne.TextAlignCenter
			name.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, name, nil, nil, icon)
		},
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			content := h.d.Content()
			if id >= len(content) {
				return
			}
			e := content[id]

			cellBox := o.(*fyne.Container)
			cellBox.Objects[1].(*widget.Label).SetText(e.Name())
			icon := cellBox.Objects[0].(*canvas.Image)
			if tex, ok := e.PreviewTexture(h.textures); ok {
				h.setImage(icon, tex)
			} else {
				h.setImage(icon, h.d.Icon(e.Path))
			}
		},
	)
	g.OnSelected = func(id widget.GridWrapItemID) {
		h.itemTapped(id)
		g.UnselectAll()
	}
	return g
}

func (h *FyneHost) setImage(dst *canvas.Image, id TextureID) {
	src := h.textures.Image(id)
	if src == nil {
		dst.Image = nil
	} else {
		dst.Image = src.Image
	}
	dst.Refresh()
}

// itemTapped turns two taps on the same item within the driver's double
// tap delay into a double click.
func (h *FyneHost) itemTapped(id int) {
	now := time.Now()
	double := id == h.lastClickID && now.Sub(h.lastClickTime) < h.app.Driver().DoubleTapDelay()
	if double {
		h.lastClickID = -1
	} else {
		h.lastClickID = id
		h.lastClickTime = now
	}
	h.d.Click(id, double, modifierActive())
}

func (h *FyneHost) showNewFolder() {
	name := widget.NewEntry()
	form := dialog.NewForm(lang.L("New Folder"), lang.L("Create"), lang.L("Cancel"),
		[]*widget.FormItem{widget.NewFormItem(lang.L("Name"), name)},
		func(ok bool) {
			if !ok || name.Text == "" {
				return
			}
			if err := h.d.CreateDirectory(name.Text); err != nil {
				dialog.ShowError(err, h.win)
			}
		}, h.win)
	form.Show()
	h.win.Canvas().Focus(name)
}

// navigationFocused reports whether keyboard input may be taken over, which is
// only the case while focus sits on nothing or on the browsing widgets.
func (h *FyneHost) navigationFocused() bool {
	focused := h.win.Canvas().Focused()
	if focused == nil {
		return true
	}
	if h.sidebar != nil && focused == h.sidebar {
		return true
	}
	if h.list != nil && focused == h.list {
		return true
	}
	return h.grid != nil && focused == h.grid
}

// typedRuneHook starts a search when typing while browsing.
func (h *FyneHost) typedRuneHook(r rune) {
	if h.win == nil || h.search == nil || !h.navigationFocused() {
		return
	}

	h.win.Canvas().Focus(h.search)
	h.search.SetText(h.search.Text + string(r))
	h.search.CursorColumn = len([]rune(h.search.Text))
	h.search.Refresh()
}

func (h *FyneHost) typedKeyHook(ev *fyne.KeyEvent) {
	if h.win == nil || ev == nil || h.d == nil {
		return
	}

	switch ev.Name {
	case fyne.KeyEscape:
		h.d.Cancel()
		return
	case fyne.KeyReturn, fyne.KeyEnter:
	default:
		return
	}

	if !h.navigationFocused() {
		return
	}

	selections := h.d.Selections()
	if h.d.Type() == OpenDirectory {
		if len(selections) == 1 {
			h.d.NavigateTo(selections[0])
		}
		return
	}
	if h.d.Type() == SaveFile || len(selections) > 0 {
		h.d.Finalize(h.d.Input())
	}
}

func modifierActive() bool {
	d, ok := fyne.CurrentApp().Driver().(desktop.Driver)
	if !ok {
		return false
	}

	mods := d.CurrentKeyModifiers()
	if mods&fyne.KeyModifierControl != 0 {
		return true
	}
	// Command on macOS.
	return mods&fyne.KeyModifierShortcutDefault != 0
}

// zoomScrollOverlay catches wheel events while the zoom modifier is held
// and lets them through otherwise.
type zoomScrollOverlay struct {
	widget.BaseWidget
	onScroll func(dy float32)
}

func newZoomScrollOverlay(onScroll func(dy float32)) *zoomScrollOverlay {
	z := &zoomScrollOverlay{onScroll: onScroll}
	z.ExtendBaseWidget(z)
	return z
}

func (z *zoomScrollOverlay) Visible() bool {
	if !z.BaseWidget.Visible() {
		return false
	}
	return modifierActive()
}

func (z *zoomScrollOverlay) Scrolled(e *fyne.ScrollEvent) {
	if z.onScroll != nil {
		z.onScroll(e.Scrolled.DY)
	}
}

func (z *zoomScrollOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(layout.NewSpacer())
}

var _ fyne.Scrollable = (*zoomScrollOverlay)(nil)
