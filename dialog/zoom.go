package dialog

import "math"

const (
	// ZoomListView shows the content as a detail table.
	ZoomListView = 1.0
	// ZoomPreview is the first zoom level that shows image thumbnails.
	ZoomPreview = 5.0
	// MaxZoom is the largest icon size.
	MaxZoom = 25.0

	// Scroll deltas are scaled; on typical mouse wheels DY is ~40 per notch.
	zoomScrollNotch = float32(40)
)

func clampZoom(z float64) float64 {
	if math.IsNaN(z) || z < ZoomListView {
		return ZoomListView
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Zoom returns the current zoom level.
func (d *Dialog) Zoom() float64 {
	return d.zoom
}

// IconView reports whether content is shown as an icon grid rather than a table.
func (d *Dialog) IconView() bool {
	return d.zoom > ZoomListView
}

// CellSize is the edge length of an icon grid cell at the current zoom.
func (d *Dialog) CellSize() float64 {
	return DefaultIconSize + 16*d.zoom
}

// SetZoom changes the zoom level, starting or dropping thumbnails as the
// level crosses ZoomPreview.
func (d *Dialog) SetZoom(z float64) {
	z = clampZoom(z)
	if z == d.zoom {
		return
	}
	d.zoom = z
	if d.prefs != nil {
		d.prefs.SetFloat(zoomKey, z)
	}
	d.refreshIconPreview()
	d.gen++
}

// AdjustZoom moves the zoom level by whole steps.
func (d *Dialog) AdjustZoom(steps int) {
	if steps == 0 {
		return
	}
	d.SetZoom(d.zoom + float64(steps))
}

// ScrollZoom feeds a raw wheel delta, zooming once a full notch accumulated.
// Hosts call it while their zoom modifier is held.
func (d *Dialog) ScrollZoom(dy float32) {
	d.AdjustZoom(d.scroll.steps(dy))
}

// zoomScroller accumulates wheel deltas so touchpads don't zoom too quickly.
type zoomScroller struct {
	accDY float32
}

func (z *zoomScroller) steps(dy float32) int {
	if math.IsNaN(float64(dy)) || math.IsInf(float64(dy), 0) {
		return 0
	}

	z.accDY += dy

	var steps int
	for z.accDY >= zoomScrollNotch {
		steps++
		z.accDY -= zoomScrollNotch
	}
	for z.accDY <= -zoomScrollNotch {
		steps--
		z.accDY += zoomScrollNotch
	}
	return steps
}
