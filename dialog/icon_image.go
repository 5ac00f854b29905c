package dialog

import (
	"image"

	"golang.org/x/image/draw"
)

// iconFromImage scales src into a DefaultIconSize square, keeping the aspect
// ratio and leaving the borders transparent.
func iconFromImage(src image.Image) *IconImage {
	dst := image.NewNRGBA(image.Rect(0, 0, DefaultIconSize, DefaultIconSize))
	letterbox(dst, src)
	return &IconImage{
		Pix:    dst.Pix,
		Width:  DefaultIconSize,
		Height: DefaultIconSize,
		Format: PixelRGBA,
	}
}

func letterbox(dst draw.Image, src image.Image) {
	srcBounds := src.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return
	}

	target := dst.Bounds()
	if srcW == target.Dx() && srcH == target.Dy() {
		draw.Copy(dst, target.Min, src, srcBounds, draw.Src, nil)
		return
	}

	var scaledW, scaledH int
	ratio := float64(srcW) / float64(srcH)
	if ratio > 1 {
		scaledW = target.Dx()
		scaledH = int(float64(target.Dy()) / ratio)
	} else {
		scaledH = target.Dy()
		scaledW = int(float64(target.Dx()) * ratio)
	}

	x := target.Min.X + (target.Dx()-scaledW)/2
	y := target.Min.Y + (target.Dy()-scaledH)/2
	draw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+scaledW, y+scaledH), src, srcBounds, draw.Over, nil)
}
