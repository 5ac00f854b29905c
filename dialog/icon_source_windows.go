//go:build windows

package dialog

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procSHGetFileInfoW = shell32.NewProc("SHGetFileInfoW")
	procGetIconInfo    = user32.NewProc("GetIconInfo")
	procDestroyIcon    = user32.NewProc("DestroyIcon")
	procGetObjectW     = gdi32.NewProc("GetObjectW")
	procGetBitmapBits  = gdi32.NewProc("GetBitmapBits")
	procDeleteObject   = gdi32.NewProc("DeleteObject")
)

const (
	shgfiIcon               = 0x000000100
	shgfiLargeIcon          = 0x000000000
	shgfiUseFileAttributes  = 0x000000010
	fileAttributeDirectory  = windows.FILE_ATTRIBUTE_DIRECTORY
	bitmapBitsPerPixelColor = 32
)

type shFileInfo struct {
	hIcon         windows.Handle
	iIcon         int32
	dwAttributes  uint32
	szDisplayName [windows.MAX_PATH]uint16
	szTypeName    [80]uint16
}

type iconInfo struct {
	fIcon    int32
	xHotspot uint32
	yHotspot uint32
	hbmMask  windows.Handle
	hbmColor windows.Handle
}

type bitmap struct {
	bmType       int32
	bmWidth      int32
	bmHeight     int32
	bmWidthBytes int32
	bmPlanes     uint16
	bmBitsPixel  uint16
	bmBits       uintptr
}

type shellIconSource struct{}

func newPlatformIconSource(*zap.Logger) IconSource {
	return shellIconSource{}
}

func (shellIconSource) Icon(path string) (*IconImage, error) {
	var attrs uint32
	flags := uint32(shgfiIcon | shgfiLargeIcon)
	if !exists(path) {
		// Pseudo directories get the generic folder icon.
		flags |= shgfiUseFileAttributes
		attrs = fileAttributeDirectory
	}

	p, err := windows.UTF16PtrFromString(strings.ReplaceAll(path, "/", `\`))
	if err != nil {
		return nil, err
	}

	var info shFileInfo
	procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(attrs),
		uintptr(unsafe.Pointer(&info)),
		unsafe.Sizeof(info),
		uintptr(flags),
	)
	if info.hIcon == 0 {
		return nil, fmt.Errorf("SHGetFileInfoW returned no icon for %s", path)
	}
	defer procDestroyIcon.Call(uintptr(info.hIcon))

	var ii iconInfo
	if ret, _, err := procGetIconInfo.Call(uintptr(info.hIcon), uintptr(unsafe.Pointer(&ii))); ret == 0 {
		return nil, fmt.Errorf("GetIconInfo: %w", err)
	}
	if ii.hbmMask != 0 {
		defer procDeleteObject.Call(uintptr(ii.hbmMask))
	}
	if ii.hbmColor == 0 {
		return nil, errors.New("icon has no colour bitmap")
	}
	defer procDeleteObject.Call(uintptr(ii.hbmColor))

	var bm bitmap
	if ret, _, _ := procGetObjectW.Call(uintptr(ii.hbmColor), unsafe.Sizeof(bm), uintptr(unsafe.Pointer(&bm))); ret == 0 {
		return nil, errors.New("GetObjectW failed")
	}
	if bm.bmBitsPixel != bitmapBitsPerPixelColor || bm.bmWidth <= 0 || bm.bmHeight <= 0 {
		return nil, fmt.Errorf("unsupported icon bitmap %dx%d@%d", bm.bmWidth, bm.bmHeight, bm.bmBitsPixel)
	}

	size := int(bm.bmWidth) * int(bm.bmHeight) * 4
	pix := make([]byte, size)
	if ret, _, _ := procGetBitmapBits.Call(uintptr(ii.hbmColor), uintptr(size), uintptr(unsafe.Pointer(&pix[0]))); ret == 0 {
		return nil, errors.New("GetBitmapBits failed")
	}

	return &IconImage{Pix: pix, Width: int(bm.bmWidth), Height: int(bm.bmHeight), Format: PixelBGRA}, nil
}
