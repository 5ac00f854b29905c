//go:build darwin && cgo

package dialog

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#include <stdlib.h>
#import <AppKit/AppKit.h>

static int iconForPath(const char *path, unsigned char *out, int size) {
	@autoreleasepool {
		NSString *p = [NSString stringWithUTF8String:path];
		if (p == nil || ![[NSFileManager defaultManager] fileExistsAtPath:p]) {
			p = @"/bin";
		}

		NSImage *icon = [[NSWorkspace sharedWorkspace] iconForFile:p];
		if (icon == nil) {
			return 0;
		}

		NSRect rect = NSMakeRect(0, 0, size, size);
		CGImageRef img = [icon CGImageForProposedRect:&rect context:nil hints:nil];
		if (img == NULL) {
			return 0;
		}

		CGColorSpaceRef cs = CGColorSpaceCreateDeviceRGB();
		CGContextRef ctx = CGBitmapContextCreate(out, size, size, 8, size * 4, cs,
			kCGImageAlphaPremultipliedLast | kCGBitmapByteOrder32Big);
		CGColorSpaceRelease(cs);
		if (ctx == NULL) {
			return 0;
		}

		CGContextDrawImage(ctx, CGRectMake(0, 0, size, size), img);
		CGContextRelease(ctx);
		return 1;
	}
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
)

type workspaceIconSource struct{}

func newPlatformIconSource(*zap.Logger) IconSource {
	return workspaceIconSource{}
}

func (workspaceIconSource) Icon(path string) (*IconImage, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	pix := make([]byte, DefaultIconSize*DefaultIconSize*4)
	if C.iconForPath(cpath, (*C.uchar)(unsafe.Pointer(&pix[0])), C.int(DefaultIconSize)) == 0 {
		return nil, fmt.Errorf("NSWorkspace has no icon for %s", path)
	}
	return &IconImage{Pix: pix, Width: DefaultIconSize, Height: DefaultIconSize, Format: PixelRGBA}, nil
}
