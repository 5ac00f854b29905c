package dialog

import (
	"encoding/binary"
	"strconv"
)

// Built in 32x32 icons. Every pixel is two hex digits of alpha over black,
// "--" marks a fully transparent white pixel.
var fileIconMask = [DefaultIconSize]string{
	"--------4cf5ffffffffffffffffffffffffffdd2d00000000000000--------",
	"--------ffd16b6b6b6b6b6b6b6b6b6b6b6aa1ffff2e000000000000--------",
	"--------ff5400000000000000000000000046f5e0ff300000000000--------",
	"--------ff6a0000000000000000000000006ef801c3ff3000000000--------",
	"--------ff6b0000000000000000000000006bff0000d2ff30000000--------",
	"--------ff6b0000000000000000000000006bff130000d2ff300000--------",
	"--------ff6b00000000000000000000000073ff00000000beff3000--------",
	"--------ff6b00000000000000000000000065ff341010030adbff2f--------",
	"--------ff6b0000000000000000000000000fd9ffffffffffffffed--------",
	"--------ff6b00000000000000000000000000065e6c6b6b6b609eff--------",
	"--------ff6b000000000000000000000000000000000000000052ff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6b00000000000000000000000000000000000000006bff--------",
	"--------ff6a00000000000000000000000000000000000000006aff--------",
	"--------ff54000000000000000000000000000000000000000054ff--------",
	"--------ffd26b6b6b6b6b6b6b6b6b6b6b6b6b6b6b6b6b6b6b6bd2ff--------",
	"--------4cf5fffffffffffffffffffffffffffffffffffffffff54b--------",
}

var folderIconMask = [DefaultIconSize]string{
	"----------------------------------------------------------------",
	"----------------------------------------------------------------",
	"0000458a99979797979798813500000000000000000000000000000000000000",
	"009effffffffffffffffffffff80000000000000000000000000000000000000",
	"76fffff6e2e2e2e2e2e2e2ffffff800000000000000000000000000000000000",
	"e7ffbe11000000000000001ed1ffff7500000000000000000000000000000000",
	"faff5a00000000000000000006e0ffff68000000000000000000000000000000",
	"f4ff670000000000000000000011e4ffffad949494949494949494968b4f0000",
	"f3ff6a000000000000000000000017e8ffffffffffffffffffffffffffffaf00",
	"f3ff6a0000000000000000000000000e88c3cdcccccccccccccccbcce2ffff81",
	"f3ff6a0000000000000000000000000000000000000000000000000000b6ffec",
	"f3ff6a00000000000000000000000000000000000000000000000000005bfff9",
	"f3ff6a000000000000000000000000000000000000000000000000000068fff4",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f3ff6a00000000000000000000000000000000000000000000000000006afff3",
	"f4ff68000000000000000000000000000000000000000000000000000068fff4",
	"faff5a00000000000000000000000000000000000000000000000000005afff9",
	"eaffb50500000000000000000000000000000000000000000000000005b5ffea",
	"7effffebd6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6d6ebffff7f",
	"00acffffffffffffffffffffffffffffffffffffffffffffffffffffffffac00",
	"0000538f9a999999999999999999999999999999999999999999999a8f530000",
	"----------------------------------------------------------------",
	"----------------------------------------------------------------",
}

const (
	rgbMask   = 0x00FFFFFF
	alphaMask = 0xFF000000
)

// fallbackPixels renders a built in icon as little endian ARGB words,
// which is BGRA byte order. Dark themes get the colour channels inverted.
func fallbackPixels(folder, dark bool) []byte {
	mask := &fileIconMask
	if folder {
		mask = &folderIconMask
	}

	pix := make([]byte, 0, DefaultIconSize*DefaultIconSize*4)
	for _, row := range mask {
		for x := 0; x+1 < len(row); x += 2 {
			var argb uint32 = rgbMask
			if row[x] != '-' {
				a, err := strconv.ParseUint(row[x:x+2], 16, 8)
				if err != nil {
					a = 0
				}
				argb = uint32(a) << 24
			}
			if dark {
				argb = invertRGB(argb)
			}
			pix = binary.LittleEndian.AppendUint32(pix, argb)
		}
	}
	return pix
}

func invertRGB(argb uint32) uint32 {
	return (rgbMask - argb&rgbMask) | argb&alphaMask
}
