package render

import "image/color"

// rgba8 truncates c to 8 bits per channel.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf. buf
// must hold at least 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	pxOn, pxOff := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := pxOff
		if c != 0 {
			px = pxOn
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
