package render

import "image/color"

// ZonePalette colours the zone overlay, indexed by zone value:
// void, ember, char, intact.
var ZonePalette = []color.RGBA{
	{A: 0},
	{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff},
	{R: 0x3a, G: 0x2a, B: 0x22, A: 0xff},
	{R: 0xe8, G: 0xd5, B: 0xb5, A: 0xff},
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Over composites the RGBA pixel at index i of src onto backdrop.
func Over(src []byte, i int, backdrop color.RGBA) color.RGBA {
	base := i * 4
	a := uint32(src[base+3])
	if a == 0xff {
		return color.RGBA{R: src[base], G: src[base+1], B: src[base+2], A: 0xff}
	}
	inv := 0xff - a
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*inv + 127) / 0xff)
	}
	return color.RGBA{
		R: blend(src[base], backdrop.R),
		G: blend(src[base+1], backdrop.G),
		B: blend(src[base+2], backdrop.B),
		A: 0xff,
	}
}
