//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SheetPainter uploads frame pixels into a texture and draws it as a
// perspective mesh lifted by the per-vertex offsets.
type SheetPainter struct {
	w, h     int
	segments int
	camera   Camera

	img     *ebiten.Image
	buf     []byte
	mesh    []MeshVertex
	verts   []ebiten.Vertex
	indices []uint16
}

// NewSheetPainter allocates a painter for a w×h frame and a segments mesh.
func NewSheetPainter(w, h, segments int, cam Camera) *SheetPainter {
	return &SheetPainter{
		w:        w,
		h:        h,
		segments: segments,
		camera:   cam,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
		indices:  MeshIndices(segments),
	}
}

// Draw renders shaded pixels through the mesh.
func (p *SheetPainter) Draw(dst *ebiten.Image, pixels []byte, offsets []float64) {
	if len(pixels) != len(p.buf) {
		return
	}
	p.img.WritePixels(pixels)
	p.drawMesh(dst, offsets)
}

// DrawZones renders the zone classification through the mesh instead of the
// shaded colours.
func (p *SheetPainter) DrawZones(dst *ebiten.Image, zones []uint8, offsets []float64) {
	if len(zones) != p.w*p.h {
		return
	}
	FillPaletteRGBA(p.buf, zones, ZonePalette)
	p.img.WritePixels(p.buf)
	p.drawMesh(dst, offsets)
}

func (p *SheetPainter) drawMesh(dst *ebiten.Image, offsets []float64) {
	sw, sh := dst.Bounds().Dx(), dst.Bounds().Dy()
	p.mesh = p.camera.Project(p.mesh, p.segments, offsets, p.w, p.h, sw, sh)
	if cap(p.verts) < len(p.mesh) {
		p.verts = make([]ebiten.Vertex, len(p.mesh))
	}
	p.verts = p.verts[:len(p.mesh)]
	for i, m := range p.mesh {
		p.verts[i] = ebiten.Vertex{
			DstX:   m.DstX,
			DstY:   m.DstY,
			SrcX:   m.SrcX,
			SrcY:   m.SrcY,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	dst.DrawTriangles(p.verts, p.indices, p.img, op)
}

// Size returns the frame dimensions.
func (p *SheetPainter) Size() (int, int) { return p.w, p.h }
