package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshVertex is a projected mesh vertex: destination in screen pixels and
// source in frame pixels.
type MeshVertex struct {
	DstX, DstY float32
	SrcX, SrcY float32
}

// Camera views the sheet head-on from +z.
type Camera struct {
	Distance float64
	FOVY     float64 // degrees
	SheetW   float64
	SheetH   float64
}

// DefaultCamera frames a 3×4.2 sheet from 5 units away.
func DefaultCamera() Camera {
	return Camera{Distance: 5, FOVY: 50, SheetW: 3, SheetH: 4.2}
}

// Project maps every vertex of a segments×segments mesh onto a screen.
// offsets holds z per vertex, row 0 at the top of the sheet. The result is
// written into dst when it has room and returned.
func (c Camera) Project(dst []MeshVertex, segments int, offsets []float64, frameW, frameH, screenW, screenH int) []MeshVertex {
	stride := segments + 1
	n := stride * stride
	if cap(dst) < n {
		dst = make([]MeshVertex, n)
	}
	dst = dst[:n]
	if screenW <= 0 || screenH <= 0 {
		return dst
	}

	view := mgl64.LookAtV(mgl64.Vec3{0, 0, c.Distance}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOVY), float64(screenW)/float64(screenH), 0.1, 100)
	s := float64(segments)
	for j := 0; j < stride; j++ {
		for i := 0; i < stride; i++ {
			idx := j*stride + i
			u := float64(i) / s
			v := 1 - float64(j)/s
			z := 0.0
			if idx < len(offsets) {
				z = offsets[idx]
			}
			world := mgl64.Vec3{(u - 0.5) * c.SheetW, (v - 0.5) * c.SheetH, z}
			win := mgl64.Project(world, view, proj, 0, 0, screenW, screenH)
			dst[idx] = MeshVertex{
				DstX: float32(win[0]),
				DstY: float32(float64(screenH) - win[1]),
				SrcX: float32(u * float64(frameW)),
				SrcY: float32(float64(j) / s * float64(frameH)),
			}
		}
	}
	return dst
}

// ScreenSize returns a window size that fits the sheet at the given frame
// height, keeping the sheet's aspect.
func (c Camera) ScreenSize(frameW, frameH int) (int, int) {
	visible := 2 * c.Distance * math.Tan(mgl64.DegToRad(c.FOVY)/2)
	h := int(math.Round(float64(frameH) * visible / c.SheetH))
	w := int(math.Round(float64(h) * float64(frameW) / float64(frameH)))
	return w, h
}

// MeshIndices returns two triangles per mesh cell.
func MeshIndices(segments int) []uint16 {
	stride := segments + 1
	out := make([]uint16, 0, segments*segments*6)
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := uint16(j*stride + i)
			b := a + 1
			c := a + uint16(stride)
			d := c + 1
			out = append(out, a, b, c, b, d, c)
		}
	}
	return out
}
