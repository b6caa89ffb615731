package render

import (
	"math"
	"testing"
)

func TestMeshIndices(t *testing.T) {
	idx := MeshIndices(2)
	if len(idx) != 24 {
		t.Fatalf("index count %d, want 24", len(idx))
	}
	for _, i := range idx {
		if i >= 9 {
			t.Fatalf("index %d out of range", i)
		}
	}
	if idx[0] != 0 || idx[1] != 1 || idx[2] != 3 {
		t.Fatalf("first triangle %v", idx[:3])
	}
}

func TestProjectFlatSheet(t *testing.T) {
	cam := DefaultCamera()
	const seg = 4
	offsets := make([]float64, (seg+1)*(seg+1))
	verts := cam.Project(nil, seg, offsets, 300, 420, 300, 420)
	if len(verts) != len(offsets) {
		t.Fatalf("vertex count %d", len(verts))
	}

	centre := verts[2*(seg+1)+2]
	if math.Abs(float64(centre.DstX)-150) > 1e-3 || math.Abs(float64(centre.DstY)-210) > 1e-3 {
		t.Fatalf("centre projected to (%v, %v)", centre.DstX, centre.DstY)
	}
	if centre.SrcX != 150 || centre.SrcY != 210 {
		t.Fatalf("centre source (%v, %v)", centre.SrcX, centre.SrcY)
	}

	topLeft := verts[0]
	if topLeft.DstX <= 0 || topLeft.DstY <= 0 || topLeft.DstX >= centre.DstX || topLeft.DstY >= centre.DstY {
		t.Fatalf("top-left projected to (%v, %v)", topLeft.DstX, topLeft.DstY)
	}
	bottomRight := verts[len(verts)-1]
	if bottomRight.DstX >= 300 || bottomRight.DstY >= 420 || bottomRight.DstX <= centre.DstX {
		t.Fatalf("bottom-right projected to (%v, %v)", bottomRight.DstX, bottomRight.DstY)
	}
}

func TestProjectLiftMagnifies(t *testing.T) {
	cam := DefaultCamera()
	const seg = 2
	flat := cam.Project(nil, seg, make([]float64, 9), 100, 140, 300, 420)
	lifted := make([]float64, 9)
	lifted[0] = 0.5
	raised := cam.Project(nil, seg, lifted, 100, 140, 300, 420)
	if raised[0].DstX >= flat[0].DstX || raised[0].DstY >= flat[0].DstY {
		t.Fatalf("lifted corner (%v, %v) not pushed outward from (%v, %v)",
			raised[0].DstX, raised[0].DstY, flat[0].DstX, flat[0].DstY)
	}
}

func TestScreenSizeKeepsAspect(t *testing.T) {
	w, h := DefaultCamera().ScreenSize(300, 420)
	if h <= 420 {
		t.Fatalf("screen height %d should exceed the sheet height", h)
	}
	if math.Abs(float64(w)/float64(h)-300.0/420.0) > 0.01 {
		t.Fatalf("screen %dx%d lost the sheet aspect", w, h)
	}
}
