package core

// Size describes the dimensions of a rendered surface.
type Size struct {
	W int
	H int
}

// Surface is the contract a host drives once per frame. Pixels, Offsets and
// Zones stay valid until the next Tick or Restart.
type Surface interface {
	Name() string
	Size() Size
	Tick(dt float64)
	Restart(seed int64) error
	Seed() int64
	// Pixels is RGBA, row 0 at the top, with alpha 0 or 255.
	Pixels() []byte
	// Offsets holds z per mesh vertex, (MeshSegments()+1)^2, row 0 at the top.
	Offsets() []float64
	MeshSegments() int
	Zones() *ByteGrid
}
