package texture

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"
)

const grainFrequency = 1.0 / 3.0

// paintGrain multiplies a faint simplex fiber pattern into the sheet.
func (c *canvas) paintGrain(amount float64) {
	if amount <= 0 {
		return
	}
	field := opensimplex.NewNormalized(c.seed)
	freq := grainFrequency / c.scale
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			// Fibers run mostly horizontally.
			n := field.Eval2(float64(x)*freq*0.35, float64(y)*freq)
			c.multiply(x, y, mgl64.Vec3{n, n, n}, amount)
		}
	}
}
