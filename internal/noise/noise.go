package noise

import "math"

// Octaves is the number of layers summed by FBM.
const Octaves = 6

// Hash maps an integer lattice corner to a pseudo-random value in [0, 1).
func Hash(x, y float64) float64 {
	return fract(math.Sin(x*12.9898+y*78.233) * 43758.5453123)
}

// Noise returns smooth value noise in [0, 1] for the given coordinate.
func Noise(x, y float64) float64 {
	ix, iy := math.Floor(x), math.Floor(y)
	fx, fy := x-ix, y-iy

	a := Hash(ix, iy)
	b := Hash(ix+1, iy)
	c := Hash(ix, iy+1)
	d := Hash(ix+1, iy+1)

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	return a + (b-a)*ux + (c-a)*uy*(1-ux) + (d-b)*ux*uy
}

// FBM sums Octaves layers of Noise, halving amplitude and doubling frequency
// per layer. The result lies in [0, 1-2^-Octaves).
func FBM(x, y float64) float64 {
	value := 0.0
	amplitude := 0.5
	for i := 0; i < Octaves; i++ {
		value += amplitude * Noise(x, y)
		x *= 2
		y *= 2
		amplitude *= 0.5
	}
	return value
}

// FBMMax is the supremum of FBM.
func FBMMax() float64 {
	return 1 - math.Pow(0.5, Octaves)
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}
