package ocean

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/stat/distuv"
)

// SampleSpectrum draws one random complex Fourier amplitude for the
// wavevector k: a Gaussian-randomized magnitude scaled by the spectral
// density, the directional spreading weight and the dispersion
// gradient, with a uniformly random phase. It returns the amplitude
// together with the angular frequency at k. Wavevectors shorter than
// machine epsilon carry no energy and yield (0, 0).
//
// The random source is supplied by the caller so field construction
// stays reproducible and safe under parallel sampling.
func SampleSpectrum(p *Parameters, spectrum Spectrum, k mgl64.Vec2, rng *rand.Rand) (complex128, float64) {
	length := k.Len()
	if length < epsilon {
		return 0, 0
	}

	theta := math.Atan2(k.Y(), k.X())
	gradK := 2 * math.Pi / p.DomainSize

	omega, gradOmega := DispersionCapillary(p, length)
	spreading := DirectionalSpreading(p, omega, theta, DirectionalBaseDonelanBanner)
	density := spectrum.Evaluate(omega)

	z := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}.Rand()
	phase := 2 * math.Pi * rng.Float64()

	amplitude := z * math.Sqrt(2*spreading*density*gradK*gradK*gradOmega/length)

	return complex(amplitude*math.Cos(phase), amplitude*math.Sin(phase)), omega
}
