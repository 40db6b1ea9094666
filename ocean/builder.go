package ocean

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/halcyon-sim/swell/internal/parallel"
	"github.com/halcyon-sim/swell/logging"
)

// WaveField is the frequency-domain base spectrum of an ocean patch: a
// square grid of complex Fourier amplitudes paired with the matching
// grid of angular frequencies, both row-major resolution*resolution.
// It is built once per parameter/spectrum choice and then treated as
// immutable input to propagation.
type WaveField struct {
	Resolution  int
	Amplitudes  []complex128
	Frequencies []float64
}

// rowSeedMix spaces the per-row random sub-streams apart in seed space.
const rowSeedMix = 0x9e3779b97f4a7c15

// BuildHeightSpectrum samples the full complex amplitude grid for the
// given spectrum at the given resolution. Every cell is statistically
// independent; rows are sampled in parallel, each from its own random
// sub-stream derived from seed, so the result depends only on the seed
// and never on scheduling. Equal seeds produce bit-identical fields.
func BuildHeightSpectrum(p *Parameters, spectrum Spectrum, resolution int, seed uint64) (*WaveField, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", resolution)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	logging.Debug("Sampling base height spectrum", logging.Fields{
		"component":  "height_spectrum",
		"resolution": resolution,
		"seed":       seed,
	})

	field := &WaveField{
		Resolution:  resolution,
		Amplitudes:  make([]complex128, resolution*resolution),
		Frequencies: make([]float64, resolution*resolution),
	}

	parallel.For(resolution, func(start, end int) {
		for j := start; j < end; j++ {
			rng := rand.New(rand.NewPCG(seed, (uint64(j)+1)*rowSeedMix))
			for i := range resolution {
				k := waveVector(i, j, resolution, p.DomainSize)

				amplitude, omega := SampleSpectrum(p, spectrum, k, rng)
				field.Amplitudes[j*resolution+i] = amplitude
				field.Frequencies[j*resolution+i] = omega
			}
		}
	})

	return field, nil
}

// waveVector maps grid cell (i, j) to its wavevector. The symmetric
// 2i-n-1 remapping centers the spectrum on the grid; the inverse
// transform later compensates with a checkerboard sign correction.
func waveVector(i, j, resolution int, domainSize float64) mgl64.Vec2 {
	x := float64(2*i - resolution - 1)
	y := float64(2*j - resolution - 1)

	return mgl64.Vec2{
		math.Pi * x / domainSize,
		math.Pi * y / domainSize,
	}
}
