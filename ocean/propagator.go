package ocean

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mjibson/go-dsp/fft"

	"github.com/halcyon-sim/swell/internal/parallel"
	"github.com/halcyon-sim/swell/logging"
)

// Displacement vector axes: X and Z are horizontal, Y is vertical.
const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// DisplacementField holds one 3D displacement vector per surface
// sample point, row-major resolution*resolution. The caller allocates
// it once via NewDisplacement and reuses it every frame.
type DisplacementField struct {
	Resolution int
	Samples    []mgl64.Vec3
}

// Propagator advances a base wave field in time and transforms it into
// spatial displacements. The three per-axis spectral grids and the
// transform buffer are scratch state sized once at construction and
// reused on every Propagate call; a Propagator must not be shared
// between concurrent callers.
type Propagator struct {
	resolution int
	fftBuf     []complex128
	dispX      []complex128
	dispY      []complex128
	dispZ      []complex128
	logger     logging.Logger
}

// NewPropagator creates a propagator for resolution*resolution fields.
// Power-of-two resolutions transform fastest, but any positive size
// works.
func NewPropagator(resolution int) (*Propagator, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", resolution)
	}

	cells := resolution * resolution
	return &Propagator{
		resolution: resolution,
		fftBuf:     make([]complex128, cells),
		dispX:      make([]complex128, cells),
		dispY:      make([]complex128, cells),
		dispZ:      make([]complex128, cells),
		logger: logging.WithFields(logging.Fields{
			"component":  "propagator",
			"resolution": resolution,
		}),
	}, nil
}

// NewDisplacement allocates an output field matching the propagator's
// resolution.
func (o *Propagator) NewDisplacement() *DisplacementField {
	return &DisplacementField{
		Resolution: o.resolution,
		Samples:    make([]mgl64.Vec3, o.resolution*o.resolution),
	}
}

// Propagate advances the base spectrum to time t and writes the
// spatial displacement vectors into out. The result is a pure function
// of (t, field); no state carries over between calls beyond buffer
// reuse. field and out must match the propagator's resolution.
func (o *Propagator) Propagate(t float64, p *Parameters, field *WaveField, out *DisplacementField) error {
	if field.Resolution != o.resolution {
		return fmt.Errorf("wave field resolution %d does not match propagator resolution %d",
			field.Resolution, o.resolution)
	}
	if out.Resolution != o.resolution {
		return fmt.Errorf("displacement field resolution %d does not match propagator resolution %d",
			out.Resolution, o.resolution)
	}

	o.logger.Debug("Propagating wave field", logging.Fields{"time": t})

	o.evolve(t, p, field)

	o.spectralToSpatial(o.dispX)
	o.writeAxis(out, axisX)

	o.spectralToSpatial(o.dispY)
	o.writeAxis(out, axisY)

	o.spectralToSpatial(o.dispZ)
	o.writeAxis(out, axisZ)

	return nil
}

// evolve re-derives the time-dependent spectral displacement grids
// from the static base spectrum.
func (o *Propagator) evolve(t float64, p *Parameters, field *WaveField) {
	res := o.resolution

	parallel.For(res, func(start, end int) {
		for j := start; j < end; j++ {
			for i := range res {
				idx := j*res + i
				k := waveVector(i, j, res, p.DomainSize)

				phase := field.Frequencies[idx] * t
				phasorPos := complex(math.Cos(phase), math.Sin(phase))
				phasorNeg := complex(math.Cos(phase), -math.Sin(phase))

				// Pairing each cell with its point-reflected partner
				// keeps the spatial field real-valued.
				reflected := (res-j-1)*res + (res - i - 1)
				sample := field.Amplitudes[idx]*phasorPos + field.Amplitudes[reflected]*phasorNeg

				var unit mgl64.Vec2
				if length := k.Len(); length >= epsilon {
					unit = k.Mul(1 / length)
				}

				o.dispX[idx] = complex(0, -unit.X()) * sample
				o.dispY[idx] = sample
				o.dispZ[idx] = complex(0, -unit.Y()) * sample
			}
		}
	})
}

// spectralToSpatial inverse-transforms one spectral grid into o.fftBuf
// using two row passes with a transpose in between. The input grid is
// reused as transpose scratch and destroyed. Rows are independent
// within a pass; the transpose is the only ordering barrier.
func (o *Propagator) spectralToSpatial(grid []complex128) {
	res := o.resolution

	parallel.For(res, func(start, end int) {
		for j := start; j < end; j++ {
			copy(o.fftBuf[j*res:(j+1)*res], fft.IFFT(grid[j*res:(j+1)*res]))
		}
	})

	transpose(o.fftBuf, grid, res)

	parallel.For(res, func(start, end int) {
		for j := start; j < end; j++ {
			copy(o.fftBuf[j*res:(j+1)*res], fft.IFFT(grid[j*res:(j+1)*res]))
		}
	})
}

// writeAxis applies the checkerboard sign correction the centered
// spectrum requires and stores the corrected real part of o.fftBuf
// into one axis of out.
func (o *Propagator) writeAxis(out *DisplacementField, axis int) {
	res := o.resolution

	parallel.For(res, func(start, end int) {
		for j := start; j < end; j++ {
			for i := range res {
				idx := j*res + i

				value := real(o.fftBuf[idx])
				if (j+i)%2 == 0 {
					value = -value
				}
				out.Samples[idx][axis] = value
			}
		}
	})
}

// transpose writes the transpose of the n*n grid src into dst.
func transpose(src, dst []complex128, n int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			dst[i*n+j] = src[j*n+i]
		}
	}
}
