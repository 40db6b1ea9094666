// Package ocean synthesizes time-evolving ocean surface displacement
// fields from empirical directional wave spectra. A non-directional
// spectral density (JONSWAP, or TMA in finite depth) is combined with
// Donelan-Banner directional spreading and the gravity-capillary
// dispersion relation to draw a random frequency-domain wave field,
// which a Propagator evolves in time and inverse-transforms into
// per-axis surface displacements.
package ocean

import (
	"fmt"
	"math"
)

// epsilon is the float64 machine epsilon, used by every near-zero guard.
var epsilon = math.Nextafter(1, 2) - 1

// Parameters bundles the physical quantities that parameterize the
// spectra, the dispersion relation and the simulated patch. It is a
// plain value object; callers fill it once and pass it by reference.
type Parameters struct {
	SurfaceTension float64 // [N/m]
	WaterDensity   float64 // [kg/m^3]
	WaterDepth     float64 // [m]
	Gravity        float64 // [m/s^2]
	WindSpeed      float64 // [m/s]
	Fetch          float64 // [m]
	Swell          float64 // directional elongation factor, 0 disables swell
	DomainSize     float64 // [m] physical extent of the simulated patch
}

// DeepWaterParameters returns the reference deep-water configuration:
// moderate wind over a long fetch, ocean-scale depth, no swell.
func DeepWaterParameters() Parameters {
	return Parameters{
		SurfaceTension: 0.072,
		WaterDensity:   1000,
		WaterDepth:     1000,
		Gravity:        9.81,
		WindSpeed:      10,
		Fetch:          50000,
		Swell:          0,
		DomainSize:     64,
	}
}

// Validate checks that every quantity is finite and that gravity,
// domain size and water density are strictly positive.
func (p *Parameters) Validate() error {
	quantities := []struct {
		name  string
		value float64
	}{
		{"surface tension", p.SurfaceTension},
		{"water density", p.WaterDensity},
		{"water depth", p.WaterDepth},
		{"gravity", p.Gravity},
		{"wind speed", p.WindSpeed},
		{"fetch", p.Fetch},
		{"swell", p.Swell},
		{"domain size", p.DomainSize},
	}

	for _, q := range quantities {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", q.name, q.value)
		}
	}

	if p.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", p.Gravity)
	}
	if p.DomainSize <= 0 {
		return fmt.Errorf("domain size must be positive, got %v", p.DomainSize)
	}
	if p.WaterDensity <= 0 {
		return fmt.Errorf("water density must be positive, got %v", p.WaterDensity)
	}

	return nil
}
