package ocean

import "math"

// Spectrum is a non-directional spectral density function of angular
// frequency. JONSWAP and TMA are the two implementations.
type Spectrum interface {
	Evaluate(omega float64) float64
}

// JONSWAP is the Joint North Sea Wave Observation Project spectrum, an
// empirical fetch-limited spectrum with a sharpened peak.
type JONSWAP struct {
	WindSpeed float64 // [m/s]
	Fetch     float64 // [m]
	Gravity   float64 // [m/s^2]
}

// NewJONSWAP derives a JONSWAP spectrum from physical parameters.
func NewJONSWAP(p *Parameters) JONSWAP {
	return JONSWAP{
		WindSpeed: p.WindSpeed,
		Fetch:     p.Fetch,
		Gravity:   p.Gravity,
	}
}

// Evaluate returns the spectral density at omega. Frequencies below
// machine epsilon carry no energy.
func (s JONSWAP) Evaluate(omega float64) float64 {
	if omega < epsilon {
		return 0
	}

	const gamma = 3.3

	omegaPeak := DispersionPeak(s.Gravity, s.WindSpeed, s.Fetch)
	alpha := 0.076 * math.Pow(s.WindSpeed*s.WindSpeed/(s.Fetch*s.Gravity), 0.22)

	sigma := 0.09
	if omega <= omegaPeak {
		sigma = 0.07
	}
	r := math.Exp(-(omega - omegaPeak) * (omega - omegaPeak) /
		(2 * sigma * sigma * omegaPeak * omegaPeak))

	ratio := omegaPeak / omega
	return alpha * s.Gravity * s.Gravity / math.Pow(omega, 5) *
		math.Exp(-1.25*ratio*ratio*ratio*ratio) * math.Pow(gamma, r)
}

// TMA is the Texel-MARSEN-ARSLOE spectrum: JONSWAP attenuated for
// finite water depth.
type TMA struct {
	JONSWAP
	Depth float64 // [m]
}

// NewTMA derives a TMA spectrum from physical parameters.
func NewTMA(p *Parameters) TMA {
	return TMA{
		JONSWAP: NewJONSWAP(p),
		Depth:   p.WaterDepth,
	}
}

// Evaluate returns the depth-attenuated spectral density at omega.
func (s TMA) Evaluate(omega float64) float64 {
	return s.JONSWAP.Evaluate(omega) * s.depthAttenuation(omega)
}

// depthAttenuation is the Kitaigorodskii depth attenuation factor,
// using the piecewise quadratic approximation of Thompson and Vincent.
func (s TMA) depthAttenuation(omega float64) float64 {
	omegaH := clamp(omega*math.Sqrt(s.Depth/s.Gravity), 0, 2)
	if omegaH <= 1 {
		return 0.5 * omegaH * omegaH
	}
	return 1 - 0.5*(2-omegaH)*(2-omegaH)
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
