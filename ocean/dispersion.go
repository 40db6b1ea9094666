package ocean

import "math"

// DispersionPeak returns the angular frequency of the spectral peak
// for a fetch-limited sea.
func DispersionPeak(gravity, windSpeed, fetch float64) float64 {
	return 22.0 * math.Cbrt(gravity*gravity/(windSpeed*fetch))
}

// DispersionCapillary evaluates the finite-depth gravity-capillary
// dispersion relation at wavenumber k and returns the angular
// frequency together with its derivative with respect to k. The
// derivative enters the sampler as the Jacobian from frequency-space
// to wavevector-space integration.
func DispersionCapillary(p *Parameters, waveNumber float64) (omega, gradOmega float64) {
	sigma := p.SurfaceTension
	rho := p.WaterDensity
	g := p.Gravity
	h := p.WaterDepth
	k := waveNumber

	omega = math.Sqrt((g*k + (sigma/rho)*k*k*k) * math.Tanh(h*k))
	gradOmega = (h*sech(h*k)*sech(h*k)*(g*k+(sigma/rho)*k*k*k) +
		math.Tanh(h*k)*(g+3*(sigma/rho)*k*k)) / (2 * omega)

	return omega, gradOmega
}

func sech(x float64) float64 {
	return 1 / math.Cosh(x)
}
