package ocean

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// quadratureSamples is the fixed node count of the directional
// normalization integral over [-pi, pi].
const quadratureSamples = 128

// quadratureNodes are the shared trapezoidal abscissae. Precomputing
// them does not change any evaluated value; the normalization itself
// is still recomputed on every call.
var quadratureNodes = floats.Span(make([]float64, quadratureSamples), -math.Pi, math.Pi)

// DirectionalBase is a non-normalized directional distribution
// evaluated at angular frequency omega and direction theta.
type DirectionalBase func(p *Parameters, omega, theta float64) float64

// DirectionalElongation narrows the directional distribution around
// the wind direction for swell-dominated seas. A swell factor of zero
// leaves the distribution untouched.
func DirectionalElongation(p *Parameters, omega, theta float64) float64 {
	omegaPeak := DispersionPeak(p.Gravity, p.WindSpeed, p.Fetch)
	shaping := 16 * math.Tanh(omegaPeak/omega) * p.Swell * p.Swell

	return math.Pow(math.Abs(math.Cos(theta/2)), 2*shaping)
}

// DirectionalBaseDonelanBanner is the Donelan-Banner directional
// distribution. The shape parameter beta is piecewise in the ratio of
// omega to the spectral peak.
func DirectionalBaseDonelanBanner(p *Parameters, omega, theta float64) float64 {
	omegaPeak := DispersionPeak(p.Gravity, p.WindSpeed, p.Fetch)
	ratio := omega / omegaPeak

	var beta float64
	switch {
	case ratio < 0.95:
		beta = 2.61 * math.Pow(ratio, 1.3)
	case ratio < 1.6:
		beta = 2.28 * math.Pow(ratio, -1.3)
	default:
		exponent := -0.4 + 0.8393*math.Exp(-0.567*math.Log(ratio*ratio))
		beta = math.Pow(10, exponent)
	}

	s := sech(beta * theta)
	return beta / (2 * math.Tanh(beta*math.Pi)) * s * s
}

// DirectionalSpreading evaluates base shaped by the swell elongation
// at (omega, theta), normalized so the shaped distribution integrates
// to one over [-pi, pi]. The trapezoidal normalization is recomputed
// per call; callers sampling many directions at one frequency should
// batch by frequency bin if this becomes hot.
func DirectionalSpreading(p *Parameters, omega, theta float64, base DirectionalBase) float64 {
	shaped := make([]float64, quadratureSamples)
	for i, node := range quadratureNodes {
		shaped[i] = base(p, omega, node) * DirectionalElongation(p, omega, node)
	}
	normalization := integrate.Trapezoidal(quadratureNodes, shaped)

	return base(p, omega, theta) * DirectionalElongation(p, omega, theta) / normalization
}
