// Package sph provides the smoothing kernel functions a particle-based
// fluid solver uses to interpolate particle-carried quantities.
//
// Ref: [MDM03] Sec 3.5
package sph

import "math"

// Kernel is a radially symmetric smoothing function of support radius
// h, together with its gradient and Laplacian factors. Not every
// variant defines every capability; calling an undefined one panics.
type Kernel interface {
	W(radius float64) float64
	GradW(radius float64) float64
	LaplaceW(radius float64) float64
}

// nearZeroRadius guards kernel terms with the radius in a denominator.
const nearZeroRadius = 1e-5

// Poly6 kernel function
type Poly6 struct {
	h          float64
	wConst     float64
	gradWConst float64
}

// NewPoly6 precomputes the kernel constants for the given smoothing
// radius.
func NewPoly6(smoothingRadius float64) *Poly6 {
	h9 := math.Pow(smoothingRadius, 9)

	return &Poly6{
		h:          smoothingRadius,
		wConst:     315.0 / 64.0 / (math.Pi * h9),
		gradWConst: -945.0 / 32.0 / (math.Pi * h9),
	}
}

func (k *Poly6) W(radius float64) float64 {
	if k.h <= radius {
		return 0
	}

	diff := k.h*k.h - radius*radius
	return k.wConst * diff * diff * diff
}

// GradW returns the gradient factor
func (k *Poly6) GradW(radius float64) float64 {
	if k.h <= radius {
		return 0
	}

	diff := k.h*k.h - radius*radius
	return k.gradWConst * diff * diff
}

func (k *Poly6) LaplaceW(radius float64) float64 {
	panic("sph: Poly6 kernel does not define a Laplacian")
}

// Spiky kernel function
type Spiky struct {
	h          float64
	wConst     float64
	gradWConst float64
}

// NewSpiky precomputes the kernel constants for the given smoothing
// radius.
func NewSpiky(smoothingRadius float64) *Spiky {
	h6 := math.Pow(smoothingRadius, 6)

	return &Spiky{
		h:          smoothingRadius,
		wConst:     15.0 / (math.Pi * h6),
		gradWConst: -45.0 / (math.Pi * h6),
	}
}

func (k *Spiky) W(radius float64) float64 {
	if k.h <= radius {
		return 0
	}

	diff := k.h - radius
	return k.wConst * diff * diff * diff
}

// GradW returns the gradient factor. Radii near zero return 0 rather
// than dividing by a vanishing radius.
func (k *Spiky) GradW(radius float64) float64 {
	if k.h <= radius || radius < nearZeroRadius {
		return 0
	}

	diff := k.h - radius
	return k.gradWConst * diff * diff / radius
}

func (k *Spiky) LaplaceW(radius float64) float64 {
	panic("sph: Spiky kernel does not define a Laplacian")
}

// Viscosity kernel function
type Viscosity struct {
	h             float64
	wConst        float64
	laplaceWConst float64
}

// NewViscosity precomputes the kernel constants for the given
// smoothing radius.
func NewViscosity(smoothingRadius float64) *Viscosity {
	h3 := smoothingRadius * smoothingRadius * smoothingRadius

	return &Viscosity{
		h:             smoothingRadius,
		wConst:        15.0 / 2.0 / (math.Pi * h3),
		laplaceWConst: 45.0 / (math.Pi * h3 * h3),
	}
}

// W returns the kernel weight. Radii near zero return 0 by convention.
func (k *Viscosity) W(radius float64) float64 {
	if k.h <= radius || radius < nearZeroRadius {
		return 0
	}

	fac := -radius*radius*radius/(2*k.h*k.h*k.h) +
		(radius/k.h)*(radius/k.h) +
		k.h/(2*radius) - 1

	return k.wConst * fac
}

func (k *Viscosity) GradW(radius float64) float64 {
	panic("sph: Viscosity kernel does not define a gradient")
}

func (k *Viscosity) LaplaceW(radius float64) float64 {
	if k.h <= radius {
		return 0
	}

	return k.laplaceWConst * (k.h - radius)
}
