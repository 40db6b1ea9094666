package sph

import (
	"math"
	"testing"
)

var (
	_ Kernel = (*Poly6)(nil)
	_ Kernel = (*Spiky)(nil)
	_ Kernel = (*Viscosity)(nil)
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestPoly6(t *testing.T) {
	const h = 0.5
	k := NewPoly6(h)

	for _, radius := range []float64{h, 1.5 * h, 10 * h} {
		if got := k.W(radius); got != 0 {
			t.Errorf("Poly6.W(%v) = %v, want 0 at or beyond the support radius", radius, got)
		}
		if got := k.GradW(radius); got != 0 {
			t.Errorf("Poly6.GradW(%v) = %v, want 0", radius, got)
		}
	}

	// W(0) = 315/(64*pi*h^3)
	want := 315.0 / 64.0 / (math.Pi * h * h * h)
	if got := k.W(0); math.Abs(got-want) > 1e-12*want {
		t.Errorf("Poly6.W(0) = %v, want %v", got, want)
	}

	if k.GradW(h/2) >= 0 {
		t.Error("Poly6.GradW inside the support should be negative")
	}

	mustPanic(t, "Poly6.LaplaceW", func() { k.LaplaceW(h / 2) })
}

func TestSpiky(t *testing.T) {
	const h = 0.5
	k := NewSpiky(h)

	for _, radius := range []float64{h, 2 * h} {
		if got := k.W(radius); got != 0 {
			t.Errorf("Spiky.W(%v) = %v, want 0", radius, got)
		}
	}

	// W(0) = 15/(pi*h^3)
	want := 15.0 / (math.Pi * h * h * h)
	if got := k.W(0); math.Abs(got-want) > 1e-12*want {
		t.Errorf("Spiky.W(0) = %v, want %v", got, want)
	}

	if got := k.GradW(1e-6); got != 0 {
		t.Errorf("Spiky.GradW near zero radius = %v, want 0", got)
	}
	if k.GradW(h/2) >= 0 {
		t.Error("Spiky.GradW inside the support should be negative")
	}

	mustPanic(t, "Spiky.LaplaceW", func() { k.LaplaceW(h / 2) })
}

func TestViscosity(t *testing.T) {
	const h = 0.5
	k := NewViscosity(h)

	if got := k.W(1e-6); got != 0 {
		t.Errorf("Viscosity.W near zero radius = %v, want 0", got)
	}
	for _, radius := range []float64{h, 2 * h} {
		if got := k.W(radius); got != 0 {
			t.Errorf("Viscosity.W(%v) = %v, want 0", radius, got)
		}
	}
	if k.W(h/2) <= 0 {
		t.Error("Viscosity.W inside the support should be positive")
	}

	if got := k.LaplaceW(h); got != 0 {
		t.Errorf("Viscosity.LaplaceW(h) = %v, want 0", got)
	}
	want := 45.0 / (math.Pi * math.Pow(h, 6)) * (h / 2)
	if got := k.LaplaceW(h / 2); math.Abs(got-want) > 1e-12*want {
		t.Errorf("Viscosity.LaplaceW(h/2) = %v, want %v", got, want)
	}

	mustPanic(t, "Viscosity.GradW", func() { k.GradW(h / 2) })
}
