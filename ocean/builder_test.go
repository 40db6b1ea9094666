package ocean

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSampleSpectrumZeroWavevector(t *testing.T) {
	p := DeepWaterParameters()
	rng := rand.New(rand.NewPCG(1, 2))

	amplitude, omega := SampleSpectrum(&p, NewJONSWAP(&p), mgl64.Vec2{0, 0}, rng)
	if amplitude != 0 || omega != 0 {
		t.Errorf("SampleSpectrum at k=0 = (%v, %v), want (0, 0)", amplitude, omega)
	}
}

func TestSampleSpectrumFinite(t *testing.T) {
	p := DeepWaterParameters()
	s := NewTMA(&p)
	rng := rand.New(rand.NewPCG(3, 4))

	for range 100 {
		k := mgl64.Vec2{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
		amplitude, omega := SampleSpectrum(&p, s, k, rng)

		if cmplx.IsNaN(amplitude) || cmplx.IsInf(amplitude) {
			t.Fatalf("non-finite amplitude %v for k=%v", amplitude, k)
		}
		if math.IsNaN(omega) || omega < 0 {
			t.Fatalf("invalid omega %v for k=%v", omega, k)
		}
	}
}

func TestBuildHeightSpectrumShape(t *testing.T) {
	p := DeepWaterParameters()

	field, err := BuildHeightSpectrum(&p, NewJONSWAP(&p), 8, 1)
	if err != nil {
		t.Fatalf("BuildHeightSpectrum: %v", err)
	}

	if field.Resolution != 8 {
		t.Errorf("Resolution = %d, want 8", field.Resolution)
	}
	if len(field.Amplitudes) != 64 || len(field.Frequencies) != 64 {
		t.Errorf("grid sizes = (%d, %d), want (64, 64)",
			len(field.Amplitudes), len(field.Frequencies))
	}

	for idx, omega := range field.Frequencies {
		if math.IsNaN(omega) || omega < 0 {
			t.Fatalf("invalid frequency %v at cell %d", omega, idx)
		}
		if cmplx.IsNaN(field.Amplitudes[idx]) || cmplx.IsInf(field.Amplitudes[idx]) {
			t.Fatalf("non-finite amplitude %v at cell %d", field.Amplitudes[idx], idx)
		}
	}
}

func TestBuildHeightSpectrumValidation(t *testing.T) {
	p := DeepWaterParameters()

	if _, err := BuildHeightSpectrum(&p, NewJONSWAP(&p), 0, 1); err == nil {
		t.Error("expected error for zero resolution")
	}
	if _, err := BuildHeightSpectrum(&p, NewJONSWAP(&p), -4, 1); err == nil {
		t.Error("expected error for negative resolution")
	}

	p.Gravity = -9.81
	if _, err := BuildHeightSpectrum(&p, NewJONSWAP(&p), 8, 1); err == nil {
		t.Error("expected error for invalid parameters")
	}
}

func TestBuildHeightSpectrumDeterministic(t *testing.T) {
	p := DeepWaterParameters()
	s := NewTMA(&p)

	first, err := BuildHeightSpectrum(&p, s, 16, 42)
	if err != nil {
		t.Fatalf("BuildHeightSpectrum: %v", err)
	}
	second, err := BuildHeightSpectrum(&p, s, 16, 42)
	if err != nil {
		t.Fatalf("BuildHeightSpectrum: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("equal seeds produced different wave fields")
	}

	other, err := BuildHeightSpectrum(&p, s, 16, 43)
	if err != nil {
		t.Fatalf("BuildHeightSpectrum: %v", err)
	}
	if reflect.DeepEqual(first.Amplitudes, other.Amplitudes) {
		t.Error("different seeds produced identical amplitude grids")
	}
}

func TestWaveVectorCentering(t *testing.T) {
	// The symmetric remapping never lands on the raw 0-based DC index:
	// x = 2i - n - 1 is odd for every cell.
	const res = 8
	for j := 0; j < res; j++ {
		for i := 0; i < res; i++ {
			k := waveVector(i, j, res, 64)
			if k.Len() < epsilon {
				t.Errorf("degenerate wavevector at cell (%d, %d)", j, i)
			}
		}
	}

	k := waveVector(0, 0, res, 64)
	want := math.Pi * float64(-9) / 64
	if math.Abs(k.X()-want) > 1e-15 || math.Abs(k.Y()-want) > 1e-15 {
		t.Errorf("waveVector(0, 0) = %v, want (%v, %v)", k, want, want)
	}
}
