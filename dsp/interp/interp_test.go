package interp

import (
	"math"
	"testing"
)

func TestLinear2Endpoints(t *testing.T) {
	if got := Linear2(0, 3, 7); got != 3 {
		t.Fatalf("Linear2(0) = %v, want 3", got)
	}
	if got := Linear2(1, 3, 7); got != 7 {
		t.Fatalf("Linear2(1) = %v, want 7", got)
	}
	if got := Linear2(0.5, 3, 7); got != 5 {
		t.Fatalf("Linear2(0.5) = %v, want 5", got)
	}
}

func TestHermite4Endpoints(t *testing.T) {
	if got := Hermite4(0, 0, 1, 2, 3); got != 1 {
		t.Fatalf("Hermite4(t=0) = %v, want 1", got)
	}
	if got := Hermite4(1, 0, 1, 2, 3); got != 2 {
		t.Fatalf("Hermite4(t=1) = %v, want 2", got)
	}
}

func TestHermite4LinearRamp(t *testing.T) {
	// On a perfectly linear signal cubic interpolation is exact.
	got := Hermite4(0.25, 0, 1, 2, 3)
	if math.Abs(got-1.25) > 1e-12 {
		t.Fatalf("Hermite4(0.25) on ramp = %v, want 1.25", got)
	}
}

func TestLagrange4Endpoints(t *testing.T) {
	if got := Lagrange4(0, 5, 1, 2, 3); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Lagrange4(t=0) = %v, want 1", got)
	}
	if got := Lagrange4(1, 5, 1, 2, 3); math.Abs(got-2) > 1e-12 {
		t.Fatalf("Lagrange4(t=1) = %v, want 2", got)
	}
}

func TestLagrange4ExactOnCubic(t *testing.T) {
	// Lagrange through 4 points reproduces any cubic exactly.
	f := func(x float64) float64 { return 2*x*x*x - x*x + 3*x - 1 }
	got := Lagrange4(0.3, f(-1), f(0), f(1), f(2))
	if math.Abs(got-f(0.3)) > 1e-12 {
		t.Fatalf("Lagrange4(0.3) = %v, want %v", got, f(0.3))
	}
}
