package interp

// Linear2 computes 2-point linear interpolation between x0 and x1 at
// position t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	if t >= 1 {
		return x1
	}
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Lagrange4 computes cubic 4-point Lagrange interpolation.
// It interpolates between x0 and x1 at position t in [0, 1], with xm1 and
// x2 as the outer support points.
func Lagrange4(t, xm1, x0, x1, x2 float64) float64 {
	// Support points sit at offsets -1, 0, 1, 2 relative to t.
	l0 := -(t * (t - 1) * (t - 2)) / 6
	l1 := ((t + 1) * (t - 1) * (t - 2)) / 2
	l2 := -((t + 1) * t * (t - 2)) / 2
	l3 := ((t + 1) * t * (t - 1)) / 6
	return xm1*l0 + x0*l1 + x1*l2 + x2*l3
}
