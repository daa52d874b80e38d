package core

// DenormalPolicy selects how near-zero values are treated on the render
// path. It replaces the usual process-wide flush-to-zero register toggle
// with an explicit value the caller passes to whatever consumes it, so the
// policy is scoped to one processing chain instead of the whole process.
type DenormalPolicy int

const (
	// KeepDenormals leaves samples untouched.
	KeepDenormals DenormalPolicy = iota
	// FlushToZero replaces denormal-range samples with exact zero.
	FlushToZero
)

// Apply returns x processed under the policy.
func (p DenormalPolicy) Apply(x float64) float64 {
	if p == FlushToZero {
		return FlushDenormals(x)
	}

	return x
}
