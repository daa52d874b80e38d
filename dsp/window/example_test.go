package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-audiocore/dsp/window"
)

func Example() {
	coeffs := window.Generate(window.TypeHann, 8, window.WithPeriodic())
	for _, c := range coeffs {
		fmt.Printf("%.3f ", c)
	}
	fmt.Println()
	// Output:
	// 0.000 0.146 0.500 0.854 1.000 0.854 0.500 0.146
}
