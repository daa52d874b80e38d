package block

import (
	"testing"

	"github.com/cwbudde/algo-audiocore/dsp/view"
)

func strided3(data []float64) view.View[float64] {
	return view.FromStridedSpan(view.NewStridedSpan(data, (len(data)+2)/3, 3))
}

func TestFillContiguous(t *testing.T) {
	data := make([]float64, 5)
	Fill(view.FromSlice(data), 2.5)
	for i, v := range data {
		if v != 2.5 {
			t.Fatalf("data[%d] = %v, want 2.5", i, v)
		}
	}
}

func TestFillStrided(t *testing.T) {
	data := make([]float64, 7)
	Fill(strided3(data), 1.0)
	want := []float64{1, 0, 0, 1, 0, 0, 1}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestScaleContiguous(t *testing.T) {
	data := []float64{1, 2, 3}
	Scale(view.FromSlice(data), 2)
	want := []float64{2, 4, 6}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestScaleStridedMatchesContiguous(t *testing.T) {
	// Same logical values through both paths must agree exactly.
	contig := []float64{1, 2, 3}
	spread := []float64{1, 0, 0, 2, 0, 0, 3}
	Scale(view.FromSlice(contig), 0.5)
	Scale(strided3(spread), 0.5)
	for i := range contig {
		if spread[i*3] != contig[i] {
			t.Fatalf("strided[%d] = %v, contiguous = %v", i, spread[i*3], contig[i])
		}
	}
}

func TestScaleFloat32(t *testing.T) {
	data := []float32{1, 2}
	Scale(view.FromSlice(data), 3)
	if data[0] != 3 || data[1] != 6 {
		t.Fatalf("data = %v, want [3 6]", data)
	}
}

func TestCopyLockStep(t *testing.T) {
	dst := []float64{0, 0, 0, 0}
	src := []float64{1, 2}
	Copy(view.FromSlice(dst), view.FromSlice(src))
	want := []float64{1, 2, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestCopyContiguousToStrided(t *testing.T) {
	dst := make([]float64, 7)
	Copy(strided3(dst), view.FromSlice([]float64{4, 5, 6}))
	want := []float64{4, 0, 0, 5, 0, 0, 6}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestAdd(t *testing.T) {
	dst := []float64{1, 1, 1}
	Add(view.FromSlice(dst), view.FromSlice([]float64{1, 2, 3}))
	want := []float64{2, 3, 4}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestAddShorterSource(t *testing.T) {
	dst := []float64{1, 1, 1}
	Add(view.FromSlice(dst), view.FromSlice([]float64{5}))
	want := []float64{6, 1, 1}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestAddStrided(t *testing.T) {
	dst := []float64{1, 0, 0, 2, 0, 0, 3}
	Add(strided3(dst), view.FromSlice([]float64{10, 20, 30}))
	if dst[0] != 11 || dst[3] != 22 || dst[6] != 33 {
		t.Fatalf("dst = %v", dst)
	}
}

func TestMul(t *testing.T) {
	dst := []float64{2, 3, 4}
	Mul(view.FromSlice(dst), view.FromSlice([]float64{2, 2, 2}))
	want := []float64{4, 6, 8}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}

func TestApply(t *testing.T) {
	data := []float64{-1, 2, -3}
	Apply(view.FromSlice(data), func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	})
	want := []float64{1, 2, 3}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestApplyStrided(t *testing.T) {
	data := []float64{1, 9, 9, 2, 9, 9, 3}
	Apply(strided3(data), func(x float64) float64 { return x * 10 })
	if data[0] != 10 || data[3] != 20 || data[6] != 30 {
		t.Fatalf("data = %v", data)
	}
	if data[1] != 9 || data[2] != 9 {
		t.Fatal("Apply touched elements outside the view")
	}
}

func TestApply2(t *testing.T) {
	dst := []float64{1, 2, 3}
	src := []float64{4, 5, 6}
	Apply2(view.FromSlice(dst), view.FromSlice(src), func(a, b float64) float64 { return b - a })
	want := []float64{3, 3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}
}
