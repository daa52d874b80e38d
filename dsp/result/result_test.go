package result

import "testing"

func TestOkState(t *testing.T) {
	r := Ok[int, string](42)
	if !r.HasValue() {
		t.Fatal("HasValue() = false for Ok")
	}
	if r.HasError() {
		t.Fatal("HasError() = true for Ok")
	}
	if r.Value() != 42 {
		t.Fatalf("Value() = %d, want 42", r.Value())
	}
}

func TestErrState(t *testing.T) {
	r := Err[int]("boom")
	if r.HasValue() {
		t.Fatal("HasValue() = true for Err")
	}
	if !r.HasError() {
		t.Fatal("HasError() = false for Err")
	}
	if r.Error() != "boom" {
		t.Fatalf("Error() = %q, want %q", r.Error(), "boom")
	}
}

func TestValueOnErrPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Value() on an error Result did not panic")
		}
	}()
	_ = Err[int]("boom").Value()
}

func TestErrorOnOkPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Error() on a success Result did not panic")
		}
	}()
	_ = Ok[int, string](1).Error()
}

func TestValueOr(t *testing.T) {
	if got := Ok[int, string](3).ValueOr(7); got != 3 {
		t.Fatalf("ValueOr on Ok = %d, want 3", got)
	}
	if got := Err[int]("boom").ValueOr(7); got != 7 {
		t.Fatalf("ValueOr on Err = %d, want 7", got)
	}
}

func TestMapIdentityIsNoOp(t *testing.T) {
	r := Ok[int, string](5)
	m := Map(r, func(v int) int { return v })
	if !Equal(r, m) {
		t.Fatal("Map(identity) changed the Result")
	}
}

func TestMapTransformsValue(t *testing.T) {
	r := Ok[int, string](5)
	m := Map(r, func(v int) float64 { return float64(v) * 0.5 })
	if !m.HasValue() || m.Value() != 2.5 {
		t.Fatalf("Map result = %+v, want Ok(2.5)", m)
	}
}

func TestMapPropagatesError(t *testing.T) {
	calls := 0
	r := Err[int]("boom")
	m := Map(r, func(v int) int { calls++; return v })
	if calls != 0 {
		t.Fatalf("Map called f %d times on an error Result", calls)
	}
	if !m.HasError() || m.Error() != "boom" {
		t.Fatalf("Map result = %+v, want Err(boom)", m)
	}
}

func TestAndThenChains(t *testing.T) {
	r := Ok[int, string](4)
	got := AndThen(r, func(v int) Result[int, string] { return Ok[int, string](v * v) })
	if !got.HasValue() || got.Value() != 16 {
		t.Fatalf("AndThen result = %+v, want Ok(16)", got)
	}
}

func TestAndThenShortCircuits(t *testing.T) {
	calls := 0
	r := Err[int]("boom")
	got := AndThen(r, func(v int) Result[int, string] {
		calls++
		return Ok[int, string](v)
	})
	if calls != 0 {
		t.Fatalf("AndThen called f %d times on an error Result", calls)
	}
	if !got.HasError() || got.Error() != "boom" {
		t.Fatalf("AndThen result = %+v, want Err(boom)", got)
	}
}

func TestOrElseRecovers(t *testing.T) {
	r := Err[int]("boom")
	got := OrElse(r, func(e string) Result[int, string] { return Ok[int, string](9) })
	if !got.HasValue() || got.Value() != 9 {
		t.Fatalf("OrElse result = %+v, want Ok(9)", got)
	}
}

func TestOrElseSkippedOnOk(t *testing.T) {
	calls := 0
	r := Ok[int, string](1)
	got := OrElse(r, func(e string) Result[int, string] {
		calls++
		return Err[int](e)
	})
	if calls != 0 {
		t.Fatalf("OrElse called f %d times on a success Result", calls)
	}
	if !Equal(got, r) {
		t.Fatal("OrElse changed a success Result")
	}
}

func TestSwapSameState(t *testing.T) {
	a := Ok[int, string](1)
	b := Ok[int, string](2)
	Swap(&a, &b)
	if a.Value() != 2 || b.Value() != 1 {
		t.Fatalf("after swap: a = %d, b = %d", a.Value(), b.Value())
	}

	c := Err[int]("x")
	d := Err[int]("y")
	Swap(&c, &d)
	if c.Error() != "y" || d.Error() != "x" {
		t.Fatalf("after swap: c = %q, d = %q", c.Error(), d.Error())
	}
}

func TestSwapOppositeStatesOkFirst(t *testing.T) {
	a := Ok[int, string](7)
	b := Err[int]("boom")
	Swap(&a, &b)
	if !a.HasError() || a.Error() != "boom" {
		t.Fatalf("a after swap = %+v, want Err(boom)", a)
	}
	if !b.HasValue() || b.Value() != 7 {
		t.Fatalf("b after swap = %+v, want Ok(7)", b)
	}
}

func TestSwapOppositeStatesErrFirst(t *testing.T) {
	a := Err[int]("boom")
	b := Ok[int, string](7)
	Swap(&a, &b)
	if !a.HasValue() || a.Value() != 7 {
		t.Fatalf("a after swap = %+v, want Ok(7)", a)
	}
	if !b.HasError() || b.Error() != "boom" {
		t.Fatalf("b after swap = %+v, want Err(boom)", b)
	}
}

func TestDoubleSwapRestores(t *testing.T) {
	a := Ok[int, string](7)
	b := Err[int]("boom")
	origA, origB := a, b
	Swap(&a, &b)
	Swap(&a, &b)
	if !Equal(a, origA) || !Equal(b, origB) {
		t.Fatal("double swap did not restore original states")
	}
}

func TestOkUnit(t *testing.T) {
	r := OkUnit[string]()
	if !r.HasValue() {
		t.Fatal("OkUnit is not a success Result")
	}
}

func TestZeroValueIsError(t *testing.T) {
	var r Result[int, string]
	if !r.HasError() {
		t.Fatal("zero Result should be in the error state")
	}
	if r.Error() != "" {
		t.Fatalf("zero Result error = %q, want empty", r.Error())
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Ok[int, string](1), Ok[int, string](1)) {
		t.Fatal("equal Ok Results reported unequal")
	}
	if Equal(Ok[int, string](1), Ok[int, string](2)) {
		t.Fatal("different Ok Results reported equal")
	}
	if Equal(Ok[int, string](1), Err[int]("1")) {
		t.Fatal("Ok and Err reported equal")
	}
	if !Equal(Err[int]("x"), Err[int]("x")) {
		t.Fatal("equal Err Results reported unequal")
	}
}
