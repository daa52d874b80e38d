package view

// Span is a non-owning view over contiguous elements of someone else's
// storage. It is invalidated by any resize of the owner: it keeps
// referring to the storage that existed when it was taken.
type Span[T any] struct {
	data []T
}

// NewSpan returns a Span over data.
func NewSpan[T any](data []T) Span[T] {
	return Span[T]{data: data}
}

// Len returns the number of elements.
func (s Span[T]) Len() int {
	return len(s.data)
}

// Empty reports whether the span has no elements.
func (s Span[T]) Empty() bool {
	return len(s.data) == 0
}

// At returns the element at index i.
func (s Span[T]) At(i int) T {
	return s.data[i]
}

// Set stores v at index i.
func (s Span[T]) Set(i int, v T) {
	s.data[i] = v
}

// Slice returns the underlying slice. Mutations through the slice are
// visible to the owner and vice versa.
func (s Span[T]) Slice() []T {
	return s.data
}

// StridedSpan is a non-owning view over regularly-spaced elements:
// logical element i lives at data[i*stride].
type StridedSpan[T any] struct {
	data   []T
	count  int
	stride int
}

// NewStridedSpan returns a StridedSpan of count elements spaced stride
// apart, starting at data[0]. The backing slice must cover the last
// element, i.e. len(data) > (count-1)*stride for count > 0.
func NewStridedSpan[T any](data []T, count, stride int) StridedSpan[T] {
	return StridedSpan[T]{data: data, count: count, stride: stride}
}

// Len returns the number of logical elements.
func (s StridedSpan[T]) Len() int {
	return s.count
}

// Stride returns the physical distance between logical neighbors.
func (s StridedSpan[T]) Stride() int {
	return s.stride
}

// At returns the logical element at index i.
func (s StridedSpan[T]) At(i int) T {
	return s.data[i*s.stride]
}

// Set stores v at logical index i.
func (s StridedSpan[T]) Set(i int, v T) {
	s.data[i*s.stride] = v
}

// Kind discriminates the two concrete view shapes a View can hold.
type Kind uint8

const (
	// Contiguous marks a View backed by a Span.
	Contiguous Kind = iota
	// Strided marks a View backed by a StridedSpan.
	Strided
)

// View is a tagged union of Span and StridedSpan exposing one access
// surface, so algorithms written against View work unchanged whether a
// channel happens to be contiguous or strided in its buffer's layout.
type View[T any] struct {
	data   []T
	count  int
	stride int
	kind   Kind
}

// FromSlice returns a contiguous View over data.
func FromSlice[T any](data []T) View[T] {
	return View[T]{data: data, count: len(data), stride: 1, kind: Contiguous}
}

// FromSpan returns a contiguous View over the same storage as s.
func FromSpan[T any](s Span[T]) View[T] {
	return FromSlice(s.data)
}

// FromStridedSpan returns a strided View over the same storage as s.
func FromStridedSpan[T any](s StridedSpan[T]) View[T] {
	return View[T]{data: s.data, count: s.count, stride: s.stride, kind: Strided}
}

// Kind returns the concrete shape of the view.
func (v View[T]) Kind() Kind {
	return v.kind
}

// Len returns the number of logical elements.
func (v View[T]) Len() int {
	return v.count
}

// At returns the logical element at index i.
func (v View[T]) At(i int) T {
	return v.data[i*v.stride]
}

// Set stores x at logical index i.
func (v View[T]) Set(i int, x T) {
	v.data[i*v.stride] = x
}

// AsSpan returns the contiguous form when the view is contiguous.
func (v View[T]) AsSpan() (Span[T], bool) {
	if v.kind != Contiguous {
		return Span[T]{}, false
	}
	return Span[T]{data: v.data[:v.count]}, true
}

// AsStridedSpan returns the strided form when the view is strided.
func (v View[T]) AsStridedSpan() (StridedSpan[T], bool) {
	if v.kind != Strided {
		return StridedSpan[T]{}, false
	}
	return StridedSpan[T]{data: v.data, count: v.count, stride: v.stride}, true
}
