package core

// Sample constrains the element types audio storage is instantiated with.
type Sample interface {
	~float32 | ~float64
}
