// Package interp provides interpolation primitives used by delay-based
// DSP blocks, from cheapest to highest quality:
//
//   - [Linear2]:   2-point linear interpolation
//   - [Hermite4]:  4-point cubic Hermite (good default)
//   - [Lagrange4]: 4-point cubic Lagrange
package interp
