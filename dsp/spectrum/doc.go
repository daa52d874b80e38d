// Package spectrum computes magnitude and power spectra of buffer
// channels, so analysis and measurement code never reimplements layout
// handling. Everything here allocates; it belongs on the non-real-time
// side.
package spectrum
