// Package interp provides fractional-position interpolation kernels for
// delay-line reads.
//
// [Lagrange6] is a 5th-order Lagrange polynomial over six equally spaced
// taps at positions -2..3, evaluated at a fractional position in [0, 1)
// between taps 0 and 1.
package interp
