// Package biquad provides the second-order IIR runtime primitive used by the
// resonant filters.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficient design lives
// with the filters that need it (see dsp/filter/resonant).
package biquad
