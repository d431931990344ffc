// Package response measures rendered audio: time-domain levels, a windowed
// power spectrum, band energy and harmonic distortion of a test tone.
//
// It is used offline by tests and the command-line host to check what the
// tape engine does to a signal. Nothing here is real-time safe.
package response
