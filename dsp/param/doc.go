// Package param supplies smoothed control values to the tape engine and
// converts parameter values to and from display strings.
//
// [Linear] is a fixed-length linear ramp. [Bank] holds one ramp per tape
// control plus the bypass flag and implements tape.ControlSource, so an
// engine can pull values from it without knowing about host parameters.
package param
