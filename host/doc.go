// Package host wraps the tape engine the way a plug-in shell would: a
// thread-safe parameter store in plain units, a [Processor] that turns
// parameter changes into smoothed engine controls, and JSON state.
//
// Parameters may be set from any goroutine. A Processor belongs to the
// audio goroutine.
package host
