// Package tape implements an analog tape machine emulation for stereo
// audio: companding pre-emphasis, wow-and-flutter transport jitter, bias
// hysteresis, split-band saturation with head-bump resonance, companding
// de-emphasis and a one-sample-latency soft clipper.
//
// [Engine] is the real-time entry point. [Engine.Prepare] is the only place
// that allocates; [Engine.Process] is allocation-free, lock-free and bounded
// by the sample count.
//
// Controls are pulled from a [ControlSource] once per block, except bias,
// which the hysteresis stage reads once per frame. Every control cursor is
// advanced exactly n steps per n-sample block.
//
// The leaf stages ([Hysteresis], [Compander], [SoftClipper]) are exported
// for reuse and testing; they hold no references and may be copied.
package tape
