// Package fixpts implements a gap-correction buffer that repairs anomalous
// presentation timestamps (duplicated, reordered or jittered frames) using
// a bounded lookahead window.
//
// Frames are admitted into a fixed-capacity FIFO. When the queue fills, the
// oldest frame is examined: if its timestamp sits within tolerance of where
// the stream's nominal cadence predicts the next frame, it is emitted.
// Otherwise the rest of the window is scanned for a frame that fits the
// prediction better; if one exists, the oldest frame and everything queued
// before the better candidate are discarded so the stream resynchronizes on
// it. If nothing in the window fits better, the oldest frame is emitted
// anyway — forward progress over strict accuracy.
//
// The buffer only discards, never reorders: frames are emitted in their
// original relative order, each admitted frame is emitted exactly once or
// discarded exactly once, and memory is bounded by the configured capacity.
package fixpts
