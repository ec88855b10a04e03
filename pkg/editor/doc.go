// Package editor implements a segment timeline editor for timestamped
// frame streams.
//
// The editor is configured with an ordered list of half-open [start, end)
// source-time windows. Frames whose presentation time falls strictly inside
// the current window are forwarded with their timestamps re-based onto a
// contiguous output timeline; everything else is dropped. The frame that
// first reaches or passes a window's end closes that window: it advances the
// editor to the next segment, moves the output-time base, and is itself
// discarded. Frames exactly on a window's start are likewise discarded.
// Once the last segment is exhausted the editor drains, consuming every
// further frame without forwarding.
//
// Input presentation times must be non-decreasing; a decrease is a hard
// stream error (ErrDiscontinuity) and the editor attempts no
// resynchronization.
package editor
