// Package frameio reads and writes recorded frame streams.
//
// A recording is a msgpack stream: one header record describing the stream
// (kind, time base, cadence), followed by one record per frame. The format
// exists so pipelines can be fed from and drained to plain files; it makes
// no attempt at seeking or indexing.
//
// Reader implements media.Source and Writer implements media.Sink, so a
// recording plugs directly into a filter chain on either end.
package frameio
