// Package pipeline composes the timeline editor and the gap-correction
// buffer into a single configurable frame filter chain.
//
// A Pipeline wraps an upstream Source and is itself a Source; Run drains it
// into a Sink and reports how many frames went in, came out, and were
// corrected away. Configuration comes from a small YAML document (see
// Config) so the same chain can be driven from files, tests, or the CLI.
package pipeline
