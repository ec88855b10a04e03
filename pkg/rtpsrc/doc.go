// Package rtpsrc turns an RTP packet stream into a frame Source.
//
// Packets are framed as in RFC 4571 (a 16-bit big-endian length prefix per
// packet), the framing pion tooling uses for RTP over stream transports.
// Each packet's payload becomes one Frame; the 32-bit RTP timestamp is
// unwrapped into a monotonically extending 64-bit PTS in units of the
// stream clock, so the result feeds straight into pkg/editor and
// pkg/fixpts.
package rtpsrc
