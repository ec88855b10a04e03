package rtpsrc

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pion/rtp"

	"github.com/kinestream/framepipe/pkg/media"
)

// maxPacketSize is the largest RFC 4571 frame we accept (the length prefix
// is 16 bits, so this is also the format's own ceiling).
const maxPacketSize = 0xffff

// Source reads length-prefixed RTP packets and yields their payloads as
// frames. It implements media.Source.
type Source struct {
	r         io.Reader
	clockRate int

	lenbuf [2]byte
	pkt    rtp.Packet

	started bool
	lastTS  uint32
	extTS   int64
}

// New creates a Source reading RFC 4571 framed RTP packets from r.
// clockRate is the RTP clock in Hz (e.g. 90000 for video) and defines the
// time base of the produced PTS values.
func New(r io.Reader, clockRate int) (*Source, error) {
	if clockRate <= 0 {
		return nil, fmt.Errorf("rtpsrc: invalid clock rate %d", clockRate)
	}
	return &Source{r: r, clockRate: clockRate}, nil
}

// TimeBase returns the time base of the produced frames: one over the RTP
// clock rate.
func (s *Source) TimeBase() media.Rational {
	return media.Rational{Num: 1, Den: int64(s.clockRate)}
}

// Next reads one RTP packet and returns its payload as a frame. It returns
// io.EOF on a clean end of the packet stream; a stream truncated mid-packet
// is an error.
func (s *Source) Next() (*media.Frame, error) {
	if _, err := io.ReadFull(s.r, s.lenbuf[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("rtpsrc: read packet length: %w", err)
	}

	size := int(binary.BigEndian.Uint16(s.lenbuf[:]))
	buf := make([]byte, size)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("rtpsrc: read packet: %w", err)
	}

	if err := s.pkt.Unmarshal(buf); err != nil {
		return nil, fmt.Errorf("rtpsrc: unmarshal packet: %w", err)
	}

	return &media.Frame{
		PTS:     s.extend(s.pkt.Timestamp),
		Payload: s.pkt.Payload,
	}, nil
}

// extend unwraps the 32-bit RTP timestamp into a 64-bit PTS. The signed
// delta keeps the extension correct across wraparound in either direction.
func (s *Source) extend(ts uint32) int64 {
	if !s.started {
		s.started = true
		s.lastTS = ts
		s.extTS = int64(ts)
		return s.extTS
	}
	s.extTS += int64(int32(ts - s.lastTS))
	s.lastTS = ts
	return s.extTS
}
