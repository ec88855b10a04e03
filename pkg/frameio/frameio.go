package frameio

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kinestream/framepipe/pkg/media"
)

const (
	magic         = "framepipe"
	formatVersion = 1
)

// ErrBadHeader is returned when a recording does not start with a valid
// header record.
var ErrBadHeader = errors.New("frameio: bad recording header")

type header struct {
	Magic      string `msgpack:"magic"`
	Version    int    `msgpack:"version"`
	Kind       int    `msgpack:"kind"`
	TBNum      int64  `msgpack:"tb_num"`
	TBDen      int64  `msgpack:"tb_den"`
	RateNum    int64  `msgpack:"rate_num"`
	RateDen    int64  `msgpack:"rate_den"`
	SampleRate int    `msgpack:"sample_rate"`
}

type record struct {
	PTS       int64  `msgpack:"pts"`
	NBSamples int    `msgpack:"nb_samples"`
	Payload   []byte `msgpack:"payload"`
}

// Writer appends frames to a recording. It implements media.Sink.
type Writer struct {
	enc *msgpack.Encoder
}

// NewWriter writes the stream header to w and returns a Writer for the
// frames that follow.
func NewWriter(w io.Writer, info media.StreamInfo) (*Writer, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	enc := msgpack.NewEncoder(w)
	h := header{
		Magic:      magic,
		Version:    formatVersion,
		Kind:       int(info.Kind),
		TBNum:      info.TimeBase.Num,
		TBDen:      info.TimeBase.Den,
		RateNum:    info.FrameRate.Num,
		RateDen:    info.FrameRate.Den,
		SampleRate: info.SampleRate,
	}
	if err := enc.Encode(&h); err != nil {
		return nil, fmt.Errorf("frameio: write header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Push appends one frame record.
func (w *Writer) Push(f *media.Frame) error {
	rec := record{PTS: f.PTS, NBSamples: f.NBSamples, Payload: f.Payload}
	if err := w.enc.Encode(&rec); err != nil {
		return fmt.Errorf("frameio: write frame: %w", err)
	}
	return nil
}

// Reader reads frames back from a recording. It implements media.Source.
type Reader struct {
	dec  *msgpack.Decoder
	info media.StreamInfo
}

// NewReader reads and validates the stream header from r.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(r)

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if h.Magic != magic || h.Version != formatVersion {
		return nil, fmt.Errorf("%w: magic %q version %d", ErrBadHeader, h.Magic, h.Version)
	}

	info := media.StreamInfo{
		Kind:       media.Kind(h.Kind),
		TimeBase:   media.Rational{Num: h.TBNum, Den: h.TBDen},
		FrameRate:  media.Rational{Num: h.RateNum, Den: h.RateDen},
		SampleRate: h.SampleRate,
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	return &Reader{dec: dec, info: info}, nil
}

// StreamInfo returns the stream description from the recording header.
func (r *Reader) StreamInfo() media.StreamInfo { return r.info }

// Next returns the next recorded frame, or io.EOF at the end of the
// recording.
func (r *Reader) Next() (*media.Frame, error) {
	var rec record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("frameio: read frame: %w", err)
	}
	return &media.Frame{PTS: rec.PTS, NBSamples: rec.NBSamples, Payload: rec.Payload}, nil
}
