package fixpts

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kinestream/framepipe/pkg/media"
)

// Reader drives a Buffer from an upstream Source, itself acting as a Source
// for the corrected stream. Once upstream reports end-of-stream the Reader
// drains the remaining window and then reports io.EOF itself.
type Reader struct {
	buf      *Buffer
	src      media.Source
	draining bool
}

// NewReader returns a Reader that pulls from src through buf.
func NewReader(buf *Buffer, src media.Source) *Reader {
	return &Reader{buf: buf, src: src}
}

// Next pulls frames from upstream and admits them into the window until a
// frame is emitted. Upstream io.EOF switches the Reader into drain mode.
func (r *Reader) Next() (*media.Frame, error) {
	for !r.draining {
		f, err := r.src.Next()
		if errors.Is(err, io.EOF) {
			r.draining = true
			slog.Debug("fixpts: flushing buffered frames", "queued", r.buf.Len())
			break
		}
		if err != nil {
			return nil, err
		}
		out, err := r.buf.Admit(f)
		if err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}

	for r.buf.Len() > 0 {
		if f := r.buf.processOldest(); f != nil {
			return f, nil
		}
	}
	return nil, io.EOF
}
