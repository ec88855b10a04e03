package frameio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/kinestream/framepipe/pkg/media"
)

func TestRoundTrip(t *testing.T) {
	info := media.StreamInfo{
		Kind:      media.Video,
		TimeBase:  media.Rational{Num: 1, Den: 90000},
		FrameRate: media.Rational{Num: 25, Den: 1},
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, info)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	frames := []*media.Frame{
		{PTS: 0, Payload: []byte("first")},
		{PTS: 3600, Payload: []byte("second"), NBSamples: 0},
		{PTS: 7200, Payload: nil},
	}
	for _, f := range frames {
		if err := w.Push(f); err != nil {
			t.Fatalf("push: %v", err)
		}
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	if got := r.StreamInfo(); got != info {
		t.Errorf("stream info %+v, want %+v", got, info)
	}

	for i, want := range frames {
		f, err := r.Next()
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if f.PTS != want.PTS {
			t.Errorf("frame %d: pts=%d, want %d", i, f.PTS, want.PTS)
		}
		if !bytes.Equal(f.Payload, want.Payload) {
			t.Errorf("frame %d: payload %q, want %q", i, f.Payload, want.Payload)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("err=%v, want io.EOF", err)
	}
}

func TestReaderRejectsGarbage(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not a recording")))
	if !errors.Is(err, ErrBadHeader) {
		t.Errorf("err=%v, want ErrBadHeader", err)
	}
}

func TestWriterRejectsBadStream(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewWriter(&buf, media.StreamInfo{}); err == nil {
		t.Errorf("invalid stream info accepted")
	}
}
