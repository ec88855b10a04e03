package fixpts

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"

	"github.com/kinestream/framepipe/pkg/media"
)

// Defaults for Buffer configuration.
const (
	DefaultCapacity  = 96
	DefaultTolerance = 1e-7
)

// ErrQueueBroken is returned by Admit when the queue exceeds its capacity.
// That can only happen if the caller violates the admission discipline
// (one Admit at a time on a single goroutine); it is not recoverable.
var ErrQueueBroken = errors.New("fixpts: frame queue is broken")

// Buffer is the gap-correction lookahead window. It owns every queued frame
// until the frame is emitted or discarded.
//
// A Buffer must not be used from more than one goroutine at a time.
type Buffer struct {
	info      media.StreamInfo
	capacity  int
	tolerance float64

	queue         []*media.Frame
	lastTS        float64 // presentation time of the last emitted frame, seconds
	lastNBSamples int     // sample count of the last emitted frame (audio cadence)
}

// New creates a gap-correction buffer. capacity must be at least 1 and
// tolerance non-negative; zero values select DefaultCapacity and
// DefaultTolerance. The stream info supplies the time base and the nominal
// cadence (frame rate for video, sample rate for audio).
func New(info media.StreamInfo, capacity int, tolerance float64) (*Buffer, error) {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	if capacity < 1 {
		return nil, fmt.Errorf("fixpts: invalid capacity %d", capacity)
	}
	if tolerance < 0 {
		return nil, fmt.Errorf("fixpts: invalid tolerance %g", tolerance)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{
		info:      info,
		capacity:  capacity,
		tolerance: tolerance,
		queue:     make([]*media.Frame, 0, capacity),
	}, nil
}

// Len returns the number of queued frames.
func (b *Buffer) Len() int { return len(b.queue) }

// Admit feeds one frame into the window. While the queue is below capacity
// the frame is only enqueued and nothing is emitted. Once the queue fills,
// the oldest frame is processed and Admit returns the emitted frame, if
// any. A nil frame with a nil error means the window absorbed the input
// without emitting.
func (b *Buffer) Admit(f *media.Frame) (*media.Frame, error) {
	if len(b.queue) < b.capacity {
		b.queue = append(b.queue, f)
	}

	var out *media.Frame
	if len(b.queue) == b.capacity {
		out = b.processOldest()
	}

	if len(b.queue) > b.capacity {
		return nil, ErrQueueBroken
	}
	return out, nil
}

// interval returns the expected spacing between consecutive frames: the
// inverse frame rate for video, or the last emitted frame's sample count
// over the sample rate for audio (zero until the first audio frame is
// emitted).
func (b *Buffer) interval() float64 {
	if b.info.Kind == media.Video {
		return 1.0 / b.info.FrameRate.Float()
	}
	return float64(b.lastNBSamples) / float64(b.info.SampleRate)
}

// gap returns the deviation between where ts actually sits and where the
// cadence predicts the frame after lastTS should sit.
func (b *Buffer) gap(ts, interval float64) float64 {
	return math.Abs(b.lastTS - ts + interval)
}

// processOldest dequeues the front frame and decides its fate. It returns
// the frame when it is emitted and nil when the window resynchronized by
// discarding instead. Each call strictly shrinks the queue.
func (b *Buffer) processOldest() *media.Frame {
	front := b.queue[0]
	b.queue = slices.Delete(b.queue, 0, 1)

	interval := b.interval()
	frontTS := b.info.Seconds(front.PTS)
	frontGap := b.gap(frontTS, interval)

	slog.Debug("fixpts: frame", "pts", front.PTS, "ts", frontTS)

	if frontGap < b.tolerance {
		return b.emit(front, frontTS)
	}

	slog.Debug("fixpts: unexpected frame gap",
		"gap", frontGap,
		"interval", interval,
		"tolerance", b.tolerance)

	// Look ahead for a frame that fits the expected continuation better.
	best := frontGap
	drain := 0
	for i, cached := range b.queue {
		if g := b.gap(b.info.Seconds(cached.PTS), interval); g < best {
			best = g
			drain = i
		}
	}

	if best >= frontGap {
		slog.Debug("fixpts: no lower gap found, emitting the frame anyway")
		return b.emit(front, frontTS)
	}

	// The frames between the front and the better candidate are spurious;
	// drop them with the front and resynchronize on the candidate. The
	// last emitted timestamp is deliberately left alone.
	slog.Debug("fixpts: lower gap found, discarding frames",
		"gap", best,
		"discarded", drain+1)
	b.queue = slices.Delete(b.queue, 0, drain)
	return nil
}

func (b *Buffer) emit(f *media.Frame, ts float64) *media.Frame {
	b.lastTS = ts
	b.lastNBSamples = f.NBSamples
	return f
}

// Flush drains the window after upstream end-of-stream, yielding the frames
// that survive gap correction. Each drain step consumes at least one queued
// frame, so the sequence is finite; the queue is empty afterwards.
func (b *Buffer) Flush() iter.Seq[*media.Frame] {
	return func(yield func(*media.Frame) bool) {
		for len(b.queue) > 0 {
			f := b.processOldest()
			if f == nil {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Reset discards all queued frames and returns the buffer to its initial
// timing state.
func (b *Buffer) Reset() {
	clear(b.queue)
	b.queue = b.queue[:0]
	b.lastTS = 0
	b.lastNBSamples = 0
}
