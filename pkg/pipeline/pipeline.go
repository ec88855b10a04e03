package pipeline

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kinestream/framepipe/pkg/editor"
	"github.com/kinestream/framepipe/pkg/fixpts"
	"github.com/kinestream/framepipe/pkg/media"
)

// Stats counts frames through a pipeline run. Every frame pulled from
// upstream is either forwarded downstream or dropped by a stage, so
// Dropped is always In - Out.
type Stats struct {
	In  int64
	Out int64
}

// Dropped returns the number of frames the stages discarded.
func (s Stats) Dropped() int64 { return s.In - s.Out }

// Pipeline chains the configured stages over an upstream Source. It
// implements media.Source and, like the stages it wraps, must be driven
// from a single goroutine.
type Pipeline struct {
	id   string
	in   *countingSource
	out  media.Source
	nOut int64
}

// New builds a pipeline from cfg over src. Stages are optional: an empty
// segment spec skips the editor, an absent buffer section skips gap
// correction, and with neither the pipeline is a passthrough.
func New(cfg *Config, src media.Source) (*Pipeline, error) {
	info, err := cfg.StreamInfo()
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		id: uuid.NewString(),
		in: &countingSource{src: src},
	}
	var cur media.Source = p.in

	if cfg.Segments != "" {
		ed, err := editor.New(cfg.Segments, info.TimeBase)
		if err != nil {
			return nil, err
		}
		cur = editor.NewReader(ed, cur)
	}

	if cfg.Buffer != nil {
		buf, err := fixpts.New(info, cfg.Buffer.Capacity, cfg.Buffer.Tolerance)
		if err != nil {
			return nil, err
		}
		cur = fixpts.NewReader(buf, cur)
	}

	p.out = cur
	slog.Debug("pipeline: created",
		"id", p.id,
		"kind", info.Kind.String(),
		"editor", cfg.Segments != "",
		"buffer", cfg.Buffer != nil)
	return p, nil
}

// ID returns the pipeline's instance identifier, used in log records.
func (p *Pipeline) ID() string { return p.id }

// Stats returns the frame counters accumulated so far.
func (p *Pipeline) Stats() Stats {
	return Stats{In: p.in.n, Out: p.nOut}
}

// Next returns the next corrected frame, or io.EOF when the chain has
// drained.
func (p *Pipeline) Next() (*media.Frame, error) {
	f, err := p.out.Next()
	if err != nil {
		return nil, err
	}
	p.nOut++
	return f, nil
}

// Run pulls the pipeline dry, pushing every emitted frame into sink.
// It returns the final counters and the first error other than
// end-of-stream encountered on either side.
func (p *Pipeline) Run(sink media.Sink) (Stats, error) {
	for {
		f, err := p.Next()
		if errors.Is(err, io.EOF) {
			stats := p.Stats()
			slog.Info("pipeline: done",
				"id", p.id,
				"in", stats.In,
				"out", stats.Out,
				"dropped", stats.Dropped())
			return stats, nil
		}
		if err != nil {
			return p.Stats(), err
		}
		if err := sink.Push(f); err != nil {
			return p.Stats(), err
		}
	}
}

// countingSource counts frames pulled from the upstream source.
type countingSource struct {
	src media.Source
	n   int64
}

func (c *countingSource) Next() (*media.Frame, error) {
	f, err := c.src.Next()
	if err != nil {
		return nil, err
	}
	c.n++
	return f, nil
}
