package pipeline

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/kinestream/framepipe/pkg/media"
)

type collectSink struct{ pts []int64 }

func (c *collectSink) Push(f *media.Frame) error {
	c.pts = append(c.pts, f.PTS)
	return nil
}

func frames(pts ...int64) []*media.Frame {
	out := make([]*media.Frame, len(pts))
	for i, p := range pts {
		out[i] = &media.Frame{PTS: p}
	}
	return out
}

func videoConfig() *Config {
	return &Config{
		Stream: StreamConfig{
			Kind:      "video",
			TimeBase:  "1/1",
			FrameRate: "1/1",
		},
	}
}

func TestPipelineRun(t *testing.T) {
	// One frame per second, keep seconds 0-2 and 5-7, then a lenient gap
	// buffer. The editor forwards the frames at 1s and 6s (re-based to 1
	// and 3) and goes terminal on the frame at 7s, so the frame at 8s is
	// never pulled.
	cfg := videoConfig()
	cfg.Segments = "0-2#5-7"
	cfg.Buffer = &BufferConfig{Capacity: 2, Tolerance: 10}

	p, err := New(cfg, media.SliceSource(frames(0, 1, 2, 3, 4, 5, 6, 7, 8)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var sink collectSink
	stats, err := p.Run(&sink)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !slices.Equal(sink.pts, []int64{1, 3}) {
		t.Errorf("output pts %v, want [1 3]", sink.pts)
	}
	if stats.In != 8 || stats.Out != 2 || stats.Dropped() != 6 {
		t.Errorf("stats %+v dropped=%d", stats, stats.Dropped())
	}
}

func TestPipelinePassthrough(t *testing.T) {
	p, err := New(videoConfig(), media.SliceSource(frames(5, 6, 7)))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var sink collectSink
	stats, err := p.Run(&sink)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !slices.Equal(sink.pts, []int64{5, 6, 7}) {
		t.Errorf("output pts %v", sink.pts)
	}
	if stats.Dropped() != 0 {
		t.Errorf("dropped=%d", stats.Dropped())
	}
}

func TestPipelineRejectsBadConfig(t *testing.T) {
	cfg := videoConfig()
	cfg.Segments = "5-1"
	if _, err := New(cfg, media.SliceSource(nil)); err == nil {
		t.Errorf("inverted segment accepted")
	}

	cfg = videoConfig()
	cfg.Buffer = &BufferConfig{Capacity: -1}
	if _, err := New(cfg, media.SliceSource(nil)); err == nil {
		t.Errorf("negative capacity accepted")
	}

	cfg = &Config{Stream: StreamConfig{Kind: "subtitle", TimeBase: "1/1"}}
	if _, err := New(cfg, media.SliceSource(nil)); err == nil {
		t.Errorf("unknown stream kind accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	doc := `
stream:
  kind: audio
  time_base: 1/48000
  sample_rate: 48000
segments: "0-2#5-7"
buffer:
  capacity: 32
  tolerance: 0.001
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Segments != "0-2#5-7" {
		t.Errorf("segments=%q", cfg.Segments)
	}
	if cfg.Buffer == nil || cfg.Buffer.Capacity != 32 || cfg.Buffer.Tolerance != 0.001 {
		t.Errorf("buffer=%+v", cfg.Buffer)
	}

	info, err := cfg.StreamInfo()
	if err != nil {
		t.Fatalf("stream info: %v", err)
	}
	if info.Kind != media.Audio || info.SampleRate != 48000 {
		t.Errorf("info=%+v", info)
	}
	if info.TimeBase != (media.Rational{Num: 1, Den: 48000}) {
		t.Errorf("time base %v", info.TimeBase)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file accepted")
	}
}
