package pipeline

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/kinestream/framepipe/pkg/media"
)

// Config describes one pipeline instance.
//
// Example:
//
//	stream:
//	  kind: video
//	  time_base: 1/90000
//	  frame_rate: 25/1
//	segments: "0-2#5-7"
//	buffer:
//	  capacity: 96
//	  tolerance: 1e-7
type Config struct {
	Stream StreamConfig `yaml:"stream"`

	// Segments is the timeline editor specification ("start-end" pairs
	// joined by '#'). Empty disables the editor stage.
	Segments string `yaml:"segments"`

	// Buffer enables the gap-correction stage when present.
	Buffer *BufferConfig `yaml:"buffer"`
}

// StreamConfig is the YAML form of media.StreamInfo.
type StreamConfig struct {
	Kind       string `yaml:"kind"`        // "audio" or "video"
	TimeBase   string `yaml:"time_base"`   // rational, e.g. "1/90000"
	FrameRate  string `yaml:"frame_rate"`  // video only, e.g. "25/1"
	SampleRate int    `yaml:"sample_rate"` // audio only, Hz
}

// BufferConfig configures the gap-correction buffer. Zero values select the
// fixpts defaults.
type BufferConfig struct {
	Capacity  int     `yaml:"capacity"`
	Tolerance float64 `yaml:"tolerance"`
}

// LoadConfig reads and parses a YAML pipeline configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pipeline: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// StreamInfo resolves the stream section into a validated media.StreamInfo.
func (c *Config) StreamInfo() (media.StreamInfo, error) {
	var info media.StreamInfo

	switch c.Stream.Kind {
	case "audio":
		info.Kind = media.Audio
	case "video":
		info.Kind = media.Video
	default:
		return info, fmt.Errorf("pipeline: unknown stream kind %q", c.Stream.Kind)
	}

	tb, err := media.ParseRational(c.Stream.TimeBase)
	if err != nil {
		return info, err
	}
	info.TimeBase = tb

	if c.Stream.FrameRate != "" {
		fr, err := media.ParseRational(c.Stream.FrameRate)
		if err != nil {
			return info, err
		}
		info.FrameRate = fr
	}
	info.SampleRate = c.Stream.SampleRate

	if err := info.Validate(); err != nil {
		return info, err
	}
	return info, nil
}
