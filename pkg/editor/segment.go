package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a half-open [Start, End) window in source seconds.
type Segment struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (s Segment) Duration() float64 { return s.End - s.Start }

// String formats the segment as "start-end".
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s",
		strconv.FormatFloat(s.Start, 'g', -1, 64),
		strconv.FormatFloat(s.End, 'g', -1, 64))
}

// ParseSegments parses a segment list specification of the form
// "start-end#start-end#...". Times are decimal seconds. Each segment must
// be non-empty (start < end) and segments must be non-overlapping and
// monotonic: every start must be at or after the previous end.
func ParseSegments(spec string) ([]Segment, error) {
	if spec == "" {
		return nil, fmt.Errorf("editor: empty segment list")
	}

	pairs := strings.Split(spec, "#")
	segments := make([]Segment, 0, len(pairs))

	for _, pair := range pairs {
		start, end, ok := strings.Cut(pair, "-")
		if !ok {
			return nil, fmt.Errorf("editor: invalid segment %q (want start-end)", pair)
		}

		seg, err := parsePair(start, end)
		if err != nil {
			return nil, err
		}
		if seg.Start >= seg.End {
			return nil, fmt.Errorf("editor: invalid or empty segment %q", pair)
		}
		if n := len(segments); n > 0 && seg.Start < segments[n-1].End {
			return nil, fmt.Errorf("editor: non-monotonic segment %q", pair)
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

func parsePair(start, end string) (Segment, error) {
	s, err := strconv.ParseFloat(strings.TrimSpace(start), 64)
	if err != nil {
		return Segment{}, fmt.Errorf("editor: invalid segment start %q: %w", start, err)
	}
	e, err := strconv.ParseFloat(strings.TrimSpace(end), 64)
	if err != nil {
		return Segment{}, fmt.Errorf("editor: invalid segment end %q: %w", end, err)
	}
	return Segment{Start: s, End: e}, nil
}
