package ctype

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a member path: a member name, optionally followed by
// an array index.
type Segment struct {
	Name  string
	Index int // -1 when the segment does not index
}

// ParsePath splits paths such as "pt", "rgrc[1]", or "ddpfPixelFormat.dwFlags".
func ParsePath(path string) ([]Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("empty member path")
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		seg, err := parseSegment(p)
		if err != nil {
			return nil, fmt.Errorf("member path %q: %w", path, err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func parseSegment(s string) (Segment, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if s == "" {
			return Segment{}, fmt.Errorf("empty segment")
		}
		return Segment{Name: s, Index: -1}, nil
	}
	if open == 0 || !strings.HasSuffix(s, "]") {
		return Segment{}, fmt.Errorf("malformed segment %q", s)
	}
	idx, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || idx < 0 {
		return Segment{}, fmt.Errorf("bad index in %q", s)
	}
	return Segment{Name: s[:open], Index: idx}, nil
}
