package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/spotlight/span"
)

// parseSpans reads "offset:length,offset:length". Empty input is no spans.
func parseSpans(s string) ([]span.Span, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []span.Span
	for _, part := range strings.Split(s, ",") {
		off, n, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid selection %q: want offset:length", part)
		}
		o, err := strconv.Atoi(off)
		if err != nil || o < 0 {
			return nil, fmt.Errorf("invalid selection offset %q", off)
		}
		l, err := strconv.Atoi(n)
		if err != nil || l < 0 {
			return nil, fmt.Errorf("invalid selection length %q", n)
		}
		out = append(out, span.New(o, l))
	}
	return out, nil
}
