package domain

import (
	"fmt"
	"strings"
)

// RenderMode controls how values are interpolated into the status page.
type RenderMode string

const (
	// RenderVerbatim writes values into the markup unchanged.
	RenderVerbatim RenderMode = "verbatim"
	// RenderSanitize strips markup from values and HTML-escapes the remaining text.
	RenderSanitize RenderMode = "sanitize"
)

// ParseRenderMode parses a mode name. An empty string selects RenderVerbatim.
func ParseRenderMode(s string) (RenderMode, error) {
	switch RenderMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RenderVerbatim:
		return RenderVerbatim, nil
	case RenderSanitize:
		return RenderSanitize, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRenderMode, s)
	}
}

func (m RenderMode) String() string {
	return string(m)
}
