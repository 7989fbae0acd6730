// Package preset loads confetti emitter presets from YAML files and
// resolves them into emitter configuration.
package preset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/confetti/pkg/emitter"
)

// ParseValue parses a scalar preset field. Two forms are accepted:
//   - Fixed value: "1500" (also "[1500]")
//   - Range: "[0.7 0.9]" — a uniformly random value between min and max
//
// An empty string parses as the zero range.
func ParseValue(s string) (emitter.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return emitter.Range{}, nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return emitter.Range{}, fmt.Errorf("invalid value %q: %w", s, err)
			}
			return emitter.Fixed(v), nil
		case 2:
			min, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return emitter.Range{}, fmt.Errorf("invalid range %q: %w", s, err)
			}
			max, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return emitter.Range{}, fmt.Errorf("invalid range %q: %w", s, err)
			}
			return emitter.Range{Min: min, Max: max}, nil
		default:
			return emitter.Range{}, fmt.Errorf("invalid range %q: expected 1 or 2 fields, got %d", s, len(parts))
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return emitter.Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return emitter.Fixed(v), nil
}
