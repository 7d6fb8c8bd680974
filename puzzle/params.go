package puzzle

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// decodeParams fills out (a pointer to a struct holding defaults) from raw.
// Unknown keys are rejected so typos surface instead of silently using
// defaults.
func decodeParams(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	return nil
}

// ParseParams turns "key=value" pairs into a params map.
// Values stay strings; decodeParams converts them per kind.
func ParseParams(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if k = strings.TrimSpace(k); !ok || k == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrBadParams, p)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
