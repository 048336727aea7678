package initdata

import (
	"fmt"
	"net/url"
	"strings"
)

// Parse splits raw init data in query-string form into a FieldMap,
// percent-decoding both keys and values. Segments without "=" are
// skipped. The required keys default to {hash} when none are given;
// extraction paths pass their own set. A missing hash is reported as
// ErrMissingSignature, any other missing required key as
// ErrMissingField. Duplicate keys are rejected rather than silently
// collapsed.
func Parse(raw string, required ...string) (FieldMap, error) {
	if len(required) == 0 {
		required = []string{FieldHash}
	}

	fields := make(FieldMap)
	for _, segment := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("malformed field name %q: %w", key, err)
		}
		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("malformed value for field %q: %w", decodedKey, err)
		}
		if _, seen := fields[decodedKey]; seen {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, decodedKey)
		}
		fields[decodedKey] = decodedValue
	}

	for _, key := range required {
		if _, ok := fields[key]; !ok {
			if key == FieldHash {
				return nil, ErrMissingSignature
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}
	return fields, nil
}
