package initdata

import (
	"encoding/base64"
	"fmt"
)

// Encode renders init data as base64 so it can travel through contexts
// that forbid raw query-string characters, e.g. a single header value.
func Encode(data string) string {
	return base64.StdEncoding.EncodeToString([]byte(data))
}

// Decode reverses Encode. Malformed input yields an error wrapping
// ErrDecode and no partial result.
func Decode(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(raw), nil
}
