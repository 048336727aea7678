package initdata

import (
	"sort"
	"strings"
)

// Canonicalize builds the data-check string the signature is computed
// over: the hash field is dropped, the remaining entries are sorted by
// key in byte-wise order and joined as "key=value" lines. Byte-wise
// (not locale-aware) ordering is what the verifying side uses; any
// other order produces a mismatching signature for legitimate payloads.
func Canonicalize(fields FieldMap) (string, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == FieldHash {
			continue
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return "", ErrEmptyPayload
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+fields[key])
	}
	return strings.Join(pairs, "\n"), nil
}
