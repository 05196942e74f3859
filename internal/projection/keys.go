/*
Package projection canonicalizes wire-format object keys before field
extraction.  The protocol emits camelCase keys but tolerates snake_case
equivalents on input, so every entity's UnmarshalJSON routes its payload
through Normalize first.

Only one level of keys is rewritten per call.  Nested entities repeat the
step for their own level, which keeps caller-owned payloads (the "data" and
"metadata" values) untouched.
*/
package projection

import (
	"encoding/json"
	"strings"
)

// Normalize re-encodes a JSON object with its top-level keys canonicalized
// to camelCase.
func Normalize(data []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return json.Marshal(CanonicalKeys(fields))
}

// CanonicalKeys rewrites the keys of a decoded object from snake_case to
// camelCase.  Keys already in canonical form pass through unchanged; when
// both spellings of a key are present the canonical one wins.
func CanonicalKeys(fields map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))

	for key, value := range fields {
		canonical := CamelCase(key)

		if canonical != key {
			if _, exists := fields[canonical]; exists {
				continue
			}
		}

		out[canonical] = value
	}

	return out
}

// CamelCase converts a snake_case key to its camelCase wire form.
func CamelCase(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}

	segments := strings.Split(key, "_")
	var builder strings.Builder
	builder.WriteString(segments[0])

	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}
		builder.WriteString(strings.ToUpper(segment[:1]))
		builder.WriteString(segment[1:])
	}

	return builder.String()
}
