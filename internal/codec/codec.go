// Package codec turns session payloads into opaque URL-safe tokens and back.
//
// A token is the JSON serialization of the payload prefixed with a single
// schema version byte, wrapped in unpadded URL-safe base64. The version byte
// sits inside the base64 envelope so truncation, tampering, and version
// mismatch are all caught before any JSON parsing happens.
package codec

import (
	"encoding/base64"
	"encoding/json"

	"github.com/zhoulin/matchquiz/internal/model/quiz"
)

// Version is the current token schema version. Decode rejects anything else.
const Version byte = 0x01

var encoding = base64.RawURLEncoding

// Encode serializes a payload into a token safe to embed as a URL query
// value. It never panics: if serialization fails it returns the empty string.
func Encode(p quiz.Payload) string {
	body, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	buf := make([]byte, 0, len(body)+1)
	buf = append(buf, Version)
	buf = append(buf, body...)
	return encoding.EncodeToString(buf)
}

// Decode reconstructs the payload carried by a token. Malformed, truncated,
// tampered, or unknown-version tokens yield (zero, false); Decode never
// returns a partial result.
func Decode(token string) (quiz.Payload, bool) {
	if token == "" {
		return quiz.Payload{}, false
	}
	raw, err := encoding.DecodeString(token)
	if err != nil || len(raw) < 2 {
		return quiz.Payload{}, false
	}
	if raw[0] != Version {
		return quiz.Payload{}, false
	}
	var p quiz.Payload
	if err := json.Unmarshal(raw[1:], &p); err != nil {
		return quiz.Payload{}, false
	}
	return p, true
}
