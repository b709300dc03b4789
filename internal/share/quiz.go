// Package share encodes quiz text into the shareable read-only link payload.
// The wire format matches the original web client: percent-encode the UTF-8
// text, then standard base64 — so links survive query-string transport intact.
package share

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// kept unescaped by encodeURIComponent, beyond letters and digits
const unreserved = "-_.!~*'()"

// Encode produces the value of the `data` query parameter.
func Encode(text string) string {
	var b strings.Builder
	for _, c := range []byte(text) {
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte(unreserved, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return base64.StdEncoding.EncodeToString([]byte(b.String()))
}

// Decode recovers the original quiz text from a `data` payload.
func Decode(data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode share payload: %w", err)
	}
	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return "", fmt.Errorf("decode share payload: %w", err)
	}
	return text, nil
}

// Link builds the full student-view URL for a quiz.
func Link(baseURL, text string) string {
	return fmt.Sprintf("%s/share/quiz?view=quiz&data=%s", baseURL, url.QueryEscape(Encode(text)))
}
