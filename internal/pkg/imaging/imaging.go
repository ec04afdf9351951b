// Package imaging validates the opaque data-URI payloads used for avatars
// and images embedded in activity text. Payloads are never decoded to
// pixels; the client produces them (cropped, compressed JPEG/PNG) and this
// system only checks they are well-formed before storing.
package imaging

import (
	"encoding/base64"
	"strings"
)

// MaxPayloadBytes bounds the encoded payload. The client compresses avatars
// to well under this; anything larger is rejected rather than bloating the
// durable store.
const MaxPayloadBytes = 2 << 20

var allowedPrefixes = []string{
	"data:image/jpeg;base64,",
	"data:image/png;base64,",
	"data:image/webp;base64,",
}

// ValidDataURI reports whether s is a well-formed, size-bounded base64 image
// data URI.
func ValidDataURI(s string) bool {
	if len(s) == 0 || len(s) > MaxPayloadBytes {
		return false
	}
	var b64 string
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(s, p) {
			b64 = s[len(p):]
			break
		}
	}
	if b64 == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(b64)
	return err == nil
}
