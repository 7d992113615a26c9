package push

import (
	"encoding/base64"
	"strings"
)

// DecodeServerKey turns a URL-safe, possibly unpadded base64 VAPID public
// key into raw bytes: pad to a multiple of four with '=', swap the URL-safe
// alphabet back to the standard one, then decode.
func DecodeServerKey(s string) ([]byte, error) {
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	return base64.StdEncoding.DecodeString(s)
}
