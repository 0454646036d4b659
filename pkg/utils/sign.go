package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// SignValue appends an HMAC-SHA256 signature so the session cookie cannot be
// forged client-side. Format: <value>.<b64 mac>
func SignValue(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	return value + "." + sig
}

// UnsignValue checks the signature and returns the original value.
func UnsignValue(signed, secret string) (string, bool) {
	idx := strings.LastIndex(signed, ".")
	if idx < 0 {
		return "", false
	}

	value := signed[:idx]
	sig, err := base64.RawURLEncoding.DecodeString(signed[idx+1:])
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))

	if !hmac.Equal(sig, mac.Sum(nil)) {
		return "", false
	}

	return value, true
}
