package multiapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	HeaderAPIKey     = "X-MULTI-API-KEY"
	HeaderSignature  = "X-MULTI-API-SIGNATURE"
	HeaderTimestamp  = "X-MULTI-API-TIMESTAMP"
	HeaderSignedPath = "X-MULTI-API-SIGNED-PATH"
)

// BuildQueryString sorts the params by key and builds "?k1=v1&k2=v2", an empty string for empty params.
func BuildQueryString(params Params) string {
	if len(params) == 0 {
		return ""
	}

	return "?" + params.Sorted().Encode()
}

// CanonicalString builds the signed message: the payload extended with timestamp, method and path,
// sorted by key, encoded, and joined by "&". The leading "?" of the query string is not signed.
func CanonicalString(payload Params, timestamp int64, method, path string) string {
	params := payload.Compact().Extend(Params{
		{Key: "timestamp", Value: timestamp},
		{Key: "method", Value: method},
		{Key: "path", Value: path},
	})

	return strings.TrimPrefix(BuildQueryString(params), "?")
}

// Sign computes the hex encoded HMAC-SHA256 of the message
func Sign(message, secret string) string {
	var sig = hmac.New(sha256.New, []byte(secret))
	_, err := sig.Write([]byte(message))
	if err != nil {
		return ""
	}

	return hex.EncodeToString(sig.Sum(nil))
}
