package util

import "strings"

// MaskKey keeps the first 5 characters of the key for the logs
func MaskKey(key string) string {
	if len(key) <= 5 {
		return strings.Repeat("*", len(key))
	}

	maskKey := key[0:5]
	return maskKey + strings.Repeat("*", len(key)-5)
}
