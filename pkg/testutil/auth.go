package testutil

import (
	"os"
	"regexp"
	"testing"
)

var secretRegExp = regexp.MustCompile(`\b(\w{4})\w+\b`)

func maskSecret(s string) string {
	return secretRegExp.ReplaceAllString(s, "$1******")
}

// IntegrationTestConfigured reports whether the live api tests of the venue are enabled.
// They run only with TEST_<PREFIX>=1 and both <PREFIX>_API_KEY and <PREFIX>_API_SECRET set.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf("%s api integration test enabled, key = %s, secret = %s", prefix, maskSecret(key), maskSecret(secret))
	}

	return key, secret, ok
}

// PublicIntegrationTestConfigured reports whether the public endpoint tests of the venue are enabled
func PublicIntegrationTestConfigured(t *testing.T, prefix string) bool {
	ok := os.Getenv("TEST_"+prefix) == "1"
	if !ok {
		t.Skipf("set TEST_%s=1 to run the %s public api tests", prefix, prefix)
	}

	return ok
}
