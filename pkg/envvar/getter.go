package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// lookup parses the environment variable named n, the default value is returned
// when the variable is not set or can not be parsed.
func lookup[T any](n, kind string, parse func(string) (T, error), args []T) (T, bool) {
	var defaultValue T
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, kind)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, "string", func(s string) (string, error) { return s, nil }, args)
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, "time.Duration", time.ParseDuration, args)
}

func Int(n string, args ...int) (int, bool) {
	return lookup(n, "int", strconv.Atoi, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, "bool", strconv.ParseBool, args)
}
