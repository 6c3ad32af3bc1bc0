package exchange

import (
	"fmt"
	"os"
	"strings"

	"github.com/multiio/multigo/pkg/exchange/multi"
	"github.com/multiio/multigo/pkg/types"
)

const (
	ExchangeOptionsKeyAPIKey    = "API_KEY"
	ExchangeOptionsKeyAPISecret = "API_SECRET"
)

// ExchangeOptions is a map of exchange options used to initialize an exchange
type ExchangeOptions map[string]string

// ExchangeEnvLoader loads the exchange options from the environment variables with the given prefix
type ExchangeEnvLoader func(varPrefix string) (ExchangeOptions, error)

// ExchangeConstructor creates an exchange instance with the given options
type ExchangeConstructor func(ExchangeOptions) (types.ExchangeAdapter, error)

type ExchangeFactory struct {
	EnvLoader   ExchangeEnvLoader
	Constructor ExchangeConstructor
}

var exchangeFactories = map[types.ExchangeName]ExchangeFactory{
	types.ExchangeMulti: {
		EnvLoader: DefaultEnvVarLoader,
		Constructor: func(options ExchangeOptions) (types.ExchangeAdapter, error) {
			return multi.New(options[ExchangeOptionsKeyAPIKey], options[ExchangeOptionsKeyAPISecret]), nil
		},
	},
}

func RegisterExchange(name types.ExchangeName, factory ExchangeFactory) {
	exchangeFactories[name] = factory

	types.SupportedExchanges[name] = struct{}{}
}

// NewPublic creates the exchange without credentials, only the public operations can be used
func NewPublic(n types.ExchangeName) (types.ExchangeAdapter, error) {
	return New(n, nil)
}

func New(n types.ExchangeName, options ExchangeOptions) (types.ExchangeAdapter, error) {
	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.Constructor == nil {
		return nil, fmt.Errorf("exchange factory %v does not support constructor", n)
	}

	return factory.Constructor(options)
}

// NewWithEnvVarPrefix allocates the exchange with the credentials of the given environment variable prefix.
// When the varPrefix is an empty string, the exchange name is used as the prefix.
func NewWithEnvVarPrefix(n types.ExchangeName, varPrefix string) (types.ExchangeAdapter, error) {
	if len(varPrefix) == 0 {
		varPrefix = n.String()
	}

	varPrefix = strings.ToUpper(varPrefix)

	factory, existing := exchangeFactories[n]
	if !existing {
		return nil, fmt.Errorf("unsupported exchange: %v", n)
	}

	if factory.EnvLoader == nil {
		return nil, fmt.Errorf("exchange factory %v does not support environment variable loader", n)
	}

	options, err := factory.EnvLoader(varPrefix)
	if err != nil {
		return nil, err
	}

	return New(n, options)
}

// DefaultEnvVarLoader reads <PREFIX>_API_KEY and <PREFIX>_API_SECRET.
// A half configured credential pair is an error, no credentials at all is allowed.
func DefaultEnvVarLoader(varPrefix string) (ExchangeOptions, error) {
	key := os.Getenv(varPrefix + "_API_KEY")
	secret := os.Getenv(varPrefix + "_API_SECRET")
	if (len(key) == 0) != (len(secret) == 0) {
		return nil, fmt.Errorf("can not initialize exchange due to empty key or secret, env var prefix: %s", varPrefix)
	}

	return ExchangeOptions{
		ExchangeOptionsKeyAPIKey:    key,
		ExchangeOptionsKeyAPISecret: secret,
	}, nil
}
