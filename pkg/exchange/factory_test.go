package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiio/multigo/pkg/types"
)

func TestNewWithEnvVarPrefix(t *testing.T) {
	t.Setenv("MULTI_API_KEY", "key")
	t.Setenv("MULTI_API_SECRET", "secret")

	ex, err := NewWithEnvVarPrefix(types.ExchangeMulti, "")
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeMulti, ex.Name())

	t.Setenv("OTHER_API_KEY", "key")
	_, err = NewWithEnvVarPrefix(types.ExchangeMulti, "other")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	ex, err := NewPublic(types.ExchangeMulti)
	require.NoError(t, err)
	assert.Equal(t, types.ExchangeMulti, ex.Name())

	_, err = New("binance", nil)
	assert.Error(t, err)
}
