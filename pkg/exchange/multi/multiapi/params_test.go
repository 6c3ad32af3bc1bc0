package multiapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Set(t *testing.T) {
	params := Params{{Key: "market", Value: "btcusd"}, {Key: "limit", Value: 20}}
	params.Set("market", "ethusd")
	params.Set("start", int64(1))

	assert.Equal(t, Params{
		{Key: "market", Value: "ethusd"},
		{Key: "limit", Value: 20},
		{Key: "start", Value: int64(1)},
	}, params)
}

func TestParams_OmitExtendCompact(t *testing.T) {
	params := Params{{Key: "a", Value: 1}, {Key: "b", Value: nil}, {Key: "c", Value: "x"}}

	assert.Equal(t, Params{{Key: "a", Value: 1}, {Key: "c", Value: "x"}}, params.Compact())
	assert.Equal(t, Params{{Key: "c", Value: "x"}}, params.Omit("a", "b"))

	extended := params.Extend(Params{{Key: "a", Value: 2}, {Key: "d", Value: true}})
	assert.Equal(t, Params{
		{Key: "a", Value: 2},
		{Key: "b", Value: nil},
		{Key: "c", Value: "x"},
		{Key: "d", Value: true},
	}, extended)

	// the receiver is left untouched
	v, _ := params.Get("a")
	assert.Equal(t, 1, v)
}

func TestParams_MarshalJSON(t *testing.T) {
	params := Params{{Key: "market", Value: "btcusd"}, {Key: "side", Value: 2}, {Key: "amount", Value: 0.1}}
	data, err := json.Marshal(params)
	assert.NoError(t, err)
	assert.Equal(t, `{"market":"btcusd","side":2,"amount":0.1}`, string(data))

	data, err = json.Marshal(Params(nil))
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestParamsFromMap(t *testing.T) {
	params := ParamsFromMap(map[string]interface{}{"z": 1, "a": "x", "m": nil})
	assert.Equal(t, Params{{Key: "a", Value: "x"}, {Key: "m", Value: nil}, {Key: "z", Value: 1}}, params)
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"btcusd":        "btcusd",
		"a b":           "a%20b",
		"asset/balance": "asset%2Fbalance",
		"!'()*~-_.":     "!'()*~-_.",
		"a+b=c&d":       "a%2Bb%3Dc%26d",
		"中":             "%E4%B8%AD",
	}

	for in, expected := range tests {
		assert.Equal(t, expected, EncodeURIComponent(in), in)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in       interface{}
		expected string
	}{
		{"x", "x"},
		{1, "1"},
		{int64(1584500000), "1584500000"},
		{1.0, "1"},
		{0.001, "0.001"},
		{9000.5, "9000.5"},
		{1e-7, "1e-7"},
		{1e21, "1e+21"},
		{true, "true"},
		{nil, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatValue(tt.in))
	}
}

func TestPathPlaceholders(t *testing.T) {
	assert.Empty(t, ExtractParams("order/cancel"))
	assert.Equal(t, []string{"id", "market"}, ExtractParams("order/{id}/{market}"))

	params := Params{{Key: "id", Value: 42}, {Key: "market", Value: "btcusd"}}
	assert.Equal(t, "order/42/btcusd", ImplodeParams("order/{id}/{market}", params))
	assert.Equal(t, "order/{missing}", ImplodeParams("order/{missing}", params))
}
