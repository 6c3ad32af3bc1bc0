package util

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

// The Safe* helpers read a field of a raw JSON object and never fail.
// A missing key, a null value or a value that can not be parsed yields nil (no value).

func SafeString(v *fastjson.Value, key string) (string, bool) {
	return StringValue(v.Get(key))
}

func SafeFloat(v *fastjson.Value, key string) *float64 {
	return FloatValue(v.Get(key))
}

func SafeInteger(v *fastjson.Value, key string) *int64 {
	f := FloatValue(v.Get(key))
	if f == nil {
		return nil
	}

	i := int64(*f)
	return &i
}

// SafeTimestamp reads a unix timestamp in seconds and returns it in milliseconds.
func SafeTimestamp(v *fastjson.Value, key string) *int64 {
	f := FloatValue(v.Get(key))
	if f == nil {
		return nil
	}

	ms := int64(*f * 1000)
	return &ms
}

// SafeValue decodes the field into a generic go value, keeping its JSON type.
func SafeValue(v *fastjson.Value, key string) interface{} {
	field := v.Get(key)
	if field == nil || field.Type() == fastjson.TypeNull {
		return nil
	}

	var out interface{}
	if err := json.Unmarshal(field.MarshalTo(nil), &out); err != nil {
		return nil
	}

	return out
}

func StringValue(v *fastjson.Value) (string, bool) {
	if v == nil {
		return "", false
	}

	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes()), true

	case fastjson.TypeNumber, fastjson.TypeTrue, fastjson.TypeFalse:
		return string(v.MarshalTo(nil)), true
	}

	return "", false
}

// FloatValue parses a JSON number or a numeric string
func FloatValue(v *fastjson.Value) *float64 {
	if v == nil {
		return nil
	}

	var f float64
	switch v.Type() {
	case fastjson.TypeNumber:
		n, err := v.Float64()
		if err != nil {
			return nil
		}
		f = n

	case fastjson.TypeString:
		n, err := strconv.ParseFloat(strings.TrimSpace(string(v.GetStringBytes())), 64)
		if err != nil {
			return nil
		}
		f = n

	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

// RawJSON returns a copy of the raw JSON text of v
func RawJSON(v *fastjson.Value) json.RawMessage {
	if v == nil {
		return nil
	}

	return json.RawMessage(v.MarshalTo(nil))
}

func Ptr[T any](v T) *T {
	return &v
}
