package multiapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type Param struct {
	Key   string
	Value interface{}
}

// Params is an insertion-ordered parameter set. Setting an existing key replaces the
// value in place, so the key keeps its original position.
type Params []Param

func (p Params) Get(key string) (interface{}, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return nil, false
}

func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Params) Set(key string, value interface{}) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}

	*p = append(*p, Param{Key: key, Value: value})
}

// Omit returns a copy without the given keys
func (p Params) Omit(keys ...string) Params {
	var out Params
	for _, param := range p {
		omitted := false
		for _, k := range keys {
			if param.Key == k {
				omitted = true
				break
			}
		}

		if !omitted {
			out = append(out, param)
		}
	}

	return out
}

// Extend returns a copy of p with the other params set on top of it
func (p Params) Extend(other Params) Params {
	out := append(Params(nil), p...)
	for _, param := range other {
		out.Set(param.Key, param.Value)
	}

	return out
}

// Compact returns a copy without the nil values
func (p Params) Compact() Params {
	var out Params
	for _, param := range p {
		if param.Value != nil {
			out = append(out, param)
		}
	}

	return out
}

// Sorted returns a copy sorted by key
func (p Params) Sorted() Params {
	out := append(Params(nil), p...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// Encode joins the key=value pairs in their current order, keys and values are encoded like encodeURIComponent
func (p Params) Encode() string {
	pairs := make([]string, 0, len(p))
	for _, param := range p {
		pairs = append(pairs, EncodeURIComponent(param.Key)+"="+EncodeURIComponent(FormatValue(param.Value)))
	}

	return strings.Join(pairs, "&")
}

// MarshalJSON encodes the params as a JSON object in insertion order
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(param.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(param.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParamsFromMap converts a map into params ordered by key
func ParamsFromMap(m map[string]interface{}) Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make(Params, 0, len(keys))
	for _, k := range keys {
		params = append(params, Param{Key: k, Value: m[k]})
	}

	return params
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// FormatValue converts a parameter value to its string form, numbers are formatted
// the shortest way that round-trips, e.g. 0.001 -> "0.001", 1 -> "1", 1e-7 -> "1e-7".
func FormatValue(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case bool:
		return strconv.FormatBool(tv)
	case int:
		return strconv.Itoa(tv)
	case int32:
		return strconv.FormatInt(int64(tv), 10)
	case int64:
		return strconv.FormatInt(tv, 10)
	case uint64:
		return strconv.FormatUint(tv, 10)
	case float32:
		return formatFloat(float64(tv))
	case float64:
		return formatFloat(tv)
	case json.Number:
		return tv.String()
	case fmt.Stringer:
		return tv.String()
	}

	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	abs := f
	if abs < 0 {
		abs = -abs
	}

	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + string(sign) + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

var placeholderRegExp = regexp.MustCompile(`\{([^}]+)\}`)

// ExtractParams returns the names of the {placeholder} segments of a path template
func ExtractParams(path string) []string {
	var names []string
	for _, m := range placeholderRegExp.FindAllStringSubmatch(path, -1) {
		names = append(names, m[1])
	}

	return names
}

// ImplodeParams substitutes the {placeholder} segments of a path template with the param values
func ImplodeParams(path string, params Params) string {
	return placeholderRegExp.ReplaceAllStringFunc(path, func(s string) string {
		name := s[1 : len(s)-1]
		if v, ok := params.Get(name); ok {
			return FormatValue(v)
		}

		return s
	})
}
