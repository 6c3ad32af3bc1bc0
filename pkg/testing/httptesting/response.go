package httptesting

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

func BuildResponse(code int, payload []byte) *http.Response {
	return &http.Response{
		StatusCode:    code,
		Status:        strconv.Itoa(code) + " " + http.StatusText(code),
		Header:        http.Header{},
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
	}
}

func BuildResponseString(code int, payload string) *http.Response {
	return BuildResponse(code, []byte(payload))
}

// BuildResponseJson encodes the payload as json, a raw string is sent as it is
func BuildResponseJson(code int, payload interface{}) *http.Response {
	var data []byte
	switch p := payload.(type) {
	case string:
		data = []byte(p)
	case []byte:
		data = p
	default:
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return BuildResponseString(http.StatusInternalServerError, err.Error())
		}
	}

	resp := BuildResponse(code, data)
	SetHeader(resp, "Content-Type", "application/json")
	return resp
}

func SetHeader(resp *http.Response, name, value string) *http.Response {
	if resp.Header == nil {
		resp.Header = http.Header{}
	}

	resp.Header.Set(name, value)
	return resp
}
