package httptesting

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport routes requests to handlers by method and url path and keeps
// a copy of every request it served.
type MockTransport struct {
	mu       sync.Mutex
	handlers map[string]map[string]RoundTripFunc
	requests []*CapturedRequest
}

// CapturedRequest is a served request with its body already read
type CapturedRequest struct {
	*http.Request
	Body []byte
}

func (transport *MockTransport) handle(method, path string, f RoundTripFunc) {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	if transport.handlers == nil {
		transport.handlers = make(map[string]map[string]RoundTripFunc)
	}

	if transport.handlers[method] == nil {
		transport.handlers[method] = make(map[string]RoundTripFunc)
	}

	transport.handlers[method][path] = f
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	transport.handle(http.MethodGet, path, f)
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	transport.handle(http.MethodPost, path, f)
}

// Requests returns the served requests in order
func (transport *MockTransport) Requests() []*CapturedRequest {
	transport.mu.Lock()
	defer transport.mu.Unlock()
	return append([]*CapturedRequest(nil), transport.requests...)
}

// LastRequest returns the latest served request, nil when nothing was served
func (transport *MockTransport) LastRequest() *CapturedRequest {
	requests := transport.Requests()
	if len(requests) == 0 {
		return nil
	}

	return requests[len(requests)-1]
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	captured := &CapturedRequest{Request: req}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}

		captured.Body = body
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	transport.mu.Lock()
	transport.requests = append(transport.requests, captured)
	f, ok := transport.handlers[strings.ToUpper(req.Method)][req.URL.Path]
	transport.mu.Unlock()

	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	return f(req)
}

// MockWithJsonReply returns a client answering GET and POST requests of the url path with the json data
func MockWithJsonReply(path string, rawData interface{}) (*http.Client, *MockTransport) {
	tripFunc := func(_ *http.Request) (*http.Response, error) {
		return BuildResponseJson(http.StatusOK, rawData), nil
	}

	transport := &MockTransport{}
	transport.GET(path, tripFunc)
	transport.POST(path, tripFunc)
	return &http.Client{Transport: transport}, transport
}
