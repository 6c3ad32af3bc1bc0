package multiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

const defaultHTTPTimeout = time.Second * 15
const RestBaseURL = "https://staging-api.multi.io/api"
const Version = "v1"

var ErrMissingCredentials = errors.New("missing api credentials")

type RestClient struct {
	requestgen.BaseAPIClient

	key, secret string

	timeNowFn func() time.Time
}

func NewClient() *RestClient {
	u, err := url.Parse(RestBaseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		timeNowFn: time.Now,
	}
}

func (c *RestClient) Auth(key, secret string) {
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
}

// SetTimeNowFunc replaces the clock used for the request timestamps
func (c *RestClient) SetTimeNowFunc(f func() time.Time) {
	c.timeNowFn = f
}

// SignedRequest fully describes an outgoing request
type SignedRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

func (r *SignedRequest) NewHTTPRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(r.Body))
	if err != nil {
		return nil, err
	}

	// the header names are sent as they are, the venue documents them in upper case
	for k, v := range r.Headers {
		req.Header[k] = []string{v}
	}

	return req, nil
}

// Sign builds the request of the given route. Path template placeholders are filled from
// params and removed from the query. Private routes are signed with the api secret:
// a GET request signs an empty payload, a POST request sends and signs the params.
func (c *RestClient) Sign(path string, api APIType, method string, params Params) (*SignedRequest, error) {
	method = strings.ToUpper(method)
	params = params.Compact()
	query := params.Omit(ExtractParams(path)...)

	signed := &SignedRequest{
		URL:    strings.TrimSuffix(c.BaseURL.String(), "/") + "/" + Version + "/" + ImplodeParams(path, params),
		Method: method,
	}

	if method == http.MethodGet && len(query) > 0 {
		signed.URL += "?" + query.Encode()
	}

	if api != PrivateAPI {
		return signed, nil
	}

	if len(c.key) == 0 || len(c.secret) == 0 {
		return nil, errors.Wrapf(ErrMissingCredentials, "can not sign %s %s", method, path)
	}

	timestamp := c.timeNowFn().Unix()

	var payload Params
	if method == http.MethodPost {
		body, err := json.Marshal(query)
		if err != nil {
			return nil, err
		}

		signed.Body = body
		payload = query
	}

	message := CanonicalString(payload, timestamp, method, path)
	signed.Headers = map[string]string{
		"Content-Type":   "application/json",
		HeaderAPIKey:     c.key,
		HeaderSignature:  Sign(message, c.secret),
		HeaderTimestamp:  strconv.FormatInt(timestamp, 10),
		HeaderSignedPath: path,
	}

	return signed, nil
}

// APIResponse is the response envelope, the payload is in the data field
type APIResponse struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

func (a APIResponse) Validate() error {
	if len(a.Data) == 0 {
		return a.Error()
	}

	return nil
}

func (a APIResponse) Error() error {
	return fmt.Errorf("empty response data, message: %q", a.Message)
}

// call signs and sends the request of the endpoint and returns the parsed data field
func (c *RestClient) call(ctx context.Context, endpoint Endpoint, params Params) (*fastjson.Value, error) {
	signed, err := c.Sign(endpoint.Path, endpoint.API, endpoint.Method, params)
	if err != nil {
		return nil, err
	}

	req, err := signed.NewHTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	response, err := c.SendRequest(req)
	recordLatencyMetrics(endpoint, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	var apiResponse APIResponse
	if err := response.DecodeJSON(&apiResponse); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", endpoint)
	}

	if err := apiResponse.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", endpoint)
	}

	data, err := fastjson.ParseBytes(apiResponse.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s response data", endpoint)
	}

	return data, nil
}

func (c *RestClient) callArray(ctx context.Context, endpoint Endpoint, params Params) ([]*fastjson.Value, error) {
	data, err := c.call(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	items, err := data.Array()
	if err != nil {
		return nil, errors.Wrapf(err, "unexpected %s response data", endpoint)
	}

	return items, nil
}
