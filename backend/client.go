package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	errs "github.com/pallium-care/console/errors"
)

const (
	requestIdHeader = "X-Request-Id"
	maxErrorBody    = 64 * 1024
)

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// Client talks to the clinic REST backend.
type Client struct {
	// Base url of the backend with scheme. It may carry a path prefix, resource
	// paths are resolved relative to it.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn

	logger *zap.SugaredLogger
}

func NewClient(server string, opts ...ClientOption) (*Client, error) {
	client := Client{
		Server: server,
		logger: zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	// ensure the server URL always has a trailing slash
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	client.RequestEditors = append([]RequestEditorFn{withSessionToken, withRequestId}, client.RequestEditors...)
	return &client, nil
}

// NewClientFromConfig builds the client used by the console.
func NewClientFromConfig(cfg *Config, logger *zap.SugaredLogger) (*Client, error) {
	return NewClient(
		cfg.BaseUrl,
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithLogger(logger),
	)
}

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request. This can be used to mutate the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

func WithLogger(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

func withSessionToken(ctx context.Context, req *http.Request) error {
	if token := TokenFromContext(ctx); token != "" {
		(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	}
	return nil
}

func withRequestId(ctx context.Context, req *http.Request) error {
	if id := RequestIdFromContext(ctx); id != "" {
		req.Header.Set(requestIdHeader, id)
	}
	return nil
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) url(operationPath string) (*url.URL, error) {
	serverURL, err := url.Parse(c.Server)
	if err != nil {
		return nil, err
	}
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}
	return serverURL.Parse(operationPath)
}

// NewRequest creates a request for operationPath relative to the server.
func (c *Client) NewRequest(ctx context.Context, method, operationPath string, body io.Reader, contentType string) (*http.Request, error) {
	queryURL, err := c.url(operationPath)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, queryURL.String(), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Add("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do sends the request and returns the response body of a successful call.
// Non 2xx responses are converted to errors wrapping the matching sentinel.
func (c *Client) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.applyEditors(ctx, req); err != nil {
		return nil, err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		c.logger.Warnw("backend request failed", "method", req.Method, "url", req.URL.Path, zap.Error(err))
		return nil, fmt.Errorf("%w: %s", errs.BadGateway, err.Error())
	}
	defer res.Body.Close()

	c.logger.Debugw("backend request", "method", req.Method, "url", req.URL.Path, "status", res.StatusCode)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, decodeError(res)
	}

	return io.ReadAll(res.Body)
}

// DoJSON sends body encoded as json and decodes the response into out when it is not nil.
func (c *Client) DoJSON(ctx context.Context, method, operationPath string, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := c.NewRequest(ctx, method, operationPath, reader, contentType)
	if err != nil {
		return err
	}
	data, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return decodeOne(data, out)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	message := ""

	e := errorBody{}
	if err := json.Unmarshal(body, &e); err == nil {
		message = e.Error
		if message == "" {
			message = e.Message
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" || strings.HasPrefix(message, "<") {
		message = http.StatusText(res.StatusCode)
	}

	return fmt.Errorf("%w: %s", errs.FromStatus(res.StatusCode), message)
}

// unwrap returns the "data" member of an enveloped response, or the body
// itself when it is not enveloped. A null "data" member unwraps to null.
func unwrap(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return trimmed
	}
	if d, ok := members["data"]; ok {
		return bytes.TrimSpace(d)
	}
	return trimmed
}

func decodeOne(data []byte, out any) error {
	return json.Unmarshal(unwrap(data), out)
}

// decodeList accepts a bare array or an object with a data array.
func decodeList[T any](data []byte) ([]T, error) {
	list := make([]T, 0)
	body := unwrap(data)
	if len(body) == 0 || string(body) == "null" {
		return list, nil
	}
	if body[0] != '[' {
		return nil, fmt.Errorf("%w: unexpected list response", errs.BadGateway)
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, err
	}
	return list, nil
}
