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

	"github.com/orchids/cinesearch/internal/config"
	"github.com/orchids/cinesearch/pkg/logger"
)

// Client talks to the film-search backend. Credentialed endpoints forward the
// browser's session cookies; the client itself holds no authentication state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(cfg *config.BackendConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log: log,
	}
}

// Ping reports whether the backend answers at all, for the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/stats", nil, nil, nil, nil)
}

// do performs one JSON round trip. On 2xx the body is decoded into out (when
// non-nil); non-2xx yields a *RequestError, transport failures a
// *NetworkError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, cookies []*http.Cookie, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, query, cookies, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send issues the request and returns the raw response. Used directly by the
// auth calls that need the backend's Set-Cookie headers.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, cookies []*http.Cookie, body interface{}) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

func errorFromResponse(resp *http.Response) error {
	reqErr := &RequestError{StatusCode: resp.StatusCode}

	var errBody struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&errBody); err == nil {
		reqErr.Detail = errBody.Detail
	}
	return reqErr
}
