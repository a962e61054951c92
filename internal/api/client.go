package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// envelope is the JSON wrapper the catalog service puts around every
// response body.
type envelope[T any] struct {
	StatusCode int             `json:"statusCode"`
	Data       T               `json:"data"`
	Message    string          `json:"message,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
}

// Client is a typed HTTP client for the catalog admin service.
// All dependencies are passed in explicitly; there is no ambient client.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a catalog API client for the given base URL.
// Retries are deliberately not configured: a failed request surfaces
// immediately and a fresh user-triggered action is the only recovery path.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute with a host, got: %s", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https, got: %s", baseURL)
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	// Correlation id per request so server logs can be matched to client logs
	http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.New().String())
		return nil
	})

	return &Client{
		http:   http,
		logger: logger,
	}, nil
}

// decode validates the response status and unmarshals the envelope payload
func decode[T any](c *Client, resp *resty.Response) (T, error) {
	var zero T

	if resp.IsError() {
		var env envelope[json.RawMessage]
		// Best effort: the error body may not be an envelope at all
		_ = json.Unmarshal(resp.Body(), &env)

		c.logger.Warn("request failed",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
		)

		return zero, classify(resp.StatusCode(), env.Message)
	}

	var env envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}

	return env.Data, nil
}

// get issues a GET request and decodes the enveloped payload
func get[T any](ctx context.Context, c *Client, path string, query map[string]string) (T, error) {
	var zero T

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return zero, fmt.Errorf("GET %s: %w", path, err)
	}

	return decode[T](c, resp)
}

// post issues a POST request with a JSON body and decodes the payload
func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return zero, fmt.Errorf("POST %s: %w", path, err)
	}

	return decode[T](c, resp)
}

// put issues a PUT request with a JSON body and decodes the payload
func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(path)
	if err != nil {
		return zero, fmt.Errorf("PUT %s: %w", path, err)
	}

	return decode[T](c, resp)
}

// del issues a DELETE request; only the classified status matters
func del(ctx context.Context, c *Client, path string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}

	_, err = decode[json.RawMessage](c, resp)
	return err
}
