// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NVIDIA/people/pkg/defaults"
	cnserrors "github.com/NVIDIA/people/pkg/errors"
	"github.com/NVIDIA/people/pkg/person"
	"github.com/NVIDIA/people/pkg/serializer"
	"github.com/NVIDIA/people/pkg/server"
)

const (
	// DefaultUserAgent is sent unless overridden with WithUserAgent.
	DefaultUserAgent = "people-client/1.0"

	personPath = "/person/"

	// cap on error bodies read into memory
	maxErrorBodyBytes = 64 << 10
)

// Client calls the people API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the total per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New returns a Client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"invalid server URL", err, map[string]any{"url": baseURL})
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"server URL must be an absolute http or https URL", map[string]any{"url": baseURL})
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultTransport(),
		},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func newDefaultTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List returns every person stored on the server.
func (c *Client) List(ctx context.Context) ([]person.Person, error) {
	resp, err := c.do(ctx, http.MethodGet, personPath, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var people []person.Person
	if err := decodeJSON(resp.Body, &people); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to decode person list", err)
	}
	return people, nil
}

// Get returns the person with id. A missing person yields a NOT_FOUND
// structured error.
func (c *Client) Get(ctx context.Context, id int) (person.Person, error) {
	resp, err := c.do(ctx, http.MethodGet, personPath+strconv.Itoa(id), nil)
	if err != nil {
		return person.Person{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return person.Person{}, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
			fmt.Sprintf("person %d not found", id), map[string]any{"id": id})
	default:
		return person.Person{}, errorFromResponse(resp)
	}

	var p person.Person
	if err := decodeJSON(resp.Body, &p); err != nil {
		return person.Person{}, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to decode person", err, map[string]any{"id": id})
	}
	return p, nil
}

// Create inserts p, or replaces the person already stored under p.ID.
func (c *Client) Create(ctx context.Context, p person.Person) error {
	body, err := json.Marshal(p)
	if err != nil {
		return cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to encode person", err)
	}

	resp, err := c.do(ctx, http.MethodPost, personPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	target := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to build request", err)
	}
	req.Header.Set("Accept", serializer.ContentTypeJSON)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", serializer.ContentTypeJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		code := cnserrors.ErrCodeUnavailable
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			code = cnserrors.ErrCodeTimeout
		}
		return nil, cnserrors.WrapWithContext(code, "request failed", err, map[string]any{
			"method": method,
			"url":    target.String(),
		})
	}
	return resp, nil
}

// decodeJSON reads a single strict JSON document from body into v.
func decodeJSON(body io.Reader, v any) error {
	r, err := serializer.NewReader(serializer.FormatJSON, body)
	if err != nil {
		return err
	}
	return r.Deserialize(v)
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// errorFromResponse converts a non-2xx response into a structured error,
// preferring the server's ErrorResponse when the body carries one.
func errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	details := map[string]any{"status": resp.StatusCode}

	var er server.ErrorResponse
	if len(raw) > 0 && json.Unmarshal(raw, &er) == nil && er.Code != "" {
		for k, v := range er.Details {
			details[k] = v
		}
		if er.RequestID != "" {
			details["requestId"] = er.RequestID
		}
		return cnserrors.NewWithContext(cnserrors.ErrorCode(er.Code), er.Message, details)
	}

	if len(raw) > 0 {
		details["body"] = strings.TrimSpace(string(raw))
	}
	return cnserrors.NewWithContext(codeFromStatus(resp.StatusCode),
		fmt.Sprintf("unexpected response status %s", resp.Status), details)
}

func codeFromStatus(status int) cnserrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return cnserrors.ErrCodeInvalidRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return cnserrors.ErrCodeUnauthorized
	case http.StatusNotFound:
		return cnserrors.ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return cnserrors.ErrCodeMethodNotAllowed
	case http.StatusNotAcceptable:
		return cnserrors.ErrCodeNotAcceptable
	case http.StatusTooManyRequests:
		return cnserrors.ErrCodeRateLimitExceeded
	case http.StatusServiceUnavailable:
		return cnserrors.ErrCodeUnavailable
	case http.StatusGatewayTimeout:
		return cnserrors.ErrCodeTimeout
	default:
		return cnserrors.ErrCodeInternal
	}
}
