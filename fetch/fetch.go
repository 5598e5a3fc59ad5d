// @license
// Copyright (C) 2024  nure-tools authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package fetch implements the blocking HTTP transport towards the Mindenit
// schedule API and the response envelope handling shared by all resource
// queries: every API call is a single GET expected to return 200 with a JSON
// body, anything else is a terminal, classified failure.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nure-tools/nuretools/logger"
)

const (
	// Timeout is the per-request HTTP timeout; the API has no SLA and can
	// get slow around semester boundaries.
	Timeout = 30 * time.Second

	// DefaultBaseURL is the public Mindenit schedule API endpoint.
	DefaultBaseURL = "https://api.mindenit.tech"

	userAgent = "nure-tools (+https://github.com/nure-tools/nuretools)"
)

var (
	// ErrGetFailed denotes a transport-level failure with no usable response.
	ErrGetFailed = errors.New("can't get any response")

	// ErrNotJSON denotes a 200 response whose body is not valid JSON.
	ErrNotJSON = errors.New("got response not in JSON format")

	// ErrInvalidReturn denotes a decoded JSON body whose top-level shape is
	// not the expected array.
	ErrInvalidReturn = errors.New("API returned data in unexpected format")
)

// BadResponseError denotes a response with any HTTP status other than 200 OK.
type BadResponseError struct {
	Reason     string
	StatusCode int
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("API returned with status code: %d - %s", e.StatusCode, e.Reason)
}

// Client structure holds all HTTP Client related fields.
//
//nolint:containedctx
type Client struct {
	httpClient *http.Client
	ctx        context.Context
	baseURL    string
	userAgent  string
}

// NewClientWithContext creates a new *Client bound to ctx and talking to
// baseURL, falling back to the public API endpoint when baseURL is empty.
func NewClientWithContext(ctx context.Context, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		ctx:       ctx,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
	}
}

// GetJSON issues a blocking GET for path (with optional query parameters) and
// returns the decoded generic JSON value. Transport failures map to
// ErrGetFailed, non-200 statuses to *BadResponseError and undecodable bodies
// to ErrNotJSON. Numbers decode as json.Number so integer ids and epoch
// values survive exactly.
func (c *Client) GetJSON(path string, query url.Values) (interface{}, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGetFailed, err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	logger.Debug().Msgf("Fetching %v", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		select {
		case <-c.ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrGetFailed, c.ctx.Err())
		default:
			return nil, fmt.Errorf("%w: %v", ErrGetFailed, err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain rest of the body
		io.Copy(io.Discard, resp.Body) //nolint:errcheck

		return nil, &BadResponseError{
			Reason:     http.StatusText(resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	// the body must be a single JSON value, nothing after it
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrNotJSON)
	}

	return v, nil
}

// GetArray issues GetJSON and additionally requires the top-level JSON value
// to be an array, returning ErrInvalidReturn otherwise. All list and schedule
// endpoints of the API respond with a top-level array.
func (c *Client) GetArray(path string, query url.Values) ([]interface{}, error) {
	v, err := c.GetJSON(path, query)
	if err != nil {
		return nil, err
	}

	arr, ok := v.([]interface{})
	if !ok {
		return nil, ErrInvalidReturn
	}

	return arr, nil
}

// CloseConnections closes all idle connections on the underlying transport.
func (c *Client) CloseConnections() {
	c.httpClient.CloseIdleConnections()
}
