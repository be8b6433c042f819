// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/airgap-inc/coinkit/fault"
)

// client tuning
const (
	requestTimeout  = 30 * time.Second
	cacheExpiry     = 5 * time.Second
	cacheSweep      = time.Minute
	requestsPerSec  = 10
	requestBurst    = 25
	maxErrorMessage = 200
)

// Client - rate limited, GET-caching Gateway over HTTP(S)
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	cache   *cache.Cache
	log     *logger.L
}

// NewClient - create a gateway client for one node endpoint
//
// the short GET cache absorbs the repeated head/state reads a
// multi-address balance join performs
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestBurst),
		cache:   cache.New(cacheExpiry, cacheSweep),
		log:     logger.New("gateway"),
	}
}

// Get - fetch a JSON document from the node
func (c *Client) Get(ctx context.Context, path string, reply interface{}) error {

	if data, ok := c.cache.Get(path); ok {
		return json.Unmarshal(data.([]byte), reply)
	}

	body, err := c.do(ctx, "GET", path, nil)
	if nil != err {
		return err
	}

	c.cache.Set(path, body, cache.DefaultExpiration)
	return json.Unmarshal(body, reply)
}

// Post - submit a JSON body to the node and decode the reply
func (c *Client) Post(ctx context.Context, path string, body interface{}, reply interface{}) error {

	encoded, err := json.Marshal(body)
	if nil != err {
		return err
	}

	data, err := c.do(ctx, "POST", path, encoded)
	if nil != err {
		return err
	}
	if nil == reply {
		return nil
	}
	return json.Unmarshal(data, reply)
}

// perform one HTTP round trip, mapping failures to fault instances
func (c *Client) do(ctx context.Context, method string, path string, body []byte) ([]byte, error) {

	err := c.limiter.Wait(ctx)
	if nil != err {
		return nil, fault.NetworkError{Detail: err.Error()}
	}

	var reader io.Reader
	if nil != body {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if nil != err {
		return nil, fault.NetworkError{Detail: err.Error()}
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.client.Do(request)
	if nil != err {
		c.log.Warnf("%s %s: %s", method, path, err)
		return nil, fault.NetworkError{Detail: err.Error()}
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if nil != err {
		return nil, fault.NetworkError{Detail: err.Error()}
	}

	switch {
	case http.StatusNotFound == response.StatusCode:
		return nil, fault.ErrAccountNotFound

	case response.StatusCode < 200 || response.StatusCode > 299:
		detail := strings.TrimSpace(string(data))
		if len(detail) > maxErrorMessage {
			detail = detail[:maxErrorMessage]
		}
		c.log.Warnf("%s %s: status %d", method, path, response.StatusCode)
		return nil, fault.NetworkError{
			Status: response.StatusCode,
			Detail: detail,
		}
	}

	return data, nil
}
