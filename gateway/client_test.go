// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/fixtures"
	"github.com/airgap-inc/coinkit/gateway"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestClientGet(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/balance":
				_, _ = w.Write([]byte(`"1000000"`))
			case "/missing":
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "boom", http.StatusInternalServerError)
			}
		}))
	defer server.Close()

	c := gateway.NewClient(server.URL)
	ctx := context.Background()

	var balance string
	err := c.Get(ctx, "/balance", &balance)
	assert.NoError(t, err)
	assert.Equal(t, "1000000", balance)

	err = c.Get(ctx, "/missing", &balance)
	assert.Equal(t, fault.ErrAccountNotFound, err)

	err = c.Get(ctx, "/error", &balance)
	assert.True(t, fault.IsErrNetwork(err))
	ne := err.(fault.NetworkError)
	assert.Equal(t, http.StatusInternalServerError, ne.Status)
}

// repeated GETs inside the cache window must hit the node only once
func TestClientGetCaching(t *testing.T) {

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits += 1
			_, _ = w.Write([]byte(`"5"`))
		}))
	defer server.Close()

	c := gateway.NewClient(server.URL)
	ctx := context.Background()

	var counter string
	for i := 0; i < 3; i += 1 {
		err := c.Get(ctx, "/counter", &counter)
		assert.NoError(t, err)
		assert.Equal(t, "5", counter)
	}
	assert.Equal(t, 1, hits)
}

func TestClientPost(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if "/inject" == r.URL.Path {
				_, _ = w.Write([]byte(`"oo7abc"`))
				return
			}
			http.Error(w, "rejected", http.StatusBadRequest)
		}))
	defer server.Close()

	c := gateway.NewClient(server.URL)
	ctx := context.Background()

	var hash string
	err := c.Post(ctx, "/inject", "deadbeef", &hash)
	assert.NoError(t, err)
	assert.Equal(t, "oo7abc", hash)

	err = c.Post(ctx, "/reject", "deadbeef", nil)
	assert.True(t, fault.IsErrNetwork(err))
}

// a dead endpoint is a network error, surfaced immediately
func TestClientTransportFailure(t *testing.T) {

	c := gateway.NewClient("http://127.0.0.1:1") // nothing listens here
	var reply interface{}
	err := c.Get(context.Background(), "/x", &reply)
	assert.True(t, fault.IsErrNetwork(err))
}
