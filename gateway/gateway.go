// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gateway - thin JSON client for chain node RPC
//
// The only networked component of the engine.  Builders read account
// state through it and broadcasters submit signed payloads; nothing
// here ever sees a private key.  Errors are surfaced immediately and
// never retried - retry and backoff policy belongs to the caller.
package gateway

import (
	"context"
)

// Gateway - the calls the transaction builders and broadcasters need
type Gateway interface {

	// Get - fetch a JSON document; a 404 response is returned as
	// fault.ErrAccountNotFound, all other failures as
	// fault.NetworkError
	Get(ctx context.Context, path string, reply interface{}) error

	// Post - submit a JSON body and decode the JSON reply
	Post(ctx context.Context, path string, body interface{}, reply interface{}) error
}
