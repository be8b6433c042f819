// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gateway

import (
	"context"

	"github.com/airgap-inc/coinkit/fault"
)

// BalanceFunc - one chain-specific balance query
type BalanceFunc func(ctx context.Context, g Gateway, address string) (uint64, error)

// AggregateBalances - total balance across several addresses
//
// queries run concurrently with no ordering guarantee.  An address
// the chain has never seen counts as zero; any other failure fails
// the whole aggregate - there are no partial results.
func AggregateBalances(ctx context.Context, g Gateway, fetch BalanceFunc, addresses []string) (uint64, error) {

	type result struct {
		balance uint64
		err     error
	}

	results := make(chan result, len(addresses))
	for _, address := range addresses {
		go func(address string) {
			balance, err := fetch(ctx, g, address)
			if fault.ErrAccountNotFound == err {
				balance = 0
				err = nil
			}
			results <- result{balance: balance, err: err}
		}(address)
	}

	total := uint64(0)
	var firstErr error
	for range addresses {
		r := <-results
		if nil != r.err && nil == firstErr {
			firstErr = r.err
		}
		total += r.balance
	}

	if nil != firstErr {
		return 0, firstErr
	}
	return total, nil
}
