// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package mocks

import (
	"context"
	"fmt"

	"perpvault.noble.xyz/types"
)

// ExchangeKeeper is a settable exchange collaborator. Tests mutate the maps
// directly to shape the snapshot a handler observes.
type ExchangeKeeper struct {
	Subaccounts  map[types.SubaccountId]types.Subaccount
	Prices       map[uint32]types.OraclePrice
	MarketParams map[uint32]types.MarketParams
}

var _ types.ExchangeKeeper = &ExchangeKeeper{}

func NewExchangeKeeper() *ExchangeKeeper {
	return &ExchangeKeeper{
		Subaccounts:  make(map[types.SubaccountId]types.Subaccount),
		Prices:       make(map[uint32]types.OraclePrice),
		MarketParams: make(map[uint32]types.MarketParams),
	}
}

// GetSubaccount returns the configured snapshot. Unknown subaccounts resolve
// to an empty snapshot, matching an exchange that lazily creates them.
func (e *ExchangeKeeper) GetSubaccount(_ context.Context, id types.SubaccountId) (types.Subaccount, error) {
	return e.Subaccounts[id], nil
}

func (e *ExchangeKeeper) GetOraclePrice(_ context.Context, perpId uint32) (types.OraclePrice, error) {
	price, ok := e.Prices[perpId]
	if !ok {
		return types.OraclePrice{}, fmt.Errorf("no oracle price for market %d", perpId)
	}

	return price, nil
}

func (e *ExchangeKeeper) GetMarketParams(_ context.Context, perpId uint32) (types.MarketParams, error) {
	params, ok := e.MarketParams[perpId]
	if !ok {
		return types.MarketParams{}, fmt.Errorf("no market params for market %d", perpId)
	}

	return params, nil
}
