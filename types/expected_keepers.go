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

package types

import (
	"context"

	"cosmossdk.io/math"
)

// AssetPosition is one collateral position within a subaccount snapshot.
type AssetPosition struct {
	AssetId  uint32
	Quantums math.Int
}

// PerpetualPosition is one perpetual position within a subaccount snapshot.
// Quantums are signed: positive for long, negative for short.
type PerpetualPosition struct {
	PerpId   uint32
	Quantums math.Int
}

// Subaccount is the exchange-reported snapshot of a vault's subaccount at
// the time of the call.
type Subaccount struct {
	AssetPositions     []AssetPosition
	PerpetualPositions []PerpetualPosition
}

// OraclePrice is the exchange's current oracle price for a market. The
// effective price is Price * 10^Exponent; the module requires a non-positive
// exponent.
type OraclePrice struct {
	Price    math.Int
	Exponent int32
}

// MarketParams are the exchange-side parameters of a perpetual market. The
// effective position size is Quantums * 10^AtomicResolution; the module
// requires a non-positive atomic resolution.
type MarketParams struct {
	ClobPairId       uint32
	AtomicResolution int32
}

// ExchangeKeeper is the external exchange collaborator. All three reads are
// synchronous point-in-time queries against state visible to the call; a
// failed read aborts the whole call.
type ExchangeKeeper interface {
	GetSubaccount(ctx context.Context, id SubaccountId) (Subaccount, error)
	GetOraclePrice(ctx context.Context, perpId uint32) (OraclePrice, error)
	GetMarketParams(ctx context.Context, perpId uint32) (MarketParams, error)
}
