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

type QueryParams struct{}

type QueryParamsResponse struct {
	Params Params
}

type QueryVault struct {
	PerpId uint32
}

type QueryVaultResponse struct {
	Vault       Vault
	ShareSupply math.Int
	ShareEscrow math.Int
}

type QueryValuation struct {
	PerpId uint32
}

type QueryValuationResponse struct {
	CollateralValue math.LegacyDec
	ExposureValue   math.LegacyDec
	SubaccountValue math.LegacyDec
}

type QueryLpBalance struct {
	PerpId uint32
	Holder string
}

type QueryLpBalanceResponse struct {
	Balance math.Int
}

type QueuedWithdrawal struct {
	RequestId uint64
	Requester string
	Shares    math.Int
}

type QueryWithdrawalQueue struct {
	PerpId uint32
}

type QueryWithdrawalQueueResponse struct {
	Requests []QueuedWithdrawal
}

// QueryServer is the module's read-only surface. Valuation reads through to
// the exchange and so can fail when oracle or market data is malformed; the
// other queries serve state directly.
type QueryServer interface {
	Params(ctx context.Context, req *QueryParams) (*QueryParamsResponse, error)
	Vault(ctx context.Context, req *QueryVault) (*QueryVaultResponse, error)
	Valuation(ctx context.Context, req *QueryValuation) (*QueryValuationResponse, error)
	LpBalance(ctx context.Context, req *QueryLpBalance) (*QueryLpBalanceResponse, error)
	WithdrawalQueue(ctx context.Context, req *QueryWithdrawalQueue) (*QueryWithdrawalQueueResponse, error)
}
