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

// MsgCreateVault provisions a new vault for a perpetual market. Authority
// gated; callable once per perpetual id.
type MsgCreateVault struct {
	Authority string
	PerpId    uint32
	Trader    string
}

type MsgCreateVaultResponse struct{}

// MsgFreezeVault transitions a vault from Open to Frozen. Trader gated.
type MsgFreezeVault struct {
	Trader string
	PerpId uint32
}

type MsgFreezeVaultResponse struct{}

// MsgThawVault transitions a vault from Frozen back to Open. Trader gated.
type MsgThawVault struct {
	Trader string
	PerpId uint32
}

type MsgThawVaultResponse struct{}

// MsgSetVaultTrader reassigns a vault's trader. Authority gated.
type MsgSetVaultTrader struct {
	Authority string
	PerpId    uint32
	Trader    string
}

type MsgSetVaultTraderResponse struct{}

// MsgDeposit adds settlement asset quantums to a vault in exchange for
// freshly minted LP shares.
type MsgDeposit struct {
	Depositor string
	PerpId    uint32
	Quantums  math.Int
}

type MsgDepositResponse struct {
	MintedShares math.Int
	Intents      []Intent
}

// MsgRequestWithdrawal sizes and enqueues a redemption. A zero TargetValue
// requests the requester's full redeemable balance; otherwise TargetValue is
// the desired payout in settlement asset quantums.
type MsgRequestWithdrawal struct {
	Requester   string
	PerpId      uint32
	TargetValue math.Int
}

type MsgRequestWithdrawalResponse struct {
	RequestId      uint64
	EscrowedShares math.Int
}

// MsgCancelWithdrawalRequests removes all of the requester's queued
// withdrawals from a vault and returns the escrowed shares. Cancelling with
// nothing queued is a successful no-op.
type MsgCancelWithdrawalRequests struct {
	Requester string
	PerpId    uint32
}

type MsgCancelWithdrawalRequestsResponse struct {
	CancelledRequests uint32
	ReturnedShares    math.Int
}

// MsgProcessWithdrawals settles queued withdrawals from the head of the FIFO
// queue. Trader gated. A MaxRequests of zero or less processes the whole
// queue.
type MsgProcessWithdrawals struct {
	Trader      string
	PerpId      uint32
	MaxRequests int32
}

type MsgProcessWithdrawalsResponse struct {
	ProcessedRequests uint32
	BurnedShares      math.Int
	Intents           []Intent
}

// MsgBatchOrders cancels and places orders for a vault's subaccount in one
// atomic batch. ClobPairId must match the market's current exchange-side
// identifier.
type MsgBatchOrders struct {
	Trader        string
	PerpId        uint32
	ClobPairId    uint32
	Cancellations []OrderCancellation
	Placements    []OrderPlacement
}

type MsgBatchOrdersResponse struct {
	Intents []Intent
}

// MsgServer is the module's caller-facing surface. Every handler either
// completes with all of its writes applied or returns a typed error with
// none of them retained.
type MsgServer interface {
	CreateVault(ctx context.Context, msg *MsgCreateVault) (*MsgCreateVaultResponse, error)
	FreezeVault(ctx context.Context, msg *MsgFreezeVault) (*MsgFreezeVaultResponse, error)
	ThawVault(ctx context.Context, msg *MsgThawVault) (*MsgThawVaultResponse, error)
	SetVaultTrader(ctx context.Context, msg *MsgSetVaultTrader) (*MsgSetVaultTraderResponse, error)
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	RequestWithdrawal(ctx context.Context, msg *MsgRequestWithdrawal) (*MsgRequestWithdrawalResponse, error)
	CancelWithdrawalRequests(ctx context.Context, msg *MsgCancelWithdrawalRequests) (*MsgCancelWithdrawalRequestsResponse, error)
	ProcessWithdrawals(ctx context.Context, msg *MsgProcessWithdrawals) (*MsgProcessWithdrawalsResponse, error)
	BatchOrders(ctx context.Context, msg *MsgBatchOrders) (*MsgBatchOrdersResponse, error)
}
