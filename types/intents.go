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

// Intent is an outward exchange message produced by a handler. Intents are
// returned to the outer dispatcher for delivery; the module never executes
// them itself. Handlers order intents so that all cancellations precede all
// placements.
type Intent interface {
	isIntent()
}

// DepositCollateralIntent asks the exchange to credit the vault's subaccount
// with settlement asset quantums already collected from the depositor.
type DepositCollateralIntent struct {
	Recipient SubaccountId
	AssetId   uint32
	Quantums  uint64
}

// WithdrawCollateralIntent asks the exchange to pay settlement asset quantums
// out of the vault's subaccount to a recipient.
type WithdrawCollateralIntent struct {
	Source    SubaccountId
	Recipient string
	AssetId   uint32
	Quantums  uint64
}

// PlaceOrderIntent asks the exchange to place a single order for the vault's
// subaccount on the given clob pair.
type PlaceOrderIntent struct {
	Subaccount   SubaccountId
	ClientId     uint32
	ClobPairId   uint32
	Side         OrderSide
	Quantums     uint64
	Subticks     uint64
	TimeInForce  uint32
	GoodTilBlock uint32
}

// CancelOrderIntent asks the exchange to cancel one of the vault's resting
// orders by client id.
type CancelOrderIntent struct {
	Subaccount   SubaccountId
	ClientId     uint32
	ClobPairId   uint32
	GoodTilBlock uint32
}

func (DepositCollateralIntent) isIntent()  {}
func (WithdrawCollateralIntent) isIntent() {}
func (PlaceOrderIntent) isIntent()         {}
func (CancelOrderIntent) isIntent()        {}
