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

// Event types emitted by the msg server.
const (
	EventTypeVaultCreated        = "perpvault_created"
	EventTypeVaultFrozen         = "perpvault_frozen"
	EventTypeVaultThawed         = "perpvault_thawed"
	EventTypeVaultTraderSet      = "perpvault_trader_set"
	EventTypeDeposit             = "perpvault_deposit"
	EventTypeWithdrawalRequested = "perpvault_withdrawal_requested"
	EventTypeWithdrawalCancelled = "perpvault_withdrawal_cancelled"
	EventTypeWithdrawalProcessed = "perpvault_withdrawal_processed"
	EventTypeOrderPlaced         = "perpvault_order_placed"
	EventTypeOrderCancelled      = "perpvault_order_cancelled"
)

// Event attribute keys.
const (
	AttributeKeyPerpId    = "perp_id"
	AttributeKeyTrader    = "trader"
	AttributeKeyDepositor = "depositor"
	AttributeKeyRequester = "requester"
	AttributeKeyRequestId = "request_id"
	AttributeKeyShares    = "shares"
	AttributeKeyQuantums  = "quantums"
	AttributeKeyClientId  = "client_id"
	AttributeKeySide      = "side"
	AttributeKeyCount     = "count"
)
