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

const ModuleName = "perpvault"

var (
	ParamsKey           = []byte("perpvault/params")
	VaultPrefix         = []byte("perpvault/vault/")
	ShareSupplyPrefix   = []byte("perpvault/share_supply/")
	ShareBalancePrefix  = []byte("perpvault/share_balance/")
	ShareEscrowPrefix   = []byte("perpvault/share_escrow/")
	WithdrawalPrefix    = []byte("perpvault/withdrawal/")
	WithdrawalSeqPrefix = []byte("perpvault/withdrawal_seq/")
)

const (
	// QuoteAssetId is the asset identifier of the settlement asset held as
	// vault collateral on the exchange.
	QuoteAssetId uint32 = 0

	// QuoteDecimals is the fractional digit count of the settlement asset.
	// LP shares use the same scale so the bootstrap deposit mints 1:1 in
	// integer quantums.
	QuoteDecimals uint32 = 6

	// MaxOrderCancellations bounds the number of cancellations in a single
	// order batch.
	MaxOrderCancellations = 6

	// MaxOrdersPerSide bounds the number of new orders per book side in a
	// single order batch.
	MaxOrdersPerSide = 3
)
