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

package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"perpvault.noble.xyz/types"
)

// Keeper owns all vault state. Each vault's LP ledger, withdrawal queue and
// lifecycle status are keyed exclusively by its perpetual id; nothing mutable
// is shared across vaults.
type Keeper struct {
	authority       string
	subaccountOwner string

	store store.KVStoreService

	logger   log.Logger
	header   header.Service
	event    event.Service
	address  address.Codec
	exchange types.ExchangeKeeper

	Params        collections.Item[types.Params]
	Vaults        collections.Map[uint32, types.Vault]
	ShareSupply   collections.Map[uint32, math.Int]
	ShareBalances collections.Map[collections.Pair[uint32, []byte], math.Int]
	ShareEscrow   collections.Map[uint32, math.Int]
	Withdrawals   collections.Map[collections.Pair[uint32, uint64], types.WithdrawalRequest]
	WithdrawalSeq collections.Map[uint32, uint64]
}

func NewKeeper(
	authority string,
	subaccountOwner string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	exchange types.ExchangeKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		authority:       authority,
		subaccountOwner: subaccountOwner,

		store: store,

		logger:   logger.With("module", types.ModuleName),
		header:   header,
		event:    event,
		address:  address,
		exchange: exchange,

		Params:        collections.NewItem(builder, types.ParamsKey, "params", types.JSONValue[types.Params]("params")),
		Vaults:        collections.NewMap(builder, types.VaultPrefix, "vaults", collections.Uint32Key, types.JSONValue[types.Vault]("vault")),
		ShareSupply:   collections.NewMap(builder, types.ShareSupplyPrefix, "share_supply", collections.Uint32Key, sdk.IntValue),
		ShareBalances: collections.NewMap(builder, types.ShareBalancePrefix, "share_balances", collections.PairKeyCodec(collections.Uint32Key, collections.BytesKey), sdk.IntValue),
		ShareEscrow:   collections.NewMap(builder, types.ShareEscrowPrefix, "share_escrow", collections.Uint32Key, sdk.IntValue),
		Withdrawals:   collections.NewMap(builder, types.WithdrawalPrefix, "withdrawals", collections.PairKeyCodec(collections.Uint32Key, collections.Uint64Key), types.JSONValue[types.WithdrawalRequest]("withdrawal_request")),
		WithdrawalSeq: collections.NewMap(builder, types.WithdrawalSeqPrefix, "withdrawal_seq", collections.Uint32Key, collections.Uint64Value),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetExchangeKeeper overwrites the exchange keeper used in this module.
func (k *Keeper) SetExchangeKeeper(exchange types.ExchangeKeeper) {
	k.exchange = exchange
}

// GetAuthority returns the configured module authority.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetSubaccountOwner returns the owner identity under which all vault
// subaccounts are held on the exchange.
func (k *Keeper) GetSubaccountOwner() string {
	return k.subaccountOwner
}
