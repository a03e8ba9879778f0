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
	"testing"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec/address"

	"perpvault.noble.xyz/keeper"
)

// Authority is the governance account used by keeper test fixtures.
const Authority = "authority"

// SubaccountOwner is the exchange-side owner identity of all vault
// subaccounts in keeper test fixtures.
const SubaccountOwner = "vault-owner"

// PerpVaultKeeper builds a keeper wired entirely to in-memory mocks and
// returns the collaborators tests assert against.
func PerpVaultKeeper(t *testing.T) (*keeper.Keeper, *ExchangeKeeper, *EventService, context.Context) {
	t.Helper()

	exchange := NewExchangeKeeper()
	events := &EventService{}

	k := keeper.NewKeeper(
		Authority,
		SubaccountOwner,
		NewStoreService(),
		log.NewNopLogger(),
		DefaultHeaderService(),
		events,
		address.NewBech32Codec("noble"),
		exchange,
	)

	return k, exchange, events, context.Background()
}
