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

package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"perpvault.noble.xyz/keeper"
	"perpvault.noble.xyz/types"
	"perpvault.noble.xyz/utils"
	"perpvault.noble.xyz/utils/mocks"
)

const ONE = 1_000_000

// setupTest creates a keeper wired to in-memory mocks plus a msg server over
// it and a random trader account.
func setupTest(t *testing.T) (*keeper.Keeper, types.MsgServer, *mocks.ExchangeKeeper, *mocks.EventService, context.Context, utils.Account) {
	t.Helper()

	k, exchange, events, ctx := mocks.PerpVaultKeeper(t)
	server := keeper.NewMsgServer(k)
	trader := utils.TestAccount()

	return k, server, exchange, events, ctx, trader
}

// createVault provisions a vault through the msg server using the fixture
// authority.
func createVault(t *testing.T, ctx context.Context, server types.MsgServer, perpId uint32, trader utils.Account) {
	t.Helper()

	_, err := server.CreateVault(ctx, &types.MsgCreateVault{
		Authority: mocks.Authority,
		PerpId:    perpId,
		Trader:    trader.Address,
	})
	require.NoError(t, err)
}

// arrangeMarket configures the oracle price and market params for a
// perpetual. Price is in micro units with a -6 exponent, and the market uses
// a -6 atomic resolution.
func arrangeMarket(exchange *mocks.ExchangeKeeper, perpId, clobPairId uint32, price int64) {
	exchange.Prices[perpId] = types.OraclePrice{
		Price:    math.NewInt(price),
		Exponent: -6,
	}
	exchange.MarketParams[perpId] = types.MarketParams{
		ClobPairId:       clobPairId,
		AtomicResolution: -6,
	}
}

// arrangeSubaccount sets the vault subaccount snapshot the exchange mock
// serves: collateral in settlement asset quantums and a signed perpetual
// position in base quantums.
func arrangeSubaccount(exchange *mocks.ExchangeKeeper, perpId uint32, collateral, position int64) {
	id := types.SubaccountId{Owner: mocks.SubaccountOwner, Number: perpId}

	var subaccount types.Subaccount
	if collateral != 0 {
		subaccount.AssetPositions = append(subaccount.AssetPositions, types.AssetPosition{
			AssetId:  types.QuoteAssetId,
			Quantums: math.NewInt(collateral),
		})
	}
	if position != 0 {
		subaccount.PerpetualPositions = append(subaccount.PerpetualPositions, types.PerpetualPosition{
			PerpId:   perpId,
			Quantums: math.NewInt(position),
		})
	}

	exchange.Subaccounts[id] = subaccount
}

// requireLedgerInvariant asserts that escrow plus all holder balances equals
// the vault's total share supply.
func requireLedgerInvariant(t *testing.T, ctx context.Context, k *keeper.Keeper, perpId uint32) {
	t.Helper()

	supply, err := k.GetShareSupply(ctx, perpId)
	require.NoError(t, err)
	claims, err := k.SumShareClaims(ctx, perpId)
	require.NoError(t, err)
	require.Equal(t, supply, claims)
}
