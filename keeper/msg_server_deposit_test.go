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
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpvault.noble.xyz/types"
	"perpvault.noble.xyz/utils"
)

func TestDepositBootstrap(t *testing.T) {
	k, server, exchange, events, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ACT: First deposit into an empty vault.
	resp, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(100 * ONE),
	})

	// ASSERT: Shares bootstrap one to one with quantums.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), resp.MintedShares)

	balance, found, err := k.GetShareBalance(ctx, 7, bob.Bytes)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(100*ONE), balance)
	supply, err := k.GetShareSupply(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), supply)
	requireLedgerInvariant(t, ctx, k, 7)

	// ASSERT: The response carries a collateral deposit intent for the vault
	// subaccount.
	require.Len(t, resp.Intents, 1)
	intent, ok := resp.Intents[0].(types.DepositCollateralIntent)
	require.True(t, ok)
	assert.Equal(t, uint32(7), intent.Recipient.Number)
	assert.Equal(t, types.QuoteAssetId, intent.AssetId)
	assert.Equal(t, uint64(100*ONE), intent.Quantums)

	last := events.Events[len(events.Events)-1]
	assert.Equal(t, types.EventTypeDeposit, last.Type)
}

func TestDepositProRata(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()
	alice := utils.TestAccount()

	// ARRANGE: Bob bootstraps with 1.0, and the vault's subaccount now holds
	// exactly 1.0 of collateral.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, ONE, 0)

	// ACT: Alice deposits the same value the vault is worth.
	resp, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: alice.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})

	// ASSERT: Alice ends up owning exactly half the vault.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(ONE), resp.MintedShares)
	supply, err := k.GetShareSupply(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(2*ONE), supply)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestDepositRoundsDown(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()
	alice := utils.TestAccount()

	// ARRANGE: Supply 1.0 against a vault now worth 2.0, so a 1.0 deposit is
	// worth a third of the pool.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, 2*ONE, 0)

	// ACT
	resp, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: alice.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})

	// ASSERT: The exact share count is 500000, and the one quantum lost to
	// decimal rounding stays with the pool.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(499_999), resp.MintedShares)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestDepositValuesExposure(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()
	alice := utils.TestAccount()

	// ARRANGE: Bootstrap supply of 3.0; the vault holds 1.0 collateral and a
	// short of 1.0 base units at price 2.0, so its value is 1.0 + 2.0 = 3.0.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(3 * ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, ONE, -ONE)

	// ACT: Alice deposits 3.0, matching the vault's value.
	resp, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: alice.Address,
		PerpId:    7,
		Quantums:  math.NewInt(3 * ONE),
	})

	// ASSERT: Alice owns half, so she is minted the current supply.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(3*ONE), resp.MintedShares)
}

func TestDepositInvalidAmount(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ACT: Deposit zero.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.ZeroInt(),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	// ACT: Deposit a negative amount.
	_, err = server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(-ONE),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestDepositUnknownVault(t *testing.T) {
	_, server, _, _, ctx, _ := setupTest(t)
	bob := utils.TestAccount()

	// ACT: Deposit into a market with no vault.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    42,
		Quantums:  math.NewInt(ONE),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrVaultNotFound)
}

func TestDepositRespectsSharesCap(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()
	require.NoError(t, k.SetParams(ctx, types.Params{SharesCap: math.NewInt(10 * ONE)}))

	// ACT: A deposit under the cap passes, one pushing supply over it fails.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(10 * ONE),
	})
	require.NoError(t, err)

	arrangeSubaccount(exchange, 7, 10*ONE, 0)
	_, err = server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})

	// ASSERT: Supply unchanged after the rejected mint.
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrCannotExceedCap)
	supply, err := k.GetShareSupply(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10*ONE), supply)
}

func TestDepositAllowedWhileFrozen(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ARRANGE: Freeze the vault.
	_, err := server.FreezeVault(ctx, &types.MsgFreezeVault{Trader: trader.Address, PerpId: 7})
	require.NoError(t, err)

	// ACT: Deposits stay open in any lifecycle status.
	resp, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(ONE), resp.MintedShares)
}
