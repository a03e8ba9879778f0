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

func TestRequestWithdrawalSizing(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ARRANGE: Bob holds the whole supply of 1.0 shares and the vault is
	// worth exactly 1.0.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, ONE, 0)

	// ACT: Request a payout worth a quarter of the vault.
	resp, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.NewInt(250_000),
	})

	// ASSERT: A quarter of the shares are escrowed and the request queued.
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.RequestId)
	assert.Equal(t, math.NewInt(250_000), resp.EscrowedShares)

	balance, _, err := k.GetShareBalance(ctx, 7, bob.Bytes)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(750_000), balance)
	escrow, err := k.GetShareEscrow(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(250_000), escrow)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestRequestWithdrawalFullBalance(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)

	// ACT: A zero target requests everything.
	resp, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.ZeroInt(),
	})

	// ASSERT: Full balance escrowed, no record left behind.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(ONE), resp.EscrowedShares)
	_, found, err := k.GetShareBalance(ctx, 7, bob.Bytes)
	require.NoError(t, err)
	assert.False(t, found)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestRequestWithdrawalNoShares(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ACT: Request without ever depositing.
	_, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.NewInt(1_000),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLpTokensNotFound)
}

func TestRequestWithdrawalTargetTooLarge(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, ONE, 0)

	// ACT: Target twice what Bob's shares are worth.
	_, err = server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.NewInt(2 * ONE),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidWithdrawalAmount)
}

func TestRequestWithdrawalWorthlessVault(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ARRANGE: Shares exist but the subaccount has been wiped out.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)

	// ACT: A targeted request cannot be priced against zero value.
	_, err = server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.NewInt(1_000),
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidWithdrawalAmount)
}

func TestCancelWithdrawalRequests(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()
	alice := utils.TestAccount()

	// ARRANGE: Bob queues two requests, Alice one.
	for _, account := range []utils.Account{bob, alice} {
		_, err := server.Deposit(ctx, &types.MsgDeposit{
			Depositor: account.Address,
			PerpId:    7,
			Quantums:  math.NewInt(ONE),
		})
		require.NoError(t, err)
	}
	arrangeSubaccount(exchange, 7, 2*ONE, 0)
	for _, target := range []int64{100_000, 200_000} {
		_, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
			Requester:   bob.Address,
			PerpId:      7,
			TargetValue: math.NewInt(target),
		})
		require.NoError(t, err)
	}
	_, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   alice.Address,
		PerpId:      7,
		TargetValue: math.NewInt(300_000),
	})
	require.NoError(t, err)

	// ACT: Bob cancels everything of his.
	resp, err := server.CancelWithdrawalRequests(ctx, &types.MsgCancelWithdrawalRequests{
		Requester: bob.Address,
		PerpId:    7,
	})

	// ASSERT: Both of Bob's requests are gone, his shares restored, and
	// Alice's request is untouched at the head of the queue.
	require.NoError(t, err)
	assert.Equal(t, uint32(2), resp.CancelledRequests)
	assert.Equal(t, math.NewInt(300_000), resp.ReturnedShares)

	balance, _, err := k.GetShareBalance(ctx, 7, bob.Bytes)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(ONE), balance)
	id, request, present, err := k.PeekWithdrawal(ctx, 7)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint64(3), id)
	assert.Equal(t, alice.Address, request.Requester)
	requireLedgerInvariant(t, ctx, k, 7)

	// ACT: Cancelling again with nothing queued is a successful no-op.
	resp, err = server.CancelWithdrawalRequests(ctx, &types.MsgCancelWithdrawalRequests{
		Requester: bob.Address,
		PerpId:    7,
	})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, uint32(0), resp.CancelledRequests)
	assert.True(t, resp.ReturnedShares.IsZero())
}

func TestProcessWithdrawalsRequiresTrader(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ACT: Bob tries to process the queue himself.
	_, err := server.ProcessWithdrawals(ctx, &types.MsgProcessWithdrawals{
		Trader: bob.Address,
		PerpId: 7,
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrSenderCannotProcessWithdrawals)
}

func TestProcessWithdrawalsEndToEnd(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)
	bob := utils.TestAccount()

	// ARRANGE: Bob deposits 1.0 and the subaccount reflects it; he then
	// requests a 0.001 payout, which escrows 1000 shares.
	_, err := server.Deposit(ctx, &types.MsgDeposit{
		Depositor: bob.Address,
		PerpId:    7,
		Quantums:  math.NewInt(ONE),
	})
	require.NoError(t, err)
	arrangeSubaccount(exchange, 7, ONE, 0)

	resp, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
		Requester:   bob.Address,
		PerpId:      7,
		TargetValue: math.NewInt(1_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), resp.EscrowedShares)

	// ACT: The trader drains the queue.
	processed, err := server.ProcessWithdrawals(ctx, &types.MsgProcessWithdrawals{
		Trader: trader.Address,
		PerpId: 7,
	})

	// ASSERT: One request settled for exactly the targeted payout.
	require.NoError(t, err)
	assert.Equal(t, uint32(1), processed.ProcessedRequests)
	assert.Equal(t, math.NewInt(1_000), processed.BurnedShares)
	require.Len(t, processed.Intents, 1)
	intent, ok := processed.Intents[0].(types.WithdrawCollateralIntent)
	require.True(t, ok)
	assert.Equal(t, bob.Address, intent.Recipient)
	assert.Equal(t, uint64(1_000), intent.Quantums)

	// ASSERT: Shares burned out of supply, queue empty, ledger consistent.
	supply, err := k.GetShareSupply(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(ONE-1_000), supply)
	_, _, present, err := k.PeekWithdrawal(ctx, 7)
	require.NoError(t, err)
	assert.False(t, present)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestProcessWithdrawalsFIFOWithCap(t *testing.T) {
	k, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)

	// ARRANGE: Three requesters with equal stakes, three queued requests.
	accounts := []utils.Account{utils.TestAccount(), utils.TestAccount(), utils.TestAccount()}
	for _, account := range accounts {
		_, err := server.Deposit(ctx, &types.MsgDeposit{
			Depositor: account.Address,
			PerpId:    7,
			Quantums:  math.NewInt(ONE),
		})
		require.NoError(t, err)
	}
	arrangeSubaccount(exchange, 7, 3*ONE, 0)
	for _, account := range accounts {
		_, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
			Requester:   account.Address,
			PerpId:      7,
			TargetValue: math.ZeroInt(),
		})
		require.NoError(t, err)
	}

	// ACT: Process at most two.
	resp, err := server.ProcessWithdrawals(ctx, &types.MsgProcessWithdrawals{
		Trader:      trader.Address,
		PerpId:      7,
		MaxRequests: 2,
	})

	// ASSERT: The two oldest requests settled in order; the third is now the
	// head of the queue.
	require.NoError(t, err)
	assert.Equal(t, uint32(2), resp.ProcessedRequests)
	require.Len(t, resp.Intents, 2)
	first, ok := resp.Intents[0].(types.WithdrawCollateralIntent)
	require.True(t, ok)
	assert.Equal(t, accounts[0].Address, first.Recipient)
	second, ok := resp.Intents[1].(types.WithdrawCollateralIntent)
	require.True(t, ok)
	assert.Equal(t, accounts[1].Address, second.Recipient)

	id, request, present, err := k.PeekWithdrawal(ctx, 7)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint64(3), id)
	assert.Equal(t, accounts[2].Address, request.Requester)
	requireLedgerInvariant(t, ctx, k, 7)
}

func TestProcessWithdrawalsSharesValueEvenly(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)

	// ARRANGE: Two equal full-balance requests against a vault worth 2.0.
	accounts := []utils.Account{utils.TestAccount(), utils.TestAccount()}
	for _, account := range accounts {
		_, err := server.Deposit(ctx, &types.MsgDeposit{
			Depositor: account.Address,
			PerpId:    7,
			Quantums:  math.NewInt(ONE),
		})
		require.NoError(t, err)
	}
	arrangeSubaccount(exchange, 7, 2*ONE, 0)
	for _, account := range accounts {
		_, err := server.RequestWithdrawal(ctx, &types.MsgRequestWithdrawal{
			Requester:   account.Address,
			PerpId:      7,
			TargetValue: math.ZeroInt(),
		})
		require.NoError(t, err)
	}

	// ACT: Drain the queue in one call.
	resp, err := server.ProcessWithdrawals(ctx, &types.MsgProcessWithdrawals{
		Trader: trader.Address,
		PerpId: 7,
	})

	// ASSERT: The single valuation read is split evenly between both, with no
	// double payout of the first requester's value.
	require.NoError(t, err)
	require.Len(t, resp.Intents, 2)
	first := resp.Intents[0].(types.WithdrawCollateralIntent)
	second := resp.Intents[1].(types.WithdrawCollateralIntent)
	assert.Equal(t, uint64(ONE), first.Quantums)
	assert.Equal(t, uint64(ONE), second.Quantums)
}

func TestProcessWithdrawalsEmptyQueue(t *testing.T) {
	_, server, exchange, _, ctx, trader := setupTest(t)
	createVault(t, ctx, server, 7, trader)
	arrangeMarket(exchange, 7, 100, 2*ONE)

	// ACT: Process with nothing queued.
	resp, err := server.ProcessWithdrawals(ctx, &types.MsgProcessWithdrawals{
		Trader: trader.Address,
		PerpId: 7,
	})

	// ASSERT: Successful no-op.
	require.NoError(t, err)
	assert.Equal(t, uint32(0), resp.ProcessedRequests)
	assert.Empty(t, resp.Intents)
}
