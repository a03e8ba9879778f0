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
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"perpvault.noble.xyz/types"
)

// RequestWithdrawal sizes a redemption against the vault's current valuation,
// escrows the priced shares and appends the request to the withdrawal queue.
// A zero target requests the requester's entire balance. The share count is
// rounded up so the requester never underpays for the targeted value.
func (m msgServer) RequestWithdrawal(ctx context.Context, msg *types.MsgRequestWithdrawal) (*types.MsgRequestWithdrawalResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.TargetValue.IsNil() || msg.TargetValue.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "target value cannot be negative")
	}

	requester, err := m.address.StringToBytes(msg.Requester)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid requester address: %s", msg.Requester)
	}

	vault, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.PerpId)
	}

	balance, hasBalance, err := m.GetShareBalance(ctx, msg.PerpId, requester)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get holder balance from state")
	}
	if !hasBalance {
		return nil, errors.Wrapf(types.ErrLpTokensNotFound, "%s holds no shares of vault %d", msg.Requester, msg.PerpId)
	}

	var tokens math.Int
	if msg.TargetValue.IsZero() {
		tokens = balance
	} else {
		valuation, err := m.GetVaultValuation(ctx, vault)
		if err != nil {
			return nil, errors.Wrap(err, "unable to value vault")
		}

		supply, err := m.GetShareSupply(ctx, msg.PerpId)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get share supply from state")
		}

		balanceDec, err := types.DecFromQuantums(balance, 0)
		if err != nil {
			return nil, err
		}
		supplyDec, err := types.DecFromQuantums(supply, 0)
		if err != nil {
			return nil, err
		}

		// The most the requester could redeem right now: their ownership
		// fraction of the vault's current value.
		maxValue := balanceDec.Quo(supplyDec).Mul(valuation.SubaccountValue())
		if maxValue.IsZero() {
			return nil, errors.Wrapf(types.ErrInvalidWithdrawalAmount, "vault %d has no redeemable value", msg.PerpId)
		}

		targetValue, err := types.DecFromQuantums(msg.TargetValue, types.QuoteDecimals)
		if err != nil {
			return nil, err
		}

		tokens, err = types.QuantumsRoundUp(balanceDec.Mul(targetValue.Quo(maxValue)), 0)
		if err != nil {
			return nil, err
		}
		if tokens.GT(balance) {
			return nil, errors.Wrapf(types.ErrInvalidWithdrawalAmount, "target %s exceeds redeemable value %s", targetValue.String(), maxValue.String())
		}
	}

	if !tokens.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidWithdrawalAmount, "sized share amount must be positive")
	}

	if err := m.escrowShares(ctx, msg.PerpId, requester, tokens); err != nil {
		return nil, errors.Wrap(err, "unable to escrow shares")
	}

	id, err := m.NextWithdrawalId(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to allocate withdrawal id")
	}
	request := types.WithdrawalRequest{
		Requester: msg.Requester,
		Shares:    tokens,
	}
	if err := m.Withdrawals.Set(ctx, collections.Join(msg.PerpId, id), request); err != nil {
		return nil, errors.Wrap(err, "unable to enqueue withdrawal request")
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeWithdrawalRequested,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
		event.Attribute{Key: types.AttributeKeyRequester, Value: msg.Requester},
		event.Attribute{Key: types.AttributeKeyRequestId, Value: strconv.FormatUint(id, 10)},
		event.Attribute{Key: types.AttributeKeyShares, Value: tokens.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit withdrawal requested event")
	}

	return &types.MsgRequestWithdrawalResponse{
		RequestId:      id,
		EscrowedShares: tokens,
	}, nil
}

// CancelWithdrawalRequests removes every queued withdrawal belonging to the
// requester and returns the escrowed shares to their spendable balance.
// Cancelling with nothing queued succeeds with a zero count.
func (m msgServer) CancelWithdrawalRequests(ctx context.Context, msg *types.MsgCancelWithdrawalRequests) (*types.MsgCancelWithdrawalRequestsResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	requester, err := m.address.StringToBytes(msg.Requester)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid requester address: %s", msg.Requester)
	}

	_, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.PerpId)
	}

	var (
		ids      []uint64
		returned = math.ZeroInt()
	)
	err = m.IterateWithdrawals(ctx, msg.PerpId, func(id uint64, request types.WithdrawalRequest) (bool, error) {
		if request.Requester == msg.Requester {
			ids = append(ids, id)
			returned = returned.Add(request.Shares)
		}
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to walk withdrawal queue")
	}

	for _, id := range ids {
		if err := m.Withdrawals.Remove(ctx, collections.Join(msg.PerpId, id)); err != nil {
			return nil, errors.Wrap(err, "unable to remove withdrawal request")
		}
	}
	if returned.IsPositive() {
		if err := m.releaseEscrowedShares(ctx, msg.PerpId, requester, returned); err != nil {
			return nil, errors.Wrap(err, "unable to release escrowed shares")
		}
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeWithdrawalCancelled,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
		event.Attribute{Key: types.AttributeKeyRequester, Value: msg.Requester},
		event.Attribute{Key: types.AttributeKeyCount, Value: strconv.Itoa(len(ids))},
		event.Attribute{Key: types.AttributeKeyShares, Value: returned.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit withdrawal cancelled event")
	}

	return &types.MsgCancelWithdrawalRequestsResponse{
		CancelledRequests: uint32(len(ids)),
		ReturnedShares:    returned,
	}, nil
}

// ProcessWithdrawals settles requests from the head of the queue against a
// single valuation read taken before the loop. Each settled request burns its
// escrowed shares and produces a collateral withdrawal intent sized at the
// requester's ownership fraction of the remaining value, rounded down. Trader
// gated; a MaxRequests of zero or less drains the whole queue.
func (m msgServer) ProcessWithdrawals(ctx context.Context, msg *types.MsgProcessWithdrawals) (*types.MsgProcessWithdrawalsResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.PerpId)
	}
	if vault.Trader != msg.Trader {
		return nil, errors.Wrapf(types.ErrSenderCannotProcessWithdrawals, "expected %s, got %s", vault.Trader, msg.Trader)
	}

	limit := msg.MaxRequests
	unlimited := limit <= 0

	valuation, err := m.GetVaultValuation(ctx, vault)
	if err != nil {
		return nil, errors.Wrap(err, "unable to value vault")
	}
	remaining := valuation.SubaccountValue()

	var (
		processed uint32
		burned    = math.ZeroInt()
		intents   []types.Intent
		events    = m.event.EventManager(ctx)
	)
	for unlimited || processed < uint32(limit) {
		id, request, present, err := m.PeekWithdrawal(ctx, msg.PerpId)
		if err != nil {
			return nil, errors.Wrap(err, "unable to peek withdrawal queue")
		}
		if !present {
			break
		}

		supply, err := m.GetShareSupply(ctx, msg.PerpId)
		if err != nil {
			return nil, errors.Wrap(err, "unable to get share supply from state")
		}

		sharesDec, err := types.DecFromQuantums(request.Shares, 0)
		if err != nil {
			return nil, err
		}
		supplyDec, err := types.DecFromQuantums(supply, 0)
		if err != nil {
			return nil, err
		}

		ownership := sharesDec.Quo(supplyDec)
		if ownership.GT(math.LegacyOneDec()) {
			panic(fmt.Sprintf("withdrawal %d escrow exceeds supply: %s > %s", id, request.Shares.String(), supply.String()))
		}

		withdrawValue := ownership.Mul(remaining)
		remaining = remaining.Sub(withdrawValue)
		if remaining.IsNegative() {
			panic(fmt.Sprintf("withdrawal %d drained more than the vault value", id))
		}

		payout, err := types.QuantumsRoundDown(withdrawValue, types.QuoteDecimals)
		if err != nil {
			return nil, err
		}
		quantums, err := types.Uint64Quantums(payout)
		if err != nil {
			return nil, errors.Wrap(types.ErrInvalidWithdrawalAmount, err.Error())
		}

		if err := m.burnEscrowedShares(ctx, msg.PerpId, request.Shares); err != nil {
			return nil, errors.Wrap(err, "unable to burn escrowed shares")
		}
		if err := m.Withdrawals.Remove(ctx, collections.Join(msg.PerpId, id)); err != nil {
			return nil, errors.Wrap(err, "unable to remove withdrawal request")
		}

		intents = append(intents, types.WithdrawCollateralIntent{
			Source:    vault.Subaccount,
			Recipient: request.Requester,
			AssetId:   types.QuoteAssetId,
			Quantums:  quantums,
		})
		processed++
		burned = burned.Add(request.Shares)

		if err := events.EmitKV(
			ctx,
			types.EventTypeWithdrawalProcessed,
			event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
			event.Attribute{Key: types.AttributeKeyRequester, Value: request.Requester},
			event.Attribute{Key: types.AttributeKeyRequestId, Value: strconv.FormatUint(id, 10)},
			event.Attribute{Key: types.AttributeKeyShares, Value: request.Shares.String()},
			event.Attribute{Key: types.AttributeKeyQuantums, Value: payout.String()},
		); err != nil {
			return nil, errors.Wrap(err, "unable to emit withdrawal processed event")
		}
	}

	return &types.MsgProcessWithdrawalsResponse{
		ProcessedRequests: processed,
		BurnedShares:      burned,
		Intents:           intents,
	}, nil
}
