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
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"perpvault.noble.xyz/types"
)

// GetParams returns the stored module parameters, or the defaults when none
// have been stored yet.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}

	return params, nil
}

// SetParams persists the supplied module parameters to state.
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

// GetVault returns the vault for a perpetual id. The boolean flag indicates
// whether the vault existed in state.
func (k *Keeper) GetVault(ctx context.Context, perpId uint32) (types.Vault, bool, error) {
	vault, err := k.Vaults.Get(ctx, perpId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, false, nil
		}
		return types.Vault{}, false, err
	}

	return vault, true, nil
}

// SetVault writes the provided vault record to state.
func (k *Keeper) SetVault(ctx context.Context, vault types.Vault) error {
	return k.Vaults.Set(ctx, vault.PerpId, vault)
}

// GetShareSupply returns a vault's outstanding LP share supply, zero when the
// ledger has not been touched yet.
func (k *Keeper) GetShareSupply(ctx context.Context, perpId uint32) (math.Int, error) {
	supply, err := k.ShareSupply.Get(ctx, perpId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}

	return supply, nil
}

// GetShareBalance returns a holder's spendable LP share balance for a vault.
// The boolean flag indicates whether a balance record existed.
func (k *Keeper) GetShareBalance(ctx context.Context, perpId uint32, holder []byte) (math.Int, bool, error) {
	balance, err := k.ShareBalances.Get(ctx, collections.Join(perpId, holder))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), false, nil
		}
		return math.Int{}, false, err
	}

	return balance, true, nil
}

// setShareBalance writes a holder's balance, removing the record entirely
// when it reaches zero so that "no record" remains a meaningful state.
func (k *Keeper) setShareBalance(ctx context.Context, perpId uint32, holder []byte, balance math.Int) error {
	key := collections.Join(perpId, holder)
	if balance.IsZero() {
		err := k.ShareBalances.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.ShareBalances.Set(ctx, key, balance)
}

// GetShareEscrow returns the LP shares a vault currently holds in escrow for
// queued withdrawals, zero when none are escrowed.
func (k *Keeper) GetShareEscrow(ctx context.Context, perpId uint32) (math.Int, error) {
	escrow, err := k.ShareEscrow.Get(ctx, perpId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}

	return escrow, nil
}

// mintShares increases a holder's balance and the vault's total supply
// together, so the ledger invariant holds by construction.
func (k *Keeper) mintShares(ctx context.Context, perpId uint32, holder []byte, amount math.Int) error {
	balance, _, err := k.GetShareBalance(ctx, perpId, holder)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get holder balance from state")
	}
	if err := k.setShareBalance(ctx, perpId, holder, balance.Add(amount)); err != nil {
		return sdkerrors.Wrap(err, "unable to set holder balance to state")
	}

	supply, err := k.GetShareSupply(ctx, perpId)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get share supply from state")
	}

	return k.ShareSupply.Set(ctx, perpId, supply.Add(amount))
}

// escrowShares moves shares from a holder's spendable balance into the
// vault's escrow. Total supply is unchanged.
func (k *Keeper) escrowShares(ctx context.Context, perpId uint32, holder []byte, amount math.Int) error {
	balance, _, err := k.GetShareBalance(ctx, perpId, holder)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get holder balance from state")
	}
	if balance.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInvalidWithdrawalAmount, "escrow %s exceeds balance %s", amount.String(), balance.String())
	}
	if err := k.setShareBalance(ctx, perpId, holder, balance.Sub(amount)); err != nil {
		return sdkerrors.Wrap(err, "unable to set holder balance to state")
	}

	escrow, err := k.GetShareEscrow(ctx, perpId)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get escrow from state")
	}

	return k.ShareEscrow.Set(ctx, perpId, escrow.Add(amount))
}

// releaseEscrowedShares moves shares from the vault's escrow back to a
// holder's spendable balance. Total supply is unchanged.
func (k *Keeper) releaseEscrowedShares(ctx context.Context, perpId uint32, holder []byte, amount math.Int) error {
	escrow, err := k.GetShareEscrow(ctx, perpId)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get escrow from state")
	}
	if escrow.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInvalidWithdrawalAmount, "release %s exceeds escrow %s", amount.String(), escrow.String())
	}
	if err := k.ShareEscrow.Set(ctx, perpId, escrow.Sub(amount)); err != nil {
		return sdkerrors.Wrap(err, "unable to set escrow to state")
	}

	balance, _, err := k.GetShareBalance(ctx, perpId, holder)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get holder balance from state")
	}

	return k.setShareBalance(ctx, perpId, holder, balance.Add(amount))
}

// burnEscrowedShares destroys shares held in the vault's escrow, decreasing
// total supply. Used when a queued withdrawal settles.
func (k *Keeper) burnEscrowedShares(ctx context.Context, perpId uint32, amount math.Int) error {
	escrow, err := k.GetShareEscrow(ctx, perpId)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get escrow from state")
	}
	if escrow.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInvalidWithdrawalAmount, "burn %s exceeds escrow %s", amount.String(), escrow.String())
	}
	if err := k.ShareEscrow.Set(ctx, perpId, escrow.Sub(amount)); err != nil {
		return sdkerrors.Wrap(err, "unable to set escrow to state")
	}

	supply, err := k.GetShareSupply(ctx, perpId)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to get share supply from state")
	}
	if supply.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInvalidWithdrawalAmount, "burn %s exceeds supply %s", amount.String(), supply.String())
	}

	return k.ShareSupply.Set(ctx, perpId, supply.Sub(amount))
}

// NextWithdrawalId increments and returns the next withdrawal queue
// identifier for a vault. Identifiers start at one and increase
// monotonically, which is what makes the id-ordered walk FIFO.
func (k *Keeper) NextWithdrawalId(ctx context.Context, perpId uint32) (uint64, error) {
	next, err := k.WithdrawalSeq.Get(ctx, perpId)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, err
		}

		next = 1
	} else {
		next++
	}

	if err := k.WithdrawalSeq.Set(ctx, perpId, next); err != nil {
		return 0, err
	}

	return next, nil
}

// PeekWithdrawal returns the head of a vault's withdrawal queue. The boolean
// flag indicates whether the queue was non-empty.
func (k *Keeper) PeekWithdrawal(ctx context.Context, perpId uint32) (uint64, types.WithdrawalRequest, bool, error) {
	var (
		headId  uint64
		head    types.WithdrawalRequest
		present bool
	)

	rng := collections.NewPrefixedPairRange[uint32, uint64](perpId)
	err := k.Withdrawals.Walk(ctx, rng, func(key collections.Pair[uint32, uint64], request types.WithdrawalRequest) (bool, error) {
		headId = key.K2()
		head = request
		present = true
		return true, nil
	})
	if err != nil {
		return 0, types.WithdrawalRequest{}, false, err
	}

	return headId, head, present, nil
}

// IterateWithdrawals walks a vault's withdrawal queue in FIFO order and
// invokes the supplied callback. Returning true from the callback stops the
// iteration early.
func (k *Keeper) IterateWithdrawals(ctx context.Context, perpId uint32, fn func(id uint64, request types.WithdrawalRequest) (bool, error)) error {
	rng := collections.NewPrefixedPairRange[uint32, uint64](perpId)
	return k.Withdrawals.Walk(ctx, rng, func(key collections.Pair[uint32, uint64], request types.WithdrawalRequest) (bool, error) {
		return fn(key.K2(), request)
	})
}

// SumShareClaims returns the sum of all holder balances plus the vault's
// escrow. At all times this must equal the vault's total share supply; tests
// assert the reconciliation after every state transition.
func (k *Keeper) SumShareClaims(ctx context.Context, perpId uint32) (math.Int, error) {
	total, err := k.GetShareEscrow(ctx, perpId)
	if err != nil {
		return math.Int{}, err
	}

	rng := collections.NewPrefixedPairRange[uint32, []byte](perpId)
	err = k.ShareBalances.Walk(ctx, rng, func(_ collections.Pair[uint32, []byte], balance math.Int) (bool, error) {
		total = total.Add(balance)
		return false, nil
	})
	if err != nil {
		return math.Int{}, err
	}

	return total, nil
}
