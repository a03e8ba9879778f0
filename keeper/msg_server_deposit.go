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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"perpvault.noble.xyz/types"
)

// Deposit collects settlement asset quantums from a depositor and mints LP
// shares against the vault's current valuation. The share count is sized so
// that the depositor's resulting ownership fraction equals their contribution
// relative to the post-deposit pool value, rounded down in the pool's favour.
func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Quantums.IsNil() || !msg.Quantums.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}

	depositor, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}

	vault, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.PerpId)
	}

	valuation, err := m.GetVaultValuation(ctx, vault)
	if err != nil {
		return nil, errors.Wrap(err, "unable to value vault")
	}
	subaccountValue := valuation.SubaccountValue()

	depositValue, err := types.DecFromQuantums(msg.Quantums, types.QuoteDecimals)
	if err != nil {
		return nil, err
	}

	supply, err := m.GetShareSupply(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get share supply from state")
	}

	// The depositor's post-deposit ownership fraction. On a fresh or fully
	// drained vault this is exactly one and shares bootstrap one to one with
	// quantums.
	share := depositValue.Quo(depositValue.Add(subaccountValue))

	var minted math.Int
	if share.Equal(math.LegacyOneDec()) || supply.IsZero() {
		minted = msg.Quantums
	} else {
		supplyDec, err := types.DecFromQuantums(supply, 0)
		if err != nil {
			return nil, err
		}

		// minted / (supply + minted) == share, solved for minted.
		minted, err = types.QuantumsRoundDown(share.Mul(supplyDec).Quo(math.LegacyOneDec().Sub(share)), 0)
		if err != nil {
			return nil, err
		}
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get params from state")
	}
	if !params.SharesCap.IsNil() && params.SharesCap.IsPositive() && supply.Add(minted).GT(params.SharesCap) {
		return nil, errors.Wrapf(types.ErrCannotExceedCap, "supply %s plus minted %s exceeds cap %s", supply.String(), minted.String(), params.SharesCap.String())
	}

	if err := m.mintShares(ctx, msg.PerpId, depositor, minted); err != nil {
		return nil, errors.Wrap(err, "unable to mint shares")
	}

	quantums, err := types.Uint64Quantums(msg.Quantums)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidAmount, err.Error())
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
		event.Attribute{Key: types.AttributeKeyDepositor, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyQuantums, Value: msg.Quantums.String()},
		event.Attribute{Key: types.AttributeKeyShares, Value: minted.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit deposit event")
	}

	return &types.MsgDepositResponse{
		MintedShares: minted,
		Intents: []types.Intent{
			types.DepositCollateralIntent{
				Recipient: vault.Subaccount,
				AssetId:   types.QuoteAssetId,
				Quantums:  quantums,
			},
		},
	}, nil
}
