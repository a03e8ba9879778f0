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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"perpvault.noble.xyz/types"
)

// GetVaultValuation values a vault's external position from the exchange's
// current subaccount snapshot and oracle price. It is a pure read-and-compute
// step: no writes, no caching across calls. Missing positions value as zero;
// the only failure modes besides read errors are exponent sign violations.
func (k *Keeper) GetVaultValuation(ctx context.Context, vault types.Vault) (types.Valuation, error) {
	price, err := k.exchange.GetOraclePrice(ctx, vault.PerpId)
	if err != nil {
		return types.Valuation{}, sdkerrors.Wrap(err, "unable to query oracle price")
	}
	if price.Exponent > 0 {
		return types.Valuation{}, sdkerrors.Wrapf(types.ErrInvalidPriceExponent, "market %d has price exponent %d", vault.PerpId, price.Exponent)
	}

	market, err := k.exchange.GetMarketParams(ctx, vault.PerpId)
	if err != nil {
		return types.Valuation{}, sdkerrors.Wrap(err, "unable to query market params")
	}
	if market.AtomicResolution > 0 {
		return types.Valuation{}, sdkerrors.Wrapf(types.ErrInvalidPerpExponent, "market %d has atomic resolution %d", vault.PerpId, market.AtomicResolution)
	}

	subaccount, err := k.exchange.GetSubaccount(ctx, vault.Subaccount)
	if err != nil {
		return types.Valuation{}, sdkerrors.Wrap(err, "unable to query subaccount")
	}

	collateralValue := math.LegacyZeroDec()
	for _, position := range subaccount.AssetPositions {
		if position.AssetId != types.QuoteAssetId {
			continue
		}

		collateralValue, err = types.DecFromQuantums(position.Quantums, types.QuoteDecimals)
		if err != nil {
			return types.Valuation{}, err
		}
		break
	}

	exposureValue := math.LegacyZeroDec()
	for _, position := range subaccount.PerpetualPositions {
		if position.PerpId != vault.PerpId {
			continue
		}

		size, err := types.DecFromQuantums(position.Quantums, uint32(-market.AtomicResolution))
		if err != nil {
			return types.Valuation{}, sdkerrors.Wrap(types.ErrInvalidPerpExponent, err.Error())
		}
		oracle, err := types.DecFromQuantums(price.Price, uint32(-price.Exponent))
		if err != nil {
			return types.Valuation{}, sdkerrors.Wrap(types.ErrInvalidPriceExponent, err.Error())
		}

		exposureValue = size.Mul(oracle)
		break
	}

	return types.Valuation{
		CollateralValue: collateralValue,
		ExposureValue:   exposureValue,
	}, nil
}
