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

// BatchOrders cancels and places orders for a vault's subaccount in one
// batch. Placements require an Open vault and must not increase leverage
// beyond both the collateral on hand and the current exposure magnitude;
// cancel-only batches are allowed while frozen. Cancellation intents always
// precede placement intents in the response.
func (m msgServer) BatchOrders(ctx context.Context, msg *types.MsgBatchOrders) (*types.MsgBatchOrdersResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, err := m.getVaultForTrader(ctx, msg.PerpId, msg.Trader)
	if err != nil {
		return nil, err
	}

	market, err := m.exchange.GetMarketParams(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query market params")
	}
	if market.ClobPairId != msg.ClobPairId {
		return nil, errors.Wrapf(types.ErrPerpMarketClobIdMismatch, "expected %d, got %d", market.ClobPairId, msg.ClobPairId)
	}

	if len(msg.Cancellations) > types.MaxOrderCancellations {
		return nil, errors.Wrapf(types.ErrCanOnlyCancelSixOrders, "got %d cancellations", len(msg.Cancellations))
	}
	var buys, sells int
	for _, placement := range msg.Placements {
		switch placement.Side {
		case types.ORDER_SIDE_BUY:
			buys++
		case types.ORDER_SIDE_SELL:
			sells++
		default:
			return nil, errors.Wrapf(types.ErrMustSpecifyOrderSide, "order %d has no side", placement.ClientId)
		}
	}
	if buys > types.MaxOrdersPerSide || sells > types.MaxOrdersPerSide {
		return nil, errors.Wrapf(types.ErrCanOnlyPlaceThreeOrdersPerSide, "got %d buys and %d sells", buys, sells)
	}

	if len(msg.Cancellations) == 0 && len(msg.Placements) == 0 {
		return &types.MsgBatchOrdersResponse{}, nil
	}

	if len(msg.Placements) > 0 {
		if vault.Status != types.VAULT_STATUS_OPEN {
			return nil, errors.Wrapf(types.ErrVaultNotOpen, "vault %d is %s", msg.PerpId, vault.Status)
		}

		// Net signed value the batch would add to the vault's exposure.
		netValue := math.LegacyZeroDec()
		for _, placement := range msg.Placements {
			value, err := types.DecFromQuantums(math.NewIntFromUint64(placement.Quantums), types.QuoteDecimals)
			if err != nil {
				return nil, err
			}
			if placement.Side == types.ORDER_SIDE_SELL {
				value = value.Neg()
			}
			netValue = netValue.Add(value)
		}

		valuation, err := m.GetVaultValuation(ctx, vault)
		if err != nil {
			return nil, errors.Wrap(err, "unable to value vault")
		}

		// Fully filled, the batch moves exposure by its net value. Reject only
		// when the resulting magnitude would exceed the collateral on hand and
		// also grow past the current magnitude, so reducing an already
		// over-levered position stays possible.
		newExposure := valuation.ExposureValue.Add(netValue).Abs()
		if newExposure.GT(valuation.CollateralValue) && newExposure.GT(valuation.ExposureValue.Abs()) {
			return nil, errors.Wrapf(
				types.ErrNewOrdersWouldIncreaseLeverageTooMuch,
				"exposure %s exceeds collateral %s",
				newExposure.String(), valuation.CollateralValue.String(),
			)
		}
	}

	var (
		intents []types.Intent
		events  = m.event.EventManager(ctx)
	)
	for _, cancellation := range msg.Cancellations {
		intents = append(intents, types.CancelOrderIntent{
			Subaccount:   vault.Subaccount,
			ClientId:     cancellation.ClientId,
			ClobPairId:   msg.ClobPairId,
			GoodTilBlock: cancellation.GoodTilBlock,
		})

		if err := events.EmitKV(
			ctx,
			types.EventTypeOrderCancelled,
			event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
			event.Attribute{Key: types.AttributeKeyClientId, Value: strconv.FormatUint(uint64(cancellation.ClientId), 10)},
		); err != nil {
			return nil, errors.Wrap(err, "unable to emit order cancelled event")
		}
	}
	for _, placement := range msg.Placements {
		intents = append(intents, types.PlaceOrderIntent{
			Subaccount:   vault.Subaccount,
			ClientId:     placement.ClientId,
			ClobPairId:   msg.ClobPairId,
			Side:         placement.Side,
			Quantums:     placement.Quantums,
			Subticks:     placement.Subticks,
			TimeInForce:  placement.TimeInForce,
			GoodTilBlock: placement.GoodTilBlock,
		})

		if err := events.EmitKV(
			ctx,
			types.EventTypeOrderPlaced,
			event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
			event.Attribute{Key: types.AttributeKeyClientId, Value: strconv.FormatUint(uint64(placement.ClientId), 10)},
			event.Attribute{Key: types.AttributeKeySide, Value: placement.Side.String()},
			event.Attribute{Key: types.AttributeKeyQuantums, Value: strconv.FormatUint(placement.Quantums, 10)},
		); err != nil {
			return nil, errors.Wrap(err, "unable to emit order placed event")
		}
	}

	return &types.MsgBatchOrdersResponse{Intents: intents}, nil
}
