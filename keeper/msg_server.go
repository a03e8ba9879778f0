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

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// CreateVault provisions the vault record, an empty LP ledger and an empty
// withdrawal queue for a perpetual market. Callable once per perpetual id.
func (m msgServer) CreateVault(ctx context.Context, msg *types.MsgCreateVault) (*types.MsgCreateVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Authority != m.authority {
		return nil, errors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", m.authority, msg.Authority)
	}
	if _, err := m.address.StringToBytes(msg.Trader); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid trader address: %s", msg.Trader)
	}

	_, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if found {
		return nil, errors.Wrapf(types.ErrVaultAlreadyInitialized, "vault %d already exists", msg.PerpId)
	}

	vault := types.NewVault(msg.PerpId, msg.Trader, m.subaccountOwner)
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}
	if err := m.ShareSupply.Set(ctx, msg.PerpId, math.ZeroInt()); err != nil {
		return nil, errors.Wrap(err, "unable to initialise share supply")
	}
	if err := m.ShareEscrow.Set(ctx, msg.PerpId, math.ZeroInt()); err != nil {
		return nil, errors.Wrap(err, "unable to initialise share escrow")
	}

	m.logger.Info("created vault", "perp_id", msg.PerpId, "trader", msg.Trader)

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeVaultCreated,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
		event.Attribute{Key: types.AttributeKeyTrader, Value: msg.Trader},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault created event")
	}

	return &types.MsgCreateVaultResponse{}, nil
}

// FreezeVault transitions a vault from Open to Frozen, blocking further order
// placement until thawed.
func (m msgServer) FreezeVault(ctx context.Context, msg *types.MsgFreezeVault) (*types.MsgFreezeVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, err := m.getVaultForTrader(ctx, msg.PerpId, msg.Trader)
	if err != nil {
		return nil, err
	}
	if vault.Status == types.VAULT_STATUS_FROZEN {
		return nil, errors.Wrapf(types.ErrVaultAlreadyFrozen, "vault %d", msg.PerpId)
	}

	vault.Status = types.VAULT_STATUS_FROZEN
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeVaultFrozen,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault frozen event")
	}

	return &types.MsgFreezeVaultResponse{}, nil
}

// ThawVault transitions a vault from Frozen back to Open.
func (m msgServer) ThawVault(ctx context.Context, msg *types.MsgThawVault) (*types.MsgThawVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, err := m.getVaultForTrader(ctx, msg.PerpId, msg.Trader)
	if err != nil {
		return nil, err
	}
	if vault.Status == types.VAULT_STATUS_OPEN {
		return nil, errors.Wrapf(types.ErrVaultAlreadyOpen, "vault %d", msg.PerpId)
	}

	vault.Status = types.VAULT_STATUS_OPEN
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeVaultThawed,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault thawed event")
	}

	return &types.MsgThawVaultResponse{}, nil
}

// SetVaultTrader reassigns a vault's trader. Authority gated.
func (m msgServer) SetVaultTrader(ctx context.Context, msg *types.MsgSetVaultTrader) (*types.MsgSetVaultTraderResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Authority != m.authority {
		return nil, errors.Wrapf(types.ErrInvalidAuthority, "expected %s, got %s", m.authority, msg.Authority)
	}
	if _, err := m.address.StringToBytes(msg.Trader); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid trader address: %s", msg.Trader)
	}

	vault, found, err := m.GetVault(ctx, msg.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.PerpId)
	}

	vault.Trader = msg.Trader
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeVaultTraderSet,
		event.Attribute{Key: types.AttributeKeyPerpId, Value: strconv.FormatUint(uint64(msg.PerpId), 10)},
		event.Attribute{Key: types.AttributeKeyTrader, Value: msg.Trader},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit trader set event")
	}

	return &types.MsgSetVaultTraderResponse{}, nil
}

// getVaultForTrader fetches a vault and checks that sender is its trader.
func (m msgServer) getVaultForTrader(ctx context.Context, perpId uint32, sender string) (types.Vault, error) {
	vault, found, err := m.GetVault(ctx, perpId)
	if err != nil {
		return types.Vault{}, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return types.Vault{}, errors.Wrapf(types.ErrVaultNotFound, "vault %d", perpId)
	}
	if vault.Trader != sender {
		return types.Vault{}, errors.Wrapf(types.ErrSenderIsNotTrader, "expected %s, got %s", vault.Trader, sender)
	}

	return vault, nil
}
