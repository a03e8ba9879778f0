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

	"cosmossdk.io/errors"

	"perpvault.noble.xyz/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParams) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get params from state")
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Vault(ctx context.Context, req *types.QueryVault) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	vault, found, err := q.GetVault(ctx, req.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", req.PerpId)
	}

	supply, err := q.GetShareSupply(ctx, req.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get share supply from state")
	}
	escrow, err := q.GetShareEscrow(ctx, req.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get escrow from state")
	}

	return &types.QueryVaultResponse{
		Vault:       vault,
		ShareSupply: supply,
		ShareEscrow: escrow,
	}, nil
}

func (q queryServer) Valuation(ctx context.Context, req *types.QueryValuation) (*types.QueryValuationResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	vault, found, err := q.GetVault(ctx, req.PerpId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", req.PerpId)
	}

	valuation, err := q.GetVaultValuation(ctx, vault)
	if err != nil {
		return nil, errors.Wrap(err, "unable to value vault")
	}

	return &types.QueryValuationResponse{
		CollateralValue: valuation.CollateralValue,
		ExposureValue:   valuation.ExposureValue,
		SubaccountValue: valuation.SubaccountValue(),
	}, nil
}

func (q queryServer) LpBalance(ctx context.Context, req *types.QueryLpBalance) (*types.QueryLpBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	holder, err := q.address.StringToBytes(req.Holder)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid holder address: %s", req.Holder)
	}

	balance, _, err := q.GetShareBalance(ctx, req.PerpId, holder)
	if err != nil {
		return nil, errors.Wrap(err, "unable to get holder balance from state")
	}

	return &types.QueryLpBalanceResponse{Balance: balance}, nil
}

func (q queryServer) WithdrawalQueue(ctx context.Context, req *types.QueryWithdrawalQueue) (*types.QueryWithdrawalQueueResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	var requests []types.QueuedWithdrawal
	err := q.IterateWithdrawals(ctx, req.PerpId, func(id uint64, request types.WithdrawalRequest) (bool, error) {
		requests = append(requests, types.QueuedWithdrawal{
			RequestId: id,
			Requester: request.Requester,
			Shares:    request.Shares,
		})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to walk withdrawal queue")
	}

	return &types.QueryWithdrawalQueueResponse{Requests: requests}, nil
}
