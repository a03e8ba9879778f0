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

package types

import "cosmossdk.io/errors"

var (
	// Authorization.
	ErrInvalidAuthority               = errors.Register(ModuleName, 2, "signer is not the module authority")
	ErrSenderIsNotTrader              = errors.Register(ModuleName, 3, "sender is not the vault trader")
	ErrSenderCannotProcessWithdrawals = errors.Register(ModuleName, 4, "sender cannot process withdrawals")

	// Not found.
	ErrVaultNotFound    = errors.Register(ModuleName, 5, "vault not found")
	ErrLpTokensNotFound = errors.Register(ModuleName, 6, "lp tokens not found")

	// Invalid input.
	ErrInvalidRequest                 = errors.Register(ModuleName, 7, "invalid request")
	ErrInvalidAmount                  = errors.Register(ModuleName, 8, "invalid amount")
	ErrCanOnlyCancelSixOrders         = errors.Register(ModuleName, 9, "can only cancel six orders per batch")
	ErrCanOnlyPlaceThreeOrdersPerSide = errors.Register(ModuleName, 10, "can only place three orders per side")
	ErrMustSpecifyOrderSide           = errors.Register(ModuleName, 11, "order side must be specified")
	ErrPerpMarketClobIdMismatch       = errors.Register(ModuleName, 12, "perp market clob pair id mismatch")

	// Domain invariants.
	ErrNewOrdersWouldIncreaseLeverageTooMuch = errors.Register(ModuleName, 13, "new orders would increase leverage too much")
	ErrInvalidPriceExponent                  = errors.Register(ModuleName, 14, "oracle price exponent must not be positive")
	ErrInvalidPerpExponent                   = errors.Register(ModuleName, 15, "perpetual atomic resolution must not be positive")
	ErrInvalidWithdrawalAmount               = errors.Register(ModuleName, 16, "invalid withdrawal amount")
	ErrVaultAlreadyInitialized               = errors.Register(ModuleName, 17, "vault already initialized")
	ErrVaultAlreadyFrozen                    = errors.Register(ModuleName, 18, "vault already frozen")
	ErrVaultAlreadyOpen                      = errors.Register(ModuleName, 19, "vault already open")
	ErrVaultNotOpen                          = errors.Register(ModuleName, 20, "vault is not open")
	ErrCannotExceedCap                       = errors.Register(ModuleName, 21, "share supply cap exceeded")

	// Numeric.
	ErrNumericConversion = errors.Register(ModuleName, 22, "numeric conversion failed")
)
