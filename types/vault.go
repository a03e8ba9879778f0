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

import (
	"fmt"

	"cosmossdk.io/math"
)

// VaultStatus is the lifecycle status of a vault. Order placement requires an
// Open vault; deposits, withdrawal requests, cancellations and processing are
// allowed in any status.
type VaultStatus int32

const (
	VAULT_STATUS_UNSPECIFIED VaultStatus = 0
	VAULT_STATUS_OPEN        VaultStatus = 1
	VAULT_STATUS_FROZEN      VaultStatus = 2
)

// String implements fmt.Stringer.
func (s VaultStatus) String() string {
	switch s {
	case VAULT_STATUS_OPEN:
		return "open"
	case VAULT_STATUS_FROZEN:
		return "frozen"
	default:
		return "unspecified"
	}
}

// SubaccountId references an exchange-side subaccount.
type SubaccountId struct {
	Owner  string `json:"owner"`
	Number uint32 `json:"number"`
}

// TokenMetadata is the LP token display metadata, fixed at vault creation.
type TokenMetadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
}

// Vault is the persisted per-market vault record. It is created once per
// perpetual id and mutated only by freeze/thaw transitions and trader
// reassignment.
type Vault struct {
	PerpId     uint32        `json:"perp_id"`
	Trader     string        `json:"trader"`
	Subaccount SubaccountId  `json:"subaccount"`
	Status     VaultStatus   `json:"status"`
	Metadata   TokenMetadata `json:"metadata"`
}

// NewVault returns the vault record provisioned by CreateVault. The vault's
// collateral subaccount index equals its perpetual id.
func NewVault(perpId uint32, trader, subaccountOwner string) Vault {
	return Vault{
		PerpId: perpId,
		Trader: trader,
		Subaccount: SubaccountId{
			Owner:  subaccountOwner,
			Number: perpId,
		},
		Status: VAULT_STATUS_OPEN,
		Metadata: TokenMetadata{
			Name:     fmt.Sprintf("Perpetual Vault LP %d", perpId),
			Symbol:   fmt.Sprintf("PVLP-%d", perpId),
			Decimals: QuoteDecimals,
		},
	}
}

// Valuation is the two-part value of a vault's external position, derived
// fresh on every operation that needs it and never persisted.
type Valuation struct {
	// CollateralValue is the value of the settlement asset collateral held
	// by the vault's subaccount.
	CollateralValue math.LegacyDec

	// ExposureValue is the value of the vault's perpetual position at the
	// current oracle price. Positive for long exposure, negative for short.
	ExposureValue math.LegacyDec
}

// SubaccountValue is the magnitude valuation used by share accounting:
// |collateral| + |exposure|.
func (v Valuation) SubaccountValue() math.LegacyDec {
	return v.CollateralValue.Abs().Add(v.ExposureValue.Abs())
}
