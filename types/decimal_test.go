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

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpvault.noble.xyz/types"
)

func TestDecFromQuantums(t *testing.T) {
	// ACT: Convert 1500000 micro quantums.
	value, err := types.DecFromQuantums(math.NewInt(1_500_000), 6)

	// ASSERT: Exactly 1.5.
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("1.5"), value)

	// ACT: Negative quantums keep their sign.
	value, err = types.DecFromQuantums(math.NewInt(-2_000_000), 6)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyNewDec(-2), value)

	// ACT: Zero digits is the identity.
	value, err = types.DecFromQuantums(math.NewInt(42), 0)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyNewDec(42), value)

	// ACT: More fractional digits than the decimal type can hold.
	_, err = types.DecFromQuantums(math.NewInt(1), types.MaxFractionalDigits+1)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNumericConversion)
}

func TestQuantumsRounding(t *testing.T) {
	value := math.LegacyMustNewDecFromStr("1.0000004")

	// ACT: Round down truncates the sub-quantum remainder.
	down, err := types.QuantumsRoundDown(value, 6)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_000_000), down)

	// ACT: Round up covers it.
	up, err := types.QuantumsRoundUp(value, 6)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1_000_001), up)

	// ACT: Exact values agree in both directions.
	exact := math.LegacyMustNewDecFromStr("2.5")
	down, err = types.QuantumsRoundDown(exact, 6)
	require.NoError(t, err)
	up, err = types.QuantumsRoundUp(exact, 6)
	require.NoError(t, err)
	assert.Equal(t, down, up)
	assert.Equal(t, math.NewInt(2_500_000), down)

	// ACT: Negative values cannot become quantums.
	_, err = types.QuantumsRoundDown(math.LegacyNewDec(-1), 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNumericConversion)
	_, err = types.QuantumsRoundUp(math.LegacyNewDec(-1), 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNumericConversion)
}

func TestUint64Quantums(t *testing.T) {
	// ACT: A value in range passes through.
	quantums, err := types.Uint64Quantums(math.NewInt(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), quantums)

	// ACT: Negative amounts are rejected.
	_, err = types.Uint64Quantums(math.NewInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNumericConversion)

	// ACT: Values past the unsigned 64-bit width are rejected.
	overflow := math.NewIntFromUint64(^uint64(0)).Add(math.OneInt())
	_, err = types.Uint64Quantums(overflow)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNumericConversion)
}

func TestVaultStatusString(t *testing.T) {
	assert.Equal(t, "open", types.VAULT_STATUS_OPEN.String())
	assert.Equal(t, "frozen", types.VAULT_STATUS_FROZEN.String())
	assert.Equal(t, "unspecified", types.VAULT_STATUS_UNSPECIFIED.String())
}

func TestSubaccountValue(t *testing.T) {
	// ASSERT: Magnitudes add regardless of sign.
	valuation := types.Valuation{
		CollateralValue: math.LegacyNewDec(-4),
		ExposureValue:   math.LegacyNewDec(-6),
	}
	assert.Equal(t, math.LegacyNewDec(10), valuation.SubaccountValue())
}
