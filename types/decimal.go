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
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MaxFractionalDigits is the largest fractional digit count the module can
// represent exactly with math.LegacyDec.
const MaxFractionalDigits = uint32(math.LegacyPrecision)

// DecFromQuantums converts an integer quantum amount into its decimal value
// at the given fractional digit count, exactly (raw * 10^-digits).
func DecFromQuantums(raw math.Int, digits uint32) (math.LegacyDec, error) {
	if digits > MaxFractionalDigits {
		return math.LegacyDec{}, errors.Wrapf(ErrNumericConversion, "fractional digits %d exceed maximum %d", digits, MaxFractionalDigits)
	}

	return math.LegacyNewDecFromIntWithPrec(raw, int64(digits)), nil
}

// QuantumsRoundDown converts a decimal value into integer quantums at the
// given fractional digit count, rounding towards zero. Round-down sites are
// the ones where the pool keeps the remainder: share minting and withdrawal
// payouts.
func QuantumsRoundDown(value math.LegacyDec, digits uint32) (math.Int, error) {
	scaled, err := scaleQuantums(value, digits)
	if err != nil {
		return math.Int{}, err
	}

	return scaled.TruncateInt(), nil
}

// QuantumsRoundUp converts a decimal value into integer quantums at the given
// fractional digit count, rounding away from zero. Round-up sites are the
// ones where the actor must cover the pool in full: redemption share sizing.
func QuantumsRoundUp(value math.LegacyDec, digits uint32) (math.Int, error) {
	scaled, err := scaleQuantums(value, digits)
	if err != nil {
		return math.Int{}, err
	}

	return scaled.Ceil().TruncateInt(), nil
}

// Uint64Quantums rejects quantum amounts that do not fit the exchange's
// unsigned 64-bit wire width.
func Uint64Quantums(quantums math.Int) (uint64, error) {
	if quantums.IsNegative() || !quantums.IsUint64() {
		return 0, errors.Wrapf(ErrNumericConversion, "quantums %s do not fit uint64", quantums.String())
	}

	return quantums.Uint64(), nil
}

func scaleQuantums(value math.LegacyDec, digits uint32) (math.LegacyDec, error) {
	if digits > MaxFractionalDigits {
		return math.LegacyDec{}, errors.Wrapf(ErrNumericConversion, "fractional digits %d exceed maximum %d", digits, MaxFractionalDigits)
	}
	if value.IsNegative() {
		return math.LegacyDec{}, errors.Wrapf(ErrNumericConversion, "cannot convert negative value %s to quantums", value.String())
	}

	return value.MulInt(math.NewIntWithDecimal(1, int(digits))), nil
}
