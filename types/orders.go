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

// OrderSide is the book side of a new order. An unspecified side is a fatal
// input error for the whole batch.
type OrderSide int32

const (
	ORDER_SIDE_UNSPECIFIED OrderSide = 0
	ORDER_SIDE_BUY         OrderSide = 1
	ORDER_SIDE_SELL        OrderSide = 2
)

// String implements fmt.Stringer.
func (s OrderSide) String() string {
	switch s {
	case ORDER_SIDE_BUY:
		return "buy"
	case ORDER_SIDE_SELL:
		return "sell"
	default:
		return "unspecified"
	}
}

// OrderPlacement is a new order within a batch. Quantums is the order's value
// in settlement asset quantums; Subticks is the limit price in exchange
// subticks; GoodTilBlock is the exchange-side expiry marker.
type OrderPlacement struct {
	ClientId     uint32    `json:"client_id"`
	Side         OrderSide `json:"side"`
	Quantums     uint64    `json:"quantums"`
	Subticks     uint64    `json:"subticks"`
	TimeInForce  uint32    `json:"time_in_force"`
	GoodTilBlock uint32    `json:"good_til_block"`
}

// OrderCancellation is a cancel-by-id within a batch.
type OrderCancellation struct {
	ClientId     uint32 `json:"client_id"`
	GoodTilBlock uint32 `json:"good_til_block"`
}
