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

package mocks

import (
	"context"
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"google.golang.org/protobuf/runtime/protoiface"
)

// EmittedEvent is a single EmitKV call recorded by the event service mock.
type EmittedEvent struct {
	Type       string
	Attributes []event.Attribute
}

// EventService records emitted events so tests can assert on them.
type EventService struct {
	Events []EmittedEvent
}

var _ event.Service = &EventService{}

func (s *EventService) EventManager(_ context.Context) event.Manager {
	return &eventManager{service: s}
}

type eventManager struct {
	service *EventService
}

func (m *eventManager) Emit(_ context.Context, _ protoiface.MessageV1) error {
	return nil
}

func (m *eventManager) EmitKV(_ context.Context, eventType string, attrs ...event.Attribute) error {
	m.service.Events = append(m.service.Events, EmittedEvent{
		Type:       eventType,
		Attributes: attrs,
	})
	return nil
}

func (m *eventManager) EmitNonConsensus(_ context.Context, _ protoiface.MessageV1) error {
	return nil
}

// HeaderService serves a fixed header that tests can adjust between calls.
type HeaderService struct {
	Info header.Info
}

var _ header.Service = &HeaderService{}

func (s *HeaderService) GetHeaderInfo(_ context.Context) header.Info {
	return s.Info
}

// DefaultHeaderService returns a header service pinned to a stable time.
func DefaultHeaderService() *HeaderService {
	return &HeaderService{Info: header.Info{
		Height: 1,
		Time:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}
