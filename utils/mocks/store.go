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
	"bytes"
	"context"
	"sort"

	"cosmossdk.io/core/store"
)

// StoreService is an in-memory store.KVStoreService. Iteration order is
// byte-wise ascending over keys, matching a real backing store, which the
// withdrawal queue's FIFO walk depends on.
type StoreService struct {
	store *memStore
}

var _ store.KVStoreService = &StoreService{}

func NewStoreService() *StoreService {
	return &StoreService{store: &memStore{data: make(map[string][]byte)}}
}

func (s *StoreService) OpenKVStore(_ context.Context) store.KVStore {
	return s.store
}

type memStore struct {
	data map[string][]byte
}

func (m *memStore) Get(key []byte) ([]byte, error) {
	value, ok := m.data[string(key)]
	if !ok {
		return nil, nil
	}

	return append([]byte(nil), value...), nil
}

func (m *memStore) Has(key []byte) (bool, error) {
	_, ok := m.data[string(key)]
	return ok, nil
}

func (m *memStore) Set(key, value []byte) error {
	m.data[string(key)] = append([]byte(nil), value...)
	return nil
}

func (m *memStore) Delete(key []byte) error {
	delete(m.data, string(key))
	return nil
}

func (m *memStore) Iterator(start, end []byte) (store.Iterator, error) {
	return m.iterator(start, end, false), nil
}

func (m *memStore) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return m.iterator(start, end, true), nil
}

func (m *memStore) iterator(start, end []byte, reverse bool) *memIterator {
	var keys []string
	for key := range m.data {
		raw := []byte(key)
		if start != nil && bytes.Compare(raw, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(raw, end) >= 0 {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	values := make([][]byte, len(keys))
	for i, key := range keys {
		values[i] = append([]byte(nil), m.data[key]...)
	}

	return &memIterator{start: start, end: end, keys: keys, values: values}
}

type memIterator struct {
	start, end []byte
	keys       []string
	values     [][]byte
	index      int
}

func (i *memIterator) Domain() ([]byte, []byte) { return i.start, i.end }

func (i *memIterator) Valid() bool { return i.index < len(i.keys) }

func (i *memIterator) Next() { i.index++ }

func (i *memIterator) Key() []byte { return []byte(i.keys[i.index]) }

func (i *memIterator) Value() []byte { return i.values[i.index] }

func (i *memIterator) Error() error { return nil }

func (i *memIterator) Close() error { return nil }
