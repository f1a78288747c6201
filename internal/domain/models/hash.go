// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// ContentHash computes the deterministic digest of a payload used as a
// no-op dirty check. Canonicalization is explicit rather than an accident
// of serialization: encoding/json emits map keys in sorted order and struct
// fields in declaration order, so equivalent payloads always produce the
// same digest.
func ContentHash(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		// Payloads are built from JSON-safe types; a marshal failure is a
		// programming error. Return a sentinel that never matches a stored
		// hash so the sync falls through to the remote call.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// sortedKeys returns the keys of a string-keyed map in sorted order, for
// deterministic iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
