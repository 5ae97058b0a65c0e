// Copyright (C) 2025 FleetMesh Project
//
// This file is part of fleetmesh-go.
//
// fleetmesh-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fleetmesh-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fleetmesh-go.  If not, see <https://www.gnu.org/licenses/>.

// Package verifier checks Ed25519 signatures against a pool of trusted
// public keys.
//
// A single logical peer may rotate or multiply its keys over the lifetime
// of a process, so Verifier never binds to one key: it holds an ordered
// list and accepts a signature if any key in the list validates it. Keys
// are added at runtime through Register, most commonly as the result of a
// RegisterKey envelope received over the wire.
package verifier

import (
	"crypto/ed25519"
	"errors"
	"sync"
)

// ErrVerificationFailed is returned when no registered key validates a
// signature.
var ErrVerificationFailed = errors.New("verifier: signature verification failed")

// Verifier validates signatures against a pool of known public keys.
type Verifier interface {
	// Register adds a public key to the trusted pool. It is safe to call
	// concurrently with Verify.
	Register(pub ed25519.PublicKey)

	// Verify reports whether sig is a valid Ed25519 signature over data
	// under any registered key.
	Verify(data, sig []byte) error
}

// MultiKeyVerifier is the default Verifier. It is safe for concurrent use.
type MultiKeyVerifier struct {
	mu   sync.RWMutex
	keys []ed25519.PublicKey
}

var _ Verifier = (*MultiKeyVerifier)(nil)

// New builds a MultiKeyVerifier seeded with the given public keys.
func New(keys ...ed25519.PublicKey) *MultiKeyVerifier {
	v := &MultiKeyVerifier{}
	v.keys = append(v.keys, keys...)
	return v
}

// Register implements Verifier.
func (v *MultiKeyVerifier) Register(pub ed25519.PublicKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.keys = append(v.keys, pub)
}

// Verify implements Verifier. A signature of any length other than 64
// bytes is rejected outright without consulting the key pool.
func (v *MultiKeyVerifier) Verify(data, sig []byte) error {
	if len(sig) != ed25519.SignatureSize {
		return ErrVerificationFailed
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, key := range v.keys {
		if ed25519.Verify(key, data, sig) {
			return nil
		}
	}
	return ErrVerificationFailed
}

// Keys returns a snapshot of the currently registered public keys.
func (v *MultiKeyVerifier) Keys() []ed25519.PublicKey {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]ed25519.PublicKey, len(v.keys))
	copy(out, v.keys)
	return out
}
