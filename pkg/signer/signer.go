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

// Package signer provides Ed25519 message signing for agent-to-agent
// envelopes.
//
// Signing is detached from transport: a Signer only turns a byte slice into
// a 64-byte Ed25519 signature over it. pkg/protocol is responsible for
// deciding which bytes of an envelope get signed.
package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// Signer produces Ed25519 signatures and exposes the public key peers need
// to verify them.
type Signer interface {
	// Sign returns the Ed25519 signature over data.
	Sign(data []byte) []byte

	// PublicKey returns the signer's Ed25519 public key.
	PublicKey() ed25519.PublicKey
}

// Ed25519Signer is the default Signer backed by an in-memory keypair.
type Ed25519Signer struct {
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

var _ Signer = (*Ed25519Signer)(nil)

// New wraps an existing Ed25519 keypair as a Signer.
func New(public ed25519.PublicKey, private ed25519.PrivateKey) *Ed25519Signer {
	return &Ed25519Signer{public: public, private: private}
}

// Generate creates a new Signer backed by a freshly generated Ed25519
// keypair.
func Generate() (*Ed25519Signer, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("signer: generate keypair: %w", err)
	}
	return New(pub, priv), nil
}

// Sign implements Signer.
func (s *Ed25519Signer) Sign(data []byte) []byte {
	return ed25519.Sign(s.private, data)
}

// PublicKey implements Signer.
func (s *Ed25519Signer) PublicKey() ed25519.PublicKey {
	return s.public
}
