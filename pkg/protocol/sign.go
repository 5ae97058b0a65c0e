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

package protocol

// Signer is the subset of pkg/signer.Signer that Sign needs. Defined here
// too so pkg/protocol does not import pkg/signer and create a cycle.
type Signer interface {
	Sign(data []byte) []byte
}

// Verifier is the subset of pkg/verifier.Verifier that Verify needs.
type Verifier interface {
	Verify(data, sig []byte) error
}

// Sign computes e's signature over its own encoding with Signature held
// at zero, then stores the result in e.Signature. The zeroing matters:
// without it the signature would cover its own bytes.
func (e *Envelope) Sign(s Signer) {
	unsigned := e.Clone()
	unsigned.Signature = nil
	e.Signature = s.Sign(unsigned.Encode())
}

// Verify recomputes the same zeroed-signature encoding Sign used and
// checks e.Signature against it.
func (e *Envelope) Verify(v Verifier) error {
	unsigned := e.Clone()
	unsigned.Signature = nil
	return v.Verify(unsigned.Encode(), e.Signature)
}
