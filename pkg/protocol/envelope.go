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

// Package protocol defines the wire envelope exchanged between agents and
// the orchestrator, its signing contract, and the message taxonomy carried
// inside it.
//
// Envelope is encoded with a small hand-rolled protobuf-wire codec
// (google.golang.org/protobuf/encoding/protowire) rather than generated
// message code, since the field layout is small, fixed, and does not need
// reflection or descriptors. Decode still skips unknown fields.
package protocol

import "fmt"

// Envelope is the fixed-schema message that crosses the wire on every
// stream. Field numbers below are the protobuf wire tags used by Encode
// and Decode; they follow the field order of the system this package
// implements and must not be renumbered without bumping the wire version.
type Envelope struct {
	MsgID       uint64      // 1
	From        string      // 2
	To          string      // 3
	Type        MessageType // 4
	PayloadJSON string      // 5
	Extra       []byte      // 6
	Timestamp   int64       // 7
	SessionID   uint64      // 8
	Signature   []byte      // 9
}

func (e *Envelope) String() string {
	return fmt.Sprintf("Envelope{id=%d from=%s to=%s type=%s session=%d}",
		e.MsgID, e.From, e.To, e.Type, e.SessionID)
}

// Clone returns a deep-enough copy of e: slice fields are copied so that
// mutating the clone's Signature (as Sign does) never touches the
// original.
func (e *Envelope) Clone() *Envelope {
	clone := *e
	if e.Extra != nil {
		clone.Extra = append([]byte(nil), e.Extra...)
	}
	if e.Signature != nil {
		clone.Signature = append([]byte(nil), e.Signature...)
	}
	return &clone
}
