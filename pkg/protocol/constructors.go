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

import (
	"sync/atomic"
	"time"
)

// msgIDSeq hands out the monotonic msg_id every envelope constructed by
// this process gets. A single counter is shared across all senders in the
// process, which only strengthens the "monotonic within sender" invariant
// spec.md §3 requires.
var msgIDSeq atomic.Uint64

// New builds an unsigned envelope of the given type with a fresh,
// monotonically increasing message ID and the current time as its
// timestamp. Callers sign it before sending.
func New(from, to string, typ MessageType, payloadJSON string) *Envelope {
	return &Envelope{
		MsgID:       msgIDSeq.Add(1),
		From:        from,
		To:          to,
		Type:        typ,
		PayloadJSON: payloadJSON,
		Timestamp:   time.Now().Unix(),
	}
}

// Ping builds a liveness-probe envelope for a heartbeat tick.
func Ping(from, to string, sessionID uint64) *Envelope {
	e := New(from, to, MessageTypePing, "")
	e.SessionID = sessionID
	return e
}

// Broadcast builds a fan-out envelope carrying payload as its body. The
// caller overwrites To per destination peer before sending.
func Broadcast(from, payload string, sessionID uint64) *Envelope {
	e := New(from, "", MessageTypeBroadcast, payload)
	e.SessionID = sessionID
	return e
}

// Reply builds a Reply envelope addressed back to the peer that sent the
// originating request.
func Reply(from, to, text string) *Envelope {
	return New(from, to, MessageTypeReply, text)
}

// RegisterKeyEnvelope builds an unauthenticated key-registration envelope
// carrying a raw Ed25519 public key as Extra.
func RegisterKeyEnvelope(from, to string, pubKey []byte) *Envelope {
	e := New(from, to, MessageTypeRegisterKey, "")
	e.Extra = pubKey
	return e
}

// DelegateTaskEnvelope builds a task-delegation envelope. payloadJSON is
// the JSON encoding of an AgentMessage wrapping a Task.
func DelegateTaskEnvelope(from, to, payloadJSON string) *Envelope {
	return New(from, to, MessageTypeDelegateTask, payloadJSON)
}
