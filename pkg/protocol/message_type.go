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

// MessageType is the closed set of envelope kinds that flow over the wire.
type MessageType uint32

const (
	// MessageTypeUnspecified is the zero value and never sent deliberately.
	MessageTypeUnspecified MessageType = iota

	// MessageTypeRegisterKey bootstraps trust: it carries a raw Ed25519
	// public key in Extra and is accepted by a server before any signature
	// can be verified.
	MessageTypeRegisterKey

	// MessageTypePing is a liveness probe sent on each heartbeat tick.
	MessageTypePing

	// MessageTypeBroadcast fans a payload out to every known peer.
	MessageTypeBroadcast

	// MessageTypeDelegateTask carries a Task routed to a specific remote
	// collaborator.
	MessageTypeDelegateTask

	// MessageTypeCreate asks an orchestrator to instantiate an agent.
	MessageTypeCreate

	// MessageTypeRun asks an orchestrator to execute an agent's pending
	// tasks.
	MessageTypeRun

	// MessageTypeTerminate asks an orchestrator to tear an agent down.
	MessageTypeTerminate

	// MessageTypeReply carries a human-readable orchestrator response.
	MessageTypeReply
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeRegisterKey:
		return "RegisterKey"
	case MessageTypePing:
		return "Ping"
	case MessageTypeBroadcast:
		return "Broadcast"
	case MessageTypeDelegateTask:
		return "DelegateTask"
	case MessageTypeCreate:
		return "Create"
	case MessageTypeRun:
		return "Run"
	case MessageTypeTerminate:
		return "Terminate"
	case MessageTypeReply:
		return "Reply"
	default:
		return "Unspecified"
	}
}
