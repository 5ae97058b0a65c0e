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
	"encoding/json"
	"fmt"
)

// AgentMessageKind discriminates the tagged union carried inside an
// envelope's PayloadJSON when an agent (rather than the orchestrator) is
// the recipient.
type AgentMessageKind string

const (
	AgentMessageTask             AgentMessageKind = "task"
	AgentMessageStatus           AgentMessageKind = "status"
	AgentMessageMemory           AgentMessageKind = "memory"
	AgentMessageCapabilityAdvert AgentMessageKind = "capability_advert"
	AgentMessageCustom           AgentMessageKind = "custom"
)

// AgentMessage is a JSON tagged union. Exactly one of the payload fields
// is populated, matching Kind.
type AgentMessage struct {
	Kind AgentMessageKind `json:"kind"`

	Task             *Task        `json:"task,omitempty"`
	Status           string       `json:"status,omitempty"`
	Memory           []string     `json:"memory,omitempty"`
	CapabilityAdvert *CapAdvert   `json:"capability_advert,omitempty"`
	Custom           string       `json:"custom,omitempty"`
}

// CapAdvert announces a peer's capability set, typically fanned out with
// a Broadcast envelope.
type CapAdvert struct {
	SenderID     string       `json:"sender_id"`
	Capabilities []Capability `json:"capabilities"`
}

// NewTaskMessage wraps a Task as an AgentMessage.
func NewTaskMessage(t Task) AgentMessage {
	return AgentMessage{Kind: AgentMessageTask, Task: &t}
}

// NewCapabilityAdvertMessage wraps a capability announcement as an
// AgentMessage.
func NewCapabilityAdvertMessage(senderID string, caps []Capability) AgentMessage {
	return AgentMessage{
		Kind:             AgentMessageCapabilityAdvert,
		CapabilityAdvert: &CapAdvert{SenderID: senderID, Capabilities: caps},
	}
}

// Encode marshals the AgentMessage to JSON for use as an envelope's
// PayloadJSON.
func (m AgentMessage) Encode() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("protocol: encode agent message: %w", err)
	}
	return string(b), nil
}

// DecodeAgentMessage parses an envelope's PayloadJSON back into an
// AgentMessage.
func DecodeAgentMessage(payload string) (AgentMessage, error) {
	var m AgentMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return AgentMessage{}, fmt.Errorf("protocol: decode agent message: %w", err)
	}
	return m, nil
}
