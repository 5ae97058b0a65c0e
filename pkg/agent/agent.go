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

// Package agent implements the per-agent state machine: a peer directory,
// a capability index used for load-balanced delegation, a heartbeat loop
// that self-heals broken connections, and broadcast/advertisement of
// capabilities to known peers.
package agent

import (
	"context"
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/server"
	"github.com/google/uuid"
)

// Signer is the capability an Agent needs from its cryptographic
// identity: sign outgoing envelopes and expose the public key other
// agents register to trust it.
type Signer interface {
	protocol.Signer
	PublicKey() ed25519.PublicKey
}

// defaultHeartbeatInterval matches the interval the network-capable agent
// type in the system this package implements uses when none is
// configured explicitly.
const defaultHeartbeatInterval = 30 * time.Second

// Agent is a single node in the collaboration mesh: it can hold local
// collaborators (in-process agents it owns), remote collaborators
// (agents reachable over the wire), and route tasks to either by
// capability.
type Agent struct {
	ID     string
	Signer Signer

	BindAddr string
	Server   *server.Server

	HeartbeatInterval time.Duration

	mu               sync.Mutex
	clients          map[string]*sharedClient
	peerAddresses    map[string]string
	localCollabs     map[string]Collaborator
	remoteCollabs    map[string]Collaborator
	capIndex         map[protocol.Capability][]string
	rrIdx            uint64
	capabilities     map[protocol.Capability]struct{}

	tasksMu sync.Mutex
	tasks   []protocol.Task
}

// Agent is also the concrete server.Handler it installs on its own
// Server, via Handle in protocol_ops.go.
var _ server.Handler = (*Agent)(nil)

// New creates an Agent with an empty peer directory that signs with
// signer. An empty id is replaced by a random UUID. Set exported fields
// directly, or call AddCapability, to change the bind address, heartbeat
// interval, or capability set before the agent starts talking to peers.
func New(id string, signer Signer) *Agent {
	if id == "" {
		id = uuid.NewString()
	}
	return &Agent{
		ID:                id,
		Signer:            signer,
		BindAddr:          "0.0.0.0:0",
		HeartbeatInterval: defaultHeartbeatInterval,
		clients:           make(map[string]*sharedClient),
		peerAddresses:     make(map[string]string),
		localCollabs:      make(map[string]Collaborator),
		remoteCollabs:     make(map[string]Collaborator),
		capIndex:          make(map[protocol.Capability][]string),
		capabilities:      make(map[protocol.Capability]struct{}),
	}
}

// AddCapability marks the agent as offering cap.
func (a *Agent) AddCapability(cap protocol.Capability) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.capabilities[cap] = struct{}{}
}

// Capabilities returns the set of capabilities this agent advertises.
func (a *Agent) Capabilities() []protocol.Capability {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]protocol.Capability, 0, len(a.capabilities))
	for c := range a.capabilities {
		out = append(out, c)
	}
	return out
}

// Tasks returns a snapshot of the agent's task queue.
func (a *Agent) Tasks() []protocol.Task {
	a.tasksMu.Lock()
	defer a.tasksMu.Unlock()
	out := make([]protocol.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

// HandleTask implements Collaborator for a local agent: it enqueues the
// task for later execution.
func (a *Agent) HandleTask(_ context.Context, task protocol.Task) error {
	a.tasksMu.Lock()
	defer a.tasksMu.Unlock()
	a.tasks = append(a.tasks, task)
	return nil
}
