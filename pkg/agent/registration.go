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

package agent

import (
	"context"
	"fmt"

	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
)

// RegisterLocal adds collab to the local collaborator directory and
// appends its ID to the round-robin queue for every capability in caps.
// Calling this twice for the same collaborator is not idempotent with
// respect to the capability index: the ID is appended again each time,
// exactly as the system this package implements does, so a collaborator
// registered twice gets proportionally more turns in round robin.
func (a *Agent) RegisterLocal(collab Collaborator, caps []protocol.Capability) {
	id := collab.ID()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.localCollabs[id] = collab
	for _, cap := range caps {
		a.capIndex[cap] = append(a.capIndex[cap], id)
	}
}

// RegisterRemote adds a RemoteAgent collaborator for peerID, sharing this
// agent's client map so the remote handle always sends over the same
// connection heartbeat maintains. addr, if non-empty, is recorded so a
// dead connection to peerID can be redialed.
func (a *Agent) RegisterRemote(peerID, addr string, caps []protocol.Capability) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if addr != "" {
		a.peerAddresses[peerID] = addr
	}

	remote := &RemoteAgent{
		PeerID:  peerID,
		Signer:  a.Signer,
		clients: a.clients,
	}
	a.remoteCollabs[peerID] = remote

	for _, cap := range caps {
		a.capIndex[cap] = append(a.capIndex[cap], peerID)
	}
}

// AttachClient registers an already-dialed connection to peerID so
// collaborators (local or remote) can reach it through the shared client
// map.
func (a *Agent) AttachClient(peerID string, c *client.Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clients[peerID] = newSharedClient(c)
}

// AssignTaskLB routes task to the next collaborator offering cap, cycling
// through the capability's queue round robin. The rotation counter is
// shared across every capability on this agent, matching the single
// global rr_idx of the system this routes like; a capability with a
// short queue effectively gets visited less often than a stable-sized
// queue would otherwise imply, and rrIdx wraps modulo the queue length
// rather than being reset per capability. This is intentional, not a
// defect: see the RRIdx note under "Open Question decisions" in DESIGN.md.
func (a *Agent) AssignTaskLB(ctx context.Context, cap protocol.Capability, task protocol.Task) error {
	a.mu.Lock()
	queue := a.capIndex[cap]
	if len(queue) == 0 {
		a.mu.Unlock()
		return fmt.Errorf("agent: no agent has capability %s", cap)
	}
	id := queue[a.rrIdx%uint64(len(queue))]
	a.rrIdx++

	collab, ok := a.localCollabs[id]
	if !ok {
		collab, ok = a.remoteCollabs[id]
	}
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("agent: collaborator %q not found", id)
	}

	return a.DelegateTask(ctx, collab, task)
}

// DelegateTask hands task to collab directly, whether it is local or
// remote; Collaborator already hides that distinction.
func (a *Agent) DelegateTask(ctx context.Context, collab Collaborator, task protocol.Task) error {
	return collab.HandleTask(ctx, task)
}
