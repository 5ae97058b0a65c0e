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
	"log"
	"time"

	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"golang.org/x/sync/errgroup"
)

// Heartbeat starts a detached loop that pings every known peer once per
// HeartbeatInterval. A failed ping triggers an immediate reconnect
// attempt using the peer's recorded address; on success the shared
// client handle is swapped in place so collaborators keep working
// through the same handle. The loop runs until ctx is canceled.
func (a *Agent) Heartbeat(ctx context.Context) {
	go func() {
		ticker := a.HeartbeatInterval
		if ticker <= 0 {
			ticker = defaultHeartbeatInterval
		}

		for {
			a.mu.Lock()
			peers := make(map[string]*sharedClient, len(a.clients))
			for id, sc := range a.clients {
				peers[id] = sc
			}
			a.mu.Unlock()

			for peerID, sc := range peers {
				msg := protocol.Ping(a.ID, peerID, 0)
				msg.Sign(a.Signer)
				if err := sc.Send(ctx, msg); err != nil {
					log.Printf("agent: heartbeat to %s failed: %v", peerID, err)
					a.reconnect(ctx, peerID, sc)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(ticker):
			}
		}
	}()
}

func (a *Agent) reconnect(ctx context.Context, peerID string, sc *sharedClient) {
	a.mu.Lock()
	addr, ok := a.peerAddresses[peerID]
	a.mu.Unlock()
	if !ok {
		log.Printf("agent: no known address for %s, cannot reconnect", peerID)
		return
	}

	newConn, err := client.Connect(addr, a.Signer)
	if err != nil {
		log.Printf("agent: failed to reconnect to %s: %v", peerID, err)
		return
	}
	sc.Replace(newConn)
}

// Broadcast fans payload out to every known peer concurrently. Individual
// send failures are logged, not returned: one unreachable peer does not
// stop delivery to the rest.
func (a *Agent) Broadcast(ctx context.Context, payload string) error {
	a.mu.Lock()
	peers := make(map[string]*sharedClient, len(a.clients))
	for id, sc := range a.clients {
		peers[id] = sc
	}
	a.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for peerID, sc := range peers {
		peerID, sc := peerID, sc
		g.Go(func() error {
			msg := protocol.Broadcast(a.ID, payload, 0)
			msg.To = peerID
			if err := sc.Send(gctx, msg); err != nil {
				log.Printf("agent: broadcast to %s failed: %v", peerID, err)
				return nil
			}
			return nil
		})
	}
	return g.Wait()
}

// AdvertiseCapabilities announces this agent's capability set to every
// known peer, sequentially. Unlike Broadcast, the payload travels in the
// envelope's Extra field rather than PayloadJSON, matching how capability
// advertisement is framed in the reference protocol this mirrors.
func (a *Agent) AdvertiseCapabilities(ctx context.Context) error {
	msg := protocol.NewCapabilityAdvertMessage(a.ID, a.Capabilities())
	payload, err := msg.Encode()
	if err != nil {
		return err
	}

	a.mu.Lock()
	peers := make(map[string]*sharedClient, len(a.clients))
	for id, sc := range a.clients {
		peers[id] = sc
	}
	a.mu.Unlock()

	for peerID, sc := range peers {
		env := protocol.New(a.ID, peerID, protocol.MessageTypeBroadcast, "")
		env.Extra = []byte(payload)
		if err := sc.Send(ctx, env); err != nil {
			log.Printf("agent: capability advert to %s failed: %v", peerID, err)
		}
	}
	return nil
}

// Handle implements server.Handler: it is what an Agent installs as its
// own Server's handler so envelopes delivered over the wire - a
// DelegateTask from RemoteAgent.HandleTask, or a capability advert from
// AdvertiseCapabilities - actually reach Receive, rather than only
// AgentMessages driven in-process by a caller that already holds the
// Agent. AdvertiseCapabilities carries its payload in Extra while
// DelegateTaskEnvelope and Broadcast carry theirs in PayloadJSON, so
// PayloadJSON is tried first and Extra is the fallback.
func (a *Agent) Handle(ctx context.Context, env *protocol.Envelope, peerAddr string) error {
	payload := env.PayloadJSON
	if payload == "" && len(env.Extra) > 0 {
		payload = string(env.Extra)
	}
	if payload == "" {
		return nil
	}

	msg, err := protocol.DecodeAgentMessage(payload)
	if err != nil {
		log.Printf("agent: failed to decode agent message from %s: %v", peerAddr, err)
		return nil
	}
	return a.Receive(ctx, msg)
}

// Receive dispatches an inbound AgentMessage: a Task is enqueued, a
// CapabilityAdvert registers the sender as a remote collaborator for its
// announced capabilities, and every other kind is a no-op.
func (a *Agent) Receive(ctx context.Context, msg protocol.AgentMessage) error {
	switch msg.Kind {
	case protocol.AgentMessageTask:
		if msg.Task == nil {
			return nil
		}
		return a.HandleTask(ctx, *msg.Task)
	case protocol.AgentMessageCapabilityAdvert:
		if msg.CapabilityAdvert == nil {
			return nil
		}
		a.RegisterRemote(msg.CapabilityAdvert.SenderID, "", msg.CapabilityAdvert.Capabilities)
		return nil
	default:
		return nil
	}
}
