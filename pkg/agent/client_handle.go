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
	"sync"

	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
)

// sharedClient is a mutex-guarded handle to a single peer connection.
// Every collaborator that talks to the same peer shares one sharedClient
// rather than each holding its own *client.Client, so a broken connection
// can be replaced in place (see Replace) and every holder of the handle
// immediately starts using the new one.
//
// Send holds the lock only long enough to copy the current connection
// pointer and releases it before the network write, so a slow peer never
// stalls other goroutines waiting to use this handle (the convoy this
// type exists to avoid).
type sharedClient struct {
	mu   sync.Mutex
	conn *client.Client
}

func newSharedClient(c *client.Client) *sharedClient {
	return &sharedClient{conn: c}
}

// Send signs and delivers env over the current connection.
func (sc *sharedClient) Send(ctx context.Context, env *protocol.Envelope) error {
	sc.mu.Lock()
	conn := sc.conn
	sc.mu.Unlock()

	return conn.Send(ctx, env)
}

// Replace swaps in a freshly dialed connection, used by the heartbeat
// loop after a failed send to reconnect without forcing every other
// goroutine holding this handle to learn a new pointer.
func (sc *sharedClient) Replace(c *client.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.conn = c
}
