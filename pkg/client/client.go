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

// Package client dials a single QUIC connection to a peer and sends
// signed envelopes over it, one per fresh unidirectional stream.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/transport"
	"github.com/quic-go/quic-go"
)

// dialTimeout bounds how long Connect waits for the QUIC handshake.
const dialTimeout = 5 * time.Second

// Client holds one outbound QUIC connection and the signer used to
// authenticate every envelope sent over it.
type Client struct {
	conn   quic.Connection
	signer protocol.Signer
}

// Connect dials addr and returns a Client ready to Send. The connection
// trusts whatever certificate the server presents; see
// transport.ClientTLSConfig for why that is safe here.
func Connect(addr string, signer protocol.Signer) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := quic.DialAddr(ctx, addr, transport.ClientTLSConfig(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", addr, err)
	}

	return &Client{conn: conn, signer: signer}, nil
}

// Send signs env, compresses and encodes it, and writes it to a brand new
// unidirectional stream that is closed once the write completes.
func (c *Client) Send(ctx context.Context, env *protocol.Envelope) error {
	env.Sign(c.signer)

	stream, err := c.conn.OpenUniStreamSync(ctx)
	if err != nil {
		return fmt.Errorf("client: open stream: %w", err)
	}

	if err := transport.WriteFramed(stream, env.Encode()); err != nil {
		return err
	}
	return stream.Close()
}

// Close tears down the underlying QUIC connection.
func (c *Client) Close() error {
	return c.conn.CloseWithError(0, "client closed")
}
