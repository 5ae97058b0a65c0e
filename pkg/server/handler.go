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

package server

import (
	"context"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
)

// Handler processes a verified envelope received from peerAddr. The
// reference implementation this package is modeled on installed the
// handler as a boxed closure; here it is an explicit interface so the
// dependency a Server takes is visible in its type, not hidden inside a
// captured closure.
type Handler interface {
	Handle(ctx context.Context, env *protocol.Envelope, peerAddr string) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, env *protocol.Envelope, peerAddr string) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, env *protocol.Envelope, peerAddr string) error {
	return f(ctx, env, peerAddr)
}
