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

// Package server accepts QUIC connections, verifies and dispatches
// envelopes arriving on them, and lets a handler reply to whichever peer
// sent a given envelope.
package server

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/transport"
	"github.com/quic-go/quic-go"
)

// Server accepts connections on a bound QUIC endpoint and dispatches
// envelopes arriving on them to an installed Handler.
type Server struct {
	listener *quic.Listener

	mu          sync.RWMutex
	connections map[string]quic.Connection

	handlerMu sync.RWMutex
	handler   Handler
}

// Bind starts listening for QUIC connections on addr using a freshly
// generated self-signed certificate.
func Bind(addr string) (*Server, error) {
	tlsConf, err := transport.ServerTLSConfig()
	if err != nil {
		return nil, err
	}

	listener, err := quic.ListenAddr(addr, tlsConf, nil)
	if err != nil {
		return nil, fmt.Errorf("server: listen on %s: %w", addr, err)
	}

	return &Server{
		listener:    listener,
		connections: make(map[string]quic.Connection),
	}, nil
}

// SetHandler installs the handler invoked for every envelope that passes
// verification. RegisterKey bootstrap envelopes are consumed by Run and
// never reach the handler.
func (s *Server) SetHandler(h Handler) {
	s.handlerMu.Lock()
	defer s.handlerMu.Unlock()
	s.handler = h
}

func (s *Server) currentHandler() Handler {
	s.handlerMu.RLock()
	defer s.handlerMu.RUnlock()
	return s.handler
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Run accepts connections until ctx is canceled, verifying every envelope
// against v before dispatching it. An unauthenticated RegisterKey
// envelope is accepted unconditionally and used to add a new public key
// to v; this is the system's bootstrap path and is documented, not a bug.
func (s *Server) Run(ctx context.Context, v protocol.Verifier) error {
	registrar, _ := v.(keyRegistrar)

	for {
		conn, err := s.listener.Accept(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("server: accept: %w", err)
		}

		peerAddr := conn.RemoteAddr().String()
		s.mu.Lock()
		s.connections[peerAddr] = conn
		s.mu.Unlock()

		go func() {
			s.handleConnection(ctx, conn, peerAddr, v, registrar)

			s.mu.Lock()
			delete(s.connections, peerAddr)
			s.mu.Unlock()
		}()
	}
}

// keyRegistrar is implemented by verifiers that can accept new keys at
// runtime, which in practice is every protocol.Verifier this package is
// given. It is declared locally to avoid an import cycle on pkg/verifier.
type keyRegistrar interface {
	Register(pub ed25519.PublicKey)
}

func (s *Server) handleConnection(ctx context.Context, conn quic.Connection, peerAddr string, v protocol.Verifier, registrar keyRegistrar) {
	for {
		stream, err := conn.AcceptUniStream(ctx)
		if err != nil {
			return
		}

		decoded, err := transport.ReadFramed(stream)
		if err != nil {
			log.Printf("server: read frame from %s: %v", peerAddr, err)
			continue
		}

		env, err := protocol.Decode(decoded)
		if err != nil {
			log.Printf("server: decode envelope from %s: %v", peerAddr, err)
			continue
		}

		if env.Type == protocol.MessageTypeRegisterKey {
			if registrar != nil && len(env.Extra) == ed25519.PublicKeySize {
				registrar.Register(ed25519.PublicKey(env.Extra))
			}
			continue
		}

		if err := env.Verify(v); err != nil {
			log.Printf("server: reject unverified envelope from %s: %v", peerAddr, err)
			continue
		}

		if h := s.currentHandler(); h != nil {
			if err := h.Handle(ctx, env, peerAddr); err != nil {
				log.Printf("server: handler error for envelope from %s: %v", peerAddr, err)
			}
		}
	}
}

// Send signs env and delivers it over the connection registered under
// peerAddr, the key a handler was given alongside the envelope it is
// replying to.
func (s *Server) Send(ctx context.Context, peerAddr string, env *protocol.Envelope, signer protocol.Signer) error {
	env.Sign(signer)

	s.mu.RLock()
	conn, ok := s.connections[peerAddr]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("server: no connection for peer %q", peerAddr)
	}

	stream, err := conn.OpenUniStreamSync(ctx)
	if err != nil {
		return fmt.Errorf("server: open stream to %s: %w", peerAddr, err)
	}

	if err := transport.WriteFramed(stream, env.Encode()); err != nil {
		return err
	}
	return stream.Close()
}

// Close shuts down the listener, closing all accepted connections.
func (s *Server) Close() error {
	return s.listener.Close()
}
