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

// Command agent starts a standalone FleetMesh agent that registers its
// key with an orchestrator and waits to be assigned work.
package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetmesh/fleetmesh-go/internal/config"
	"github.com/fleetmesh/fleetmesh-go/internal/logging"
	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/server"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
)

func main() {
	logging.Setup("agent")
	cfg := config.LoadAgentConfig()

	fmt.Println("Step 1: generating agent identity")
	s, err := signer.Generate()
	if err != nil {
		log.Fatalf("generate signer: %v", err)
	}

	id := cfg.ID
	if id == "" {
		id = "agent-" + hex.EncodeToString(s.PublicKey())[:8]
	}
	a := agent.New(id, s)
	a.HeartbeatInterval = cfg.HeartbeatInterval

	fmt.Println("Step 2: binding own server at " + cfg.BindAddr)
	srv, err := server.Bind(cfg.BindAddr)
	if err != nil {
		log.Fatalf("bind: %v", err)
	}
	defer srv.Close()
	a.Server = srv
	srv.SetHandler(a)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// v starts with no trusted keys; every peer this agent talks to
	// bootstraps trust via an unauthenticated RegisterKey envelope, the
	// same path the orchestrator's own server uses.
	v := verifier.New()
	go func() {
		if err := srv.Run(ctx, v); err != nil {
			log.Printf("agent: server stopped: %v", err)
		}
	}()

	fmt.Println("Step 3: connecting to orchestrator at " + cfg.OrchestratorAddr)
	c, err := client.Connect(cfg.OrchestratorAddr, s)
	if err != nil {
		log.Fatalf("connect to orchestrator: %v", err)
	}
	defer c.Close()

	fmt.Println("Step 4: registering public key with orchestrator")
	registerEnv := protocol.RegisterKeyEnvelope(id, "orchestrator", s.PublicKey())
	if err := c.Send(ctx, registerEnv); err != nil {
		log.Fatalf("register key: %v", err)
	}

	a.AttachClient("orchestrator", c)
	a.Heartbeat(ctx)

	fmt.Println("✅ agent " + id + " is registered at " + srv.Addr() + " and idle")
	<-ctx.Done()
	fmt.Println("agent shutting down")
}
