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

// Command orchestrator runs the FleetMesh command-and-control agent: it
// listens for Create/Run/Terminate/RegisterKey envelopes and dispatches
// them against an in-memory agent registry.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetmesh/fleetmesh-go/internal/config"
	"github.com/fleetmesh/fleetmesh-go/internal/logging"
	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/executor"
	"github.com/fleetmesh/fleetmesh-go/pkg/orchestrator"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
)

func main() {
	logging.Setup("orchestrator")

	fmt.Println("Step 1: generating orchestrator identity")
	s, err := signer.Generate()
	if err != nil {
		log.Fatalf("generate signer: %v", err)
	}

	fmt.Println("Step 2: building agent registry")
	factory := func(kind orchestrator.AgentKind, language string) (*agent.Agent, error) {
		a := agent.New(string(kind), s)
		a.AddCapability(capabilityFor(kind))
		return a, nil
	}

	orch := orchestrator.New("orchestrator", s, verifier.New(), factory, &executor.Echo{})

	fmt.Println("Step 3: binding " + config.OrchestratorAddress(orchestrator.DefaultAddress))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := orch.Run(ctx); err != nil {
		log.Fatalf("orchestrator error: %v", err)
	}
	fmt.Println("✅ orchestrator shut down cleanly")
}

func capabilityFor(kind orchestrator.AgentKind) protocol.Capability {
	switch kind {
	case orchestrator.KindFrontend, orchestrator.KindDesigner:
		return protocol.CapabilityUIDesign
	default:
		return protocol.CapabilityCodeGen
	}
}
