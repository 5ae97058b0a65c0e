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

// Command capability-advert demonstrates two agents connected to a shared
// server learning each other's capabilities from adverts handed to their
// Receive methods in-process, and then delegating a task by round robin
// over the signed connection.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/server"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
)

func main() {
	fmt.Println("Step 1: binding shared server")
	srv, err := server.Bind("127.0.0.1:0")
	if err != nil {
		log.Fatalf("bind: %v", err)
	}
	defer srv.Close()

	signerDesigner, err := signer.Generate()
	if err != nil {
		log.Fatalf("generate signer: %v", err)
	}
	signerFrontend, err := signer.Generate()
	if err != nil {
		log.Fatalf("generate signer: %v", err)
	}

	v := verifier.New(signerDesigner.PublicKey(), signerFrontend.PublicKey())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Run(ctx, v)
	time.Sleep(50 * time.Millisecond)

	fmt.Println("Step 2: connecting designer and frontend")
	clientDesigner, err := client.Connect(srv.Addr(), signerDesigner)
	if err != nil {
		log.Fatalf("connect designer: %v", err)
	}
	defer clientDesigner.Close()
	clientFrontend, err := client.Connect(srv.Addr(), signerFrontend)
	if err != nil {
		log.Fatalf("connect frontend: %v", err)
	}
	defer clientFrontend.Close()

	designer := agent.New("designer", signerDesigner)
	frontend := agent.New("frontend", signerFrontend)
	designer.AttachClient("frontend", clientDesigner)
	frontend.AttachClient("designer", clientFrontend)

	designer.AddCapability(protocol.CapabilityCodeGen)
	frontend.AddCapability(protocol.CapabilityUIDesign)

	designer.RegisterLocal(agent.NewLocalCollaborator(designer), designer.Capabilities())
	frontend.RegisterLocal(agent.NewLocalCollaborator(frontend), frontend.Capabilities())

	fmt.Println("Step 3: exchanging capability advertisements")
	if err := designer.Receive(ctx, protocol.NewCapabilityAdvertMessage("frontend", frontend.Capabilities())); err != nil {
		log.Fatalf("designer receive: %v", err)
	}
	if err := frontend.Receive(ctx, protocol.NewCapabilityAdvertMessage("designer", designer.Capabilities())); err != nil {
		log.Fatalf("frontend receive: %v", err)
	}

	fmt.Println("Step 4: delegating a task by capability")
	task := protocol.Task{Description: "design a UI component"}
	if err := frontend.AssignTaskLB(ctx, protocol.CapabilityCodeGen, task); err != nil {
		log.Fatalf("assign task: %v", err)
	}

	fmt.Println("✅ task delegated to the designer over a signed connection")
}
