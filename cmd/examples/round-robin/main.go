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

// Command round-robin shows three local workers sharing one capability
// and a dispatcher cycling through them in order.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
)

func main() {
	fmt.Println("Step 1: creating a dispatcher and three workers")
	s, err := signer.Generate()
	if err != nil {
		log.Fatalf("generate signer: %v", err)
	}

	dispatcher := agent.New("dispatcher", s)
	workers := []*agent.Agent{
		agent.New("worker-1", s),
		agent.New("worker-2", s),
		agent.New("worker-3", s),
	}

	for _, w := range workers {
		w.AddCapability(protocol.CapabilityCodeGen)
		dispatcher.RegisterLocal(agent.NewLocalCollaborator(w), w.Capabilities())
	}

	fmt.Println("Step 2: dispatching six tasks round robin")
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		task := protocol.Task{Description: fmt.Sprintf("task %d", i)}
		if err := dispatcher.AssignTaskLB(ctx, protocol.CapabilityCodeGen, task); err != nil {
			log.Fatalf("assign task %d: %v", i, err)
		}
	}

	for _, w := range workers {
		fmt.Printf("✅ %s handled %d task(s)\n", w.ID, len(w.Tasks()))
	}
}
