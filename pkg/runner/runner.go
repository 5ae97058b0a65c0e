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

// Package runner composes a set of locally-owned agents and drives them
// concurrently against a shared task, the way a CLI session would drive
// a swarm of agents interactively. There is no direct analogue for this
// in the reference implementation's network-capable agent type, which is
// driven one command at a time from an interactive shell; RunAll's
// concurrency shape instead follows the same errgroup fan-out pattern
// pkg/agent's Broadcast uses.
package runner

import (
	"context"
	"fmt"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"golang.org/x/sync/errgroup"
)

// Builder accumulates agents before they are driven together.
type Builder struct {
	agents []*agent.Agent
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// With adds a to the set of agents this builder will assemble into a
// Runner.
func (b *Builder) With(a *agent.Agent) *Builder {
	b.agents = append(b.agents, a)
	return b
}

// Build finalizes the agent set into a Runner.
func (b *Builder) Build() *Runner {
	agents := make([]*agent.Agent, len(b.agents))
	copy(agents, b.agents)
	return &Runner{agents: agents}
}

// Runner drives a fixed set of agents concurrently.
type Runner struct {
	agents []*agent.Agent
}

// RunResult is one agent's outcome from a RunAll call.
type RunResult struct {
	AgentID string
	Err     error
}

// RunAll hands task to every agent's HandleTask concurrently and reports
// each agent's outcome. One agent failing does not stop the others: the
// error only surfaces in that agent's RunResult.
func (r *Runner) RunAll(ctx context.Context, task protocol.Task) []RunResult {
	results := make([]RunResult, len(r.agents))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range r.agents {
		i, a := i, a
		g.Go(func() error {
			err := a.HandleTask(gctx, task)
			results[i] = RunResult{AgentID: a.ID, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Agents returns the agents this runner was built with.
func (r *Runner) Agents() []*agent.Agent {
	out := make([]*agent.Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

// AgentByID finds an agent in the runner's set by ID, or returns an error
// if none matches.
func (r *Runner) AgentByID(id string) (*agent.Agent, error) {
	for _, a := range r.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("runner: no agent with id %q", id)
}
