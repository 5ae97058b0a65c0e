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

// Package executor defines the hook an orchestrator calls to run an
// agent's queued tasks. The "brains" behind actually executing a task
// (LLM planning, tool use, browsing) are out of scope for this module;
// Executor is the seam where such an implementation would plug in.
package executor

import (
	"context"
	"fmt"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
)

// Executor runs an agent's pending tasks. execute gates whether the tasks
// actually run (false is a dry/plan-only pass); browse gates whether the
// implementation may fetch external URLs a task names; maxTries bounds
// retry attempts for implementations that retry on failure. The returned
// string is the implementation's free-form execution report.
type Executor interface {
	Execute(ctx context.Context, agentID string, tasks []protocol.Task, execute, browse bool, maxTries int) (string, error)
}

// Echo is a trivial Executor useful for tests and examples: it records
// what it was asked to run and succeeds whenever at least one task is
// given; an empty task list is an error.
type Echo struct {
	Ran []EchoRun
}

// EchoRun records a single Execute call made against an Echo executor.
type EchoRun struct {
	AgentID string
	Tasks   []protocol.Task
	Execute bool
	Browse  bool
}

var _ Executor = (*Echo)(nil)

// Execute implements Executor.
func (e *Echo) Execute(_ context.Context, agentID string, tasks []protocol.Task, execute, browse bool, _ int) (string, error) {
	if len(tasks) == 0 {
		return "", fmt.Errorf("executor: no tasks queued for %q", agentID)
	}
	e.Ran = append(e.Ran, EchoRun{AgentID: agentID, Tasks: tasks, Execute: execute, Browse: browse})
	return fmt.Sprintf("echo: ran %d task(s) for %q", len(tasks), agentID), nil
}
