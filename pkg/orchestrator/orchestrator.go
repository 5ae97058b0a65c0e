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

// Package orchestrator implements the command-and-control agent: it
// creates, runs, and terminates agents on request, bootstraps trust via
// RegisterKey, and replies to every command with a short status message.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/executor"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/server"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
)

// AgentKind is the closed set of agent types a Create command can
// instantiate, keyed by the exact string an envelope's To field carries.
type AgentKind string

const (
	KindArchitect AgentKind = "arch"
	KindBackend   AgentKind = "back"
	KindFrontend  AgentKind = "front"
	KindDesigner  AgentKind = "design"
	KindGit       AgentKind = "git"
)

func kindFromString(s string) (AgentKind, bool) {
	switch AgentKind(s) {
	case KindArchitect, KindBackend, KindFrontend, KindDesigner, KindGit:
		return AgentKind(s), true
	default:
		return "", false
	}
}

// AgentFactory builds a fresh agent of the given kind, configured for
// language (meaningful for Backend/Frontend; ignored by kinds that don't
// generate source in a specific language).
type AgentFactory func(kind AgentKind, language string) (*agent.Agent, error)

// DefaultAddress is used when ORCHESTRATOR_ADDRESS is unset.
const DefaultAddress = "0.0.0.0:8443"

// Orchestrator owns the registry of live agents and dispatches commands
// arriving over the wire to it. The registry's mutex is held for the
// full duration of a request, including Executor.Execute on Run, so two
// commands touching the registry never interleave.
type Orchestrator struct {
	ID       string
	Signer   protocol.Signer
	Verifier *verifier.MultiKeyVerifier
	Factory  AgentFactory
	Executor executor.Executor

	server *server.Server

	mu     sync.Mutex
	agents map[string]*agent.Agent
}

// New builds an Orchestrator. factory and exec must be non-nil; the
// registry starts empty.
func New(id string, signer protocol.Signer, v *verifier.MultiKeyVerifier, factory AgentFactory, exec executor.Executor) *Orchestrator {
	return &Orchestrator{
		ID:       id,
		Signer:   signer,
		Verifier: v,
		Factory:  factory,
		Executor: exec,
		agents:   make(map[string]*agent.Agent),
	}
}

// Run binds ORCHESTRATOR_ADDRESS (default DefaultAddress), installs
// itself as the handler, and serves until ctx is canceled.
func (o *Orchestrator) Run(ctx context.Context) error {
	addr := os.Getenv("ORCHESTRATOR_ADDRESS")
	if addr == "" {
		addr = DefaultAddress
	}

	srv, err := server.Bind(addr)
	if err != nil {
		return fmt.Errorf("orchestrator: bind %s: %w", addr, err)
	}
	o.server = srv
	srv.SetHandler(server.HandlerFunc(o.Handle))

	log.Printf("orchestrator: listening on %s", srv.Addr())
	return srv.Run(ctx, o.Verifier)
}

// Handle implements server.Handler. It is the single dispatch point for
// every command an orchestrator understands.
func (o *Orchestrator) Handle(ctx context.Context, env *protocol.Envelope, peerAddr string) error {
	reply := o.dispatch(ctx, env)

	response := protocol.Reply(o.ID, peerAddr, reply)
	if err := o.server.Send(ctx, peerAddr, response, o.Signer); err != nil {
		log.Printf("orchestrator: failed to send reply to %s: %v", peerAddr, err)
	}
	return nil
}

func (o *Orchestrator) dispatch(ctx context.Context, env *protocol.Envelope) string {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch env.Type {
	case protocol.MessageTypeCreate:
		return o.handleCreate(env)
	case protocol.MessageTypeTerminate:
		return o.handleTerminate(env)
	case protocol.MessageTypeRun:
		return o.handleRun(ctx, env)
	default:
		log.Printf("orchestrator: unsupported message type: %s", env.Type)
		return fmt.Sprintf("❌ Unsupported message type: %s", env.Type)
	}
}

func (o *Orchestrator) handleCreate(env *protocol.Envelope) string {
	_, language := protocol.ParseKV(env.PayloadJSON)
	if language == "" {
		log.Print("orchestrator: language not specified, defaulting to 'python'")
		language = "python"
	}

	kind, ok := kindFromString(env.To)
	if !ok {
		log.Printf("orchestrator: unknown agent type requested: %s", env.To)
		return fmt.Sprintf("❌ Unknown agent type '%s'", env.To)
	}

	a, err := o.Factory(kind, language)
	if err != nil {
		log.Printf("orchestrator: failed to create agent %s: %v", env.To, err)
		return fmt.Sprintf("❌ Unknown agent type '%s'", env.To)
	}

	// Overwriting an existing entry silently mirrors the reference
	// orchestrator's behavior: re-creating "back" replaces it outright.
	o.agents[env.To] = a
	return fmt.Sprintf("✅ Agent '%s' created", env.To)
}

func (o *Orchestrator) handleTerminate(env *protocol.Envelope) string {
	if _, ok := o.agents[env.To]; !ok {
		return fmt.Sprintf("❌ Agent '%s' not found for termination", env.To)
	}
	delete(o.agents, env.To)
	return fmt.Sprintf("\U0001F9F9 Agent '%s' terminated", env.To)
}

func (o *Orchestrator) handleRun(ctx context.Context, env *protocol.Envelope) string {
	a, ok := o.agents[env.To]
	if !ok {
		return fmt.Sprintf("❌ Agent '%s' not found", env.To)
	}

	input, _ := protocol.ParseKV(env.PayloadJSON)
	task := protocol.TaskFromPayload(input)
	if err := a.HandleTask(ctx, task); err != nil {
		log.Printf("orchestrator: failed to queue task for %s: %v", env.To, err)
		return fmt.Sprintf("❌ Failed to execute tasks for agent '%s'", env.To)
	}

	const (
		execute  = true
		browse   = false
		maxTries = 3
	)
	if _, err := o.Executor.Execute(ctx, env.To, a.Tasks(), execute, browse, maxTries); err != nil {
		log.Printf("orchestrator: failed to execute tasks for %s: %v", env.To, err)
		return fmt.Sprintf("❌ Failed to execute tasks for agent '%s'", env.To)
	}

	return fmt.Sprintf("✅ Executed tasks for agent '%s'", env.To)
}
