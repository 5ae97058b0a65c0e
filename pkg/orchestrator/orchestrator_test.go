package orchestrator

import (
	"context"
	"testing"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/executor"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	s, err := signer.Generate()
	require.NoError(t, err)

	factory := func(kind AgentKind, language string) (*agent.Agent, error) {
		a := agent.New(string(kind), s)
		return a, nil
	}

	return New("orchestrator", s, verifier.New(), factory, &executor.Echo{})
}

func TestHandleCreateUnknownKind(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "nope", protocol.MessageTypeCreate, "")
	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "❌ Unknown agent type 'nope'", reply)
}

func TestHandleCreateSucceeds(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "back", protocol.MessageTypeCreate, protocol.BuildKV("build an API", "go"))
	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "✅ Agent 'back' created", reply)
	assert.Contains(t, o.agents, "back")
}

func TestHandleCreateOverwritesSilently(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "back", protocol.MessageTypeCreate, "")
	o.dispatch(context.Background(), env)
	first := o.agents["back"]

	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "✅ Agent 'back' created", reply)
	assert.NotSame(t, first, o.agents["back"])
}

func TestHandleTerminateNotFound(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "back", protocol.MessageTypeTerminate, "")
	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "❌ Agent 'back' not found for termination", reply)
}

func TestHandleTerminateSucceeds(t *testing.T) {
	o := newTestOrchestrator(t)
	createEnv := protocol.New("cli", "back", protocol.MessageTypeCreate, "")
	o.dispatch(context.Background(), createEnv)

	termEnv := protocol.New("cli", "back", protocol.MessageTypeTerminate, "")
	reply := o.dispatch(context.Background(), termEnv)
	assert.Equal(t, "\U0001F9F9 Agent 'back' terminated", reply)
	assert.NotContains(t, o.agents, "back")
}

func TestHandleRunNotFound(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "back", protocol.MessageTypeRun, "do work")
	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "❌ Agent 'back' not found", reply)
}

func TestHandleRunExecutesQueuedTask(t *testing.T) {
	o := newTestOrchestrator(t)
	createEnv := protocol.New("cli", "back", protocol.MessageTypeCreate, "")
	o.dispatch(context.Background(), createEnv)

	runEnv := protocol.New("cli", "back", protocol.MessageTypeRun, protocol.BuildKV("build the login endpoint", "python"))
	reply := o.dispatch(context.Background(), runEnv)
	assert.Equal(t, "✅ Executed tasks for agent 'back'", reply)

	echo := o.Executor.(*executor.Echo)
	require.Len(t, echo.Ran, 1)
	assert.Equal(t, "back", echo.Ran[0].AgentID)
}

func TestHandleUnsupportedMessageType(t *testing.T) {
	o := newTestOrchestrator(t)
	env := protocol.New("cli", "back", protocol.MessageTypePing, "")
	reply := o.dispatch(context.Background(), env)
	assert.Equal(t, "❌ Unsupported message type: Ping", reply)
}
