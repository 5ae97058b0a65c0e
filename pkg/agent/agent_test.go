package agent

import (
	"context"
	"testing"

	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(t *testing.T, id string) *Agent {
	t.Helper()
	s, err := signer.Generate()
	require.NoError(t, err)
	return New(id, s)
}

func TestRegisterLocalPopulatesCapabilityIndex(t *testing.T) {
	designer := newTestAgent(t, "designer")
	designer.AddCapability(protocol.CapabilityCodeGen)

	designer.RegisterLocal(NewLocalCollaborator(designer), designer.Capabilities())

	assert.Contains(t, designer.localCollabs, "designer")
	assert.Contains(t, designer.capIndex[protocol.CapabilityCodeGen], "designer")
}

func TestRegisterRemoteAddsToCapabilityIndex(t *testing.T) {
	frontend := newTestAgent(t, "frontend")
	frontend.RegisterRemote("designer", "127.0.0.1:9000", []protocol.Capability{protocol.CapabilityUIDesign})

	assert.Contains(t, frontend.remoteCollabs, "designer")
	assert.Contains(t, frontend.capIndex[protocol.CapabilityUIDesign], "designer")
	assert.Equal(t, "127.0.0.1:9000", frontend.peerAddresses["designer"])
}

func TestAssignTaskLBRotatesRoundRobin(t *testing.T) {
	a := newTestAgent(t, "lb")
	w1 := &stubCollaborator{id: "w1"}
	w2 := &stubCollaborator{id: "w2"}
	a.localCollabs["w1"] = w1
	a.localCollabs["w2"] = w2
	a.capIndex[protocol.CapabilityCodeGen] = []string{"w1", "w2"}

	var order []string
	for i := 0; i < 4; i++ {
		before := len(w1.tasks)
		require.NoError(t, a.AssignTaskLB(context.Background(), protocol.CapabilityCodeGen, protocol.Task{}))
		if len(w1.tasks) > before {
			order = append(order, "w1")
		} else {
			order = append(order, "w2")
		}
	}

	assert.Equal(t, []string{"w1", "w2", "w1", "w2"}, order)
}

func TestAssignTaskLBErrorsWithoutCapability(t *testing.T) {
	a := newTestAgent(t, "lb")
	err := a.AssignTaskLB(context.Background(), protocol.CapabilityRobotControl, protocol.Task{})
	assert.Error(t, err)
}

func TestAssignTaskLBDelegatesToLocalCollaborator(t *testing.T) {
	a := newTestAgent(t, "lb")
	worker := &stubCollaborator{id: "w1"}
	a.localCollabs["w1"] = worker
	a.capIndex[protocol.CapabilityCodeGen] = []string{"w1"}

	task := protocol.Task{Description: "build the login page"}
	require.NoError(t, a.AssignTaskLB(context.Background(), protocol.CapabilityCodeGen, task))

	require.Len(t, worker.tasks, 1)
	assert.Equal(t, task, worker.tasks[0])
}

func TestReceiveTaskEnqueues(t *testing.T) {
	a := newTestAgent(t, "worker")
	err := a.Receive(context.Background(), protocol.NewTaskMessage(protocol.Task{Description: "x"}))
	require.NoError(t, err)
	assert.Len(t, a.Tasks(), 1)
}

func TestReceiveCapabilityAdvertRegistersRemote(t *testing.T) {
	a := newTestAgent(t, "designer")
	msg := protocol.NewCapabilityAdvertMessage("frontend", []protocol.Capability{protocol.CapabilityUIDesign})

	require.NoError(t, a.Receive(context.Background(), msg))

	assert.Contains(t, a.remoteCollabs, "frontend")
	assert.Contains(t, a.capIndex[protocol.CapabilityUIDesign], "frontend")
}

type stubCollaborator struct {
	id    string
	tasks []protocol.Task
}

func (s *stubCollaborator) ID() string { return s.id }

func (s *stubCollaborator) HandleTask(_ context.Context, task protocol.Task) error {
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *stubCollaborator) Receive(context.Context, protocol.AgentMessage) error {
	return nil
}
