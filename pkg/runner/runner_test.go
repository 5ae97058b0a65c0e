package runner

import (
	"context"
	"testing"

	"github.com/fleetmesh/fleetmesh-go/pkg/agent"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgent(t *testing.T, id string) *agent.Agent {
	t.Helper()
	s, err := signer.Generate()
	require.NoError(t, err)
	return agent.New(id, s)
}

func TestRunAllDeliversTaskToEveryAgent(t *testing.T) {
	r := NewBuilder().
		With(newAgent(t, "architect")).
		With(newAgent(t, "backend")).
		Build()

	results := r.RunAll(context.Background(), protocol.Task{Description: "scaffold the project"})
	require.Len(t, results, 2)
	for _, res := range results {
		assert.NoError(t, res.Err)
	}

	for _, a := range r.Agents() {
		assert.Len(t, a.Tasks(), 1)
	}
}

func TestAgentByIDFindsMember(t *testing.T) {
	r := NewBuilder().With(newAgent(t, "architect")).Build()
	a, err := r.AgentByID("architect")
	require.NoError(t, err)
	assert.Equal(t, "architect", a.ID)
}

func TestAgentByIDMissingReturnsError(t *testing.T) {
	r := NewBuilder().Build()
	_, err := r.AgentByID("nope")
	assert.Error(t, err)
}
