package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentMessageTaskRoundTrip(t *testing.T) {
	msg := NewTaskMessage(Task{Description: "design a UI component"})
	encoded, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := DecodeAgentMessage(encoded)
	require.NoError(t, err)

	assert.Equal(t, AgentMessageTask, decoded.Kind)
	require.NotNil(t, decoded.Task)
	assert.Equal(t, "design a UI component", decoded.Task.Description)
}

func TestAgentMessageCapabilityAdvertRoundTrip(t *testing.T) {
	msg := NewCapabilityAdvertMessage("frontend", []Capability{CapabilityUIDesign, CapabilityCodeGen})
	encoded, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := DecodeAgentMessage(encoded)
	require.NoError(t, err)

	assert.Equal(t, AgentMessageCapabilityAdvert, decoded.Kind)
	require.NotNil(t, decoded.CapabilityAdvert)
	assert.Equal(t, "frontend", decoded.CapabilityAdvert.SenderID)
	assert.Equal(t, []Capability{CapabilityUIDesign, CapabilityCodeGen}, decoded.CapabilityAdvert.Capabilities)
}

func TestCapabilityJSONUsesWireName(t *testing.T) {
	b, err := CapabilityUIDesign.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"ui_design"`, string(b))
}
