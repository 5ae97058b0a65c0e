package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := &Envelope{
		MsgID:       424242,
		From:        "frontend",
		To:          "designer",
		Type:        MessageTypeDelegateTask,
		PayloadJSON: `{"kind":"task"}`,
		Extra:       []byte{0x01, 0x02, 0x03},
		Timestamp:   1700000000,
		SessionID:   42,
		Signature:   []byte("0123456789012345678901234567890123456789012345678901234567890A"),
	}

	decoded, err := Decode(e.Encode())
	require.NoError(t, err)

	assert.Equal(t, e.MsgID, decoded.MsgID)
	assert.Equal(t, e.From, decoded.From)
	assert.Equal(t, e.To, decoded.To)
	assert.Equal(t, e.Type, decoded.Type)
	assert.Equal(t, e.PayloadJSON, decoded.PayloadJSON)
	assert.Equal(t, e.Extra, decoded.Extra)
	assert.Equal(t, e.Timestamp, decoded.Timestamp)
	assert.Equal(t, e.SessionID, decoded.SessionID)
	assert.Equal(t, e.Signature, decoded.Signature)
}

func TestEncodeOmitsZeroFields(t *testing.T) {
	e := &Envelope{From: "a", To: "b", Type: MessageTypePing}
	decoded, err := Decode(e.Encode())
	require.NoError(t, err)

	assert.Zero(t, decoded.MsgID)
	assert.Empty(t, decoded.PayloadJSON)
	assert.Nil(t, decoded.Extra)
	assert.Zero(t, decoded.Timestamp)
	assert.Zero(t, decoded.SessionID)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	e := &Envelope{From: "a", To: "b", Type: MessageTypeBroadcast, PayloadJSON: "hello"}
	encoded := e.Encode()
	_, err := Decode(encoded[:len(encoded)-1])
	assert.Error(t, err)
}

func TestCloneDoesNotAliasSlices(t *testing.T) {
	e := &Envelope{Extra: []byte{1, 2, 3}, Signature: []byte{4, 5, 6}}
	clone := e.Clone()
	clone.Extra[0] = 99
	clone.Signature[0] = 99

	assert.Equal(t, byte(1), e.Extra[0])
	assert.Equal(t, byte(4), e.Signature[0])
}
