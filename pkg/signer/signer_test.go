package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesUsableKeypair(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.PublicKey(), 32)

	sig := s.Sign([]byte("hello"))
	assert.Len(t, sig, 64)
}

func TestSignIsDeterministicPerMessage(t *testing.T) {
	s, err := Generate()
	require.NoError(t, err)

	a := s.Sign([]byte("payload"))
	b := s.Sign([]byte("payload"))
	assert.Equal(t, a, b, "Ed25519 signatures are deterministic for the same key and message")
}

func TestDifferentSignersProduceDifferentSignatures(t *testing.T) {
	s1, err := Generate()
	require.NoError(t, err)
	s2, err := Generate()
	require.NoError(t, err)

	assert.NotEqual(t, s1.Sign([]byte("payload")), s2.Sign([]byte("payload")))
}
