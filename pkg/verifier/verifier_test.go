package verifier

import (
	"testing"

	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsAnyRegisteredKey(t *testing.T) {
	s1, err := signer.Generate()
	require.NoError(t, err)
	s2, err := signer.Generate()
	require.NoError(t, err)

	v := New(s1.PublicKey(), s2.PublicKey())

	data := []byte("delegate-task")
	assert.NoError(t, v.Verify(data, s1.Sign(data)))
	assert.NoError(t, v.Verify(data, s2.Sign(data)))
}

func TestVerifyRejectsUnknownKey(t *testing.T) {
	s1, err := signer.Generate()
	require.NoError(t, err)
	stranger, err := signer.Generate()
	require.NoError(t, err)

	v := New(s1.PublicKey())

	data := []byte("delegate-task")
	assert.ErrorIs(t, v.Verify(data, stranger.Sign(data)), ErrVerificationFailed)
}

func TestVerifyRejectsWrongLengthSignature(t *testing.T) {
	s1, err := signer.Generate()
	require.NoError(t, err)
	v := New(s1.PublicKey())

	assert.ErrorIs(t, v.Verify([]byte("data"), []byte("too-short")), ErrVerificationFailed)
}

func TestRegisterAddsKeyAtRuntime(t *testing.T) {
	v := New()
	s, err := signer.Generate()
	require.NoError(t, err)

	data := []byte("register-key-bootstrap")
	sig := s.Sign(data)
	assert.ErrorIs(t, v.Verify(data, sig), ErrVerificationFailed)

	v.Register(s.PublicKey())
	assert.NoError(t, v.Verify(data, sig))
}

func TestVerifyRejectsTamperedData(t *testing.T) {
	s, err := signer.Generate()
	require.NoError(t, err)
	v := New(s.PublicKey())

	sig := s.Sign([]byte("original"))
	assert.ErrorIs(t, v.Verify([]byte("tampered"), sig), ErrVerificationFailed)
}
