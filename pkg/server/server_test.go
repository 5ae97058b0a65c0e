package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fleetmesh/fleetmesh-go/pkg/client"
	"github.com/fleetmesh/fleetmesh-go/pkg/protocol"
	"github.com/fleetmesh/fleetmesh-go/pkg/signer"
	"github.com/fleetmesh/fleetmesh-go/pkg/verifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerVerifiesAndDispatchesEnvelopes(t *testing.T) {
	srv, err := Bind("127.0.0.1:0")
	require.NoError(t, err)
	defer srv.Close()

	clientSigner, err := signer.Generate()
	require.NoError(t, err)
	v := verifier.New(clientSigner.PublicKey())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var received []*protocol.Envelope
	gotOne := make(chan struct{}, 1)

	srv.SetHandler(HandlerFunc(func(_ context.Context, env *protocol.Envelope, _ string) error {
		mu.Lock()
		received = append(received, env)
		mu.Unlock()
		select {
		case gotOne <- struct{}{}:
		default:
		}
		return nil
	}))

	go srv.Run(ctx, v)

	c, err := client.Connect(srv.Addr(), clientSigner)
	require.NoError(t, err)
	defer c.Close()

	env := protocol.New("designer", "orchestrator", protocol.MessageTypeDelegateTask, `{"kind":"task"}`)
	require.NoError(t, c.Send(context.Background(), env))

	select {
	case <-gotOne:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handler to be invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "designer", received[0].From)
	assert.Equal(t, protocol.MessageTypeDelegateTask, received[0].Type)
}

func TestServerRejectsEnvelopeFromUnregisteredKey(t *testing.T) {
	srv, err := Bind("127.0.0.1:0")
	require.NoError(t, err)
	defer srv.Close()

	v := verifier.New() // no keys registered

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	invoked := make(chan struct{}, 1)
	srv.SetHandler(HandlerFunc(func(_ context.Context, env *protocol.Envelope, _ string) error {
		invoked <- struct{}{}
		return nil
	}))

	go srv.Run(ctx, v)

	untrustedSigner, err := signer.Generate()
	require.NoError(t, err)

	c, err := client.Connect(srv.Addr(), untrustedSigner)
	require.NoError(t, err)
	defer c.Close()

	env := protocol.New("stranger", "orchestrator", protocol.MessageTypeDelegateTask, `{}`)
	require.NoError(t, c.Send(context.Background(), env))

	select {
	case <-invoked:
		t.Fatal("handler should not run for an unverifiable envelope")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestServerBootstrapsTrustViaRegisterKey(t *testing.T) {
	srv, err := Bind("127.0.0.1:0")
	require.NoError(t, err)
	defer srv.Close()

	v := verifier.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gotOne := make(chan struct{}, 1)
	srv.SetHandler(HandlerFunc(func(_ context.Context, env *protocol.Envelope, _ string) error {
		gotOne <- struct{}{}
		return nil
	}))

	go srv.Run(ctx, v)

	newcomer, err := signer.Generate()
	require.NoError(t, err)

	c, err := client.Connect(srv.Addr(), newcomer)
	require.NoError(t, err)
	defer c.Close()

	registerEnv := protocol.RegisterKeyEnvelope("newcomer", "orchestrator", newcomer.PublicKey())
	require.NoError(t, c.Send(context.Background(), registerEnv))

	time.Sleep(200 * time.Millisecond) // allow the server to process the bootstrap envelope

	followUp := protocol.New("newcomer", "orchestrator", protocol.MessageTypeDelegateTask, `{}`)
	require.NoError(t, c.Send(context.Background(), followUp))

	select {
	case <-gotOne:
	case <-time.After(2 * time.Second):
		t.Fatal("envelope from a key registered via RegisterKey should verify")
	}
}
