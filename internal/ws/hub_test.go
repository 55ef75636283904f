package ws

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatpump_check/internal/metrics"
)

func TestNewReply(t *testing.T) {
	msg, err := NewReply(TypeError, "req-7", ErrorPayload{Message: "boom"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(msg, &env))
	assert.Equal(t, TypeError, env.Type)
	assert.Equal(t, "req-7", env.ID)

	var parsed ErrorPayload
	require.NoError(t, json.Unmarshal(env.Payload, &parsed))
	assert.Equal(t, "boom", parsed.Message)
}

func TestNewEnvelope_NoPayload(t *testing.T) {
	msg, err := NewEnvelope(TypeSimRun, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"sim:run"}`, string(msg))
}

func TestHub_RegisterUnregister(t *testing.T) {
	m := metrics.New()
	hub := NewHub(m, quietLogger())

	c := &Client{
		hub:  hub,
		send: make(chan []byte, 16),
	}

	hub.Register(c)
	assert.Equal(t, 1, hub.ClientCount())
	expected := `
# HELP heatpump_check_ws_clients Currently connected WebSocket clients.
# TYPE heatpump_check_ws_clients gauge
heatpump_check_ws_clients 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "heatpump_check_ws_clients"))

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())

	_, open := <-c.send
	assert.False(t, open, "send channel closed on unregister")

	assert.NotPanics(t, func() { hub.Unregister(c) })
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(nil, quietLogger())

	c1 := &Client{hub: hub, send: make(chan []byte, 16)}
	c2 := &Client{hub: hub, send: make(chan []byte, 16)}

	hub.Register(c1)
	hub.Register(c2)

	msg := []byte(`{"type":"test"}`)
	hub.Broadcast(msg)

	assert.Equal(t, msg, <-c1.send)
	assert.Equal(t, msg, <-c2.send)
}

func TestHub_BroadcastDropsWhenFull(t *testing.T) {
	hub := NewHub(nil, quietLogger())
	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)

	hub.Broadcast([]byte("first"))
	hub.Broadcast([]byte("second"))

	assert.Equal(t, []byte("first"), <-c.send)
	assert.Empty(t, c.send)
}

func TestHub_CatalogUpdated(t *testing.T) {
	hub := NewHub(nil, quietLogger())
	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)

	hub.CatalogUpdated("alice")

	var env Envelope
	require.NoError(t, json.Unmarshal(<-c.send, &env))
	assert.Equal(t, TypeCatalogUpdated, env.Type)
	assert.JSONEq(t, `{"user":"alice"}`, string(env.Payload))
}
