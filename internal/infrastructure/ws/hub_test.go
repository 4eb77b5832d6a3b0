package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	failing  bool
	closed   bool
	deadline time.Time
	// stall simula un cliente que no lee: WriteMessage espera hasta el plazo.
	stall   bool
	writing chan struct{}
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = t
	return nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	stall, deadline := c.stall, c.deadline
	c.mu.Unlock()
	if stall {
		if c.writing != nil {
			close(c.writing)
		}
		time.Sleep(time.Until(deadline))
		return errors.New("i/o timeout")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.messages...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	return startHubWithTimeout(t, defaultWriteTimeout)
}

func startHubWithTimeout(t *testing.T, writeTimeout time.Duration) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := NewHub(nil)
	h.writeTimeout = writeTimeout
	go h.Run(ctx)
	return h
}

func TestHub_DifundeCambios(t *testing.T) {
	h := startHub(t)
	a, b := &fakeConn{}, &fakeConn{}
	h.Register(a)
	h.Register(b)

	h.Publish(context.Background(), inventory.ProductChange{
		ID:      "evt-1",
		Type:    inventory.ChangeDemandUpdated,
		Product: dto.ProductResponse{ID: "P-1001", Demand: 999},
	})

	for _, c := range []*fakeConn{a, b} {
		require.Eventually(t, func() bool { return len(c.received()) == 1 }, time.Second, 5*time.Millisecond)
		var got inventory.ProductChange
		require.NoError(t, json.Unmarshal(c.received()[0], &got))
		assert.Equal(t, "P-1001", got.Product.ID)
		assert.Equal(t, 999, got.Product.Demand)
	}
}

func TestHub_EliminaConexionesRotas(t *testing.T) {
	h := startHub(t)
	broken := &fakeConn{failing: true}
	h.Register(broken)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	h.Publish(context.Background(), inventory.ProductChange{ID: "evt-2"})

	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, broken.isClosed())
}

func TestHub_Unregister(t *testing.T) {
	h := startHub(t)
	c := &fakeConn{}
	h.Register(c)
	h.Unregister(c)

	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
	assert.True(t, c.isClosed())
}

func TestHub_PublishNoBloqueaSinRun(t *testing.T) {
	h := NewHub(nil)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			h.Publish(context.Background(), inventory.ProductChange{ID: "x"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish bloqueó con la cola llena")
	}
}

func TestHub_DetenidoNoBloquea(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	c := &fakeConn{}
	h.Register(c)
	h.Unregister(c)
	assert.True(t, c.isClosed())
}

func TestHub_ClienteLentoNoBloqueaNiRetieneElLock(t *testing.T) {
	h := startHubWithTimeout(t, 300*time.Millisecond)
	slow := &fakeConn{stall: true, writing: make(chan struct{})}
	h.Register(slow)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	start := time.Now()
	h.Publish(context.Background(), inventory.ProductChange{ID: "evt-3"})
	<-slow.writing

	// Con la escritura en curso, Clients() responde sin esperar el plazo.
	assert.Equal(t, 1, h.Clients())
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	slow.mu.Lock()
	deadline := slow.deadline
	slow.mu.Unlock()
	assert.False(t, deadline.IsZero(), "cada escritura debe tener plazo")

	// Vencido el plazo, el cliente se descarta y el hub sigue atendiendo.
	require.Eventually(t, func() bool { return h.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, slow.isClosed())

	ok := &fakeConn{}
	h.Register(ok)
	h.Publish(context.Background(), inventory.ProductChange{ID: "evt-4"})
	require.Eventually(t, func() bool { return len(ok.received()) == 1 }, time.Second, 5*time.Millisecond)
}
