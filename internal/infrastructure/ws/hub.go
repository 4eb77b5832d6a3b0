// Package ws difunde los cambios de producto a los dashboards conectados por websocket.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/inventory-dashboard/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard/pkg/logger"
)

var _ inventory.ChangePublisher = (*Hub)(nil)

// defaultWriteTimeout plazo máximo para escribir un mensaje a un cliente.
const defaultWriteTimeout = 5 * time.Second

// Conn lo mínimo que el hub necesita de una conexión; *websocket.Conn lo cumple.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Hub registra clientes y reenvía a todos cada mensaje recibido por Broadcast.
type Hub struct {
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	done       chan struct{}

	mu      sync.Mutex
	clients map[Conn]struct{}

	writeTimeout time.Duration
	log          *logger.Logger
}

// NewHub construye el hub. Run debe ejecutarse en su propia goroutine.
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		clients:    make(map[Conn]struct{}),

		writeTimeout: defaultWriteTimeout,
		log:          log.Named("ws"),
	}
}

// Run procesa altas, bajas y difusiones hasta que ctx se cancela.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			n := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("clients", n).Msg("cliente ws conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				_ = conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.send(message)
		}
	}
}

// send escribe fuera del lock, así un cliente lento no bloquea Clients() ni
// las altas; cada escritura tiene plazo. Solo Run escribe en las conexiones.
func (h *Hub) send(message []byte) {
	h.mu.Lock()
	conns := make([]Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	var failed []Conn
	for _, conn := range conns {
		if err := h.write(conn, message); err != nil {
			h.log.Debug().Err(err).Msg("cliente ws descartado")
			failed = append(failed, conn)
		}
	}
	if len(failed) == 0 {
		return
	}
	h.mu.Lock()
	for _, conn := range failed {
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	for _, conn := range failed {
		_ = conn.Close()
	}
}

func (h *Hub) write(conn Conn, message []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, message)
}

// Register da de alta una conexión. Si el hub ya se detuvo, la cierra.
func (h *Hub) Register(conn Conn) {
	select {
	case h.register <- conn:
	case <-h.done:
		_ = conn.Close()
	}
}

// Unregister da de baja y cierra una conexión.
func (h *Hub) Unregister(conn Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Clients número de conexiones activas.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish encola el cambio para difusión. Si la cola está llena el evento se
// descarta: la mutación ya se aplicó y no debe bloquearse por clientes lentos.
func (h *Hub) Publish(_ context.Context, change inventory.ProductChange) {
	msg, err := json.Marshal(change)
	if err != nil {
		h.log.Error().Err(err).Msg("serializar cambio")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("change_id", change.ID).Msg("cola ws llena, evento descartado")
	}
}
