// Package hub tracks which users have a live real-time connection, routes
// events to them, and queues events for users who are offline.
package hub

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Yaaroosh/IM/pkg/logger"
)

// Conn is the transport handle the hub delivers events over. Implementations
// must serialize their own writes; the hub never writes while holding its
// lock, so two hub calls may reach WriteJSON concurrently.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Hub owns the online map and the per-user offline queues. One mutex guards
// both; it is held only for map reads and writes, never across a transport
// write or a database call. Queues are unbounded and never expire, so a user
// who stays offline accumulates entries without limit.
type Hub struct {
	mu     sync.Mutex
	online map[uuid.UUID]Conn
	queues map[uuid.UUID][]any

	logger logger.Logger
}

func New(logger logger.Logger) *Hub {
	return &Hub{
		online: make(map[uuid.UUID]Conn),
		queues: make(map[uuid.UUID][]any),
		logger: logger,
	}
}

// Connect registers conn as the user's one live handle. Last-connect-wins: a
// superseded handle is closed here rather than left for its transport to
// clean up.
func (h *Hub) Connect(userID uuid.UUID, conn Conn) {
	h.mu.Lock()
	prev := h.online[userID]
	h.online[userID] = conn
	h.mu.Unlock()

	if prev != nil && prev != conn {
		h.logger.Info("superseding connection", "user_id", userID)
		if err := prev.Close(); err != nil {
			h.logger.Debug("close of superseded connection failed", "user_id", userID, "err", err)
		}
	}
}

// Disconnect moves the user offline. Queued events are untouched.
func (h *Hub) Disconnect(userID uuid.UUID) {
	h.mu.Lock()
	delete(h.online, userID)
	h.mu.Unlock()
}

// DisconnectConn removes the user's entry only if conn is still the
// registered handle. A superseded connection tearing itself down must not
// evict its replacement.
func (h *Hub) DisconnectConn(userID uuid.UUID, conn Conn) {
	h.mu.Lock()
	if h.online[userID] == conn {
		delete(h.online, userID)
	}
	h.mu.Unlock()
}

func (h *Hub) IsOnline(userID uuid.UUID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.online[userID]
	return ok
}

// SendTo delivers event to the user immediately when online, otherwise
// appends it to their offline queue. A failed transport write is an implicit
// disconnect; the event is then queued for the now-offline user.
func (h *Hub) SendTo(userID uuid.UUID, event any) {
	h.mu.Lock()
	conn, ok := h.online[userID]
	if !ok {
		h.queues[userID] = append(h.queues[userID], event)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	if err := conn.WriteJSON(event); err != nil {
		h.logger.Warn("send failed, treating as disconnect", "user_id", userID, "err", err)
		h.drop(userID, conn)
		h.mu.Lock()
		h.queues[userID] = append(h.queues[userID], event)
		h.mu.Unlock()
	}
}

// FlushQueue delivers the user's queued events in enqueue order and reports
// how many went out. The queue is detached under the lock so sends racing
// the flush land in a fresh queue behind the flushed batch. announce, when
// non-nil, is called with the batch size after the detach and before the
// first delivery, so a caller can tell the client exactly how many events
// follow; an announce error drops the connection and requeues the whole
// batch. Nothing is announced or delivered when the user is offline.
func (h *Hub) FlushQueue(userID uuid.UUID, announce func(pending int) error) int {
	h.mu.Lock()
	conn, ok := h.online[userID]
	queued := h.queues[userID]
	if ok && len(queued) > 0 {
		delete(h.queues, userID)
	}
	h.mu.Unlock()

	if !ok {
		return 0
	}

	if announce != nil {
		if err := announce(len(queued)); err != nil {
			h.logger.Warn("flush announce failed, treating as disconnect", "user_id", userID, "err", err)
			h.drop(userID, conn)
			h.requeue(userID, queued)
			return 0
		}
	}

	delivered := 0
	for i, ev := range queued {
		if err := conn.WriteJSON(ev); err != nil {
			h.logger.Warn("flush failed, treating as disconnect",
				"user_id", userID, "delivered", delivered, "err", err)
			h.drop(userID, conn)
			h.requeue(userID, queued[i:])
			return delivered
		}
		delivered++
	}
	return delivered
}

// requeue puts an undelivered batch back at the front so order holds across
// the reconnect.
func (h *Hub) requeue(userID uuid.UUID, batch []any) {
	if len(batch) == 0 {
		return
	}
	h.mu.Lock()
	h.queues[userID] = append(batch, h.queues[userID]...)
	h.mu.Unlock()
}

// drop closes a dead handle and removes it from the online map unless it has
// already been superseded.
func (h *Hub) drop(userID uuid.UUID, conn Conn) {
	h.mu.Lock()
	if h.online[userID] == conn {
		delete(h.online, userID)
	}
	h.mu.Unlock()
	_ = conn.Close()
}
