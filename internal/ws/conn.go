package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// wsTransport adapts a gorilla connection to the session's transport. The
// write mutex exists because gorilla allows only one concurrent writer and
// the hub may write from another user's goroutine; it also keeps events to a
// single recipient from interleaving.
type wsTransport struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func newTransport(conn *websocket.Conn) *wsTransport {
	return &wsTransport{ws: conn}
}

func (t *wsTransport) WriteJSON(v any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ws.WriteJSON(v)
}

func (t *wsTransport) ReadMessage() ([]byte, error) {
	_, data, err := t.ws.ReadMessage()
	return data, err
}

func (t *wsTransport) Close() error {
	return t.ws.Close()
}
