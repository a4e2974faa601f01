// This file is part of Gopher32.
//
// Gopher32 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher32 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher32.  If not, see <https://www.gnu.org/licenses/>.

package chardev

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/gopher32/logger"
	"github.com/pkg/errors"
)

// number of messages that can be queued for a client before the client is
// dropped.
const clientQueue = 256

// maximum time allowed for writing a message to a client.
const writeWait = time.Second

// Hub broadcasts bytes to every connected websocket client. Hub implements
// the http.Handler interface. A new connection to the handler becomes a new
// client.
type Hub struct {
	perm logger.Permission
	tag  string

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// NewHub is the preferred method of initialisation for the Hub type. The tag
// is used for logging.
func NewHub(perm logger.Permission, tag string) *Hub {
	return &Hub{
		perm: perm,
		tag:  tag,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP implements the http.Handler interface.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(h.perm, h.tag, "upgrade: %v", err)
		return
	}

	send := make(chan []byte, clientQueue)

	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	logger.Logf(h.perm, h.tag, "client connected: %s", conn.RemoteAddr())

	go h.writePump(conn, send)
	go h.readPump(conn)
}

// the read pump only exists to notice when the client has gone away
func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, send chan []byte) {
	defer conn.Close()
	for msg := range send {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			h.drop(conn)
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// drop the client. safe to call more than once for the same client.
func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.clients[conn]; ok {
		close(send)
		delete(h.clients, conn)
		logger.Logf(h.perm, h.tag, "client disconnected: %s", conn.RemoteAddr())
	}
}

// Write implements the io.Writer interface. Write never blocks. A client that
// is not keeping up with the broadcast is dropped.
func (h *Hub) Write(p []byte) (int, error) {
	msg := make([]byte, len(p))
	copy(msg, p)

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, send := range h.clients {
		select {
		case send <- msg:
		default:
			close(send)
			delete(h.clients, conn)
			logger.Logf(h.perm, h.tag, "client too slow: %s", conn.RemoteAddr())
		}
	}

	return len(p), nil
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		close(send)
		delete(h.clients, conn)
	}
}

// ListenAndServe serves the hub on the address until the context is
// cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: writeWait,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe()
	}()

	logger.Logf(h.perm, h.tag, "listening on %s", addr)

	select {
	case err := <-done:
		return errors.Wrapf(err, "chardev: hub %s", addr)
	case <-ctx.Done():
	}

	h.Close()

	shutdown, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return errors.Wrapf(err, "chardev: hub %s", addr)
	}
	return nil
}
