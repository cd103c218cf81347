// Package spectate streams frames to read-only websocket viewers
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
)

// Message is the JSON document sent for every frame
type Message struct {
	Turn       int64          `json:"turn"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Rows       []string       `json:"rows"`
	Population map[string]int `json:"population"`
	Energy     float64        `json:"energy"`
	Stats      []string       `json:"stats,omitempty"`
	Events     []EventMessage `json:"events,omitempty"`
}

// EventMessage is a birth, predation or starvation since the previous frame
type EventMessage struct {
	Type   string `json:"type"`
	Turn   int64  `json:"turn"`
	ID     string `json:"id"`
	Glyph  string `json:"glyph"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Victim string `json:"victim,omitempty"`
}

func newEventMessage(ev engine.Event) EventMessage {
	msg := EventMessage{
		Type:  ev.Type.String(),
		Turn:  ev.Turn,
		ID:    ev.ID.String(),
		Glyph: string(ev.Glyph),
		X:     ev.To.X,
		Y:     ev.To.Y,
	}
	if ev.Victim != 0 {
		msg.Victim = string(ev.Victim)
	}
	return msg
}

// NewMessage converts a frame, population keys become one-glyph strings
func NewMessage(f engine.Frame) Message {
	pop := make(map[string]int, len(f.Population))
	for g, n := range f.Population {
		pop[string(g)] = n
	}
	return Message{
		Turn:       f.Turn,
		Width:      f.Width,
		Height:     f.Height,
		Rows:       f.Rows,
		Population: pop,
		Energy:     f.Energy,
		Stats:      f.Stats,
	}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to every connected viewer
// A viewer that falls behind by more than its buffer is disconnected
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  engine.Frame
	encoded []byte
	pending []EventMessage
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // viewers are read-only
			},
		},
		clients: make(map[*client]struct{}),
	}
}

// Observe is an engine.Observer: births, predation and starvation ride along
// with the next published frame, moves are left out
func (h *Hub) Observe(ev engine.Event) {
	if ev.Type == engine.EventMoved {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) >= parameter.SpectateEventBacklog {
		return
	}
	h.pending = append(h.pending, newEventMessage(ev))
}

// Publish encodes f and queues it for every viewer
func (h *Hub) Publish(f engine.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := NewMessage(f)
	msg.Events = h.pending
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("spectate: encode frame: %w", err)
	}
	h.pending = nil

	h.latest = f
	h.encoded = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("spectate: dropping slow viewer %s", c.conn.RemoteAddr())
			h.removeLocked(c)
		}
	}
	return nil
}

// Clients returns the number of connected viewers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, parameter.SpectateClientBuffer),
	}

	h.mu.Lock()
	if h.encoded != nil {
		c.send <- h.encoded
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	log.Printf("spectate: viewer %s connected", conn.RemoteAddr())

	core.Go(func() { h.writePump(c) })
	h.readPump(c)
}

// Handler routes /ws to the hub and / to a plain-text view of the latest frame
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		f := h.latest
		h.mu.Unlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "%s\n%s", f.Summary(), f.Text())
	})
	return mux
}

// Serve listens on addr until ctx is cancelled
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: parameter.SpectateWriteTimeout,
	}

	errCh := make(chan error, 1)
	core.Go(func() {
		errCh <- srv.ListenAndServe()
	})

	select {
	case err := <-errCh:
		return fmt.Errorf("spectate: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.SpectateWriteTimeout)
	defer cancel()
	h.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: shutdown: %w", err)
	}
	return nil
}

// Caller holds mu
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	h.removeLocked(c)
	h.mu.Unlock()
}

// readPump discards viewer input and notices disconnects
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
		log.Printf("spectate: viewer %s disconnected", c.conn.RemoteAddr())
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetPongHandler(func(string) error {
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(parameter.SpectatePingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(parameter.SpectateWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
