package spectate

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
)

func testFrame(turn int64) engine.Frame {
	return engine.Frame{
		Turn:       turn,
		Width:      3,
		Height:     1,
		Rows:       []string{"#O*"},
		Population: map[rune]int{'#': 1, 'O': 1, '*': 1},
		Energy:     23.5,
		Stats:      []string{"world.turns=1"},
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	return msg
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Condition not met before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage(testFrame(4))
	if msg.Turn != 4 || msg.Energy != 23.5 || len(msg.Rows) != 1 {
		t.Errorf("Unexpected message %+v", msg)
	}
	if msg.Population["O"] != 1 || msg.Population["#"] != 1 {
		t.Errorf("Expected glyph-keyed population, got %v", msg.Population)
	}
}

func TestHubSendsLatestThenUpdates(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	if err := hub.Publish(testFrame(1)); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	conn := dial(t, srv)
	if msg := readMessage(t, conn); msg.Turn != 1 {
		t.Errorf("Expected latest frame on connect, got turn %d", msg.Turn)
	}
	if hub.Clients() != 1 {
		t.Errorf("Expected 1 viewer, got %d", hub.Clients())
	}

	hub.Publish(testFrame(2))
	msg := readMessage(t, conn)
	if msg.Turn != 2 {
		t.Errorf("Expected turn 2, got %d", msg.Turn)
	}
	if msg.Rows[0] != "#O*" || msg.Population["*"] != 1 {
		t.Errorf("Unexpected payload %+v", msg)
	}
}

func TestHubWithoutFrameWaitsForPublish(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	waitFor(t, func() bool { return hub.Clients() == 1 })

	hub.Publish(testFrame(9))
	if msg := readMessage(t, conn); msg.Turn != 9 {
		t.Errorf("Expected turn 9, got %d", msg.Turn)
	}
}

func TestHubForgetsDisconnectedViewer(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	hub.Publish(testFrame(1))
	conn := dial(t, srv)
	readMessage(t, conn)

	conn.Close()
	waitFor(t, func() bool { return hub.Clients() == 0 })

	if err := hub.Publish(testFrame(2)); err != nil {
		t.Errorf("Publish with no viewers failed: %v", err)
	}
}

func TestHubTextView(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	hub.Publish(testFrame(3))

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	want := "turn 3  #:1  *:1  O:1  energy 23.5\n#O*\n"
	if string(body) != want {
		t.Errorf("Expected %q, got %q", want, string(body))
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- hub.Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestHubCarriesEventsWithNextFrame(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	hub.Publish(testFrame(1))
	conn := dial(t, srv)
	readMessage(t, conn)

	id := uuid.New()
	hub.Observe(engine.Event{Type: engine.EventMoved, Turn: 1, ID: uuid.New(), Glyph: 'O'})
	hub.Observe(engine.Event{
		Type:   engine.EventAte,
		Turn:   1,
		ID:     id,
		Glyph:  'O',
		From:   core.Point{X: 1, Y: 0},
		To:     core.Point{X: 2, Y: 0},
		Victim: '*',
	})
	hub.Publish(testFrame(2))

	msg := readMessage(t, conn)
	if len(msg.Events) != 1 {
		t.Fatalf("Expected 1 event without moves, got %+v", msg.Events)
	}
	ev := msg.Events[0]
	if ev.ID != id.String() || ev.Type != "ate" || ev.Victim != "*" || ev.X != 2 || ev.Y != 0 {
		t.Errorf("Unexpected event %+v", ev)
	}

	hub.Publish(testFrame(3))
	if msg := readMessage(t, conn); len(msg.Events) != 0 {
		t.Errorf("Expected events to be sent once, got %+v", msg.Events)
	}
}
