package ws

import (
	"testing"

	"github.com/gorilla/websocket"
)

func TestHubAddRemove(t *testing.T) {
	h := NewHub()
	c := &websocket.Conn{}
	h.Add("sess-1", c)
	h.Add("sess-2", c)

	if h.Len() != 2 {
		t.Fatalf("expected 2 conns, got %d", h.Len())
	}
	h.Add("sess-1", c)
	if h.Len() != 2 {
		t.Fatalf("re-adding an id must not grow the hub, got %d", h.Len())
	}
	h.Remove("sess-1")
	h.Remove("sess-1")
	if h.Len() != 1 {
		t.Fatalf("expected 1 conn, got %d", h.Len())
	}
}
