package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/steveyiyo/guide-backend/internal/core/pipeline"
	"github.com/steveyiyo/guide-backend/pkg/types"
	"github.com/steveyiyo/guide-backend/pkg/ws"
)

const (
	streamIdle      = 2 * time.Minute
	streamWriteWait = 5 * time.Second
	// streamPing must stay below streamIdle so live clients answer in time.
	streamPing = 50 * time.Second
)

type StreamHandler struct {
	Hub          *ws.Hub
	Pipeline     *pipeline.Pipeline
	Upgrader     websocket.Upgrader
	PingInterval time.Duration
}

func NewStreamHandler(h *ws.Hub, p *pipeline.Pipeline) *StreamHandler {
	return &StreamHandler{
		Hub:      h,
		Pipeline: p,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		PingInterval: streamPing,
	}
}

// WS runs text chat over a websocket. The server greets with a hello frame
// carrying the session id; each {"type":"chat"} frame gets one reply frame.
//
// @Summary  Chat over a websocket
// @Tags     chat
// @Success  101
// @Router   /ws/chat [get]
func (h *StreamHandler) WS(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	id := "ws_" + uuid.NewString()
	h.Hub.Add(id, conn)
	defer func() {
		h.Hub.Remove(id)
		conn.Close()
	}()

	conn.SetReadLimit(64 << 10)
	conn.SetReadDeadline(time.Now().Add(streamIdle))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(streamIdle))
		return nil
	})

	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteJSON(types.StreamFrame{
		Type:      "hello",
		SessionID: id,
		TS:        time.Now().UnixMilli(),
	}); err != nil {
		return
	}

	done := make(chan struct{})
	defer close(done)
	go h.keepAlive(conn, done)

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(streamIdle))
		if mt != websocket.TextMessage {
			continue
		}

		var in types.StreamFrame
		var out types.StreamFrame
		switch {
		case json.Unmarshal(msg, &in) != nil:
			out = types.StreamFrame{Type: "error", Error: "bad_request"}
		case strings.TrimSpace(in.Message) == "":
			out = types.StreamFrame{Type: "error", Error: "message is required"}
		default:
			if in.Language == "" {
				in.Language = "English"
			}
			turn := h.Pipeline.Chat(c.Request.Context(), in.Message, in.Language)
			out = types.StreamFrame{
				Type:             "reply",
				SessionID:        id,
				Response:         turn.Response,
				DetectedLanguage: turn.DetectedLanguage,
				MapData:          turn.MapData,
			}
		}
		out.TS = time.Now().UnixMilli()

		conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(out); err != nil {
			slog.Debug("chat socket write failed", "session", id, "error", err)
			return
		}
	}
}

// keepAlive pings the client until done closes. WriteControl may run
// alongside the handler's own writes.
func (h *StreamHandler) keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	interval := h.PingInterval
	if interval <= 0 {
		interval = streamPing
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		}
	}
}
