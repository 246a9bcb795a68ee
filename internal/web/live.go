package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/portfoliai/internal/metrics"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the incoming websocket message format.
type clientMessage struct {
	Type      string `json:"type"` // "toggle-story" or "refresh"
	ProjectID string `json:"project_id,omitempty"`
}

// errorMessage is sent for messages the socket cannot handle.
type errorMessage struct {
	Type    string `json:"type"` // always "error"
	Content string `json:"content"`
}

// handlePreviewSocket pushes a preview frame on connect and after every
// document, busy-flag or UI change.
func (h *Web) handlePreviewSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	metrics.PreviewClients.Inc()
	defer metrics.PreviewClients.Dec()

	changes, cancel := h.shell.Subscribe()
	defer cancel()

	// The reader only handles client requests; every write happens below.
	requests := make(chan clientMessage, 8)
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("websocket read", "error", err)
				}
				return
			}
			var req clientMessage
			if err := json.Unmarshal(msg, &req); err != nil {
				req = clientMessage{Type: "invalid"}
			}
			select {
			case requests <- req:
			case <-r.Context().Done():
				return
			}
		}
	}()

	if !h.sendFrame(conn) {
		return
	}
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
			if !h.sendFrame(conn) {
				return
			}
		case req := <-requests:
			switch req.Type {
			case "toggle-story":
				// The toggle itself triggers a change and therefore a frame.
				h.shell.ToggleStory(req.ProjectID)
			case "refresh":
				if !h.sendFrame(conn) {
					return
				}
			default:
				if !h.send(conn, errorMessage{Type: "error", Content: "unknown message type: " + req.Type}) {
					return
				}
			}
		case <-closed:
			return
		}
	}
}

func (h *Web) sendFrame(conn *websocket.Conn) bool {
	frame, err := h.shell.Frame()
	if err != nil {
		h.logger.Error("rendering preview frame", "error", err)
		return h.send(conn, errorMessage{Type: "error", Content: err.Error()})
	}
	return h.send(conn, frame)
}

func (h *Web) send(conn *websocket.Conn, v any) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(v); err != nil {
		h.logger.Debug("websocket write", "error", err)
		return false
	}
	return true
}
