package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shouni/vision-board-kit/pkg/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// stateEvent は WebSocket で送るメッセージです。
type stateEvent struct {
	Type  string        `json:"type"`
	State session.State `json:"state"`
}

// eventClient は 1 接続分の購読です。
type eventClient struct {
	conn        *websocket.Conn
	states      <-chan session.State
	unsubscribe func()
	sessionID   string
}

// handleEvents はセッションの状態スナップショットを WebSocket で配信します。
// クライアントからのメッセージは読み捨て、切断検知にだけ使います。
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, orch, ok := s.orchestrator(w, r)
	if !ok {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(r.Context(), "WebSocket のアップグレードに失敗しました", "session_id", id, "error", err)
		return
	}

	states, unsubscribe := orch.Subscribe()
	c := &eventClient{conn: conn, states: states, unsubscribe: unsubscribe, sessionID: id}
	slog.InfoContext(r.Context(), "イベント購読を開始しました", "session_id", id)

	go c.writePump()
	c.readPump()
}

func (c *eventClient) readPump() {
	defer func() {
		c.unsubscribe()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket の読み込みエラー", "session_id", c.sessionID, "error", err)
			}
			return
		}
	}
}

func (c *eventClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case st, ok := <-c.states:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(stateEvent{Type: "state", State: st}); err != nil {
				slog.Warn("WebSocket の書き込みに失敗しました", "session_id", c.sessionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
