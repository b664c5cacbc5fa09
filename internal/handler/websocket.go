package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"chatrender/internal/model"
	"chatrender/internal/render"
)

// RenderRequest is a frame sent by a WebSocket client
type RenderRequest struct {
	ViewerID *int            `json:"viewerId,omitempty"`
	Messages json.RawMessage `json:"messages"`
}

// RenderResponse is the reply to a RenderRequest
type RenderResponse struct {
	Items []render.Item `json:"items"`
	Error string        `json:"error,omitempty"`
}

// createUpgrader creates a WebSocket upgrader with the given allowed origins
func createUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowedMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		allowedMap[origin] = true
	}

	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return allowedMap[origin]
		},
	}
}

// HandleWebSocket handles GET /ws
// 受信したフレームごとにメッセージ一覧を描画して返す
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := createUpgrader(h.Config.AllowedOrigins)
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.ClientMu.Lock()
	h.Clients[conn] = true
	totalClients := len(h.Clients)
	h.ClientMu.Unlock()

	log.Printf("New WebSocket connection. Total clients: %d", totalClients)

	defer func() {
		h.ClientMu.Lock()
		delete(h.Clients, conn)
		remainingClients := len(h.Clients)
		h.ClientMu.Unlock()
		log.Printf("[WebSocket] Client disconnected. Total clients: %d", remainingClients)
	}()

	for {
		var req RenderRequest
		if err := conn.ReadJSON(&req); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
				// 壊れたフレームは接続を切らずにエラーを返す
				if werr := conn.WriteJSON(RenderResponse{Error: "Invalid request body"}); werr != nil {
					return
				}
				continue
			}
			log.Printf("[WebSocket] Read error: %v", err)
			return
		}

		if werr := conn.WriteJSON(h.renderFrame(req)); werr != nil {
			log.Printf("[WebSocket] ❌ Write error: %v", werr)
			return
		}
	}
}

func (h *Handler) renderFrame(req RenderRequest) RenderResponse {
	viewer := render.ViewerID(h.Config.ViewerID)
	if req.ViewerID != nil {
		viewer = render.ViewerID(*req.ViewerID)
	}

	messages, err := model.DecodeList(req.Messages)
	if err != nil {
		log.Printf("[WebSocket] ❌ Bad frame: %v", err)
		return RenderResponse{Error: "messages must be an array"}
	}

	items := h.registry().RenderList(messages, viewer)
	log.Printf("[WebSocket] ✅ Rendered %d messages for viewer %d", len(items), viewer)
	return RenderResponse{Items: items}
}
