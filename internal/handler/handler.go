package handler

import (
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"chatrender/internal/config"
	"chatrender/internal/render"
	"chatrender/internal/source"
)

// Handler holds application dependencies
type Handler struct {
	Source   source.Provider
	Registry *render.Registry
	Config   config.Config
	Clients  map[*websocket.Conn]bool
	ClientMu sync.RWMutex
}

// New creates a new Handler with the given dependencies
func New(src source.Provider, cfg config.Config) *Handler {
	return &Handler{
		Source:   src,
		Registry: render.Default(),
		Config:   cfg,
		Clients:  make(map[*websocket.Conn]bool),
	}
}

// SetupRouter configures and returns the HTTP router
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// REST API
	r.HandleFunc("/messages", h.GetMessages).Methods("GET")
	r.HandleFunc("/messages/rendered", h.GetRenderedMessages).Methods("GET")
	r.HandleFunc("/messages/html", h.GetMessagesHTML).Methods("GET")
	r.HandleFunc("/render", h.RenderMessages).Methods("POST")

	// ヘルスチェック
	r.HandleFunc("/health", h.Health).Methods("GET")

	// WebSocket
	r.HandleFunc("/ws", h.HandleWebSocket).Methods("GET")

	return r
}
