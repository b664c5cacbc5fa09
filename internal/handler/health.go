package handler

import "net/http"

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status           string   `json:"status"`
	MessageSource    string   `json:"message_source"`
	Renderers        []string `json:"renderers"`
	WebSocketClients int      `json:"websocket_clients"`
}

// ClientCount returns the number of open WebSocket render sessions
func (h *Handler) ClientCount() int {
	h.ClientMu.RLock()
	defer h.ClientMu.RUnlock()
	return len(h.Clients)
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	kinds := h.registry().Kinds()
	renderers := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		renderers = append(renderers, kind.String())
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:           "ok",
		MessageSource:    h.Config.MessageSource,
		Renderers:        renderers,
		WebSocketClients: h.ClientCount(),
	})
}
