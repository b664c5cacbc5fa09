package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"chatrender/internal/model"
	"chatrender/internal/render"
)

// maxRequestBody はPOST /render のボディ上限
const maxRequestBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// viewer は ?viewer= を優先し、無ければ設定値を返す
func (h *Handler) viewer(r *http.Request) (render.ViewerID, bool) {
	v := r.URL.Query().Get("viewer")
	if v == "" {
		return render.ViewerID(h.Config.ViewerID), true
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return render.ViewerID(n), true
}

func (h *Handler) registry() *render.Registry {
	if h.Registry == nil {
		return render.Default()
	}
	return h.Registry
}

// GetMessages handles GET /messages
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	log.Printf("[GET /messages] Request received from %s", r.RemoteAddr)

	messages, err := h.Source.Messages(r.Context())
	if err != nil {
		log.Printf("[GET /messages] ❌ Source error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	log.Printf("[GET /messages] ✅ Returned %d messages", len(messages))
	writeJSON(w, http.StatusOK, messages)
}

// GetRenderedMessages handles GET /messages/rendered
func (h *Handler) GetRenderedMessages(w http.ResponseWriter, r *http.Request) {
	log.Printf("[GET /messages/rendered] Request received from %s", r.RemoteAddr)

	viewer, ok := h.viewer(r)
	if !ok {
		log.Printf("[GET /messages/rendered] ❌ Bad Request: invalid viewer %q", r.URL.Query().Get("viewer"))
		writeError(w, http.StatusBadRequest, "invalid viewer id")
		return
	}

	messages, err := h.Source.Messages(r.Context())
	if err != nil {
		log.Printf("[GET /messages/rendered] ❌ Source error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	items := h.registry().RenderList(messages, viewer)

	log.Printf("[GET /messages/rendered] ✅ Rendered %d messages for viewer %d", len(items), viewer)
	writeJSON(w, http.StatusOK, items)
}

// GetMessagesHTML handles GET /messages/html
func (h *Handler) GetMessagesHTML(w http.ResponseWriter, r *http.Request) {
	log.Printf("[GET /messages/html] Request received from %s", r.RemoteAddr)

	viewer, ok := h.viewer(r)
	if !ok {
		log.Printf("[GET /messages/html] ❌ Bad Request: invalid viewer %q", r.URL.Query().Get("viewer"))
		writeError(w, http.StatusBadRequest, "invalid viewer id")
		return
	}

	messages, err := h.Source.Messages(r.Context())
	if err != nil {
		log.Printf("[GET /messages/html] ❌ Source error: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteHTML(w, h.registry().RenderList(messages, viewer)); err != nil {
		log.Printf("[GET /messages/html] ❌ Template error: %v", err)
		return
	}

	log.Printf("[GET /messages/html] ✅ Rendered %d messages for viewer %d", len(messages), viewer)
}

// RenderMessages handles POST /render
// ボディのJSON配列をそのまま描画する。未知の要素はフォールバック表示になる
func (h *Handler) RenderMessages(w http.ResponseWriter, r *http.Request) {
	log.Printf("[POST /render] Request received from %s", r.RemoteAddr)

	viewer, ok := h.viewer(r)
	if !ok {
		log.Printf("[POST /render] ❌ Bad Request: invalid viewer %q", r.URL.Query().Get("viewer"))
		writeError(w, http.StatusBadRequest, "invalid viewer id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("[POST /render] ❌ Bad Request: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	messages, err := model.DecodeList(body)
	if err != nil {
		log.Printf("[POST /render] ❌ Bad Request: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := h.registry().RenderList(messages, viewer)

	log.Printf("[POST /render] ✅ Rendered %d messages for viewer %d", len(items), viewer)
	writeJSON(w, http.StatusOK, items)
}
