// Package httpapi exposes the booking agent over HTTP: chat turns, receipt
// lookup, session deletion, and a health probe.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Sudip-8345/OmniBook-AI/internal/agentloop"
	"github.com/Sudip-8345/OmniBook-AI/internal/bookingdb"
)

// ChatService is the turn entry point the API fronts.
type ChatService interface {
	Submit(ctx context.Context, sessionID, userText string) (agentloop.Turn, error)
	ClearSession(sessionID string) error
}

// ReceiptSource looks up the joined receipt view for a booking.
type ReceiptSource interface {
	Receipt(ctx context.Context, bookingID int64) (*bookingdb.Receipt, error)
}

type Handler struct {
	service  ChatService
	receipts ReceiptSource
	logger   *slog.Logger
}

func New(service ChatService, receipts ReceiptSource, logger *slog.Logger) *Handler {
	return &Handler{service: service, receipts: receipts, logger: logger}
}

// Router builds the HTTP mux with request logging applied.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", h.handleChat)
	mux.HandleFunc("GET /receipt/{id}", h.handleReceipt)
	mux.HandleFunc("DELETE /session/{id}", h.handleClearSession)
	mux.HandleFunc("GET /health", h.handleHealth)
	return h.logRequests(mux)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Response string   `json:"response"`
	Steps    []string `json:"steps"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	turn, err := h.service.Submit(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.logger.Error("turn failed", "session_id", req.SessionID, "error", err)
		writeError(w, http.StatusInternalServerError, "Agent error: "+err.Error())
		return
	}

	steps := turn.Steps
	if steps == nil {
		steps = []string{}
	}
	writeJSON(w, http.StatusOK, chatResponse{Response: turn.Reply, Steps: steps})
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "booking id must be an integer")
		return
	}
	receipt, err := h.receipts.Receipt(r.Context(), id)
	if err != nil {
		h.logger.Error("receipt lookup failed", "booking_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "receipt lookup failed")
		return
	}
	if receipt == nil {
		writeError(w, http.StatusNotFound, "Booking #"+strconv.FormatInt(id, 10)+" not found")
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) handleClearSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.service.ClearSession(id); err != nil {
		h.logger.Error("clear session failed", "session_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Session '" + id + "' cleared"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "OmniBook AI"})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
