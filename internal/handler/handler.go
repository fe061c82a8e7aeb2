package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/honeynil/coffee-token-inspector/internal/config"
	"github.com/honeynil/coffee-token-inspector/internal/infrastructure/auth"
	service "github.com/honeynil/coffee-token-inspector/internal/services"
	pkgerrors "github.com/honeynil/coffee-token-inspector/pkg/errors"
)

type Handler struct {
	service service.TokenInspector
	cfg     *config.Config
}

func NewHandler(s service.TokenInspector, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

type errorResponse struct {
	Error string `json:"error"`
}

type environmentResponse struct {
	APIServerURL string       `json:"apiServerUrl"`
	Auth0        config.Auth0 `json:"auth0"`
	LoginURL     string       `json:"loginUrl"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/decode", h.Decode).Methods("POST")
	r.HandleFunc("/config", h.Environment).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
}

// RegisterProtectedRoutes expects r to run auth.ClaimsMiddleware.
func (h *Handler) RegisterProtectedRoutes(r *mux.Router) {
	r.HandleFunc("/headers", h.Headers).Methods("GET")
}

func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	inspection, err := h.service.Inspect(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrEmptyToken) ||
			errors.Is(err, pkgerrors.ErrMalformedToken) ||
			errors.Is(err, pkgerrors.ErrDecode) ||
			errors.Is(err, pkgerrors.ErrParse) {
			h.writeError(w, http.StatusBadRequest, err)
		} else {
			h.writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	h.writeJSON(w, inspection)
}

func (h *Handler) Headers(w http.ResponseWriter, r *http.Request) {
	inspection, ok := auth.InspectionFromContext(r.Context())
	if !ok {
		h.writeError(w, http.StatusUnauthorized, pkgerrors.ErrMissingAuthHeader)
		return
	}
	h.writeJSON(w, inspection)
}

func (h *Handler) Environment(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, environmentResponse{
		APIServerURL: h.cfg.APIServerURL,
		Auth0:        h.cfg.Auth0,
		LoginURL:     h.cfg.Auth0.LoginURL(""),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}
