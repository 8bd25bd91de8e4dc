package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"

	"bahar-go/internal/browser"
	"bahar-go/internal/services/bidding"
)

type Handler struct {
	service *bidding.Service
	browser *browser.Manager
}

func NewHandler(service *bidding.Service, browser *browser.Manager) *Handler {
	return &Handler{service: service, browser: browser}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/bidding", h.handleBidding)
	r.Get("/healthz", h.handleHealthz)
	r.Get("/status", h.handleStatus)
	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/allocs", pprof.Handler("allocs").ServeHTTP)
		r.Get("/block", pprof.Handler("block").ServeHTTP)
		r.Get("/goroutine", pprof.Handler("goroutine").ServeHTTP)
		r.Get("/heap", pprof.Handler("heap").ServeHTTP)
		r.Get("/mutex", pprof.Handler("mutex").ServeHTTP)
		r.Get("/threadcreate", pprof.Handler("threadcreate").ServeHTTP)
	})
	return r
}

func (h *Handler) handleBidding(w http.ResponseWriter, r *http.Request) {
	go h.service.Run(context.Background())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bid cycle started"})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	sessions := h.browser.Sessions()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sessions": sessions,
	})
}
