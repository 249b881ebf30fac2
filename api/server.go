// Package api provides the HTTP REST API server for the StandX yield
// estimator.
//
// It exposes endpoints for accrual/yield estimates, sensitivity grids,
// the network point estimate, campaign announcements, and WebSocket
// refresh notifications.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pointsfarm/standx-estimator/internal/campaign"
	"github.com/pointsfarm/standx-estimator/internal/config"
	"github.com/pointsfarm/standx-estimator/internal/network"
	"github.com/pointsfarm/standx-estimator/pkg/models"
	"github.com/pointsfarm/standx-estimator/web"
)

// Server is the HTTP API server.
type Server struct {
	router        chi.Router
	cfg           *config.Config
	rules         campaign.Rules
	growth        campaign.GrowthModel
	netProvider   *network.EstimateProvider
	announcements *network.Announcements
	wsHub         *WSHub
	now           func() time.Time
	serveUI       bool // when true, serve the embedded web UI at /
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config) *Server {
	srv := &Server{
		cfg:           cfg,
		rules:         campaign.RulesFromConfig(cfg.Campaign),
		growth:        campaign.GrowthFromConfig(cfg.Growth),
		netProvider:   network.NewEstimateProvider(cfg.Network),
		announcements: network.NewAnnouncements(cfg.Network.FeedURL),
		wsHub:         NewWSHub(),
		now:           time.Now,
		serveUI:       true, // serve embedded web UI by default
	}

	srv.router = srv.buildRouter()
	return srv
}

// SetServeUI controls whether the embedded web UI is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start WebSocket hub
	go s.wsHub.Run()

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health (also available at /health)
		r.Get("/health", s.handleHealth)

		// Yield estimation
		r.Post("/estimate", s.handleEstimate)
		r.Post("/sensitivity", s.handleSensitivity)

		// Network point estimate
		r.Get("/network/estimate", s.handleNetworkEstimate)

		// Campaign announcements
		r.Get("/announcements", s.handleAnnouncements)

		// Effective parameters for the UI
		r.Get("/config", s.handleGetConfig)

		// WebSocket
		r.Get("/ws", s.handleWebSocket)
	})

	// Serve embedded web UI (SPA with fallback to index.html)
	if s.serveUI {
		s.mountSPA(r, web.DistFS())
	}

	return r
}

// mountSPA serves the embedded static export as a single-page app.
// Known files are served directly; all other paths fall back to
// index.html for client-side routing.
func (s *Server) mountSPA(r chi.Router, distFS fs.FS) {
	fileServer := http.FileServer(http.FS(distFS))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		rPath := strings.TrimPrefix(r.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}

		f, err := distFS.Open(rPath)
		if err != nil {
			// File not found — serve index.html for SPA client-side routing
			serveIndexHTML(w, distFS)
			return
		}
		f.Close()

		if rPath == "index.html" || strings.HasSuffix(rPath, ".html") {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		}

		fileServer.ServeHTTP(w, r)
	})
}

// serveIndexHTML reads and serves the embedded index.html for SPA fallback.
func serveIndexHTML(w http.ResponseWriter, distFS fs.FS) {
	data, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		http.Error(w, "web UI not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EstimateRequest is the body for POST /api/v1/estimate.
type EstimateRequest struct {
	Capital     float64 `json:"capital"`
	Days        int     `json:"days"`
	ActiveBonus bool    `json:"active_bonus,omitempty"`
	FDV         float64 `json:"fdv"`
	AirdropPct  float64 `json:"airdrop_pct"`
}

// EstimateResponse is the payload for POST /api/v1/estimate.
type EstimateResponse struct {
	Accrual    models.AccrualResult   `json:"accrual"`
	Projection models.Projection      `json:"projection"`
	Network    models.NetworkEstimate `json:"network"`
	BoostEnds  int                    `json:"boost_ends_day,omitempty"` // first day accruing at the base rate
}

// SensitivityRequest is the body for POST /api/v1/sensitivity.
type SensitivityRequest struct {
	Capital     float64 `json:"capital"`
	ActiveBonus bool    `json:"active_bonus,omitempty"`
	AirdropPct  float64 `json:"airdrop_pct"`
}

// ConfigResponse exposes the effective campaign parameters the UI
// renders. Nothing sensitive lives in the config, but the response is
// still an explicit whitelist rather than the raw struct.
type ConfigResponse struct {
	Campaign config.CampaignConfig `json:"campaign"`
	Growth   config.GrowthConfig   `json:"growth"`
	Scaling  float64               `json:"scaling_factor"`
	Fallback float64               `json:"fallback_total"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":  "ok",
			"version": "dev",
			"time":    s.now().UTC().Format(time.RFC3339),
		},
	})
}

// validateEstimate checks the user-facing bounds on an estimate request.
// Returns a non-empty message on the first violation.
func (s *Server) validateEstimate(req EstimateRequest) string {
	c := s.cfg.Campaign
	if req.Capital < c.MinCapital || req.Capital > c.MaxCapital {
		return fmt.Sprintf("capital must be between %.0f and %.0f", c.MinCapital, c.MaxCapital)
	}
	if req.Days < 1 || req.Days > c.MaxDays {
		return fmt.Sprintf("days must be between 1 and %d", c.MaxDays)
	}
	if req.FDV <= 0 {
		return "fdv must be positive"
	}
	if req.AirdropPct <= 0 || req.AirdropPct > c.MaxAirdropPct {
		return fmt.Sprintf("airdrop_pct must be in (0, %.0f]", c.MaxAirdropPct)
	}
	return ""
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := s.validateEstimate(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	accrual := campaign.ComputeAccrual(req.Capital, req.Days, req.ActiveBonus, s.now(), s.rules)

	est, cached := s.netProvider.Estimate(r.Context())
	if !cached {
		s.broadcastRefresh(est)
	}

	projection := campaign.ComputeYield(
		accrual.TotalPoints, req.Days, req.Capital,
		req.FDV, req.AirdropPct, est.TotalPoints, s.growth)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: EstimateResponse{
			Accrual:    accrual,
			Projection: projection,
			Network:    est,
			BoostEnds:  campaign.BoostEndDay(accrual.Schedule),
		},
	})
}

func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c := s.cfg.Campaign
	if req.Capital < c.MinCapital || req.Capital > c.MaxCapital {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("capital must be between %.0f and %.0f", c.MinCapital, c.MaxCapital))
		return
	}
	if req.AirdropPct <= 0 || req.AirdropPct > c.MaxAirdropPct {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("airdrop_pct must be in (0, %.0f]", c.MaxAirdropPct))
		return
	}

	est, cached := s.netProvider.Estimate(r.Context())
	if !cached {
		s.broadcastRefresh(est)
	}

	grid := campaign.ComputeSensitivity(
		req.Capital, req.ActiveBonus, req.AirdropPct, est.TotalPoints,
		campaign.DefaultFDVs, campaign.DefaultDurations(),
		s.now(), s.rules, s.growth)

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    grid,
	})
}

func (s *Server) handleNetworkEstimate(w http.ResponseWriter, r *http.Request) {
	var est models.NetworkEstimate
	if r.URL.Query().Get("refresh") == "1" {
		est = s.netProvider.Refresh(r.Context())
		s.broadcastRefresh(est)
	} else {
		var cached bool
		est, cached = s.netProvider.Estimate(r.Context())
		if !cached {
			s.broadcastRefresh(est)
		}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    est,
	})
}

func (s *Server) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := s.announcements.Latest(ctx, limit)
	if err != nil {
		// The feed is decorative; an empty list beats a failed page.
		log.Printf("announcements fetch failed: %v", err)
		items = nil
	}
	if items == nil {
		items = []models.Announcement{}
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			Campaign: s.cfg.Campaign,
			Growth:   s.cfg.Growth,
			Scaling:  s.cfg.Network.ScalingFactor,
			Fallback: s.cfg.Network.FallbackTotal,
		},
	})
}

// broadcastRefresh notifies WebSocket clients that a fresh network
// estimate replaced the cached one.
func (s *Server) broadcastRefresh(est models.NetworkEstimate) {
	s.wsHub.Broadcast(WSMessage{
		Type: "estimate_refreshed",
		Data: map[string]interface{}{
			"total_points": est.TotalPoints,
			"source":       est.Source,
			"fallback":     est.Fallback,
			"sampled_at":   est.SampledAt.UTC().Format(time.RFC3339),
		},
	})
}

// ============================================================
// Helpers
// ============================================================

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
