package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/sketchpad/internal/config"
	"github.com/inamate/sketchpad/internal/export"
	mw "github.com/inamate/sketchpad/internal/middleware"
	"github.com/inamate/sketchpad/internal/raster"
	"github.com/inamate/sketchpad/internal/session"
	"github.com/inamate/sketchpad/internal/typeid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()})))

	renderer, err := raster.New(raster.Options{
		Width:      cfg.PreviewWidth,
		Height:     cfg.PreviewHeight,
		Background: cfg.PreviewBackground,
	})
	if err != nil {
		slog.Error("create preview renderer", "error", err)
		os.Exit(1)
	}

	hub := session.NewHub(session.WithSampleCanvas(cfg.SampleCanvas))
	go hub.Run()

	r := newRouter(cfg, hub, renderer)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "sample_canvas", cfg.SampleCanvas)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg *config.Config, hub *session.Hub, renderer *raster.Renderer) *mux.Router {
	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Stateless export of a posted canvas
	exportHandler := export.NewHandler(renderer)
	r.HandleFunc("/export/png", exportHandler.ExportPNG).Methods("POST", "OPTIONS")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"sessions": hub.SessionIDs()})
	}).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/elements", func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookupSession(w, r, hub)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"elements": s.Elements()})
	}).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}/preview.png", func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookupSession(w, r, hub)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := renderer.EncodePNG(w, s.Render()); err != nil {
			slog.Error("render preview", "error", err, "session", s.ID)
		}
	}).Methods("GET")

	// WebSocket endpoint
	origins := cfg.OriginPatterns()
	r.HandleFunc("/ws/canvas", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, origins)
	})

	return r
}

func lookupSession(w http.ResponseWriter, r *http.Request, hub *session.Hub) (*session.Session, bool) {
	id := mux.Vars(r)["sessionId"]
	if err := typeid.Validate(id, typeid.PrefixSession); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, false
	}
	s, ok := hub.Session(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return nil, false
	}
	return s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, origins []string) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := session.NewClient(hub, conn, clientID)

	hub.Register(client)
	// Queue the greeting before ReadPump can produce any reply.
	client.Session.Welcome(clientID)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
