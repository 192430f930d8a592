// Package server exposes the dice engine over HTTP: a JSON roll endpoint
// plus static file serving for the browser frontend.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/alidiusk/DiCast/internal/dice"
	"github.com/alidiusk/DiCast/internal/history"
	"github.com/alidiusk/DiCast/internal/notation"
)

// Request bodies above this size are rejected outright.
const maxBodyBytes = 16 * 1024

// The dice core does not bound untrusted input, so the HTTP surface does.
const (
	maxCount = 1000
	maxTimes = 100
	maxSides = 1_000_000
)

// DiceRequest is the JSON body of a roll request.
type DiceRequest struct {
	Roll string `json:"roll"`
}

// DiceResponse carries one total per repetition of the parsed roll.
type DiceResponse struct {
	Roll []int64 `json:"roll"`
}

// Config collects the server's knobs.
type Config struct {
	Addr      string
	StaticDir string
	// Store receives every successful roll; nil disables logging.
	Store *history.Store
}

// Server serves the roll endpoint and the static frontend.
type Server struct {
	addr      string
	staticDir string
	store     *history.Store
	seedFunc  func() (int64, error) // Generates per-request random seeds.
}

// New creates a configured server.
func New(cfg Config) *Server {
	return &Server{
		addr:      cfg.Addr,
		staticDir: cfg.StaticDir,
		store:     cfg.Store,
		seedFunc:  dice.NewSeed,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /dice", s.handleRoll)
	if s.staticDir != "" {
		mux.HandleFunc("GET /", s.handleStatic)
	}
	return mux
}

// Serve starts the HTTP server and blocks until it stops.
func (s *Server) Serve() error {
	log.Printf("serving dice on %s", s.addr)
	if err := http.ListenAndServe(s.addr, s.Handler()); err != nil {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

// handleRoll parses the posted notation and evaluates it with a fresh
// per-request roller. Any malformed notation is a 422, never a crash.
func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req DiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large.", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	log.Printf("received a roll request: %s", req.Roll)

	times, spec, err := notation.Parse(req.Roll)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid roll: %v.", err), http.StatusUnprocessableEntity)
		return
	}

	_, sides := spec.Range.Uniform().Bounds()
	if spec.Count > maxCount || times > maxTimes || sides > maxSides {
		http.Error(w, "Roll too large.", http.StatusUnprocessableEntity)
		return
	}

	seed, err := s.seedFunc()
	if err != nil {
		http.Error(w, "Something went wrong, apologies.", http.StatusInternalServerError)
		return
	}

	// One roller per request keeps generator state off the shared path.
	roller := dice.NewSeededRoller(seed)
	rolls := roller.RollTimes(spec, times)

	if s.store != nil {
		rec := history.Record{When: time.Now().UTC(), Notation: req.Roll, Rolls: rolls}
		if err := s.store.Append(rec); err != nil {
			log.Printf("failed to append roll log: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(DiceResponse{Roll: rolls}); err != nil {
		log.Printf("failed to encode roll response: %v", err)
	}
}

// handleStatic serves files from the configured directory with explicit
// content types for the handful of extensions the frontend uses.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if mime, ok := mimeForPath(r.URL.Path); ok {
		w.Header().Set("Content-Type", mime.String())
	}

	path := r.URL.Path
	if path == "/" {
		path = "/index.html"
	}
	http.ServeFile(w, r, filepath.Join(s.staticDir, filepath.Clean(path)))
}
