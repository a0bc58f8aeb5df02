package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"github.com/viant/pixelterm"
	"github.com/viant/pixelterm/runtime/session"
	"github.com/viant/pixelterm/service/sandbox"
)

const (
	maxRequestSize  = 64 << 10
	shutdownTimeout = 5 * time.Second
)

var userPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type (
	openRequest struct {
		User string `json:"user,omitempty"`
	}

	sessionView struct {
		ID         string `json:"id"`
		User       string `json:"user,omitempty"`
		CurrentDir string `json:"cwd"`
	}

	commandRequest struct {
		Command string `json:"command"`
	}

	signalView struct {
		Kind    string `json:"kind"`
		Payload string `json:"payload,omitempty"`
	}

	commandResponse struct {
		Output string      `json:"output"`
		Signal *signalView `json:"signal,omitempty"`
	}

	historyResponse struct {
		History []string `json:"history"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

// Server exposes sessions over HTTP. Each user gets a root under the
// configured root directory.
type Server struct {
	service *pixelterm.Service
	logger  *slog.Logger
	router  *mux.Router
}

// NewServer creates the HTTP adapter
func NewServer(service *pixelterm.Service, logger *slog.Logger) *Server {
	s := &Server{service: service, logger: logger, router: mux.NewRouter()}
	s.router.HandleFunc("/api/sessions", s.open).Methods(http.MethodPost)
	s.router.HandleFunc("/api/sessions/{id}/command", s.command).Methods(http.MethodPost)
	s.router.HandleFunc("/api/sessions/{id}/history", s.history).Methods(http.MethodGet)
	s.router.HandleFunc("/api/sessions/{id}", s.close).Methods(http.MethodDelete)
	return s
}

// Handler returns the root handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) open(w http.ResponseWriter, r *http.Request) {
	request := &openRequest{}
	if err := decode(w, r, request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	root := s.service.Config().RootDir
	var options []session.Option
	if request.User != "" {
		if !userPattern.MatchString(request.User) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid user: %v", request.User))
			return
		}
		root = filepath.Join(root, request.User)
		if err := os.MkdirAll(root, 0o755); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		options = append(options, session.WithUser(request.User))
	}
	sess, err := s.service.Open(r.Context(), root, options...)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to open session", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, &sessionView{ID: sess.ID(), User: sess.User(), CurrentDir: sandbox.Virtual(sess.Root(), sess.CurrentDir())})
}

func (s *Server) command(w http.ResponseWriter, r *http.Request) {
	request := &commandRequest{}
	if err := decode(w, r, request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	resp, err := s.service.Run(r.Context(), mux.Vars(r)["id"], request.Command)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	ret := &commandResponse{Output: resp.Text}
	if resp.IsSignal() {
		ret.Output = ""
		ret.Signal = &signalView{Kind: resp.Signal.Kind.String(), Payload: resp.Signal.Payload}
	}
	writeJSON(w, http.StatusOK, ret)
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	history, err := s.service.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if history == nil {
		history = []string{}
	}
	writeJSON(w, http.StatusOK, &historyResponse{History: history})
}

func (s *Server) close(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Close(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, pixelterm.ErrUnknownSession) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}

func decode(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(target); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, &errorResponse{Error: err.Error()})
}

// listen serves until ctx is done
func listen(ctx context.Context, addr string, server *Server) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		server.logger.Info("listening", "addr", addr)
		errs <- httpServer.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
