// Package server exposes the analyzer over HTTP: an HTML form for
// interactive use and a JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
)

// DefaultExpression is prefilled in the form.
const DefaultExpression = analyzer.DefaultExpression

// Examples are listed above the form.
var Examples = []string{
	"(a or b) and c",
	"(a and b) or (c and d)",
	"not a or (b and c)",
}

type Server struct {
	Analyzer *analyzer.Analyzer
	Tpl      *template.Template
	Logger   *zap.Logger
}

func NewServer(a *analyzer.Analyzer, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{Analyzer: a, Tpl: tpl, Logger: logger}, nil
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(s),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("HTTP server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.Tpl.ExecuteTemplate(w, name, data); err != nil {
		s.Logger.Error("template error", zap.String("template", name), zap.Error(err))
	}
}

func (s *Server) json(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.Logger.Error("json encode error", zap.Error(err))
	}
}

func (s *Server) jsonError(w http.ResponseWriter, status int, msg string) {
	s.json(w, status, map[string]any{
		"ok":    false,
		"error": msg,
	})
}
