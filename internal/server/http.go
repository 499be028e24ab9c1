package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/mithrel/nodehtml/internal/config"
	"github.com/mithrel/nodehtml/internal/convert"
	"github.com/mithrel/nodehtml/internal/render"
	"github.com/mithrel/nodehtml/pkg/htmlnode"
)

const maxBody = 4 << 20

// Server serves HTTP render endpoints backed by a render.Service.
type Server struct {
	cfg      *viper.Viper
	renderer *render.Service
	log      *log.Logger
}

func New(cfg *viper.Viper, renderer *render.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, renderer: renderer, log: logger}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/render", s.handleRender)
	mux.HandleFunc("/v1/spans", s.handleSpans)
	return mux
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	out, err := s.renderer.Document(r.Context(), body)
	s.reply(w, r, out, err)
}

func (s *Server) handleSpans(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	wrap := r.URL.Query().Get("wrap")
	if wrap == "" {
		wrap = s.cfg.GetString("render.wrap")
	} else if err := config.CheckTagName(wrap); err != nil {
		http.Error(w, "wrap "+err.Error(), http.StatusBadRequest)
		return
	}
	out, err := s.renderer.Spans(r.Context(), body, wrap)
	s.reply(w, r, out, err)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	return b, true
}

func (s *Server) reply(w http.ResponseWriter, r *http.Request, out render.Output, err error) {
	if err != nil {
		code := statusFor(err)
		s.log.Printf("%s %s: %d %v", r.Method, r.URL.Path, code, err)
		http.Error(w, err.Error(), code)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", strconv.Quote(out.Fingerprint))
	if out.Cached {
		w.Header().Set("X-Render-Cache", "hit")
	}
	_, _ = io.WriteString(w, out.HTML)
}

// statusFor maps render failures to 422; anything else is a bad request
// (malformed documents, unknown styles, undecodable span input).
func statusFor(err error) int {
	switch {
	case errors.Is(err, htmlnode.ErrMissingValue),
		errors.Is(err, htmlnode.ErrInvalidContainer),
		errors.Is(err, convert.ErrMissingURL):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.GetString("http_addr"),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	s.log.Printf("listening on %s", srv.Addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
