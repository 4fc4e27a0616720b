package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/npillmayer/emojify"
	"github.com/npillmayer/emojify/augment"
)

// Converter translates in both directions. *augment.Service is a Converter.
type Converter interface {
	ToText(ctx context.Context, text string) (string, augment.Source)
	ToEmoji(ctx context.Context, phrase string) (string, augment.Source)
}

// Config configures a Server.
type Config struct {
	Addr            string               // listen address, default ":5000"
	CORSOrigins     []string             // allowed origins, default "*"
	Stats           func() emojify.Stats // reported by /healthz, optional
	ShutdownTimeout time.Duration        // default 5 seconds
}

// DefaultAddr is the listen address if none is configured.
const DefaultAddr = ":5000"

const maxBodySize = 1 << 20

// Server is an HTTP front end for a Converter.
type Server struct {
	conv    Converter
	conf    Config
	metrics *metrics
	handler http.Handler
}

// New creates a server. It does not start listening.
func New(conv Converter, conf Config) *Server {
	if conf.Addr == "" {
		conf.Addr = DefaultAddr
	}
	if len(conf.CORSOrigins) == 0 {
		conf.CORSOrigins = []string{"*"}
	}
	if conf.ShutdownTimeout <= 0 {
		conf.ShutdownTimeout = 5 * time.Second
	}
	s := &Server{conv: conv, conf: conf, metrics: newMetrics()}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter()
	router.Handle("/convertToText",
		s.metrics.instrument("convertToText", s.convert("text", "converted_text", augment.ToText))).
		Methods(http.MethodPost).Name("convertToText")
	router.Handle("/convertToEmojis",
		s.metrics.instrument("convertToEmojis", s.convert("phrase", "converted_emojis", augment.ToEmoji))).
		Methods(http.MethodPost).Name("convertToEmojis")
	router.Handle("/healthz", s.metrics.instrument("healthz", http.HandlerFunc(s.health))).
		Methods(http.MethodGet).Name("healthz")
	router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet).Name("metrics")
	// Wrap the router as a whole, so that 404 and 405 answers get a request
	// ID as well.
	var h http.Handler = router
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}))(h)
	h = withRequestID(h)
	return handlers.CORS(
		handlers.AllowedOrigins(s.conf.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
	)(h)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.conf.Addr
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.conf.Addr)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(l)
	}()
	tracer().Infof("listening on %s", l.Addr())
	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	tracer().Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.conf.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// --- Handlers --------------------------------------------------------------

func (s *Server) convert(field, result string, dir augment.Direction) http.HandlerFunc {
	translate := s.conv.ToText
	if dir == augment.ToEmoji {
		translate = s.conv.ToEmoji
	}
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := readField(r.Body, field)
		if err != nil {
			tracer().P("request", RequestID(r.Context())).Infof("bad request: %v", err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		out, src := translate(r.Context(), input)
		s.metrics.translations.WithLabelValues(dir.String(), src.String()).Inc()
		writeJSON(w, http.StatusOK, map[string]string{result: out})
	}
}

// readField extracts a field from a JSON object. A missing or null field is
// an error, a field of non-string type reads as "".
func readField(body io.Reader, field string) (string, error) {
	var obj map[string]json.RawMessage
	if err := json.NewDecoder(io.LimitReader(body, maxBodySize)).Decode(&obj); err != nil {
		return "", errors.New("request body must be a JSON object")
	}
	raw, ok := obj[field]
	if !ok || string(raw) == "null" {
		return "", fmt.Errorf("missing field %q", field)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", nil
	}
	return s, nil
}

type health struct {
	Status string `json:"status"`
	emojify.Stats
	Strategy string `json:"strategy,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	h := health{Status: "ok"}
	if s.conf.Stats != nil {
		h.Stats = s.conf.Stats()
		h.Strategy = h.Stats.Strategy.String()
	}
	writeJSON(w, http.StatusOK, h)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("writing response: %v", err)
	}
}
