// Package http serves the jobready JSON API over HTTP using chi.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Muzammil-Ahm3d/jobready"
	"github.com/go-chi/chi/v5"
)

// Defaults used by NewServer.
const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultChatRate        = 1.0
	DefaultChatBurst       = 5
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server is the HTTP server for the JSON API. Services are assigned to the
// exported fields before Open is called.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	addr            string
	adminToken      string
	logger          *slog.Logger
	limiter         *ClientLimiter
	shutdownTimeout time.Duration

	Resolver    jobready.Resolver
	Categories  jobready.CategoryService
	Questions   jobready.QuestionService
	Reformatter jobready.Reformatter
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithAdminToken sets the token required by admin routes. Without one,
// admin routes answer 403.
func WithAdminToken(token string) Option {
	return func(s *Server) { s.adminToken = token }
}

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithListener serves on ln instead of binding the listen address.
func WithListener(ln net.Listener) Option {
	return func(s *Server) { s.ln = ln }
}

// WithChatRate limits chat requests per client to rps with the given burst.
func WithChatRate(rps float64, burst int) Option {
	return func(s *Server) { s.limiter = NewClientLimiter(rps, burst) }
}

// NewServer creates a new Server with its routes.
func NewServer(opts ...Option) *Server {
	s := &Server{
		addr:            DefaultAddr,
		logger:          slog.Default(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limiter == nil {
		s.limiter = NewClientLimiter(DefaultChatRate, DefaultChatBurst)
	}

	s.router = s.routes()
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.With(s.rateLimit).Post("/chat", s.handleChat)

		r.Get("/categories", s.handleCategoryList)
		r.Get("/categories/{slug}", s.handleCategoryView)
		r.Get("/categories/{slug}/questions", s.handleCategoryQuestions)
		r.Get("/categories/{slug}/questions/{questionSlug}", s.handleQuestionView)
		r.Get("/questions", s.handleQuestionSearch)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAdmin)

			r.Post("/categories", s.handleCategoryCreate)
			r.Patch("/categories/{id}", s.handleCategoryUpdate)
			r.Delete("/categories/{id}", s.handleCategoryDelete)

			r.Post("/questions", s.handleQuestionCreate)
			r.Patch("/questions/{id}", s.handleQuestionUpdate)
			r.Delete("/questions/{id}", s.handleQuestionDelete)

			r.Post("/reformat", s.handleReformat)
		})
	})

	return r
}

// ServeHTTP routes a request. Used by tests to skip the listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Listen binds the listen address unless a listener was supplied.
func (s *Server) Listen() (err error) {
	if s.ln != nil {
		return nil
	}
	s.ln, err = net.Listen("tcp", s.addr)
	return err
}

// Serve accepts connections until the server is closed. It returns nil
// after Close and the accept error otherwise. Listen must be called first.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Open binds the listen address and starts serving in the background.
func (s *Server) Open() error {
	if err := s.Listen(); err != nil {
		return err
	}

	go func() {
		if err := s.Serve(); err != nil {
			s.logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
