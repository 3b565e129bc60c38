package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/crosscheck"
	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/logging"
)

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

// Option customizes a Server.
type Option func(*Server)

// WithVerify cross-checks every fresh result before it is cached and served.
// The check assumes default search options.
func WithVerify(on bool) Option {
	return func(s *Server) { s.verify = on }
}

// WithSearchOptions passes opts to every dijkstra.ComputeNearest call.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(s *Server) { s.searchOpts = append(s.searchOpts, opts...) }
}

// Server answers nearest-target queries over one immutable graph.
type Server struct {
	graph      *core.Graph
	log        zerolog.Logger
	router     *mux.Router
	cache      cmap.ConcurrentMap[string, cached]
	verify     bool
	searchOpts []dijkstra.Option
}

type cached struct {
	result   *dijkstra.Result
	segments []dijkstra.Segment
}

// New returns a Server over g. g must not be modified afterwards.
func New(g *core.Graph, log zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		graph:  g,
		log:    log,
		router: mux.NewRouter(),
		cache:  cmap.New[cached](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(logging.Middleware(s.log))
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/graph", s.handleGraph).Methods(http.MethodGet)
	api.HandleFunc("/origins", s.handleOrigins).Methods(http.MethodGet)
	api.HandleFunc("/nearest/{source}", s.handleNearest).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "no route for "+r.URL.Path)
	})
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// CachedResults reports how many (source, role) pairs are cached.
func (s *Server) CachedResults() int { return s.cache.Count() }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("stopped")

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toGraphDTO(s.graph))
}

func (s *Server) handleOrigins(w http.ResponseWriter, r *http.Request) {
	out := []nodeDTO{}
	for _, n := range s.graph.NodesByRole(core.RoleOrigin) {
		out = append(out, toNodeDTO(n))
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	source := mux.Vars(r)["source"]
	role := core.RoleTarget
	if q := r.URL.Query().Get("role"); q != "" {
		parsed, err := core.ParseRole(q)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		role = parsed
	}

	c, err := s.nearest(source, role)
	switch {
	case errors.Is(err, dijkstra.ErrInvalidSource):
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case err != nil:
		logging.FromContext(r.Context()).Error().Err(err).Str("source", source).Msg("search failed")
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	logging.FromContext(r.Context()).Debug().
		Str("source", source).
		Str("target", c.result.Target).
		Float64("distance", c.result.Distance).
		Msg("nearest")
	writeJSON(w, r, http.StatusOK, toResultDTO(c.result, c.segments))
}

// nearest serves from the cache or runs the search. Concurrent misses on the
// same key may both compute; the results are identical.
func (s *Server) nearest(source string, role core.Role) (cached, error) {
	key := source + "\x00" + string(role)
	if c, ok := s.cache.Get(key); ok {
		return c, nil
	}

	res, err := dijkstra.ComputeNearest(s.graph, source, dijkstra.IsRole(role), s.searchOpts...)
	if err != nil {
		return cached{}, err
	}
	if s.verify {
		if err = crosscheck.VerifyNearest(s.graph, res, dijkstra.IsRole(role)); err != nil {
			return cached{}, err
		}
	}
	segs, err := res.Segments(s.graph)
	if err != nil {
		return cached{}, err
	}

	c := cached{result: res, segments: segs}
	s.cache.Set(key, c)

	return c, nil
}

// writeJSON sends v with status. Encode or write failures cannot change the
// response any more; they are logged with the request id.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorDTO{Error: msg})
}
