package stream

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/everlastingsong/sedimentology/pkg/log"
	"github.com/everlastingsong/sedimentology/pkg/txreader"
)

// DefaultPort is the conventional live stream port.
const DefaultPort uint16 = 7683

// Server serves the /state and /stream endpoints. It carries no mutable
// state besides the database pool and atomic request id counters; endpoints
// expect to be placed behind a reverse proxy and perform no authentication.
type Server struct {
	db     *sqlx.DB
	reader *txreader.Reader
	logger zerolog.Logger

	requestIDState  atomic.Uint64
	requestIDStream atomic.Uint64

	httpServer *http.Server
}

// NewServer builds the stream server on addr (e.g. ":7683").
func NewServer(db *sqlx.DB, addr string) *Server {
	s := &Server{
		db:     db,
		reader: txreader.New(db),
		logger: log.WithComponent("streamer"),
	}

	router := mux.NewRouter()
	router.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	router.HandleFunc("/stream", s.handleStream).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks serving requests.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("listening")
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close shuts the listener down.
func (s *Server) Close() error {
	return s.httpServer.Close()
}

func parseUintParam(r *http.Request, name string) (uint64, bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	var v uint64
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, false, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, true, nil
}
