// Package endpoints serves health and metrics over http while the scaler runs as a server.
package endpoints

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/taskscaler/common/stats"
)

func NewTwitterServer(addr string, stats stats.StatsReceiver) *TwitterServer {
	s := &TwitterServer{
		Addr:  addr,
		Stats: stats,
		mux:   http.NewServeMux(),
	}
	s.mux.HandleFunc("/", helpHandler)
	s.mux.HandleFunc("/health", healthHandler)
	s.mux.HandleFunc("/admin/metrics.json", s.statsHandler)
	return s
}

type TwitterServer struct {
	Addr  string
	Stats stats.StatsReceiver
	mux   *http.ServeMux
}

func (s *TwitterServer) Handler() http.Handler {
	return s.mux
}

// Serve blocks until ctx is done or the listener fails.
func (s *TwitterServer) Serve(ctx context.Context) error {
	server := &http.Server{Addr: s.Addr, Handler: s.mux}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("Serving http & stats on %s", s.Addr)
		errCh <- server.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	}
}

func helpHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Error(w, "Common paths: '/health', '/admin/metrics.json'", 501)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "ok")
}

func (s *TwitterServer) statsHandler(w http.ResponseWriter, r *http.Request) {
	const contentTypeHdr = "Content-Type"
	const contentTypeVal = "application/json; charset=utf-8"
	w.Header().Set(contentTypeHdr, contentTypeVal)

	pretty := r.URL.Query().Get("pretty") == "true"
	str := s.Stats.Render(pretty)
	if _, err := io.Copy(w, bytes.NewBuffer(str)); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}

type StatScope string

// MakeStatsReceiver returns a millisecond precision receiver under the given scope.
func MakeStatsReceiver(scope StatScope) stats.StatsReceiver {
	return stats.DefaultStatsReceiver().Scope(string(scope))
}
