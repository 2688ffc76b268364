// Package ioweb serves users, trees and surname traditions as a JSON API.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/tree"
	"github.com/gnames/gnkin/pkg/user"
	"golang.org/x/sync/errgroup"
)

// purgeInterval is how often expired sessions are removed.
const purgeInterval = 10 * time.Minute

// Server is the JSON API.
type Server struct {
	cfg    *config.Config
	users  user.Manager
	trees  tree.Manager
	router *gin.Engine
}

// New creates a Server with all routes mounted.
func New(cfg *config.Config, users user.Manager, trees tree.Manager) *Server {
	res := &Server{
		cfg:   cfg,
		users: users,
		trees: trees,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(accessLog("/api/health"))
	r.Use(cors(cfg.Server.CORSOrigins))
	res.mountRoutes(r)
	res.router = r
	return res
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API until ctx is canceled, then shuts the server down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Server.Port
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting API server", "port", port)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return ListenError(port, err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		slog.Info("Stopping API server")
		return srv.Shutdown(sctx)
	})

	g.Go(func() error {
		s.purgeSessions(ctx)
		return nil
	})

	return g.Wait()
}

func (s *Server) purgeSessions(ctx context.Context) {
	ttl := time.Duration(s.cfg.Auth.SessionTTLMinutes) * time.Minute
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.users.PurgeSessions(ctx, ttl)
			if err != nil {
				slog.Error("Cannot purge sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Purged expired sessions", "count", n)
			}
		}
	}
}
