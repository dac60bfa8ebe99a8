// Package statusui exposes the background services' job state over
// HTTP: a JSON API for tooling and an HTML dashboard for a human to
// glance at, grounded on naozine-zbor's echo-based server wiring
// (middleware, route groups, graceful shutdown).
package statusui

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"roughcut/internal/services"
)

// Server wraps an echo instance bound to a Services for read-only status
// reporting.
type Server struct {
	echo *echo.Echo
	svc  *services.Services
}

// New builds a Server that reports on svc's job state.
func New(svc *services.Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{echo: e, svc: svc}
	e.GET("/", s.handleDashboard)
	e.GET("/status", s.handleStatusJSON)
	e.GET("/jobs", s.handleJobsJSON)
	return s
}

// Start runs the HTTP server on addr until ctx is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleDashboard(c echo.Context) error {
	data := dashboardData{
		Status: s.svc.GetStatus(),
		Jobs:   s.svc.GetJobDetails(),
	}
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Server) handleStatusJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, s.svc.GetStatus())
}

func (s *Server) handleJobsJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, s.svc.GetJobDetails())
}
