// Package api is the site's HTTP shell: static assets in production plus two placeholder
// endpoints. Authentication and data live in an external service the browser talks to
// directly.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
)

type (
	Options struct {
		Address string
		// Port is echoed back by the placeholder endpoints.
		Port string
		// StaticDir holds the built frontend; served only in production.
		StaticDir      string
		Production     bool
		Debug          bool
		DisableReqLogs bool
		Logger         *log.Logger
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	if s.opts.Logger != nil {
		s.app.Logger = s.opts.Logger
	}

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in debug mode
	if !s.opts.Debug {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Debug = s.opts.Debug

	if s.opts.Production {
		// Every GET is answered by the built frontend; unknown paths fall back to
		// index.html so client-side routes survive a reload.
		s.app.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:  s.opts.StaticDir,
			Index: "index.html",
			HTML5: true,
		}))
		return
	}

	s.app.GET("/", s.placeholder("Home endpoint"))
	s.app.GET("/events", s.placeholder("Events EndPoint"))
}

func (s *server) Start() error {
	s.app.Logger.Infof("server listening at %s", s.opts.Address)
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "api: start")
	}
	return nil
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

type portInfo struct {
	Port string `json:"port"`
}

type placeholderResponse struct {
	Msg  string   `json:"msg"`
	Port portInfo `json:"port"`
}

func (s *server) placeholder(msg string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, placeholderResponse{Msg: msg, Port: portInfo{Port: s.opts.Port}})
	}
}
