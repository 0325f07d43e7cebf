package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
	"github.com/GulfDevInnovations/royal-academy/internal/service"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Auth           config.AuthConfig
		Store          *repository.Store
	}

	// Server is the website-facing HTTP API.
	Server struct {
		opts *Options
		app  *echo.Echo
	}
)

func NewServer(opts *Options) *Server {
	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.Recover())

	s.app.HTTPErrorHandler = appHTTPErrorHandler
	s.app.Validator = &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}

	s.app.GET("/healthz", s.health)

	store := s.opts.Store
	api := &reservationAPI{
		reconciler: service.NewReconciler(store),
		promoter:   service.NewPromoter(store),
		identity:   service.NewIdentityService(store),
		catalog:    service.NewCatalogService(store.Catalog),
	}
	registerReservationAPI(s.app.Group("/api"), s.opts.Auth, api)
}

// Start serves until Stop is called. A clean stop returns nil.
func (s *Server) Start() error {
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) health(c echo.Context) error {
	sqlDB, err := s.opts.Store.DB().DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

type requestValidator struct {
	v *validator.Validate
}

func (rv *requestValidator) Validate(i any) error {
	return rv.v.Struct(i)
}
