// Package webapi exposes the storefront HTTP surface: the public catalog and
// intake endpoints plus the admin CRUD, maintenance and export endpoints.
package webapi

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/blobstore"
	"github.com/truethread/storefront/internal/catalog"
	"github.com/truethread/storefront/internal/intake"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Server struct {
	echo   *echo.Echo
	cfg    *config.AppConfig
	repo   *catalog.Repository
	maint  *catalog.Maintenance
	intake *intake.Service
	blobs  blobstore.BlobStore

	adminUser string
	adminHash []byte
}

func NewServer(cfg *config.AppConfig, repo *catalog.Repository, maint *catalog.Maintenance,
	svc *intake.Service, blobs blobstore.BlobStore) (*Server, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash admin password")
	}

	s := &Server{
		echo:      echo.New(),
		cfg:       cfg,
		repo:      repo,
		maint:     maint,
		intake:    svc,
		blobs:     blobs,
		adminUser: cfg.Admin.Username,
		adminHash: hash,
	}
	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("webapi: request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status))
			return nil
		},
	}))
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.getHealth)
	e.POST("/admin/login", s.postAdminLogin)

	e.GET("/products", s.listProducts)
	e.GET("/products/:id", s.getProduct)
	e.POST("/admin/products", s.createProduct)
	e.PUT("/admin/products/:id", s.updateProduct)
	e.DELETE("/admin/products/:id", s.deleteProduct)

	e.POST("/pre-bookings", s.postPreBooking)
	e.GET("/admin/pre-bookings", s.listPreBookings)
	e.GET("/admin/pre-bookings/export", s.exportPreBookings)
	e.POST("/pre-order-request", s.postPreOrderRequest)
	e.GET("/admin/pre-order-requests", s.listPreOrderRequests)
	e.GET("/admin/pre-order-requests/export", s.exportPreOrderRequests)
	e.POST("/contact", s.postContactMessage)
	e.GET("/admin/contacts", s.listContactMessages)

	e.POST("/admin/cleanup-products", s.postCleanupProducts)
	e.POST("/admin/refresh-sample-data", s.postRefreshSampleData)
	e.POST("/admin/init-sample-data", s.postInitSampleData)

	e.POST("/admin/upload-images", s.postUploadImages)
	e.GET("/uploads/:name", s.getUpload)
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("webapi: listening", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

func (s *Server) getHealth(c echo.Context) error {
	return c.JSON(200, map[string]interface{}{"status": "ok"})
}
