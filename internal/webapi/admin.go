package webapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// postAdminLogin is a single credential check against the configured admin
// account. There is no session or token issuance here; the admin surface is
// expected to sit behind a trusted proxy.
func (s *Server) postAdminLogin(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse credentials")
	}
	if payload.Username != s.adminUser ||
		bcrypt.CompareHashAndPassword(s.adminHash, []byte(payload.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	}
	return ok(c, map[string]interface{}{"message": "Login successful"})
}

func (s *Server) exportPreBookings(c echo.Context) error {
	bookings, err := s.intake.ListPreBookings(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: export pre-bookings failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to export pre-bookings")
	}
	csv, err := gocsv.MarshalString(&bookings)
	if err != nil {
		zap.L().Error("webapi: marshal pre-bookings csv failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to export pre-bookings")
	}
	return writeCSV(c, "pre-bookings", csv)
}

func (s *Server) exportPreOrderRequests(c echo.Context) error {
	requests, err := s.intake.ListPreOrderRequests(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: export pre-order requests failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to export pre-order requests")
	}
	csv, err := gocsv.MarshalString(&requests)
	if err != nil {
		zap.L().Error("webapi: marshal pre-order csv failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to export pre-order requests")
	}
	return writeCSV(c, "pre-order-requests", csv)
}

func writeCSV(c echo.Context, name, csv string) error {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", []byte(csv))
}
