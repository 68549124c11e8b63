package webapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/truethread/storefront/internal/catalog"
	"go.uber.org/zap"
)

// productKey normalizes a path parameter to a full store key. Clients may
// pass either the full "product_..." id or just the suffix.
func productKey(id string) string {
	if strings.HasPrefix(id, catalog.ProductPrefix) {
		return id
	}
	return catalog.ProductPrefix + id
}

func (s *Server) listProducts(c echo.Context) error {
	products, err := s.repo.List(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: list products failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to get products")
	}
	return ok(c, map[string]interface{}{"products": products})
}

func (s *Server) getProduct(c echo.Context) error {
	id := productKey(c.Param("id"))
	product, err := s.repo.Get(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.L().Error("webapi: get product failed", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to get product")
	}
	return ok(c, map[string]interface{}{"product": product})
}

func (s *Server) createProduct(c echo.Context) error {
	var draft map[string]interface{}
	if err := c.Bind(&draft); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	id, err := s.repo.Create(c.Request().Context(), draft)
	if err != nil {
		zap.L().Error("webapi: create product failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to add product")
	}
	return ok(c, map[string]interface{}{
		"message": "Product added successfully",
		"id":      id,
	})
}

func (s *Server) updateProduct(c echo.Context) error {
	id := productKey(c.Param("id"))
	var partial map[string]interface{}
	if err := c.Bind(&partial); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product")
	}
	err := s.repo.Update(c.Request().Context(), id, partial)
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	if err != nil {
		zap.L().Error("webapi: update product failed", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to update product")
	}
	return ok(c, map[string]interface{}{"message": "Product updated successfully"})
}

func (s *Server) deleteProduct(c echo.Context) error {
	id := productKey(c.Param("id"))
	if err := s.repo.Delete(c.Request().Context(), id); err != nil {
		zap.L().Error("webapi: delete product failed", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to delete product")
	}
	return ok(c, map[string]interface{}{"message": "Product deleted successfully"})
}
