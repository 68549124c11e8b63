package webapi

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/truethread/storefront/internal/blobstore"
	"github.com/truethread/storefront/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// signedURLTTL matches the hosted deployment's one-year links.
const signedURLTTL = 365 * 24 * time.Hour

func (s *Server) postUploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse upload")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return fail(c, http.StatusBadRequest, "No images provided")
	}

	ctx := c.Request().Context()
	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			src, err := fh.Open()
			if err != nil {
				return errors.Wrapf(err, "open %s", fh.Filename)
			}
			defer src.Close()
			data, err := io.ReadAll(src)
			if err != nil {
				return errors.Wrapf(err, "read %s", fh.Filename)
			}

			name := fmt.Sprintf("%d-%s-%s",
				time.Now().UnixMilli(), common.RandomToken(13), filepath.Base(fh.Filename))
			if err := s.blobs.Put(gctx, name, data); err != nil {
				return err
			}
			url, err := s.blobs.SignedURL(name, signedURLTTL)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("webapi: image upload failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to upload images")
	}

	return ok(c, map[string]interface{}{
		"message":   fmt.Sprintf("%d image(s) uploaded successfully", len(urls)),
		"imageUrls": urls,
	})
}

func (s *Server) getUpload(c echo.Context) error {
	name := c.Param("name")
	exp := cast.ToInt64(c.QueryParam("exp"))
	sig := c.QueryParam("sig")

	data, ctype, err := s.blobs.Fetch(c.Request().Context(), name, exp, sig)
	if errors.Is(err, blobstore.ErrInvalidSignature) {
		return fail(c, http.StatusForbidden, "Invalid or expired link")
	}
	if errors.Is(err, blobstore.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Image not found")
	}
	if err != nil {
		zap.L().Error("webapi: serve upload failed", zap.String("name", name), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to serve image")
	}
	return c.Blob(http.StatusOK, ctype, data)
}
