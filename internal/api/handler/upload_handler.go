package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoprecords/records-api/internal/api/metrics"
	"github.com/shoprecords/records-api/internal/core/domain"
	"github.com/shoprecords/records-api/internal/core/ports"
)

// UploadFormField is the multipart field carrying the file.
const UploadFormField = "file"

// uploadEnvelope is the multipart overhead allowed on top of the file
// ceiling before the request body is cut off.
const uploadEnvelope = 64 << 10

type UploadHandler struct {
	service  ports.UploadService
	maxBytes int64
}

// NewUploadHandler caps request bodies at maxBytes plus the multipart
// envelope. A non-positive maxBytes leaves the cap to the service.
func NewUploadHandler(service ports.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// Upload handles POST /api/upload. Nothing is stored; the caller gets the
// file back as a data URI to embed in a document.
//
// @Summary      Upload a file
// @Tags         upload
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "PDF, image, Word, Excel or plain text file"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  errorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if h.maxBytes > 0 {
		req := c.Request()
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes+uploadEnvelope)
	}

	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.ErrFileTooLarge
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return domain.ErrMissingUploadFile
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	file, err := h.service.Accept(c.Request().Context(), fh.Filename, src)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	metrics.UploadBytes.Observe(float64(file.Size))
	return c.JSON(http.StatusOK, uploadResponse{Success: true, File: file})
}
