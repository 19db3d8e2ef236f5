package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalitafoto/backend/internal/errs"
	"github.com/kalitafoto/backend/internal/server"
	"github.com/kalitafoto/backend/internal/service"
	"github.com/kalitafoto/backend/internal/storage"
	"github.com/kalitafoto/backend/internal/validation"
)

// Upload limits for portfolio media.
const (
	// MaxImageSize is the per-file ceiling, 5 MiB.
	MaxImageSize = 5 << 20

	// MaxBatchSize caps how many files one multi-upload may carry.
	MaxBatchSize = 30
)

// allowedImageTypes are the content types the portfolio accepts.
var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/avif": true,
}

// PortfolioHandler serves the authenticated portfolio media endpoints.
//
// The upload endpoints are plain Echo handlers rather than typed ones:
// multipart form parsing does not fit the bind-and-validate pipeline.
type PortfolioHandler struct {
	Handler
	portfolio *service.PortfolioService
}

// NewPortfolioHandler constructs a PortfolioHandler.
func NewPortfolioHandler(s *server.Server, portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		Handler:   NewHandler(s),
		portfolio: portfolio,
	}
}

// UploadImage stores a single portfolio image. Expects multipart form
// fields "category" and "image".
func (h *PortfolioHandler) UploadImage(c echo.Context) error {
	category := c.FormValue("category")
	if category == "" {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "category", Error: "is required"},
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "image", Error: "is required"},
		})
	}

	if fieldErr := checkImage(fileHeader, "image"); fieldErr != nil {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{*fieldErr})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	uploaded, err := h.portfolio.UploadImage(c.Request().Context(), category, storage.UploadInput{
		Reader:      src,
		Size:        fileHeader.Size,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, OK("Image uploaded successfully", uploaded))
}

// UploadImages stores a batch of portfolio images. Expects multipart
// form field "category" and one or more "images" files.
func (h *PortfolioHandler) UploadImages(c echo.Context) error {
	category := c.FormValue("category")
	if category == "" {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "category", Error: "is required"},
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errs.NewBadRequestError("Malformed multipart form", false, nil, nil, nil)
	}

	files := form.File["images"]
	if len(files) == 0 {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "images", Error: "at least one file is required"},
		})
	}
	if len(files) > MaxBatchSize {
		return errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "images", Error: fmt.Sprintf("must not exceed %d files", MaxBatchSize)},
		})
	}

	// Validate the whole batch before uploading anything, so a bad
	// file at position 20 does not leave 19 orphans behind.
	var fieldErrors []errs.FieldError
	for i, fileHeader := range files {
		if fieldErr := checkImage(fileHeader, fmt.Sprintf("images[%d]", i)); fieldErr != nil {
			fieldErrors = append(fieldErrors, *fieldErr)
		}
	}
	if len(fieldErrors) > 0 {
		return errs.NewUnprocessableEntityError("Validation failed", fieldErrors)
	}

	inputs := make([]storage.UploadInput, 0, len(files))
	readers := make([]multipart.File, 0, len(files))
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			return err
		}
		readers = append(readers, src)
		inputs = append(inputs, storage.UploadInput{
			Reader:      src,
			Size:        fileHeader.Size,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
	}

	uploaded, err := h.portfolio.UploadImages(c.Request().Context(), category, inputs)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, OK("Images uploaded successfully", uploaded))
}

// DeleteImageRequest identifies one stored object by its key.
type DeleteImageRequest struct {
	Key string `json:"key" validate:"required"`
}

func (r *DeleteImageRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteImage removes one portfolio image from the object store.
func (h *PortfolioHandler) DeleteImage(c echo.Context, req *DeleteImageRequest) error {
	return h.portfolio.DeleteImage(c.Request().Context(), req.Key)
}

// checkImage enforces the per-file size and content-type limits.
func checkImage(fileHeader *multipart.FileHeader, field string) *errs.FieldError {
	if fileHeader.Size > MaxImageSize {
		return &errs.FieldError{
			Field: field,
			Error: "must not exceed 5MB",
		}
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return &errs.FieldError{
			Field: field,
			Error: "must be a png, jpeg, webp or avif image",
		}
	}

	return nil
}
