package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	request "quoteforge/internal/adapter/http/dto/request"
	response "quoteforge/internal/adapter/http/dto/response"
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase"
	"quoteforge/internal/usecase/interfaces"
	"quoteforge/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxBatchFiles         = 10
	defaultMaxUploadBytes = 50 << 20 // 50MB, multipart limit for drawings
	uploadFieldName       = "drawing"
	batchUploadFieldName  = "drawings"
)

var (
	errNoFileUploaded      = pkg.NewDomainErrorSimple("NO_FILE", "No file uploaded", http.StatusBadRequest)
	errUnsupportedFileType = pkg.NewDomainErrorSimple("UNSUPPORTED_FILE_TYPE", "Only images and PDFs are allowed", http.StatusBadRequest)
	errFileTooLarge        = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "Uploaded file exceeds the size limit", http.StatusRequestEntityTooLarge)
	errInvalidStatusBody   = pkg.NewDomainErrorSimple("INVALID_STATUS_PAYLOAD", "Invalid status payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for drawing quotations.

type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	drawings interfaces.IDrawingRepository
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, drawings interfaces.IDrawingRepository) *QuoteHandler {
	return &QuoteHandler{usecase: uc, drawings: drawings}
}

// UploadAndQuote receives one drawing (multipart field "drawing"), records it
// and runs the quotation pipeline.
func (h *QuoteHandler) UploadAndQuote(c *gin.Context) {
	file, header, err := c.Request.FormFile(uploadFieldName)
	if err != nil {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}
	defer file.Close()

	if appErr := validateUpload(header); appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Failed to read uploaded file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] upload received file=%s size=%d", header.Filename, len(data))

	drawingID := h.registerDrawing(c.Request.Context(), header.Filename)

	result, err := h.usecase.GenerateQuote(c.Request.Context(), usecase.DrawingSource{
		DrawingID: drawingID,
		FileName:  header.Filename,
		MediaType: mediaTypeForFile(header.Filename),
		Data:      data,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteResult(result, drawingID))
}

// BatchQuotes receives up to 10 drawings (multipart field "drawings") and
// returns the successfully generated subset, in upload order.
func (h *QuoteHandler) BatchQuotes(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}

	files := form.File[batchUploadFieldName]
	if len(files) == 0 {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}
	if len(files) > maxBatchFiles {
		appErr := pkg.NewDomainErrorSimple("TOO_MANY_FILES", "Batch accepts at most 10 drawings", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sources := make([]usecase.DrawingSource, 0, len(files))
	for _, header := range files {
		if appErr := validateUpload(header); appErr != nil {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		file, err := header.Open()
		if err != nil {
			appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Failed to read uploaded file", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			appErr := pkg.NewDomainError("UPLOAD_READ_FAILED", "Failed to read uploaded file", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		sources = append(sources, usecase.DrawingSource{
			DrawingID: h.registerDrawing(c.Request.Context(), header.Filename),
			FileName:  header.Filename,
			MediaType: mediaTypeForFile(header.Filename),
			Data:      data,
		})
	}

	log.Printf("[quote][handler] batch received files=%d", len(sources))

	results := h.usecase.GenerateBulkQuotes(c.Request.Context(), sources)

	quotes := make([]response.QuoteResultResponse, 0, len(results))
	for _, r := range results {
		quotes = append(quotes, response.FromQuoteResult(r, ""))
	}

	c.JSON(http.StatusOK, response.BulkQuotesResponse{
		Message: "Generated " + strconv.Itoa(len(quotes)) + " quotes",
		Quotes:  quotes,
	})
}

// GetQuote returns a persisted quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateStatus applies a reviewer status to a quote.
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusBody.HTTPStatus, errInvalidStatusBody.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), c.Param("quote_id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// registerDrawing records the upload before the pipeline runs. The record is
// best-effort: when the write fails the quote is still generated, just not
// linked to a drawing id.
func (h *QuoteHandler) registerDrawing(ctx context.Context, fileName string) string {
	if h.drawings == nil {
		return ""
	}

	now := time.Now().UTC()
	fileType := "image"
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		fileType = "pdf"
	}

	d := entities.Drawing{
		ID:         uuid.NewString(),
		FileName:   fileName,
		FileType:   fileType,
		Status:     entities.DrawingStatusProcessing,
		UploadedAt: now,
		CreatedAt:  now,
	}
	if _, err := h.drawings.Create(ctx, d); err != nil {
		log.Printf("[quote][handler] drawing record create failed file=%s err=%v", fileName, err)
		return ""
	}
	return d.ID
}

func validateUpload(header *multipart.FileHeader) *pkg.AppError {
	if !isAllowedDrawingFile(header.Filename) {
		return errUnsupportedFileType
	}
	if header.Size > maxUploadBytes() {
		return errFileTooLarge
	}
	return nil
}

func isAllowedDrawingFile(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".pdf":
		return true
	}
	return false
}

func mediaTypeForFile(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	}
	return "image/jpeg"
}

func maxUploadBytes() int64 {
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxUploadBytes
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrEmptyDrawing):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of reviewed, approved, rejected, finalized", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteStatusTransition):
		return pkg.NewDomainErrorSimple("STATUS_TRANSITION_NOT_ALLOWED", "Requested status does not follow the quote lifecycle", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSpecExtractionFailed):
		return pkg.NewDomainError("SPEC_EXTRACTION_FAILED", "Failed to extract specifications from drawing", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSpecValidationFailed):
		return pkg.NewDomainError("SPEC_VALIDATION_FAILED", "Failed to validate extracted specifications", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrCostCalculationFailed):
		return pkg.NewDomainError("COST_CALCULATION_FAILED", "Failed to calculate cost from specifications", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
