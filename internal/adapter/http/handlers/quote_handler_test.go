package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteforge/internal/adapter/http/handlers/mocks"
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("failed building multipart body: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("failed writing multipart part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed closing multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestQuoteHandler_UploadAndQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/upload", h.UploadAndQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/upload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/upload", h.UploadAndQuote)

		body, contentType := multipartBody(t, "drawing", map[string][]byte{"part.exe": []byte("bin")})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("pipeline success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, source usecase.DrawingSource) (entities.QuoteResult, error) {
				if source.FileName != "part.png" {
					t.Fatalf("expected part.png, got %q", source.FileName)
				}
				if source.MediaType != "image/png" {
					t.Fatalf("expected image/png, got %q", source.MediaType)
				}
				if string(source.Data) != "png-bytes" {
					t.Fatalf("unexpected file data: %q", source.Data)
				}
				return entities.QuoteResult{QuoteID: "q-1", BaseCost: 110.5, FinalPrice: 116.025}, nil
			})

		r := gin.New()
		r.POST("/v1/quotes/upload", h.UploadAndQuote)

		body, contentType := multipartBody(t, "drawing", map[string][]byte{"part.png": []byte("png-bytes")})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["quote_id"] != "q-1" {
			t.Fatalf("expected quote_id q-1, got %v", resp["quote_id"])
		}
	})

	t.Run("extraction failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(entities.QuoteResult{}, usecase.ErrSpecExtractionFailed)

		r := gin.New()
		r.POST("/v1/quotes/upload", h.UploadAndQuote)

		body, contentType := multipartBody(t, "drawing", map[string][]byte{"part.pdf": []byte("pdf")})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_BatchQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/batch", h.BatchQuotes)

		body, contentType := multipartBody(t, "other_field", map[string][]byte{"part.png": []byte("a")})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/batch", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("too many files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/quotes/batch", h.BatchQuotes)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for i := 0; i < 11; i++ {
			part, err := writer.CreateFormFile("drawings", "part"+string(rune('a'+i))+".png")
			if err != nil {
				t.Fatalf("failed building multipart body: %v", err)
			}
			if _, err := part.Write([]byte("x")); err != nil {
				t.Fatalf("failed writing multipart part: %v", err)
			}
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("failed closing multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/batch", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial success reports generated count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GenerateBulkQuotes(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, sources []usecase.DrawingSource) []entities.QuoteResult {
				if len(sources) != 3 {
					t.Fatalf("expected 3 sources, got %d", len(sources))
				}
				return []entities.QuoteResult{{QuoteID: "q-1"}, {QuoteID: "q-3"}}
			})

		r := gin.New()
		r.POST("/v1/quotes/batch", h.BatchQuotes)

		body, contentType := multipartBody(t, "drawings", map[string][]byte{
			"a.png": []byte("a"),
			"b.png": []byte("b"),
			"c.png": []byte("c"),
		})
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/batch", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var resp struct {
			Message string           `json:"message"`
			Quotes  []map[string]any `json:"quotes"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp.Message != "Generated 2 quotes" {
			t.Fatalf("unexpected message: %q", resp.Message)
		}
		if len(resp.Quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(resp.Quotes))
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GetQuote(gomock.Any(), "q-missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{
			ID:         "q-1",
			FinalPrice: 116.025,
			Currency:   "USD",
			Status:     entities.QuoteStatusGenerated,
		}, nil)

		r := gin.New()
		r.GET("/v1/quotes/:quote_id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["quote_id"] != "q-1" || resp["status"] != "generated" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestQuoteHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "deleted").Return(entities.Quote{}, usecase.ErrInvalidQuoteStatus)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"deleted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "finalized").Return(entities.Quote{}, usecase.ErrQuoteStatusTransition)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"finalized"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "reviewed").Return(entities.Quote{
			ID:     "q-1",
			Status: entities.QuoteStatusReviewed,
		}, nil)

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"Reviewed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["status"] != "reviewed" {
			t.Fatalf("expected reviewed, got %v", resp["status"])
		}
	})

	t.Run("unexpected error maps to internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, nil)

		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "reviewed").Return(entities.Quote{}, errors.New("dynamo down"))

		r := gin.New()
		r.PUT("/v1/quotes/:quote_id/status", h.UpdateStatus)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"reviewed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
