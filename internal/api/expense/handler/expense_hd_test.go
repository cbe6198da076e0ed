package expenseHandler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"DompetCurhat/internal/middleware"
	"DompetCurhat/pkg/nlp"
	"DompetCurhat/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpenseService struct{}

func (s *stubExpenseService) ExtractExpenses(_ context.Context, _ string) []nlp.ExpenseExtraction {
	return []nlp.ExpenseExtraction{}
}

func (s *stubExpenseService) ValidateExtraction(_ *nlp.ExpenseExtraction) (bool, string) {
	return true, "Extraction validated successfully"
}

func (s *stubExpenseService) ParseReceiptText(_ context.Context, _ string) nlp.ReceiptData {
	return nlp.ReceiptData{StoreName: "Unknown Store", Items: []nlp.ReceiptItem{}}
}

func (s *stubExpenseService) ScanReceipt(_ context.Context, _ string) nlp.ReceiptData {
	return nlp.ReceiptData{StoreName: "Unknown Store", Items: []nlp.ReceiptItem{}}
}

func (s *stubExpenseService) FormatReceiptConfirmation(_ nlp.ReceiptData) string {
	return ""
}

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})

	h := New(logger, validator.New(), middleware.New(logger), &stubExpenseService{}, utils.New())
	h.Start(app.Group("/api/v1"))

	return app
}

func multipartImageBody(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="receipt.jpg"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestScanReceiptFileValidation(t *testing.T) {
	t.Run("oversized upload reports file too large", func(t *testing.T) {
		app := newTestApp()

		body, contentType := multipartImageBody(t, "image/jpeg", 6*1024*1024)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/receipt/scan", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req, 5000)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(respBody), "File too large")
	})

	t.Run("non-image upload reports invalid file type", func(t *testing.T) {
		app := newTestApp()

		body, contentType := multipartImageBody(t, "application/pdf", 1024)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/receipt/scan", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req, 5000)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(respBody), "Invalid file type")
	})

	t.Run("valid upload reaches the service", func(t *testing.T) {
		app := newTestApp()

		body, contentType := multipartImageBody(t, "image/jpeg", 1024)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expense/receipt/scan", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req, 5000)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
