package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindset/internal/delivery/http/validator"
	"mindset/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLedgerUsecase records the input it was called with.
type stubLedgerUsecase struct {
	recorded *usecase.RecordPaymentInput
	err      error
}

func (s *stubLedgerUsecase) RecordPayment(ctx context.Context, input *usecase.RecordPaymentInput) error {
	s.recorded = input

	return s.err
}

func newPaymentTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPaymentHandler_RecordPayment_Success(t *testing.T) {
	stub := &stubLedgerUsecase{}
	h := NewPaymentHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newPaymentTestContext(t, `{"userId":"user-1","paymentId":"pay_123","amount":49.99}`)

	err := h.RecordPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.recorded)
	assert.Equal(t, "user-1", stub.recorded.UserID)
	assert.Equal(t, "pay_123", stub.recorded.PaymentID)
	assert.Contains(t, rec.Body.String(), "pay_123")
}

func TestPaymentHandler_RecordPayment_MalformedBody(t *testing.T) {
	stub := &stubLedgerUsecase{}
	h := NewPaymentHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newPaymentTestContext(t, `{"userId": not-json`)

	err := h.RecordPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.recorded)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestPaymentHandler_RecordPayment_MissingFields(t *testing.T) {
	stub := &stubLedgerUsecase{}
	h := NewPaymentHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newPaymentTestContext(t, `{"amount":49.99}`)

	err := h.RecordPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.recorded)
}
