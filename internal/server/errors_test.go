package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/ketukakahala/rentalops/internal/invoice/domain"
	subscriptiondomain "github.com/ketukakahala/rentalops/internal/subscription/domain"
	"github.com/stretchr/testify/require"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		AbortWithError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorMappingNotFound(t *testing.T) {
	w := performWithError(t, invoicedomain.ErrInvoiceNotFound)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"invoice_not_found"}`, w.Body.String())

	w = performWithError(t, subscriptiondomain.ErrSubscriptionNotFound)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"subscription_not_found"}`, w.Body.String())
}

func TestErrorMappingValidation(t *testing.T) {
	w := performWithError(t, invoicedomain.ErrInvalidAmount)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"invalid_amount"}`, w.Body.String())

	w = performWithError(t, errInvalidRequestBody)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"invalid_request_body"}`, w.Body.String())
}

func TestErrorMappingWrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), invoicedomain.ErrInvoiceNotFound)
	w := performWithError(t, wrapped)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorMappingUnknownIsInternal(t *testing.T) {
	w := performWithError(t, errors.New("disk on fire"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestSuccessfulHandlerUntouched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}
