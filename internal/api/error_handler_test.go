package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pharmaplus/pharmacy-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrProductExists, http.StatusConflict},
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrOrderNotFound, http.StatusNotFound},
		{domain.ErrInventoryItemNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["success"] != false {
			t.Errorf("%v: expected success=false envelope", tc.err)
		}
		if body["error"] == "" {
			t.Errorf("%v: empty error message", tc.err)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(domain.ErrInvalidTransition, errors.New("from shipped to pending"))
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestErrorHandler_MissingSecretHidesDetail(t *testing.T) {
	rec, body := renderError(t, domain.ErrMissingJWTSecret)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "server configuration error" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	rec, body := renderError(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %v", body["error"])
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "token expired"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "token expired" {
		t.Fatalf("unexpected message: %v", body["error"])
	}
}
