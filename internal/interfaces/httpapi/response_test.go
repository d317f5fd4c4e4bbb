package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/matchday/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad date", usecase.ErrInvalidInput), code: http.StatusBadRequest, status: "INVALID_ARGUMENT"},
		{name: "not found", err: fmt.Errorf("%w: team", usecase.ErrNotFound), code: http.StatusNotFound, status: "NOT_FOUND"},
		{name: "relay host", err: fmt.Errorf("%w: evil.example.com", errRelayHostForbidden), code: http.StatusForbidden, status: "PERMISSION_DENIED"},
		{name: "dependency", err: usecase.ErrDependencyUnavailable, code: http.StatusServiceUnavailable, status: "UNAVAILABLE"},
		{name: "unknown", err: errors.New("db password leaked in message"), code: http.StatusInternalServerError, status: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			if rec.Code != tt.code {
				t.Fatalf("expected status %d, got %d", tt.code, rec.Code)
			}

			var body googleResponseEnvelope
			if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal response body: %v", err)
			}
			if body.Error == nil || body.Error.Status != tt.status {
				t.Fatalf("unexpected error body %+v", body.Error)
			}
			if tt.code == http.StatusInternalServerError && body.Error.Message != "internal server error" {
				t.Fatalf("internal error message leaked: %q", body.Error.Message)
			}
		})
	}
}
