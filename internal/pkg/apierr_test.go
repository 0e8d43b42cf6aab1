package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func writeErrorResponse(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteError(c, err)
	return w
}

func TestWriteErrorTyped(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{Unauthorized("no token"), http.StatusUnauthorized},
		{BadRequest("bad input"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
	}

	for _, tt := range tests {
		w := writeErrorResponse(t, tt.err)
		if w.Code != tt.wantStatus {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.wantStatus)
		}

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Success {
			t.Error("success must be false on error responses")
		}
		if body.Message != tt.err.Error() {
			t.Errorf("message = %q, want %q", body.Message, tt.err.Error())
		}
	}
}

func TestWriteErrorFallback(t *testing.T) {
	w := writeErrorResponse(t, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
