package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/shoppinglist/pkg/logger"
	itemdomain "github.com/ghuser/shoppinglist/services/item/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound, MsgItemNotFound},
		{"ErrItemAlreadyExists", itemdomain.ErrItemAlreadyExists, http.StatusConflict, MsgItemAlreadyExists},
		{"ErrInvalidItemName", itemdomain.ErrInvalidItemName, http.StatusBadRequest, MsgItemNameRequired},
		{"wrapped ErrItemNotFound", fmt.Errorf("update item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound, MsgItemNotFound},
		{"wrapped ErrInvalidItemName", fmt.Errorf("%w: empty", itemdomain.ErrInvalidItemName), http.StatusBadRequest, MsgItemNameRequired},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "something unexpected"},
	}

	errw := NewWriter(logger.Discard(), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			errw.WriteError(w, httptest.NewRequest(http.MethodGet, "/api/items", nil), tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestWriteError_ProductionHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	NewWriter(logger.Discard(), true).WriteError(w,
		httptest.NewRequest(http.MethodGet, "/api/items", nil),
		fmt.Errorf("list items: %w", errors.New("lock poisoned")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != "Internal Server Error" {
		t.Errorf("error = %q, want generic message", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	NewWriter(logger.Discard(), false).WriteError(w, httptest.NewRequest(http.MethodGet, "/", nil), itemdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
