package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/learn-track/server/pkg/errors"
)

func init() {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

func TestResponse_Structure(t *testing.T) {
	resp := Response{
		Success:   true,
		Data:      map[string]string{"key": "value"},
		RequestID: "test-request-id",
	}

	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Data == nil {
		t.Error("Data should not be nil")
	}
	if resp.RequestID != "test-request-id" {
		t.Errorf("RequestID = %v, want test-request-id", resp.RequestID)
	}
}

func TestSuccessResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "test-123")

	data := map[string]string{"status": "ok"}
	SuccessResponse(c, data)

	if w.Code != http.StatusOK {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusOK)
	}

	if w.Header().Get("Content-Type") != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %v, want application/json", w.Header().Get("Content-Type"))
	}
}

func TestCreatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "test-201")

	CreatedResponse(c, map[string]string{"id": "abc"})

	if w.Code != http.StatusCreated {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusCreated)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "test-456")

	err := errors.ErrInvalidInput
	ErrorResponse(c, err)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestErrorResponse_StandardError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "test-789")

	err := errors.New("CUSTOM_ERROR", "Custom error message", http.StatusInternalServerError)
	ErrorResponse(c, err)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "page-123")

	data := []map[string]string{
		{"id": "1", "name": "Item 1"},
		{"id": "2", "name": "Item 2"},
	}

	PaginatedResponse(c, data, 10, 0, 25)

	if w.Code != http.StatusOK {
		t.Errorf("Status code = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestPaginationResponse_Structure(t *testing.T) {
	resp := PaginationResponse{
		Success: true,
		Data:    []string{"item1", "item2", "item3"},
		Pagination: PaginationInfo{
			Limit:      10,
			Offset:     20,
			TotalItems: 50,
		},
		RequestID: "page-request",
	}

	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Pagination.Limit != 10 {
		t.Errorf("Pagination.Limit = %v, want 10", resp.Pagination.Limit)
	}
	if resp.Pagination.Offset != 20 {
		t.Errorf("Pagination.Offset = %v, want 20", resp.Pagination.Offset)
	}
	if resp.Pagination.TotalItems != 50 {
		t.Errorf("Pagination.TotalItems = %v, want 50", resp.Pagination.TotalItems)
	}
}

func TestGetRequestID_Exists(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("request_id", "existing-id")

	requestID := GetRequestID(c)
	if requestID != "existing-id" {
		t.Errorf("RequestID = %v, want existing-id", requestID)
	}
}

func TestGetRequestID_Generated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	// Don't set request_id

	requestID := GetRequestID(c)
	if requestID == "" {
		t.Error("RequestID should be generated if not exists")
	}

	// Check if it's a valid UUID format (simple check)
	if len(requestID) < 10 {
		t.Error("Generated RequestID seems too short")
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", "user-123")

	userID := GetUserID(c)
	if userID != "user-123" {
		t.Errorf("UserID = %v, want user-123", userID)
	}
}

func TestGetUserID_NotSet(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID := GetUserID(c)
	if userID != "" {
		t.Errorf("UserID should be empty when not set, got %v", userID)
	}
}

func TestResponse_WithError(t *testing.T) {
	resp := Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    "VALIDATION_ERROR",
			Message: "Invalid input",
			Details: map[string]string{"field": "email", "reason": "invalid format"},
		},
		RequestID: "error-request",
	}

	if resp.Success {
		t.Error("Success should be false for error response")
	}
	if resp.Error == nil {
		t.Error("Error should not be nil")
	}
	if resp.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("Error.Code = %v, want VALIDATION_ERROR", resp.Error.Code)
	}
}
