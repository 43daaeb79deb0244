package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa911/contactapi/internal/api/constants"
	"github.com/osa911/contactapi/internal/api/dto/common"
	"github.com/osa911/contactapi/internal/api/dto/v1/contact"
	"github.com/osa911/contactapi/internal/models"
	"github.com/osa911/contactapi/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockSubmitter struct {
	err      error
	received []models.ContactSubmission
}

func (m *mockSubmitter) Submit(ctx context.Context, sub models.ContactSubmission) error {
	m.received = append(m.received, sub)
	return m.err
}

func (m *mockSubmitter) FailureMessage() string {
	return "Failed to send message. Please try again or contact us directly at hi@example.com."
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler("DeliaNexus")

	router := gin.New()
	router.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp common.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "DeliaNexus API is running", resp.Message)

	ts, err := time.Parse(time.RFC3339Nano, resp.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, resp.Timestamp)
}

func TestHealthTimestampNeverDecreases(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := []time.Time{
		base,
		base.Add(time.Second),
		base.Add(-time.Minute), // wall clock stepped back
		base.Add(2 * time.Second),
	}

	h := NewHealthHandler("X")
	i := 0
	h.now = func() time.Time {
		t := clock[i]
		i++
		return t
	}

	var last time.Time
	for range clock {
		ts := h.timestamp()
		assert.False(t, ts.Before(last), "timestamp went backwards: %s < %s", ts, last)
		last = ts
	}
	assert.Equal(t, base.Add(2*time.Second), last)
}

func newContactRouter(submitter ContactSubmitter, req *contact.ContactRequest) *gin.Engine {
	router := gin.New()
	h := NewContactHandler(submitter)
	router.POST("/api/contact", func(c *gin.Context) {
		if req != nil {
			c.Set(constants.ContextKeyContact, req)
		}
		c.Next()
	}, h.Submit)
	return router
}

func TestContactSubmit(t *testing.T) {
	validReq := &contact.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hi",
		Message: "Hello",
	}

	tests := []struct {
		name        string
		req         *contact.ContactRequest
		submitErr   error
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "success",
			req:         validReq,
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: common.MsgContactSuccess,
		},
		{
			name:        "dispatch failure",
			req:         validReq,
			submitErr:   &service.DispatchError{Admin: errors.New("dial tcp: i/o timeout")},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to send message. Please try again or contact us directly at hi@example.com.",
		},
		{
			name:        "not configured",
			req:         validReq,
			submitErr:   &service.ConfigurationError{Missing: []string{"SMTP_HOST"}},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: common.MsgNotConfigured,
		},
		{
			name:        "missing validated request",
			req:         nil,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: common.MsgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			submitter := &mockSubmitter{err: tt.submitErr}
			router := newContactRouter(submitter, tt.req)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.NotContains(t, w.Body.String(), "i/o timeout")
		})
	}
}
