package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voice-enhancer/internal/api/errors"
)

type sampleRequest struct {
	OriginalText string `json:"originalText" binding:"required"`
	EnhancedText string `json:"enhancedText" binding:"required"`
	Persona      string `json:"persona" binding:"required"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(zap.NewNop()))
	r.POST("/validate", func(c *gin.Context) {
		var req sampleRequest
		if err := ValidateRequest(c, &req); err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic(stderrors.New("database is on fire"))
	})
	r.GET("/plain-error", func(c *gin.Context) {
		HandleError(c, stderrors.New("sql: connection refused"))
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errors.APIError {
	t.Helper()
	var body errors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectStatus  int
		expectField   string
		expectMessage string
	}{
		{
			name:         "valid_body",
			body:         `{"originalText":"a","enhancedText":"b","persona":"c"}`,
			expectStatus: http.StatusOK,
		},
		{
			name:          "empty_first_field",
			body:          `{"originalText":"","enhancedText":"b","persona":"c"}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "originalText",
			expectMessage: "originalText is required",
		},
		{
			name:          "first_failing_field_in_declaration_order",
			body:          `{"originalText":"a"}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "enhancedText",
			expectMessage: "enhancedText is required",
		},
		{
			name:          "empty_body_validated_as_empty_object",
			body:          ``,
			expectStatus:  http.StatusBadRequest,
			expectField:   "originalText",
			expectMessage: "originalText is required",
		},
		{
			name:          "wrong_type",
			body:          `{"originalText":"a","enhancedText":"b","persona":7}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "persona",
			expectMessage: "persona must be a string",
		},
		{
			name:          "missing_field_declared_before_mistyped_field",
			body:          `{"persona":5}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "originalText",
			expectMessage: "originalText is required",
		},
		{
			name:          "empty_field_declared_before_mistyped_field",
			body:          `{"originalText":"a","enhancedText":"","persona":7}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "enhancedText",
			expectMessage: "enhancedText is required",
		},
		{
			name:          "mistyped_field_declared_first",
			body:          `{"originalText":5}`,
			expectStatus:  http.StatusBadRequest,
			expectField:   "originalText",
			expectMessage: "originalText must be a string",
		},
		{
			name:          "malformed_json",
			body:          `{"originalText":`,
			expectStatus:  http.StatusBadRequest,
			expectMessage: errors.MsgInvalidRequestBody,
		},
	}

	r := newRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.expectStatus, w.Code, w.Body.String())
			if tt.expectStatus == http.StatusOK {
				return
			}
			body := decodeError(t, w)
			assert.Equal(t, tt.expectField, body.Field)
			assert.Equal(t, tt.expectMessage, body.Message)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, errors.MsgInternal, body.Message)
	assert.NotContains(t, w.Body.String(), "fire")

	// The router keeps serving after a panic.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain-error", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errors.MsgInternal, decodeError(t, w).Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.POST("/api/transcriptions", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/transcriptions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}
