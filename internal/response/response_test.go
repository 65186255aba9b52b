package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"hello": "world"})
	})
	r.GET("/fail", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"name": "name is a required field"})
	})
	return r
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "trace-42")
	newEngine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "trace-42", w.Header().Get(HeaderRequestID))

	var body struct {
		Data     map[string]string `json:"data"`
		Error    *ErrorBody        `json:"error"`
		Metadata Metadata          `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body.Data["hello"])
	assert.Nil(t, body.Error)
	assert.Equal(t, "trace-42", body.Metadata.RequestID)
	assert.NotEmpty(t, body.Metadata.Timestamp)
}

func TestFailEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrValidation, body.Error.Code)
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
	assert.Contains(t, body.Error.Fields, "name")
	assert.Nil(t, body.Data)
}

func TestRequestIDReplacesMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "absent", header: "", keep: false},
		{name: "uuid", header: "6f1c7b4e-2a4e-4d8e-9d0f-0b8c7e1a2b3c", keep: true},
		{name: "spaces", header: "not allowed", keep: false},
		{name: "too long", header: strings.Repeat("a", maxRequestIDLen+1), keep: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			newEngine().ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			assert.NotEmpty(t, got)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestAbortFailWithoutRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	var reached bool
	r.GET("/limited",
		func(c *gin.Context) { AbortFail(c, http.StatusTooManyRequests, ErrRateLimitExceeded) },
		func(c *gin.Context) { reached = true },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, reached)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrRateLimitExceeded, body.Error.Code)
	assert.Empty(t, body.Error.Fields)
	assert.NotEmpty(t, body.Metadata.RequestID)
}
