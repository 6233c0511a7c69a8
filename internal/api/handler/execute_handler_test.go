package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/internal/models"
	"mindcare/internal/service"
	"mindcare/internal/util"
)

type stubAdviser struct {
	result string
	err    error
	calls  int
	last   string
}

func (s *stubAdviser) Advise(_ context.Context, query string) (string, error) {
	s.calls++
	s.last = query
	return s.result, s.err
}

func newExecuteRouter(adviser Adviser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/execute", NewExecuteHandler(adviser).Execute)
	return router
}

func postExecute(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("POST", "/api/execute", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestExecute_Success(t *testing.T) {
	adviser := &stubAdviser{result: "Try deep breathing..."}
	router := newExecuteRouter(adviser)

	rr := postExecute(t, router, `{"query": "I feel anxious about work"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.ExecuteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Try deep breathing...", resp.Result)
	assert.Equal(t, 1, adviser.calls)
	assert.Equal(t, "I feel anxious about work", adviser.last)
}

func TestExecute_MissingQuery(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty query", `{"query": ""}`},
		{"whitespace query", `{"query": "   \t\n"}`},
		{"query is null", `{"query": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adviser := &stubAdviser{result: "should not be called"}
			router := newExecuteRouter(adviser)

			rr := postExecute(t, router, tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, util.MsgMissingQuery, resp.Error)
			assert.Zero(t, adviser.calls, "adviser must not be invoked for invalid input")
		})
	}
}

func TestExecute_InvalidJSON(t *testing.T) {
	adviser := &stubAdviser{}
	router := newExecuteRouter(adviser)

	rr := postExecute(t, router, `{"query": `)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, util.MsgInvalidBody, resp.Error)
	assert.Zero(t, adviser.calls)
}

func TestExecute_NotInitialized(t *testing.T) {
	router := newExecuteRouter(nil)

	rr := postExecute(t, router, `{"query": "I feel anxious about work"}`)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, util.MsgNotInitialized, resp.Error)
}

func TestExecute_ModelUnavailable(t *testing.T) {
	adviser := &stubAdviser{
		err: fmt.Errorf("%w: model is overloaded", service.ErrUnavailable),
	}
	router := newExecuteRouter(adviser)

	rr := postExecute(t, router, `{"query": "I feel anxious about work"}`)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code, "recognized API errors must not surface as 500")

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "model is overloaded")
}

func TestExecute_UnclassifiedError(t *testing.T) {
	adviser := &stubAdviser{err: errors.New("pq: connection reset by peer")}
	router := newExecuteRouter(adviser)

	rr := postExecute(t, router, `{"query": "I feel anxious about work"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, util.MsgInternalError, resp.Error)
	assert.NotContains(t, rr.Body.String(), "connection reset", "internal detail must not leak to the caller")
}
