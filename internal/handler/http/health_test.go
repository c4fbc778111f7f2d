package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_BothPathsRespondOK(t *testing.T) {
	router := newTestRouter(t, &mockTitleService{})

	for _, path := range []string{"/api/health", "/api/v1/health"} {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, path)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestBanner_ReportsVersion(t *testing.T) {
	router := newTestRouter(t, &mockTitleService{})

	rr := doRequest(t, router, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"JustWatch proxy is running","version":"test-version"}`, rr.Body.String())
}
