package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proxyTestRouter(allowedHosts []string, apiSportsKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := NewProxyHandler(allowedHosts, apiSportsKey, 100, 100, log)
	router := gin.New()
	router.GET("/api/proxy", handler.Handle)
	return router
}

func TestProxyRequiresURLParameter(t *testing.T) {
	router := proxyTestRouter(nil, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/proxy", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProxyRejectsInvalidURL(t *testing.T) {
	router := proxyTestRouter(nil, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape("ftp://example.com/file"), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProxyRejectsDisallowedHost(t *testing.T) {
	router := proxyTestRouter([]string{"site.api.espn.com"}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape("https://evil.example.com/steal"), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProxyForwardsToAllowedHost(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/scoreboard", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("week"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer upstream.Close()

	upstreamURL, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	router := proxyTestRouter([]string{upstreamURL.Hostname()}, "")

	w := httptest.NewRecorder()
	target := upstream.URL + "/v2/scoreboard?week=9"
	req := httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape(target), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"ok": true}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestProxyInjectsAPISportsHeaders(t *testing.T) {
	var gotKey, gotHost string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	upstreamURL, err := url.Parse(upstream.URL)
	require.NoError(t, err)

	// Header injection keys off the host suffix; the loopback host used by
	// the test server must not receive any credentials.
	router := proxyTestRouter([]string{upstreamURL.Hostname()}, "secret-key")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/proxy?url="+url.QueryEscape(upstream.URL), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotKey)
	assert.Empty(t, gotHost)
}

func TestProxyRateLimit(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	upstreamURL, err := url.Parse(upstream.URL)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	// Burst of one and effectively no refill
	handler := NewProxyHandler([]string{upstreamURL.Hostname()}, "", 0.0001, 1, log)
	router := gin.New()
	router.GET("/api/proxy", handler.Handle)

	target := url.QueryEscape(upstream.URL)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/proxy?url="+target, nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/proxy?url="+target, nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
