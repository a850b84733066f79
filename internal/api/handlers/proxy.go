package handlers

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iby-sports/gridiron-analytics/pkg/utils"
)

// ProxyHandler forwards GET requests to allowlisted third-party APIs so the
// browser frontend can reach them without tripping cross-origin rules. API
// keys that the upstream expects in headers are injected here instead of
// being shipped to the client.
type ProxyHandler struct {
	client       *http.Client
	allowedHosts map[string]bool
	apiSportsKey string
	limiter      *rate.Limiter
	logger       *logrus.Logger
}

// NewProxyHandler creates the proxy endpoint handler
func NewProxyHandler(allowedHosts []string, apiSportsKey string, limit float64, burst int, logger *logrus.Logger) *ProxyHandler {
	allowed := make(map[string]bool, len(allowedHosts))
	for _, host := range allowedHosts {
		allowed[strings.TrimSpace(host)] = true
	}
	return &ProxyHandler{
		client:       &http.Client{Timeout: 10 * time.Second},
		allowedHosts: allowed,
		apiSportsKey: apiSportsKey,
		limiter:      rate.NewLimiter(rate.Limit(limit), burst),
		logger:       logger,
	}
}

// Handle proxies one GET request given by the url query parameter
func (h *ProxyHandler) Handle(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		utils.SendValidationError(c, "missing url parameter", "")
		return
	}

	target, err := url.Parse(rawURL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") {
		utils.SendValidationError(c, "invalid url parameter", rawURL)
		return
	}
	if !h.allowedHosts[target.Hostname()] {
		utils.SendForbidden(c, "host not allowed: "+target.Hostname())
		return
	}
	if !h.limiter.Allow() {
		utils.SendRateLimited(c, "proxy rate limit exceeded")
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		utils.SendInternalError(c, "failed to build upstream request")
		return
	}
	req.Header.Set("User-Agent", "gridiron-analytics/1.0")
	h.injectHeaders(req, target.Hostname())

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.WithError(err).WithField("target", target.Hostname()).Warn("Proxy upstream request failed")
		utils.SendBadGateway(c, "upstream request failed")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.SendBadGateway(c, "failed to read upstream response")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, body)
}

// injectHeaders adds API-key headers the upstream expects. The Odds API key
// travels as a query parameter on the target URL and passes through as-is.
func (h *ProxyHandler) injectHeaders(req *http.Request, host string) {
	if strings.HasSuffix(host, "api-sports.io") && h.apiSportsKey != "" {
		req.Header.Set("x-rapidapi-key", h.apiSportsKey)
		req.Header.Set("x-rapidapi-host", host)
	}
}
