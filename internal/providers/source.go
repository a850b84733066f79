package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

// ErrMalformed marks a response body that did not match the expected shape.
// Parse failures are treated like any other source failure by the caller.
var ErrMalformed = errors.New("malformed response payload")

// Source is one remote endpoint candidate for a set of data kinds. A source
// only builds requests and maps raw payloads into the canonical Result; the
// fetch loop, retries and rate limiting live in the provider service.
type Source interface {
	Name() string
	Supports(kind models.DataKind, league models.League) bool
	NewRequest(ctx context.Context, kind models.DataKind, params models.FetchParams) (*http.Request, error)
	Parse(kind models.DataKind, body []byte) (*models.Result, error)
}

// QuotaDetector is implemented by sources whose API reports usage-credit
// exhaustion with a recognizable error code. A detected quota error disables
// the source for the remainder of the session.
type QuotaDetector interface {
	IsQuotaError(statusCode int, body []byte) bool
}
