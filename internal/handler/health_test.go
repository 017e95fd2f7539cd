package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowldevx/lakbayregion8/internal/handler"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockDestinationServicer{}), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthBody
	decode(t, rec, &body)
	require.Equal(t, "ok", body.Status)
}

// TestGetHealth_failingCheckReturns503 verifies that one failing dependency
// degrades the whole response while the other checks are still reported.
func TestGetHealth_failingCheckReturns503(t *testing.T) {
	h := newHTTPHandlerWith(&mockDestinationServicer{}, handler.Options{Checks: map[string]handler.Checker{
		"postgres": pingFunc(func(ctx context.Context) error { return nil }),
		"redis":    pingFunc(func(ctx context.Context) error { return errors.New("dial tcp: refused") }),
	}})

	rec := do(t, h, "/healthz")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body healthBody
	decode(t, rec, &body)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "fail"}, body.Checks)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := do(t, newHTTPHandler(&mockDestinationServicer{}), "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
