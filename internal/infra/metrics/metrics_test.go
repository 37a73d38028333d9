package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"arena/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMetrics_Counts(t *testing.T) {
	registry := NewRegistry()
	m := NewAuthMetrics(registry).(*authMetrics)

	m.ObserveFederation(entity.AuthSourceGitHub, entity.ResultSuccess)
	m.ObserveFederation(entity.AuthSourceGitHub, entity.ResultSuccess)
	m.ObserveFederation(entity.AuthSourceFortyTwo, entity.ResultProviderError)
	m.ObserveLogin(entity.ResultUnauthorized)
	m.ObserveTOTP("enroll", entity.ResultSuccess)

	assert.InDelta(t, 2, testutil.ToFloat64(m.federationTotal.WithLabelValues("GITHUB", "SUCCESS")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.federationTotal.WithLabelValues("FORTY_TWO", "PROVIDER_ERROR")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.loginTotal.WithLabelValues("UNAUTHORIZED")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.totpTotal.WithLabelValues("enroll", "SUCCESS")), 0)
}

func TestHandler_ExposesCounters(t *testing.T) {
	registry := NewRegistry()
	NewAuthMetrics(registry).ObserveLogin(entity.ResultSuccess)

	rec := httptest.NewRecorder()
	NewHandler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `arena_logins_total{result="SUCCESS"} 1`)
}
