package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/lcsync/internal/api/shared"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	l, buf := logger.NewTestLogger(t)

	var traceID string
	handler := TraceMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Len(t, traceID, 36)
	assert.Equal(t, traceID, rr.Header().Get("X-Trace-Id"))
	logger.AssertLogField(t, buf, "trace_id", traceID)
	logger.AssertLogContains(t, buf, "inside handler")
}
