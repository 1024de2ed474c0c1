package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ethpandaops/benchreport/internal/benchmark"
	"github.com/ethpandaops/benchreport/internal/benchmark/catalog"
	"github.com/ethpandaops/benchreport/internal/benchmark/evaluation"
	"github.com/ethpandaops/benchreport/internal/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, ids []string) (evaluation.MeasurementSet, error) {
	r.calls = append(r.calls, ids)

	records := make([]evaluation.MeasurementRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, evaluation.MeasurementRecord{ID: id, Executed: true, Duration: 0.01, Limit: 1})
	}

	return evaluation.MeasurementSet{Records: records, Score: float64(len(ids))}, nil
}

func newTestServer(t *testing.T, perMinute int) (http.Handler, *recordingRunner) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	runner := &recordingRunner{}
	svc := benchmark.NewService(log, catalog.Default(), runner, i18n.Default())

	return New(log, ":0", svc, perMinute).Handler(), runner
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, 0)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestTests(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t, 0)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tests", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []testInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	require.Len(t, body, catalog.Default().Len())
	assert.Equal(t, catalog.ProbeProcessor, body[0].ID)
	assert.Equal(t, "Processor", body[0].Name)
}

func TestReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      func() *http.Request
		expected []string
	}{
		{
			name: "repeated query values",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/report?tests=memory&tests=processor", nil)
			},
			expected: []string{catalog.ProbeProcessor, catalog.ProbeMemory},
		},
		{
			name: "comma separated with unknown id",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/report?tests=httpget,bogus", nil)
			},
			expected: []string{catalog.ProbeHTTPGet},
		},
		{
			name: "form post",
			req: func() *http.Request {
				form := url.Values{"tests": {"dnslookup"}}
				req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			expected: []string{catalog.ProbeDNSLookup},
		},
		{
			name: "no selection runs everything",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/api/report", nil)
			},
			expected: catalog.Default().IDs(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, runner := newTestServer(t, 0)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, tt.req())
			require.Equal(t, http.StatusOK, w.Code)

			var doc struct {
				RunID   string             `json:"runId"`
				Rows    []evaluation.Row   `json:"rows"`
				Outcome evaluation.Outcome `json:"outcome"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&doc))

			require.Len(t, runner.calls, 1)
			assert.Equal(t, tt.expected, runner.calls[0])
			assert.Len(t, doc.Rows, len(tt.expected))
			assert.NotEmpty(t, doc.RunID)
			assert.Equal(t, evaluation.OutcomeAllClear, doc.Outcome)
		})
	}
}

func TestReport_RateLimited(t *testing.T) {
	t.Parallel()

	h, runner := newTestServer(t, 1)

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/report?tests=processor", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/report?tests=processor", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	assert.Len(t, runner.calls, 1)
}
