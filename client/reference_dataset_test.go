package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftlens/domain"
)

var testDatasetUUID = uuid.MustParse("7d1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8")

// metricServer serves canned bodies per metric kind and counts requests.
type metricServer struct {
	srv    *httptest.Server
	bodies map[string]string // "statistics" -> body
	calls  map[string]int
}

func newMetricServer(t *testing.T) *metricServer {
	t.Helper()
	ms := &metricServer{
		bodies: map[string]string{},
		calls:  map[string]int{},
	}
	ms.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Path[len("/api/models/"):]
		kind = kind[len(testModelUUID.String())+len("/reference/"):]
		ms.calls[kind]++
		body, ok := ms.bodies[kind]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ms.srv.Close)
	return ms
}

func newTestHandle(ms *metricServer, modelType domain.ModelType, status domain.JobStatus) *ReferenceDataset {
	return newReferenceDataset(New(ms.srv.URL), testModelUUID, modelType, domain.ReferenceUpload{
		UUID:   testDatasetUUID,
		Path:   "s3://datasets/ref.csv",
		Date:   "2026-02-01T09:00:00Z",
		Status: status,
	})
}

const succeededStats = `{
	"jobStatus": "SUCCEEDED",
	"statistics": {"nVariables": 4, "nObservations": 1000, "missingCells": 3}
}`

func TestReferenceStatistics(t *testing.T) {
	t.Run("importing_to_succeeded_caches_payload", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = succeededStats
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 4, stats.NVariables)
		assert.Equal(t, 1000, stats.NObservations)
		assert.Equal(t, domain.JobSucceeded, ds.Status())
	})

	t.Run("succeeded_populated_slot_is_idempotent", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = succeededStats
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		first, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		second, err := ds.Statistics(context.Background())
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, ms.calls["statistics"], "second call must be served from cache")
	})

	t.Run("importing_refetches_every_call", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = `{"jobStatus": "IMPORTING"}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		for i := 0; i < 3; i++ {
			stats, err := ds.Statistics(context.Background())
			require.NoError(t, err)
			assert.Nil(t, stats)
		}
		assert.Equal(t, 3, ms.calls["statistics"])
		assert.Equal(t, domain.JobImporting, ds.Status())
	})

	t.Run("error_status_returns_nil_without_network", func(t *testing.T) {
		ms := newMetricServer(t)
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobError)

		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		assert.Nil(t, stats)
		assert.Zero(t, ms.calls["statistics"])
	})

	t.Run("succeeded_with_empty_slot_fetches_once", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = succeededStats
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobSucceeded)

		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 1, ms.calls["statistics"])
	})

	t.Run("missing_job_status_treated_as_error", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = `{"statistics": {"nVariables": 1, "nObservations": 1}}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		_, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.JobError, ds.Status())
	})

	t.Run("garbage_body_is_protocol_error_without_state_change", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = `not json at all`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		_, err := ds.Statistics(context.Background())
		var pErr *domain.ProtocolError
		require.ErrorAs(t, err, &pErr)
		assert.Contains(t, string(pErr.Payload), "not json")
		assert.Equal(t, domain.JobImporting, ds.Status(), "failed parse must not mutate status")
	})

	t.Run("unknown_job_status_is_protocol_error", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = `{"jobStatus": "EXPLODED"}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		_, err := ds.Statistics(context.Background())
		var pErr *domain.ProtocolError
		require.ErrorAs(t, err, &pErr)
	})

	t.Run("transport_error_propagates_unchanged", func(t *testing.T) {
		ms := newMetricServer(t) // no body registered: 404
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		_, err := ds.Statistics(context.Background())
		var tErr *domain.TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, http.StatusNotFound, tErr.StatusCode)
		assert.Equal(t, domain.JobImporting, ds.Status())
	})
}

func TestReferenceDataQuality(t *testing.T) {
	t.Run("binary_payload_decodes", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["data-quality"] = `{
			"jobStatus": "SUCCEEDED",
			"dataQuality": {
				"nObservations": 500,
				"classMetrics": [{"name": "true", "count": 300}, {"name": "false", "count": 200}]
			}
		}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		dq, err := ds.DataQuality(context.Background())
		require.NoError(t, err)
		classification, ok := dq.(*domain.ClassificationDataQuality)
		require.True(t, ok)
		require.NotNil(t, classification.NObservations)
		assert.Equal(t, 500, *classification.NObservations)
		assert.Len(t, classification.ClassMetrics, 2)
	})

	t.Run("regression_payload_decodes", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["data-quality"] = `{
			"jobStatus": "SUCCEEDED",
			"dataQuality": {"nObservations": 42}
		}`
		ds := newTestHandle(ms, domain.ModelTypeRegression, domain.JobImporting)

		dq, err := ds.DataQuality(context.Background())
		require.NoError(t, err)
		_, ok := dq.(*domain.RegressionDataQuality)
		assert.True(t, ok)
	})

	t.Run("unknown_model_type_is_protocol_error", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["data-quality"] = `{"jobStatus": "SUCCEEDED", "dataQuality": {}}`
		ds := newTestHandle(ms, domain.ModelType("RANKING"), domain.JobImporting)

		_, err := ds.DataQuality(context.Background())
		var pErr *domain.ProtocolError
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, domain.JobImporting, ds.Status(), "mismatch must not mutate cached state")
	})

	t.Run("payload_absent_leaves_slot_empty", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["data-quality"] = `{"jobStatus": "SUCCEEDED"}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		dq, err := ds.DataQuality(context.Background())
		require.NoError(t, err)
		assert.Nil(t, dq)
		assert.Equal(t, domain.JobSucceeded, ds.Status())

		// empty slot under SUCCEEDED: the next call asks the server again
		_, err = ds.DataQuality(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, ms.calls["data-quality"])
	})
}

func TestReferenceModelQuality(t *testing.T) {
	t.Run("binary_payload_decodes", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["model-quality"] = `{
			"jobStatus": "SUCCEEDED",
			"modelQuality": {"f1": 0.92, "accuracy": 0.95, "areaUnderRoc": 0.97}
		}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		mq, err := ds.ModelQuality(context.Background())
		require.NoError(t, err)
		binary, ok := mq.(*domain.BinaryClassificationModelQuality)
		require.True(t, ok)
		require.NotNil(t, binary.F1)
		assert.InDelta(t, 0.92, *binary.F1, 1e-9)
	})

	t.Run("regression_payload_decodes", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["model-quality"] = `{
			"jobStatus": "SUCCEEDED",
			"modelQuality": {"mae": 1.5, "rmse": 2.1}
		}`
		ds := newTestHandle(ms, domain.ModelTypeRegression, domain.JobImporting)

		mq, err := ds.ModelQuality(context.Background())
		require.NoError(t, err)
		regression, ok := mq.(*domain.RegressionModelQuality)
		require.True(t, ok)
		require.NotNil(t, regression.MeanAbsoluteError)
		assert.InDelta(t, 1.5, *regression.MeanAbsoluteError, 1e-9)
	})
}

func TestReferenceStatusInteractions(t *testing.T) {
	t.Run("error_observed_by_one_accessor_governs_the_others", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = succeededStats
		ms.bodies["data-quality"] = `{"jobStatus": "ERROR"}`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		// statistics caches a payload under SUCCEEDED
		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		require.NotNil(t, stats)

		// data-quality then observes ERROR; the shared status flips
		dq, err := ds.DataQuality(context.Background())
		require.NoError(t, err)
		assert.Nil(t, dq)
		assert.Equal(t, domain.JobError, ds.Status())

		// previously cached statistics are cleared lazily on next access
		stats, err = ds.Statistics(context.Background())
		require.NoError(t, err)
		assert.Nil(t, stats)
		assert.Equal(t, 1, ms.calls["statistics"], "no re-fetch after ERROR")
	})

	t.Run("all_accessors_return_nil_after_error", func(t *testing.T) {
		ms := newMetricServer(t)
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobError)

		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		dq, err2 := ds.DataQuality(context.Background())
		require.NoError(t, err2)
		mq, err3 := ds.ModelQuality(context.Background())
		require.NoError(t, err3)

		assert.Nil(t, stats)
		assert.Nil(t, dq)
		assert.Nil(t, mq)
		assert.Empty(t, ms.calls)
	})

	t.Run("accessor_failure_leaves_other_slots_intact", func(t *testing.T) {
		ms := newMetricServer(t)
		ms.bodies["statistics"] = succeededStats
		ms.bodies["data-quality"] = `garbage`
		ds := newTestHandle(ms, domain.ModelTypeBinary, domain.JobImporting)

		stats, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		require.NotNil(t, stats)

		_, err = ds.DataQuality(context.Background())
		require.Error(t, err)

		// statistics cache survives the neighbouring failure
		again, err := ds.Statistics(context.Background())
		require.NoError(t, err)
		assert.Same(t, stats, again)
		assert.Equal(t, 1, ms.calls["statistics"])
	})
}

func TestNextMetricAction(t *testing.T) {
	cases := []struct {
		name      string
		status    domain.JobStatus
		populated bool
		want      metricAction
	}{
		{"error_clears", domain.JobError, true, metricClear},
		{"error_empty_clears", domain.JobError, false, metricClear},
		{"succeeded_populated_cached", domain.JobSucceeded, true, metricCached},
		{"succeeded_empty_fetches", domain.JobSucceeded, false, metricFetch},
		{"importing_fetches", domain.JobImporting, false, metricFetch},
		{"importing_populated_fetches", domain.JobImporting, true, metricFetch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextMetricAction(tc.status, tc.populated))
		})
	}
}
