package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"driftlens/domain"
)

// CurrentDataset is the client-side handle on a bound current dataset and
// its server-side import job. It follows the same cache policy as
// ReferenceDataset and additionally exposes drift metrics against the
// model's reference dataset.
//
// The handle is not internally synchronized: concurrent use from multiple
// goroutines must be serialized by the caller.
type CurrentDataset struct {
	client    *Client
	modelUUID uuid.UUID
	modelType domain.ModelType

	uuid                uuid.UUID
	path                string
	date                string
	correlationIDColumn string
	status              domain.JobStatus

	statistics   *domain.DatasetStats
	dataQuality  domain.DataQuality
	modelQuality domain.ModelQuality
	drift        *domain.Drift
}

func newCurrentDataset(c *Client, modelUUID uuid.UUID, modelType domain.ModelType, up domain.CurrentUpload) *CurrentDataset {
	return &CurrentDataset{
		client:              c,
		modelUUID:           modelUUID,
		modelType:           modelType,
		uuid:                up.UUID,
		path:                up.Path,
		date:                up.Date,
		correlationIDColumn: up.CorrelationIDColumn,
		status:              up.Status,
	}
}

// UUID returns the server-issued dataset identifier.
func (d *CurrentDataset) UUID() uuid.UUID { return d.uuid }

// Path returns the storage path the dataset was bound from.
func (d *CurrentDataset) Path() string { return d.path }

// Date returns the creation timestamp reported by the server.
func (d *CurrentDataset) Date() string { return d.date }

// CorrelationIDColumn returns the correlation-id column name, empty when the
// dataset was bound without one.
func (d *CurrentDataset) CorrelationIDColumn() string { return d.correlationIDColumn }

// Status returns the last observed job status. The server is not consulted:
// a metric accessor must be called to observe a transition.
func (d *CurrentDataset) Status() domain.JobStatus { return d.status }

func (d *CurrentDataset) metricPath(kind string) string {
	return fmt.Sprintf("/api/models/%s/current/%s/%s", d.modelUUID, d.uuid, kind)
}

// Statistics returns the dataset statistics, if the import job has produced
// them. The result is cached once the job has SUCCEEDED; a job that ended in
// ERROR never yields statistics.
func (d *CurrentDataset) Statistics(ctx context.Context) (*domain.DatasetStats, error) {
	switch nextMetricAction(d.status, d.statistics != nil) {
	case metricClear:
		d.statistics = nil
		return nil, nil
	case metricCached:
		return d.statistics, nil
	}

	body, err := d.client.invoke(ctx, http.MethodGet, d.metricPath("statistics"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var stats *domain.DatasetStats
	if present(env.Statistics) {
		if stats, err = decodeStatistics(env.Statistics, body); err != nil {
			return nil, err
		}
	}
	d.status = env.JobStatus
	d.statistics = stats
	return stats, nil
}

// DataQuality returns the data-quality metrics, following the same cache
// policy as Statistics.
func (d *CurrentDataset) DataQuality(ctx context.Context) (domain.DataQuality, error) {
	switch nextMetricAction(d.status, d.dataQuality != nil) {
	case metricClear:
		d.dataQuality = nil
		return nil, nil
	case metricCached:
		return d.dataQuality, nil
	}

	body, err := d.client.invoke(ctx, http.MethodGet, d.metricPath("data-quality"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var dq domain.DataQuality
	if present(env.DataQuality) {
		if dq, err = decodeDataQuality(d.modelType, env.DataQuality, body); err != nil {
			return nil, err
		}
	}
	d.status = env.JobStatus
	d.dataQuality = dq
	return dq, nil
}

// ModelQuality returns the windowed model-quality metrics, following the
// same cache policy as Statistics.
func (d *CurrentDataset) ModelQuality(ctx context.Context) (domain.ModelQuality, error) {
	switch nextMetricAction(d.status, d.modelQuality != nil) {
	case metricClear:
		d.modelQuality = nil
		return nil, nil
	case metricCached:
		return d.modelQuality, nil
	}

	body, err := d.client.invoke(ctx, http.MethodGet, d.metricPath("model-quality"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var mq domain.ModelQuality
	if present(env.ModelQuality) {
		if mq, err = decodeCurrentModelQuality(d.modelType, env.ModelQuality, body); err != nil {
			return nil, err
		}
	}
	d.status = env.JobStatus
	d.modelQuality = mq
	return mq, nil
}

// Drift returns the drift metrics against the reference dataset, following
// the same cache policy as Statistics.
func (d *CurrentDataset) Drift(ctx context.Context) (*domain.Drift, error) {
	switch nextMetricAction(d.status, d.drift != nil) {
	case metricClear:
		d.drift = nil
		return nil, nil
	case metricCached:
		return d.drift, nil
	}

	body, err := d.client.invoke(ctx, http.MethodGet, d.metricPath("drift"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	var drift *domain.Drift
	if present(env.Drift) {
		if drift, err = decodeDrift(env.Drift, body); err != nil {
			return nil, err
		}
	}
	d.status = env.JobStatus
	d.drift = drift
	return drift, nil
}
