package client

import (
	"encoding/json"

	"driftlens/domain"
)

// metricAction is the decision the shared cache policy hands to a metric
// accessor.
type metricAction int

const (
	// metricClear: the job ended in ERROR; the slot is cleared and nil is
	// returned without a network call.
	metricClear metricAction = iota
	// metricCached: the job SUCCEEDED and the slot is populated; serve it.
	metricCached
	// metricFetch: the job is still IMPORTING, or SUCCEEDED with an empty
	// slot; ask the server.
	metricFetch
)

// nextMetricAction is the single transition function shared by every metric
// accessor on every dataset handle. Keeping the policy in one place is what
// guarantees the three cache slots cannot drift apart in how they interpret
// the shared job status.
func nextMetricAction(status domain.JobStatus, populated bool) metricAction {
	switch {
	case status == domain.JobError:
		return metricClear
	case status == domain.JobSucceeded && populated:
		return metricCached
	default:
		return metricFetch
	}
}

// metricEnvelope is the common shape of every metric response: the job
// status observed server-side plus at most one metric payload.
type metricEnvelope struct {
	JobStatus    domain.JobStatus `json:"jobStatus"`
	Statistics   json.RawMessage  `json:"statistics"`
	DataQuality  json.RawMessage  `json:"dataQuality"`
	ModelQuality json.RawMessage  `json:"modelQuality"`
	Drift        json.RawMessage  `json:"drift"`
}

// decodeEnvelope parses a metric response body. A missing jobStatus is
// treated as ERROR (the job cannot be trusted to be alive); an unknown value
// is a protocol failure.
func decodeEnvelope(body []byte) (metricEnvelope, error) {
	var env metricEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return env, domain.ErrProtocol(body, "unable to parse response")
	}
	if env.JobStatus == "" {
		env.JobStatus = domain.JobError
	}
	if !env.JobStatus.Valid() {
		return env, domain.ErrProtocol(body, "unknown job status %q", env.JobStatus)
	}
	return env, nil
}

// present reports whether a payload field was actually set in the response.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func decodeStatistics(raw json.RawMessage, body []byte) (*domain.DatasetStats, error) {
	var stats domain.DatasetStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	return &stats, nil
}

// decodeDataQuality parses a data-quality payload according to the model
// kind of the owning handle. A model kind outside the supported set is a
// protocol failure: the payload family cannot be interpreted for it.
func decodeDataQuality(modelType domain.ModelType, raw json.RawMessage, body []byte) (domain.DataQuality, error) {
	switch modelType {
	case domain.ModelTypeBinary, domain.ModelTypeMulticlass:
		var dq domain.ClassificationDataQuality
		if err := json.Unmarshal(raw, &dq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &dq, nil
	case domain.ModelTypeRegression:
		var dq domain.RegressionDataQuality
		if err := json.Unmarshal(raw, &dq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &dq, nil
	default:
		return nil, domain.ErrProtocol(body, "unable to parse data quality metrics for model type %q", modelType)
	}
}

// decodeModelQuality parses a reference model-quality payload according to
// the model kind of the owning handle.
func decodeModelQuality(modelType domain.ModelType, raw json.RawMessage, body []byte) (domain.ModelQuality, error) {
	switch modelType {
	case domain.ModelTypeBinary:
		var mq domain.BinaryClassificationModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	case domain.ModelTypeMulticlass:
		var mq domain.MultiClassificationModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	case domain.ModelTypeRegression:
		var mq domain.RegressionModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	default:
		return nil, domain.ErrProtocol(body, "unable to parse model quality metrics for model type %q", modelType)
	}
}

// decodeCurrentModelQuality parses a current model-quality payload, which
// wraps the global metrics together with their windowed series.
func decodeCurrentModelQuality(modelType domain.ModelType, raw json.RawMessage, body []byte) (domain.ModelQuality, error) {
	switch modelType {
	case domain.ModelTypeBinary:
		var mq domain.CurrentBinaryClassificationModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	case domain.ModelTypeMulticlass:
		var mq domain.CurrentMultiClassificationModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	case domain.ModelTypeRegression:
		var mq domain.CurrentRegressionModelQuality
		if err := json.Unmarshal(raw, &mq); err != nil {
			return nil, domain.ErrProtocol(body, "unable to parse response")
		}
		return &mq, nil
	default:
		return nil, domain.ErrProtocol(body, "unable to parse model quality metrics for model type %q", modelType)
	}
}

func decodeDrift(raw json.RawMessage, body []byte) (*domain.Drift, error) {
	var drift domain.Drift
	if err := json.Unmarshal(raw, &drift); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	return &drift, nil
}
