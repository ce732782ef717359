package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"driftlens/domain"
	"driftlens/internal/objectstore"
)

// Model is a client-side handle on a registered model: it owns the declared
// column set consumed by dataset validation and binding, and is the entry
// point for binding reference and current datasets.
type Model struct {
	client *Client
	def    domain.ModelDefinition

	// newStore builds the object-storage collaborator for one binder call.
	// Swapped out in tests.
	newStore func(*domain.StorageCredentials) domain.ObjectStore
}

func newModel(c *Client, def domain.ModelDefinition) *Model {
	return &Model{
		client: c,
		def:    def,
		newStore: func(creds *domain.StorageCredentials) domain.ObjectStore {
			return objectstore.New(creds)
		},
	}
}

// UUID returns the server-issued model identifier.
func (m *Model) UUID() uuid.UUID { return m.def.UUID }

// Name returns the model name.
func (m *Model) Name() string { return m.def.Name }

// Description returns the optional model description.
func (m *Model) Description() string { return m.def.Description }

// ModelType returns the model kind.
func (m *Model) ModelType() domain.ModelType { return m.def.ModelType }

// DataType returns the data kind consumed by the model.
func (m *Model) DataType() domain.DataType { return m.def.DataType }

// Granularity returns the metric aggregation window.
func (m *Model) Granularity() domain.Granularity { return m.def.Granularity }

// Features returns the declared feature columns.
func (m *Model) Features() []domain.ColumnDefinition { return m.def.Features }

// Outputs returns the declared output descriptor.
func (m *Model) Outputs() domain.OutputType { return m.def.Outputs }

// Target returns the declared target column.
func (m *Model) Target() domain.ColumnDefinition { return m.def.Target }

// Timestamp returns the declared timestamp column.
func (m *Model) Timestamp() domain.ColumnDefinition { return m.def.Timestamp }

// Frameworks returns the optional framework label.
func (m *Model) Frameworks() string { return m.def.Frameworks }

// Algorithm returns the optional algorithm label.
func (m *Model) Algorithm() string { return m.def.Algorithm }

// Definition returns a copy of the underlying model definition.
func (m *Model) Definition() domain.ModelDefinition { return m.def }

func (m *Model) path(suffix string) string {
	return fmt.Sprintf("/api/models/%s%s", m.def.UUID, suffix)
}

// Delete removes the model and its server-side resources.
func (m *Model) Delete(ctx context.Context) error {
	_, err := m.client.invoke(ctx, http.MethodDelete, m.path(""), http.StatusOK, nil)
	return err
}

// UpdateFeatures replaces the model's feature list. The server is updated
// first; local state changes only after the server acknowledges success, so
// the client's view never diverges from the server's after a partial failure.
func (m *Model) UpdateFeatures(ctx context.Context, newFeatures []domain.ColumnDefinition) error {
	body := domain.ModelFeatures{Features: newFeatures}
	if _, err := m.client.invoke(ctx, http.MethodPost, m.path(""), http.StatusOK, body); err != nil {
		return err
	}
	m.def.Features = newFeatures
	return nil
}

// GetReferenceDatasets lists every reference dataset bound to the model.
func (m *Model) GetReferenceDatasets(ctx context.Context) ([]*ReferenceDataset, error) {
	body, err := m.client.invoke(ctx, http.MethodGet, m.path("/reference/all"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	var uploads []domain.ReferenceUpload
	if err := json.Unmarshal(body, &uploads); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	datasets := make([]*ReferenceDataset, 0, len(uploads))
	for _, up := range uploads {
		datasets = append(datasets, newReferenceDataset(m.client, m.def.UUID, m.def.ModelType, up))
	}
	return datasets, nil
}

// GetCurrentDatasets lists every current dataset bound to the model.
func (m *Model) GetCurrentDatasets(ctx context.Context) ([]*CurrentDataset, error) {
	body, err := m.client.invoke(ctx, http.MethodGet, m.path("/current/all"), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	var uploads []domain.CurrentUpload
	if err := json.Unmarshal(body, &uploads); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	datasets := make([]*CurrentDataset, 0, len(uploads))
	for _, up := range uploads {
		datasets = append(datasets, newCurrentDataset(m.client, m.def.UUID, m.def.ModelType, up))
	}
	return datasets, nil
}

// CreateModel registers a new model with the platform.
func (c *Client) CreateModel(ctx context.Context, req domain.CreateModel) (*Model, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := c.invoke(ctx, http.MethodPost, "/api/models", http.StatusCreated, req)
	if err != nil {
		return nil, err
	}
	return c.parseModel(body)
}

// GetModel fetches a registered model by its identifier.
func (c *Client) GetModel(ctx context.Context, id uuid.UUID) (*Model, error) {
	body, err := c.invoke(ctx, http.MethodGet, fmt.Sprintf("/api/models/%s", id), http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	return c.parseModel(body)
}

// ListModels fetches every registered model.
func (c *Client) ListModels(ctx context.Context) ([]*Model, error) {
	body, err := c.invoke(ctx, http.MethodGet, "/api/models", http.StatusOK, nil)
	if err != nil {
		return nil, err
	}
	var defs []domain.ModelDefinition
	if err := json.Unmarshal(body, &defs); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	models := make([]*Model, 0, len(defs))
	for _, def := range defs {
		models = append(models, newModel(c, def))
	}
	return models, nil
}

func (c *Client) parseModel(body []byte) (*Model, error) {
	var def domain.ModelDefinition
	if err := json.Unmarshal(body, &def); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	if def.UUID == uuid.Nil || def.Name == "" {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	return newModel(c, def), nil
}
