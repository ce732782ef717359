package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"driftlens/domain"
	"driftlens/internal/csvio"
)

// DefaultSeparator is the CSV separator used when none is configured.
const DefaultSeparator = ","

// DatasetOptions tunes one binder call. The zero value (or nil) means comma
// separator, derived object key, and ambient storage credentials.
type DatasetOptions struct {
	// Separator is the CSV field separator.
	Separator string
	// ObjectName overrides the derived object key verbatim.
	ObjectName string
	// Credentials are used for exactly one object-store construction.
	Credentials *domain.StorageCredentials
}

func (o *DatasetOptions) separator() string {
	if o == nil || o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

func (o *DatasetOptions) objectName() string {
	if o == nil {
		return ""
	}
	return o.ObjectName
}

func (o *DatasetOptions) credentials() *domain.StorageCredentials {
	if o == nil {
		return nil
	}
	return o.Credentials
}

// LoadReferenceDataset validates a local CSV file against the model's
// required columns, uploads it to the bucket, and binds it as the model's
// reference dataset. Validation failure aborts before any network call.
func (m *Model) LoadReferenceDataset(ctx context.Context, fileName, bucket string, opts *DatasetOptions) (*ReferenceDataset, error) {
	url, err := m.loadDataset(ctx, fileName, bucket, domain.DatasetReference, m.def.RequiredColumns(), opts)
	if err != nil {
		return nil, err
	}
	return m.bindReference(ctx, url, opts.separator())
}

// BindReferenceDataset binds a file already uploaded to object storage as the
// model's reference dataset, validating its header row first via a streaming
// read of the remote object.
func (m *Model) BindReferenceDataset(ctx context.Context, datasetURL string, opts *DatasetOptions) (*ReferenceDataset, error) {
	if err := m.validateRemote(ctx, datasetURL, m.def.RequiredColumns(), opts); err != nil {
		return nil, err
	}
	return m.bindReference(ctx, datasetURL, opts.separator())
}

// LoadCurrentDataset validates a local CSV file against the model's required
// columns (plus timestamp and, when given, the correlation-id column),
// uploads it, and binds it as a current dataset.
func (m *Model) LoadCurrentDataset(ctx context.Context, fileName, bucket, correlationIDColumn string, opts *DatasetOptions) (*CurrentDataset, error) {
	required := m.def.RequiredColumnsForCurrent(correlationIDColumn)
	url, err := m.loadDataset(ctx, fileName, bucket, domain.DatasetCurrent, required, opts)
	if err != nil {
		return nil, err
	}
	return m.bindCurrent(ctx, url, opts.separator(), correlationIDColumn)
}

// BindCurrentDataset binds a file already uploaded to object storage as a
// current dataset.
func (m *Model) BindCurrentDataset(ctx context.Context, datasetURL, correlationIDColumn string, opts *DatasetOptions) (*CurrentDataset, error) {
	required := m.def.RequiredColumnsForCurrent(correlationIDColumn)
	if err := m.validateRemote(ctx, datasetURL, required, opts); err != nil {
		return nil, err
	}
	return m.bindCurrent(ctx, datasetURL, opts.separator(), correlationIDColumn)
}

// loadDataset runs the local-file half of the bind pipeline: read the header
// row, validate, resolve the canonical key, upload. It returns the storage
// URL to bind. Each step exits early and maps to one failure kind.
func (m *Model) loadDataset(ctx context.Context, fileName, bucket string, kind domain.DatasetKind, required []string, opts *DatasetOptions) (string, error) {
	headers, err := csvio.ReadHeaderRow(fileName, opts.separator())
	if err != nil {
		return "", domain.ErrStorage("read", fileName, err)
	}
	if err := domain.ValidateHeaders(fileName, headers, required); err != nil {
		return "", err
	}

	key := domain.ResolveObjectKey(m.def.UUID, kind, fileName, opts.objectName())
	store := m.newStore(opts.credentials())
	metadata := map[string]string{
		"model_uuid": m.def.UUID.String(),
		"model_name": m.def.Name,
		"file_type":  string(kind),
	}
	if err := store.Upload(ctx, fileName, bucket, key, metadata); err != nil {
		return "", err
	}
	return domain.ObjectURL(bucket, key), nil
}

// validateRemote reads the first line of the remote object behind datasetURL
// and validates it against the required columns.
func (m *Model) validateRemote(ctx context.Context, datasetURL string, required []string, opts *DatasetOptions) error {
	bucket, key, err := domain.ParseObjectURL(datasetURL)
	if err != nil {
		return domain.ErrStorage("parse", datasetURL, err)
	}
	store := m.newStore(opts.credentials())
	line, err := store.ReadFirstLine(ctx, bucket, key)
	if err != nil {
		return err
	}
	headers := csvio.SplitHeaderLine(line, opts.separator())
	return domain.ValidateHeaders(datasetURL, headers, required)
}

func (m *Model) bindReference(ctx context.Context, datasetURL, separator string) (*ReferenceDataset, error) {
	ref := domain.FileReference{FileURL: datasetURL, Separator: separator}
	body, err := m.client.invoke(ctx, http.MethodPost, m.path("/reference/bind"), http.StatusOK, ref)
	if err != nil {
		return nil, err
	}
	var upload domain.ReferenceUpload
	if err := json.Unmarshal(body, &upload); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	if upload.UUID == uuid.Nil || !upload.Status.Valid() {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	return newReferenceDataset(m.client, m.def.UUID, m.def.ModelType, upload), nil
}

func (m *Model) bindCurrent(ctx context.Context, datasetURL, separator, correlationIDColumn string) (*CurrentDataset, error) {
	ref := domain.FileReference{
		FileURL:             datasetURL,
		Separator:           separator,
		CorrelationIDColumn: correlationIDColumn,
	}
	body, err := m.client.invoke(ctx, http.MethodPost, m.path("/current/bind"), http.StatusOK, ref)
	if err != nil {
		return nil, err
	}
	var upload domain.CurrentUpload
	if err := json.Unmarshal(body, &upload); err != nil {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	if upload.UUID == uuid.Nil || !upload.Status.Valid() {
		return nil, domain.ErrProtocol(body, "unable to parse response")
	}
	return newCurrentDataset(m.client, m.def.UUID, m.def.ModelType, upload), nil
}
