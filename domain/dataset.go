package domain

import "github.com/google/uuid"

// JobStatus tracks the server-side import job of a bound dataset.
type JobStatus string

// Job lifecycle states. IMPORTING is the only non-terminal state.
const (
	JobImporting JobStatus = "IMPORTING"
	JobSucceeded JobStatus = "SUCCEEDED"
	JobError     JobStatus = "ERROR"
)

// Valid reports whether s is a known job status value.
func (s JobStatus) Valid() bool {
	switch s {
	case JobImporting, JobSucceeded, JobError:
		return true
	}
	return false
}

// ReferenceUpload is the server acknowledgment for a bound reference dataset.
type ReferenceUpload struct {
	UUID   uuid.UUID `json:"uuid"`
	Path   string    `json:"path"`
	Date   string    `json:"date"`
	Status JobStatus `json:"status"`
}

// CurrentUpload is the server acknowledgment for a bound current dataset.
type CurrentUpload struct {
	UUID                uuid.UUID `json:"uuid"`
	Path                string    `json:"path"`
	Date                string    `json:"date"`
	Status              JobStatus `json:"status"`
	CorrelationIDColumn string    `json:"correlationIdColumn,omitempty"`
}

// FileReference is the bind request: the storage URL of an already-located
// file plus the CSV separator and, for current datasets, the correlation-id
// column name.
type FileReference struct {
	FileURL             string `json:"fileUrl"`
	Separator           string `json:"separator"`
	CorrelationIDColumn string `json:"correlationIdColumn,omitempty"`
}

// StorageCredentials are per-call object storage credentials. A nil value
// falls back to the ambient credential chain of the environment.
type StorageCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Endpoint        string // custom S3-compatible endpoint, implies path-style addressing
}
