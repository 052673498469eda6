package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Extraction is one persisted cascade run for data transfer between layers.
type Extraction struct {
	ID           uuid.UUID       `json:"id"`
	SourcePath   string          `json:"source_path"`
	ContentHash  string          `json:"content_hash"`
	BuilderHint  string          `json:"builder_hint"`
	Builder      string          `json:"builder"`
	PONumber     string          `json:"po_number"`
	POStatus     string          `json:"po_status"`
	CustomerName string          `json:"customer_name"`
	DollarValue  float64         `json:"dollar_value"`
	Status       string          `json:"status"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Record       json.RawMessage `json:"record,omitempty"`
	Backend      string          `json:"backend"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
}

// Decode unmarshals the stored record JSON.
func (e *Extraction) Decode() (*Record, error) {
	rec := NewRecord()
	if len(e.Record) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(e.Record, rec); err != nil {
		return nil, err
	}
	rec.EnsureSlices()
	return rec, nil
}
