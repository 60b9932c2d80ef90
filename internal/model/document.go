package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sentinel is a placeholder field value resolved by the document store at write time.
type Sentinel string

// ServerTimestamp is replaced with the store's clock when the document is written.
const ServerTimestamp Sentinel = "serverTimestamp"

// Fields holds document field values. Values are JSON-compatible scalars,
// nested Fields/maps, slices or Sentinels.
type Fields map[string]any

// Document represents an appended document.
type Document struct {
	ID         uuid.UUID
	Collection string
	Fields     Fields
	CreatedAt  time.Time
}

// DocumentStore defines persistence operations for documents. Stores are append-only.
type DocumentStore interface {
	Create(ctx context.Context, doc Document) (Document, error)
	Ping(ctx context.Context) error
}
