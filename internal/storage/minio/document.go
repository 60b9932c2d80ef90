package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/studyflow-waitlist/internal/model"
)

var _ model.DocumentStore = (*Client)(nil)

// storedDocument is the JSON layout of a document object.
type storedDocument struct {
	ID         uuid.UUID    `json:"id"`
	Collection string       `json:"collection"`
	Fields     model.Fields `json:"fields"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// DocumentKey returns the object key of a document.
func DocumentKey(collection string, id uuid.UUID) string {
	return path.Join(collection, id.String()+".json")
}

// Create writes doc as <collection>/<id>.json.
func (c *Client) Create(ctx context.Context, doc model.Document) (model.Document, error) {
	body, err := json.Marshal(storedDocument{
		ID:         doc.ID,
		Collection: doc.Collection,
		Fields:     doc.Fields,
		CreatedAt:  doc.CreatedAt,
	})
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to encode document: %w", err)
	}

	key := DocumentKey(doc.Collection, doc.ID)
	if err := c.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		return model.Document{}, fmt.Errorf("failed to store document %s: %w", key, err)
	}

	return doc, nil
}

// Ping checks that the bucket is reachable.
func (c *Client) Ping(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", c.bucket)
	}
	return nil
}
