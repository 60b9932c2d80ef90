package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dtroode/studyflow-waitlist/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc model.Document) (model.Document, error) {
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to encode document fields: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, fields, created_at) VALUES (?, ?, ?, ?)`,
		doc.ID.String(), doc.Collection, string(fields), doc.CreatedAt.UTC(),
	)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
