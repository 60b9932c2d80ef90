package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/studyflow-waitlist/internal/model"
)

var _ model.DocumentStore = (*DocumentRepository)(nil)

// querier is the subset of *Connection used by the repository.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type DocumentRepository struct {
	db querier
}

func NewDocumentRepository(db *Connection) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc model.Document) (model.Document, error) {
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to encode document fields: %w", err)
	}

	query := `INSERT INTO documents (id, collection, fields, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	saved := doc
	err = r.db.QueryRow(ctx, query,
		doc.ID, doc.Collection, fields, doc.CreatedAt,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return saved, nil
}

func (r *DocumentRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
