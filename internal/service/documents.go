package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/model"
)

var collectionPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,62}$`)

// AppendRecorder records append outcomes.
type AppendRecorder interface {
	ObserveAppend(collection string, success bool, duration time.Duration)
}

type Documents struct {
	store    model.DocumentStore
	recorder AppendRecorder
	logger   *logger.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

func NewDocuments(
	store model.DocumentStore,
	recorder AppendRecorder,
	logger *logger.Logger,
) *Documents {
	return &Documents{
		store:    store,
		recorder: recorder,
		logger:   logger,
		tracer:   otel.Tracer("github.com/dtroode/studyflow-waitlist/internal/service"),
		now:      time.Now,
	}
}

// Append writes fields as a new document in collection. Server timestamp
// sentinels are resolved to the time of the write.
func (s *Documents) Append(ctx context.Context, collection string, fields model.Fields) (model.Document, error) {
	ctx, span := s.tracer.Start(ctx, "Documents.Append",
		trace.WithAttributes(attribute.String("collection", collection)))
	defer span.End()

	s.logger.Debug("Documents service: appending document",
		"collection", collection,
		"fields", len(fields))

	if !collectionPattern.MatchString(collection) {
		span.SetStatus(codes.Error, "invalid collection")
		return model.Document{}, fmt.Errorf("%w: %q", model.ErrInvalidCollection, collection)
	}
	if len(fields) == 0 {
		span.SetStatus(codes.Error, "empty fields")
		return model.Document{}, fmt.Errorf("%w: no fields", model.ErrInvalidFields)
	}

	start := s.now()
	resolved, err := resolveSentinels(fields, start.UTC())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return model.Document{}, err
	}

	doc := model.Document{
		ID:         uuid.New(),
		Collection: collection,
		Fields:     resolved,
		CreatedAt:  start.UTC(),
	}

	saved, err := s.store.Create(ctx, doc)
	s.recorder.ObserveAppend(collection, err == nil, s.now().Sub(start))
	if err != nil {
		s.logger.Error("Documents service: failed to create document",
			"collection", collection,
			"document_id", doc.ID,
			"error", err.Error())
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failure")
		return model.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	span.SetAttributes(attribute.String("document_id", saved.ID.String()))
	s.logger.Info("Documents service: document appended",
		"collection", collection,
		"document_id", saved.ID)

	return saved, nil
}

// Health reports whether the underlying store is reachable.
func (s *Documents) Health(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping document store: %w", err)
	}
	return nil
}

func resolveSentinels(fields model.Fields, now time.Time) (model.Fields, error) {
	out := make(model.Fields, len(fields))
	for k, v := range fields {
		resolved, err := resolveValue(v, now)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = resolved
	}
	return out, nil
}

func resolveValue(v any, now time.Time) (any, error) {
	switch val := v.(type) {
	case model.Sentinel:
		if val != model.ServerTimestamp {
			return nil, fmt.Errorf("%w: unknown sentinel %q", model.ErrInvalidFields, string(val))
		}
		return now, nil
	case model.Fields:
		return resolveSentinels(val, now)
	case map[string]any:
		return resolveSentinels(model.Fields(val), now)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			resolved, err := resolveValue(item, now)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return v, nil
	}
}
