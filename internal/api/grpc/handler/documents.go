package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/proto"
	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/model"
)

// DocumentService defines the document operations exposed over gRPC.
type DocumentService interface {
	Append(ctx context.Context, collection string, fields model.Fields) (model.Document, error)
	Health(ctx context.Context) error
}

// Documents handles gRPC endpoints for documents.
type Documents struct {
	proto.UnimplementedDocumentsServer
	documentService DocumentService
	logger          *logger.Logger
}

// NewDocuments creates a new Documents handler.
func NewDocuments(documentService DocumentService, logger *logger.Logger) *Documents {
	return &Documents{
		documentService: documentService,
		logger:          logger,
	}
}

// Append stores the request fields as a new document and returns its ID.
func (h *Documents) Append(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	collection, fields, err := proto.ParseAppendRequest(req)
	if err != nil {
		h.logger.Debug("Documents handler: malformed append request", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Debug("Documents handler: processing append request",
		"collection", collection)

	doc, err := h.documentService.Append(ctx, collection, fields)
	if err != nil {
		h.logger.Error("Documents handler: append failed",
			"collection", collection,
			"error", err.Error())
		return nil, handleError(err)
	}

	return wrapperspb.String(doc.ID.String()), nil
}
