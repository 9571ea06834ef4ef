package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// UpsertDocumentRequest wraps one extracted field-set for storage.
type UpsertDocumentRequest struct {
	FarmerID   uuid.UUID
	DocType    constants.DocumentType
	Fields     json.RawMessage
	Confidence float32
	RawText    string
}

type DocumentRepository interface {
	// Upsert stores the field-set for (farmer, doc type), replacing any
	// previous upload wholesale.
	Upsert(ctx context.Context, request *UpsertDocumentRequest) (*entity.FarmerDocument, error)
	GetByFarmerAndType(ctx context.Context, farmerID uuid.UUID, docType constants.DocumentType) (*entity.FarmerDocument, error)
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.FarmerDocument, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) Upsert(ctx context.Context, request *UpsertDocumentRequest) (*entity.FarmerDocument, error) {
	existing, err := r.client.FarmerDocument.Query().
		Where(
			farmerdocument.FarmerID(request.FarmerID),
			farmerdocument.DocType(string(request.DocType)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to query document", "farmer_id", request.FarmerID, "doc_type", request.DocType, "error", err)
		return nil, err
	}

	if existing != nil {
		d, err := existing.Update().
			SetFields(request.Fields).
			SetExtractionConfidence(request.Confidence).
			SetRawText(request.RawText).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to replace document", "farmer_id", request.FarmerID, "doc_type", request.DocType, "error", err)
			return nil, err
		}
		return toDocument(d), nil
	}

	d, err := r.client.FarmerDocument.Create().
		SetFarmerID(request.FarmerID).
		SetDocType(string(request.DocType)).
		SetFields(request.Fields).
		SetExtractionConfidence(request.Confidence).
		SetRawText(request.RawText).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "farmer_id", request.FarmerID, "doc_type", request.DocType, "error", err)
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) GetByFarmerAndType(ctx context.Context, farmerID uuid.UUID, docType constants.DocumentType) (*entity.FarmerDocument, error) {
	d, err := r.client.FarmerDocument.Query().
		Where(
			farmerdocument.FarmerID(farmerID),
			farmerdocument.DocType(string(docType)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(d), nil
}

func (r *documentRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.FarmerDocument, error) {
	dlist, err := r.client.FarmerDocument.Query().
		Where(farmerdocument.FarmerID(farmerID)).
		Order(farmerdocument.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "farmer_id", farmerID, "error", err)
		return nil, err
	}
	result := make([]*entity.FarmerDocument, len(dlist))
	for i, d := range dlist {
		result[i] = toDocument(d)
	}
	return result, nil
}
