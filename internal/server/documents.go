package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chandrashekharddev/agroscheme/constants"
	agroschemepb "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/extract"
	"github.com/chandrashekharddev/agroscheme/internal/repository"
	"github.com/chandrashekharddev/agroscheme/internal/utils"
)

type DocumentsServer struct {
	agroschemepb.UnimplementedDocumentsServiceServer
	registry     *extract.Registry
	farmerRepo   repository.FarmerRepository
	documentRepo repository.DocumentRepository
	logger       *slog.Logger
}

func NewDocumentsServer(registry *extract.Registry, farmerRepo repository.FarmerRepository, documentRepo repository.DocumentRepository, logger *slog.Logger) *DocumentsServer {
	return &DocumentsServer{
		registry:     registry,
		farmerRepo:   farmerRepo,
		documentRepo: documentRepo,
		logger:       logger,
	}
}

// SubmitDocument runs field extraction over the document text and stores the
// result, replacing any earlier upload of the same type.
func (s *DocumentsServer) SubmitDocument(ctx context.Context, req *agroschemepb.SubmitDocumentRequest) (*agroschemepb.SubmitDocumentResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	docType, ok := constants.ParseDocumentType(req.GetDocType())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown doc_type %q", req.GetDocType())
	}
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}

	if _, err := s.farmerRepo.GetByID(ctx, farmerID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "farmer not found")
		}
		return nil, status.Errorf(codes.Internal, "get farmer: %v", err)
	}

	result, err := s.registry.Extract(text, docType)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "extract: %v", err)
	}

	payload, err := json.Marshal(result.Fields.Export())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode fields: %v", err)
	}

	s.logger.Info("document extracted",
		"farmer_id", farmerID,
		"doc_type", docType,
		"fields", len(result.Fields),
		"confidence", result.Confidence,
	)

	doc, err := s.documentRepo.Upsert(ctx, &repository.UpsertDocumentRequest{
		FarmerID:   farmerID,
		DocType:    docType,
		Fields:     payload,
		Confidence: float32(result.Confidence),
		RawText:    text,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "store document: %v", err)
	}

	return &agroschemepb.SubmitDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsServer) ListDocuments(ctx context.Context, req *agroschemepb.ListDocumentsRequest) (*agroschemepb.ListDocumentsResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	dlist, err := s.documentRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	out := make([]*agroschemepb.FarmerDocument, 0, len(dlist))
	for _, d := range dlist {
		out = append(out, utils.ToPBDocument(d))
	}
	return &agroschemepb.ListDocumentsResponse{Documents: out}, nil
}
