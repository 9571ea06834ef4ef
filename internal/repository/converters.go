package repository

import (
	"log/slog"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

func toFarmer(f *ent.Farmer) *entity.Farmer {
	return &entity.Farmer{
		ID:         f.ID,
		FarmerCode: f.FarmerCode,
		Name:       f.Name,
		Phone:      f.Phone,
		Village:    f.Village,
		District:   f.District,
		AutoApply:  f.AutoApply,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func toScheme(s *ent.Scheme) *entity.Scheme {
	return &entity.Scheme{
		ID:                s.ID,
		Name:              s.Name,
		Description:       s.Description,
		BenefitAmount:     s.BenefitAmount,
		Criteria:          s.Criteria,
		RequiredDocuments: s.RequiredDocuments,
		Active:            s.Active,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toDocument(d *ent.FarmerDocument) *entity.FarmerDocument {
	return &entity.FarmerDocument{
		ID:                   d.ID,
		FarmerID:             d.FarmerID,
		DocType:              constants.DocumentType(d.DocType),
		Fields:               d.Fields,
		ExtractionConfidence: d.ExtractionConfidence,
		RawText:              d.RawText,
		UploadedAt:           d.UploadedAt,
	}
}

func toApplication(a *ent.Application, logger *slog.Logger) *entity.Application {
	history, err := entity.DecodeHistory(a.StatusHistory)
	if err != nil {
		// A corrupt history log should not make the row unreadable.
		logger.Warn("undecodable status history", "application_id", a.ApplicationID, "error", err)
		history = nil
	}
	return &entity.Application{
		ID:             a.ID,
		ApplicationID:  a.ApplicationID,
		FarmerID:       a.FarmerID,
		SchemeID:       a.SchemeID,
		Status:         constants.ApplicationStatus(a.Status),
		Source:         constants.ApplicationSource(a.Source),
		AppliedAmount:  a.AppliedAmount,
		ApprovedAmount: a.ApprovedAmount,
		Eligibility:    a.Eligibility,
		StatusHistory:  history,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toNotification(n *ent.Notification) *entity.Notification {
	return &entity.Notification{
		ID:        n.ID,
		FarmerID:  n.FarmerID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      constants.NotificationType(n.NotificationType),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
