package utils

import (
	"time"

	agroschemepb "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/apply"
	"github.com/chandrashekharddev/agroscheme/internal/eligibility"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func ToPBFarmer(f *entity.Farmer) *agroschemepb.Farmer {
	return &agroschemepb.Farmer{
		Id:         f.ID.String(),
		FarmerCode: f.FarmerCode,
		Name:       f.Name,
		Phone:      strOrEmpty(f.Phone),
		Village:    strOrEmpty(f.Village),
		District:   strOrEmpty(f.District),
		AutoApply:  f.AutoApply,
		CreatedAt:  f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  f.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBScheme(s *entity.Scheme) *agroschemepb.Scheme {
	return &agroschemepb.Scheme{
		Id:                s.ID.String(),
		Name:              s.Name,
		Description:       strOrEmpty(s.Description),
		BenefitAmount:     s.BenefitAmount,
		CriteriaJson:      string(s.Criteria),
		RequiredDocuments: s.RequiredDocuments,
		Active:            s.Active,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.FarmerDocument) *agroschemepb.FarmerDocument {
	confidence := float32(0)
	if d.ExtractionConfidence != nil {
		confidence = *d.ExtractionConfidence
	}
	return &agroschemepb.FarmerDocument{
		Id:                   d.ID.String(),
		FarmerId:             d.FarmerID.String(),
		DocType:              string(d.DocType),
		FieldsJson:           string(d.Fields),
		ExtractionConfidence: confidence,
		UploadedAt:           d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBApplication(a *entity.Application) *agroschemepb.Application {
	history := make([]*agroschemepb.StatusChange, 0, len(a.StatusHistory))
	for _, h := range a.StatusHistory {
		history = append(history, &agroschemepb.StatusChange{
			Status:         string(h.Status),
			Timestamp:      h.Timestamp.UTC().Format(time.RFC3339),
			ApprovedAmount: floatOrZero(h.ApprovedAmount),
		})
	}
	return &agroschemepb.Application{
		Id:             a.ID.String(),
		ApplicationId:  a.ApplicationID,
		FarmerId:       a.FarmerID.String(),
		SchemeId:       a.SchemeID.String(),
		Status:         string(a.Status),
		Source:         string(a.Source),
		AppliedAmount:  floatOrZero(a.AppliedAmount),
		ApprovedAmount: floatOrZero(a.ApprovedAmount),
		StatusHistory:  history,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBVerdict(v eligibility.Verdict) *agroschemepb.Verdict {
	return &agroschemepb.Verdict{
		Eligible:             v.Eligible,
		CriteriaMet:          v.CriteriaMet,
		MatchPercentage:      v.MatchPercentage,
		MatchedCriteria:      v.MatchedCriteria,
		MissingCriteria:      v.MissingCriteria,
		SkippedCriteria:      v.SkippedCriteria,
		Reasons:              v.Reasons,
		MissingDocuments:     v.MissingDocuments,
		HasRequiredDocuments: v.HasRequiredDocuments,
	}
}

func ToPBApplyResult(r *apply.Result) *agroschemepb.ManualApplyResponse {
	resp := &agroschemepb.ManualApplyResponse{
		Applied:        r.Applied,
		AlreadyApplied: r.AlreadyApplied,
		Verdict:        ToPBVerdict(r.Verdict),
	}
	if r.Application != nil {
		resp.Application = ToPBApplication(r.Application)
	}
	return resp
}

func ToPBNotification(n *entity.Notification) *agroschemepb.Notification {
	return &agroschemepb.Notification{
		Id:               n.ID.String(),
		FarmerId:         n.FarmerID.String(),
		Title:            n.Title,
		Message:          n.Message,
		NotificationType: string(n.Type),
		Read:             n.Read,
		CreatedAt:        n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
