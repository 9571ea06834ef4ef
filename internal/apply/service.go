package apply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/eligibility"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// Service drives eligibility evaluation and application creation for both
// apply paths. Each call is a short-lived, independently schedulable unit of
// work; the service holds no mutable state between evaluations.
type Service struct {
	farmers       FarmerStore
	schemes       SchemeStore
	documents     DocumentStore
	applications  ApplicationStore
	notifications NotificationStore
	keywords      eligibility.KeywordTable
	logger        *slog.Logger
	now           func() time.Time
}

func NewService(
	farmers FarmerStore,
	schemes SchemeStore,
	documents DocumentStore,
	applications ApplicationStore,
	notifications NotificationStore,
	keywords eligibility.KeywordTable,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if keywords == nil {
		keywords = eligibility.DefaultKeywords()
	}
	return &Service{
		farmers:       farmers,
		schemes:       schemes,
		documents:     documents,
		applications:  applications,
		notifications: notifications,
		keywords:      keywords,
		logger:        logger,
		now:           time.Now,
	}
}

// Result is the outcome of one apply attempt.
type Result struct {
	Applied        bool
	AlreadyApplied bool
	Application    *entity.Application
	Verdict        eligibility.Verdict
}

// Evaluate computes the verdict for one (farmer, scheme) pair without
// creating anything.
func (s *Service) Evaluate(ctx context.Context, farmerID, schemeID uuid.UUID) (eligibility.Verdict, error) {
	scheme, err := s.schemes.GetByID(ctx, schemeID)
	if err != nil {
		return eligibility.Verdict{}, common.WrapError(err, "load scheme")
	}
	return s.evaluate(ctx, farmerID, scheme)
}

func (s *Service) evaluate(ctx context.Context, farmerID uuid.UUID, scheme *entity.Scheme) (eligibility.Verdict, error) {
	docs, err := s.documents.ListByFarmer(ctx, farmerID)
	if err != nil {
		return eligibility.Verdict{}, common.WrapError(err, "load documents")
	}

	sets := make(map[constants.DocumentType]map[string]any, len(docs))
	available := make(map[constants.DocumentType]bool, len(docs))
	for _, d := range docs {
		fields, err := d.DecodeFields()
		if err != nil {
			// A corrupt field-set degrades that document, not the whole
			// evaluation.
			s.logger.Warn("skipping undecodable field-set", "farmer_id", farmerID, "doc_type", d.DocType, "error", err)
			continue
		}
		sets[d.DocType] = fields
		available[d.DocType] = true
	}

	criteria, err := eligibility.ParseCriteria(scheme.Criteria)
	if err != nil {
		return eligibility.Verdict{}, common.WrapError(err, "parse scheme criteria")
	}

	profile := eligibility.BuildProfile(sets, s.now())
	return eligibility.Evaluate(profile, criteria, scheme.RequiredDocuments, available, s.keywords), nil
}

// ManualApply runs the eligibility gate for an explicit user action. An
// existing application for the pair yields an AlreadyApplied result
// referencing it, never a duplicate.
func (s *Service) ManualApply(ctx context.Context, farmerID, schemeID uuid.UUID) (*Result, error) {
	farmer, err := s.farmers.GetByID(ctx, farmerID)
	if err != nil {
		return nil, common.WrapError(err, "load farmer")
	}
	scheme, err := s.schemes.GetByID(ctx, schemeID)
	if err != nil {
		return nil, common.WrapError(err, "load scheme")
	}

	if existing, err := s.applications.GetByFarmerAndScheme(ctx, farmerID, schemeID); err == nil {
		return &Result{AlreadyApplied: true, Application: existing}, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.WrapError(err, "check existing application")
	}

	verdict, err := s.evaluate(ctx, farmerID, scheme)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		return &Result{Verdict: verdict}, nil
	}

	app, err := s.createApplication(ctx, farmer, scheme, verdict, constants.SourceManual)
	if errors.Is(err, common.ErrAlreadyApplied) {
		// Lost the race against a concurrent apply; the insert is the
		// authoritative uniqueness check.
		existing, lookupErr := s.applications.GetByFarmerAndScheme(ctx, farmerID, schemeID)
		if lookupErr != nil {
			return nil, common.WrapError(lookupErr, "load racing application")
		}
		return &Result{AlreadyApplied: true, Application: existing, Verdict: verdict}, nil
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, farmer.ID, "Application submitted",
		fmt.Sprintf("Your application %s for %s has been submitted.", app.ApplicationID, scheme.Name),
		constants.NotifyApplication)

	return &Result{Applied: true, Application: app, Verdict: verdict}, nil
}

// AutoApply sweeps all auto-apply-enabled farmers for one scheme, creating
// at most one application per eligible farmer. Per-farmer failures are
// logged and skipped; the sweep never aborts part-way, and already-created
// applications stand regardless of later failures.
func (s *Service) AutoApply(ctx context.Context, schemeID uuid.UUID) ([]*entity.Application, error) {
	scheme, err := s.schemes.GetByID(ctx, schemeID)
	if err != nil {
		return nil, common.WrapError(err, "load scheme")
	}
	farmers, err := s.farmers.ListAutoApply(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list auto-apply farmers")
	}

	var created []*entity.Application
	for _, farmer := range farmers {
		app, err := s.autoApplyOne(ctx, farmer, scheme)
		if err != nil {
			s.logger.Error("auto-apply failed for farmer", "farmer_id", farmer.ID, "scheme_id", scheme.ID, "error", err)
			continue
		}
		if app != nil {
			created = append(created, app)
		}
	}

	s.logger.Info("auto-apply sweep complete", "scheme_id", scheme.ID, "farmers", len(farmers), "created", len(created))
	return created, nil
}

// autoApplyOne returns (nil, nil) when the farmer is skipped: already
// applied or not eligible.
func (s *Service) autoApplyOne(ctx context.Context, farmer *entity.Farmer, scheme *entity.Scheme) (*entity.Application, error) {
	if _, err := s.applications.GetByFarmerAndScheme(ctx, farmer.ID, scheme.ID); err == nil {
		return nil, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.WrapError(err, "check existing application")
	}

	verdict, err := s.evaluate(ctx, farmer.ID, scheme)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		return nil, nil
	}

	app, err := s.createApplication(ctx, farmer, scheme, verdict, constants.SourceAuto)
	if errors.Is(err, common.ErrAlreadyApplied) {
		// Raced a manual apply; the pair is covered either way.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, farmer.ID, "Auto-applied to scheme",
		fmt.Sprintf("You have been automatically applied to %s (application %s).", scheme.Name, app.ApplicationID),
		constants.NotifyApplication)

	return app, nil
}

// createApplication inserts with the collision retry loop: on a duplicate
// application identifier the suffix is regenerated up to maxIDRetries times,
// then the operation fails loudly. A duplicate (farmer, scheme) pair is
// surfaced to the caller untouched.
func (s *Service) createApplication(ctx context.Context, farmer *entity.Farmer, scheme *entity.Scheme, verdict eligibility.Verdict, source constants.ApplicationSource) (*entity.Application, error) {
	snapshot, err := json.Marshal(verdict)
	if err != nil {
		return nil, common.WrapError(err, "encode eligibility snapshot")
	}

	for attempt := 0; attempt <= maxIDRetries; attempt++ {
		now := s.now()
		amount := scheme.BenefitAmount
		app := &entity.Application{
			ApplicationID: NewApplicationID(now),
			FarmerID:      farmer.ID,
			SchemeID:      scheme.ID,
			Status:        constants.StatusPending,
			Source:        source,
			AppliedAmount: &amount,
			Eligibility:   snapshot,
			StatusHistory: []entity.StatusChange{{Status: constants.StatusPending, Timestamp: now}},
		}
		created, err := s.applications.Insert(ctx, app)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, common.ErrDuplicateApplicationID) {
			s.logger.Warn("application id collision, regenerating", "application_id", app.ApplicationID, "attempt", attempt+1)
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("application id collisions exhausted %d retries: %w", maxIDRetries, common.ErrDuplicateApplicationID)
}

// UpdateStatus applies one admin-driven transition, appending to the
// append-only history. Illegal transitions are rejected before any write.
func (s *Service) UpdateStatus(ctx context.Context, applicationID string, next constants.ApplicationStatus, approvedAmount *float64) (*entity.Application, error) {
	app, err := s.applications.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, common.WrapError(err, "load application")
	}
	if !constants.CanTransition(app.Status, next) {
		return nil, fmt.Errorf("%s -> %s: %w", app.Status, next, common.ErrIllegalTransition)
	}

	app.Status = next
	if approvedAmount != nil {
		app.ApprovedAmount = approvedAmount
	}
	app.StatusHistory = append(app.StatusHistory, entity.StatusChange{
		Status:         next,
		Timestamp:      s.now(),
		ApprovedAmount: approvedAmount,
	})

	updated, err := s.applications.Update(ctx, app)
	if err != nil {
		return nil, common.WrapError(err, "persist status update")
	}

	s.notify(ctx, app.FarmerID, "Application status updated",
		fmt.Sprintf("Application %s is now %s.", app.ApplicationID, next),
		constants.NotifyStatusChange)

	return updated, nil
}

// notify is fire-and-forget: a notification failure never rolls back or
// fails the operation that triggered it.
func (s *Service) notify(ctx context.Context, farmerID uuid.UUID, title, message string, ntype constants.NotificationType) {
	err := s.notifications.Create(ctx, &entity.Notification{
		FarmerID: farmerID,
		Title:    title,
		Message:  message,
		Type:     ntype,
	})
	if err != nil {
		s.logger.Error("notification create failed", "farmer_id", farmerID, "title", title, "error", err)
	}
}
