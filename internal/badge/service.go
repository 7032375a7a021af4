package badge

import (
	"context"
	"errors"
	"fmt"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/repository"
)

// Service defines the interface for badge catalog and eligibility operations
type Service interface {
	ActiveCatalog(ctx context.Context) ([]domain.Badge, error)
	EarnedBadges(ctx context.Context, patientID string) ([]domain.PatientBadge, error)
	// EligibleBadges loads the catalog, the patient's earned badges and
	// metric context, and filters with Eligible
	EligibleBadges(ctx context.Context, patientID string) ([]domain.Badge, error)
	RecordUnlock(ctx context.Context, patientID, badgeID string) error
	// InvalidateCatalog drops the cached catalog, forcing a reload on
	// the next read. Called by admin endpoints after catalog changes.
	InvalidateCatalog()
}

// service implements the Service interface
type service struct {
	repo     repository.Badge
	patients repository.Patient
	eventBus event.Bus
	cache    *catalogCache
}

// NewService creates a new badge service
func NewService(repo repository.Badge, patients repository.Patient, eventBus event.Bus) Service {
	return &service{
		repo:     repo,
		patients: patients,
		eventBus: eventBus,
		cache:    newCatalogCache(CatalogCacheTTL),
	}
}

// ActiveCatalog returns the current active badge catalog, cached with a short TTL
func (s *service) ActiveCatalog(ctx context.Context) ([]domain.Badge, error) {
	log := logger.FromContext(ctx)

	if badges, ok := s.cache.Get(); ok {
		log.Debug(LogMsgCatalogCacheHit, "count", len(badges))
		return badges, nil
	}

	badges, err := s.repo.ActiveBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCatalogFailed, err)
	}

	s.cache.Set(badges)
	log.Debug(LogMsgCatalogLoaded, "count", len(badges))
	return badges, nil
}

// EarnedBadges returns the patient's unlocked badges
func (s *service) EarnedBadges(ctx context.Context, patientID string) ([]domain.PatientBadge, error) {
	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}

	earned, err := s.repo.EarnedBadges(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEarnedFailed, err)
	}
	return earned, nil
}

// EligibleBadges returns the badges the patient can still earn given
// their current metric context
func (s *service) EligibleBadges(ctx context.Context, patientID string) ([]domain.Badge, error) {
	log := logger.FromContext(ctx)

	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}

	catalog, err := s.ActiveCatalog(ctx)
	if err != nil {
		return nil, err
	}

	earned, err := s.repo.EarnedBadges(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEarnedFailed, err)
	}

	metrics, err := s.patients.MetricContext(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetContextFailed, err)
	}

	eligible := Eligible(catalog, earned, metrics)
	log.Debug(LogMsgEligibleComputed, "patient_id", patientID, "eligible", len(eligible), "catalog", len(catalog))
	return eligible, nil
}

// RecordUnlock records that the patient unlocked a badge
func (s *service) RecordUnlock(ctx context.Context, patientID, badgeID string) error {
	log := logger.FromContext(ctx)

	if patientID == "" {
		return errors.New(ErrMsgPatientIDRequired)
	}

	catalog, err := s.ActiveCatalog(ctx)
	if err != nil {
		return err
	}
	var unlocked *domain.Badge
	for i := range catalog {
		if catalog[i].ID == badgeID {
			unlocked = &catalog[i]
			break
		}
	}
	if unlocked == nil {
		return fmt.Errorf("%w: %s", domain.ErrBadgeNotFound, badgeID)
	}

	if err := s.repo.RecordUnlock(ctx, patientID, badgeID); err != nil {
		return fmt.Errorf(ErrMsgRecordUnlockFailed, err)
	}

	if err := s.eventBus.Publish(ctx, event.NewBadgeUnlockedEvent(patientID, *unlocked)); err != nil {
		log.Warn(LogMsgUnlockEventError, "error", err, "patient_id", patientID)
	}

	log.Info(LogMsgUnlockRecorded, "patient_id", patientID, "badge_id", badgeID)
	return nil
}

// InvalidateCatalog drops the cached catalog
func (s *service) InvalidateCatalog() {
	s.cache.Invalidate()
}
