package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/event"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/repository"
)

// Service defines the interface for patient profile operations
type Service interface {
	// Register creates a patient profile. The timezone must resolve via
	// the IANA database; an empty timezone defaults to UTC.
	Register(ctx context.Context, patient *domain.Patient) error
	Get(ctx context.Context, patientID string) (*domain.Patient, error)
	// Location resolves the patient's stored timezone. A timezone that no
	// longer resolves degrades to UTC rather than failing the request.
	Location(ctx context.Context, patientID string) (*time.Location, error)
	MetricContext(ctx context.Context, patientID string) (domain.MetricContext, error)
}

// service implements the Service interface
type service struct {
	patients repository.Patient
	eventBus event.Bus
}

// NewService creates a new patient service
func NewService(patients repository.Patient, eventBus event.Bus) Service {
	return &service{patients: patients, eventBus: eventBus}
}

// Register creates a new patient profile
func (s *service) Register(ctx context.Context, patient *domain.Patient) error {
	log := logger.FromContext(ctx)

	if patient.Email == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmailRequired)
	}
	if patient.Nickname == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNicknameRequired)
	}
	if patient.Timezone == "" {
		patient.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(patient.Timezone); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTimezone, patient.Timezone)
	}

	if err := s.patients.Create(ctx, patient); err != nil {
		return fmt.Errorf(ErrMsgCreateFailed, err)
	}

	if err := s.eventBus.Publish(ctx, event.NewPatientRegisteredEvent(*patient)); err != nil {
		log.Warn(LogMsgRegisterEventError, "error", err, "patient_id", patient.ID)
	}

	log.Info(LogMsgPatientRegistered, "patient_id", patient.ID)
	return nil
}

// Get fetches a patient profile
func (s *service) Get(ctx context.Context, patientID string) (*domain.Patient, error) {
	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}

	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetFailed, err)
	}
	return patient, nil
}

// Location resolves the patient's timezone
func (s *service) Location(ctx context.Context, patientID string) (*time.Location, error) {
	log := logger.FromContext(ctx)

	patient, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(patient.Timezone)
	if err != nil {
		log.Warn(LogMsgTimezoneFallback, "patient_id", patientID, "timezone", patient.Timezone)
		return time.UTC, nil
	}
	return loc, nil
}

// MetricContext returns the patient's current metric snapshot
func (s *service) MetricContext(ctx context.Context, patientID string) (domain.MetricContext, error) {
	if patientID == "" {
		return nil, errors.New(ErrMsgPatientIDRequired)
	}
	return s.patients.MetricContext(ctx, patientID)
}
