package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/patient"
)

// RegisterPatientRequest represents the request to register a patient
type RegisterPatientRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Nickname  string `json:"nickname" validate:"required,max=100"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Timezone  string `json:"timezone" validate:"timezone_name"`
}

// HandleRegisterPatient handles patient registration
// @Summary Register a patient
// @Description Creates a patient engagement profile
// @Tags patient
// @Accept json
// @Produce json
// @Param request body RegisterPatientRequest true "Patient profile"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/patient/register [post]
func HandleRegisterPatient(patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register patient request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Register patient validation failed", "errors", FormatValidationError(err))
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		p := &domain.Patient{
			Email:     req.Email,
			Nickname:  req.Nickname,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Timezone:  req.Timezone,
		}
		if err := patientService.Register(r.Context(), p); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to register patient", "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Data: p})
	}
}

// HandleGetPatient returns a patient profile
// @Summary Get a patient
// @Description Returns the patient engagement profile
// @Tags patient
// @Produce json
// @Param patientID path string true "Patient ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/patient/{patientID} [get]
func HandleGetPatient(patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := chi.URLParam(r, "patientID")
		p, err := patientService.Get(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Warn("Failed to get patient", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: p})
	}
}
