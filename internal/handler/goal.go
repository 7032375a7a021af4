package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pointmotion/engage-backend/internal/concurrency"
	"github.com/pointmotion/engage-backend/internal/goal"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/patient"
)

// generationLocks serializes goal generation per patient. Two in-flight
// requests for the same patient could both pass the once-per-day guard
// before either batch is written.
var generationLocks = concurrency.NewLockManager()

// GenerateGoalsRequest represents the request to generate today's goals
type GenerateGoalsRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
}

// HandleGenerateGoals handles daily goal generation
// @Summary Generate daily goals
// @Description Synthesizes today's goal batch from badges the patient can still earn. At most one batch per calendar day in the patient's timezone.
// @Tags goal
// @Accept json
// @Produce json
// @Param request body GenerateGoalsRequest true "Patient"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/goal/generate [post]
func HandleGenerateGoals(goalService goal.Service, patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GenerateGoalsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode generate goals request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		// Generation day boundaries follow the patient's timezone
		loc, err := patientService.Location(r.Context(), req.PatientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Warn("Failed to resolve patient timezone", "error", err, "patient_id", req.PatientID)
			respondError(w, status, msg)
			return
		}

		lock := generationLocks.GetLock(req.PatientID)
		lock.Lock()
		goals, err := goalService.GenerateGoals(r.Context(), req.PatientID, loc)
		lock.Unlock()
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Warn("Goal generation failed", "error", err, "patient_id", req.PatientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Data: goals})
	}
}

// HandleOpenGoals returns a patient's open goals
// @Summary List open goals
// @Description Returns goals that have not yet expired
// @Tags goal
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/goal/open [get]
func HandleOpenGoals(goalService goal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		goals, err := goalService.OpenGoals(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to list open goals", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: goals})
	}
}
