package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pointmotion/engage-backend/internal/activity"
	"github.com/pointmotion/engage-backend/internal/domain"
	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/patient"
)

// RecordActivityRequest represents one played-game session
type RecordActivityRequest struct {
	PatientID   string    `json:"patient_id" validate:"required"`
	Game        string    `json:"game" validate:"required,game"`
	StartedAt   time.Time `json:"started_at"`
	DurationSec int       `json:"duration_sec" validate:"required,gt=0"`
}

// StreakResponse carries the current consecutive-day streak
type StreakResponse struct {
	PatientID string `json:"patient_id"`
	Streak    int    `json:"streak"`
}

// HandleRecordActivity records one game session
// @Summary Record an activity session
// @Description Stores a played-game session and updates the patient's engagement metrics
// @Tags activity
// @Accept json
// @Produce json
// @Param request body RecordActivityRequest true "Session"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/activity/record [post]
func HandleRecordActivity(activityService activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RecordActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode record activity request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		err := activityService.RecordActivity(r.Context(), req.PatientID, domain.Game(req.Game), req.StartedAt, req.DurationSec)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Warn("Failed to record activity", "error", err, "patient_id", req.PatientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Activity recorded"})
	}
}

// HandleDailySummary returns one day's activity rollup
// @Summary Daily activity summary
// @Description Aggregates one calendar day in the patient's timezone. Date defaults to today.
// @Tags activity
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Param date query string false "Day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/activity/daily [get]
func HandleDailySummary(activityService activity.Service, patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		loc, err := patientService.Location(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		day := time.Now().In(loc)
		if raw := r.URL.Query().Get("date"); raw != "" {
			day, err = time.ParseInLocation(time.DateOnly, raw, loc)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
		}

		summary, err := activityService.DailySummary(r.Context(), patientID, day, loc)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to build daily summary", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: summary})
	}
}

// HandleMonthlySummary returns one month's activity rollup
// @Summary Monthly activity summary
// @Description Aggregates one calendar month in the patient's timezone. Year and month default to the current month.
// @Tags activity
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/activity/monthly [get]
func HandleMonthlySummary(activityService activity.Service, patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		loc, err := patientService.Location(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		now := time.Now().In(loc)
		year, month := now.Year(), now.Month()
		if raw := r.URL.Query().Get("year"); raw != "" {
			year, err = strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
		}
		if raw := r.URL.Query().Get("month"); raw != "" {
			m, err := strconv.Atoi(raw)
			if err != nil || m < 1 || m > 12 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
				return
			}
			month = time.Month(m)
		}

		summary, err := activityService.MonthlySummary(r.Context(), patientID, year, month, loc)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to build monthly summary", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: summary})
	}
}

// HandleStreak returns the current streak
// @Summary Current activity streak
// @Description Returns the unbroken run of qualifying days ending today in the patient's timezone
// @Tags activity
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/activity/streak [get]
func HandleStreak(activityService activity.Service, patientService patient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		loc, err := patientService.Location(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		streak, err := activityService.Streak(r.Context(), patientID, loc)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to compute streak", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: StreakResponse{PatientID: patientID, Streak: streak}})
	}
}
