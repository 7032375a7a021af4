package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pointmotion/engage-backend/internal/badge"
	"github.com/pointmotion/engage-backend/internal/logger"
)

// UnlockBadgeRequest represents a badge unlock grant
type UnlockBadgeRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	BadgeID   string `json:"badge_id" validate:"required"`
}

// HandleBadgeCatalog returns the active badge catalog
// @Summary Active badge catalog
// @Description Returns all badges currently offered
// @Tags badge
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/badge/catalog [get]
func HandleBadgeCatalog(badgeService badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		catalog, err := badgeService.ActiveCatalog(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to load badge catalog", "error", err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: catalog})
	}
}

// HandleEarnedBadges returns the patient's unlocked badges
// @Summary Earned badges
// @Description Returns badges the patient has unlocked
// @Tags badge
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/badge/earned [get]
func HandleEarnedBadges(badgeService badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		earned, err := badgeService.EarnedBadges(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to load earned badges", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: earned})
	}
}

// HandleEligibleBadges returns badges the patient can still earn
// @Summary Eligible badges
// @Description Returns active badges the patient has not locked out and whose metric threshold is still ahead of them
// @Tags badge
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/badge/eligible [get]
func HandleEligibleBadges(badgeService badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		patientID := r.URL.Query().Get("patient_id")
		if patientID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		eligible, err := badgeService.EligibleBadges(r.Context(), patientID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to evaluate eligible badges", "error", err, "patient_id", patientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: eligible})
	}
}

// HandleUnlockBadge records a badge unlock
// @Summary Record a badge unlock
// @Description Inserts a first unlock or increments the repeat count
// @Tags badge
// @Accept json
// @Produce json
// @Param request body UnlockBadgeRequest true "Unlock"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/badge/unlock [post]
func HandleUnlockBadge(badgeService badge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnlockBadgeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unlock badge request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		if err := badgeService.RecordUnlock(r.Context(), req.PatientID, req.BadgeID); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			log.Error("Failed to record badge unlock", "error", err, "patient_id", req.PatientID)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: "Badge unlock recorded"})
	}
}
