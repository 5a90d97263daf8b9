package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/models"
	"github.com/planittesting/jupiter-e2e/internal/repository"
	"github.com/planittesting/jupiter-e2e/internal/services"
)

// FeedbackResponse is returned for an accepted contact form submission
type FeedbackResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// FeedbackRecord is a stored submission as the API returns it
type FeedbackRecord struct {
	ID        string    `json:"id"`
	Forename  string    `json:"forename"`
	Surname   string    `json:"surname,omitempty"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func newFeedbackRecord(f *models.Feedback) FeedbackRecord {
	return FeedbackRecord{
		ID:        f.ID,
		Forename:  f.Forename,
		Surname:   f.Surname,
		Email:     f.Email,
		Telephone: f.Telephone,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}

// FeedbackAPI handles contact form submissions and reads them back
type FeedbackAPI struct {
	feedbackService services.FeedbackService
}

// NewFeedbackAPI creates the feedback API handlers
func NewFeedbackAPI(feedbackService services.FeedbackService) *FeedbackAPI {
	return &FeedbackAPI{
		feedbackService: feedbackService,
	}
}

// Submit handles POST /api/feedback
func (h *FeedbackAPI) Submit(w http.ResponseWriter, r *http.Request) {
	var in services.FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	feedback, err := h.feedbackService.Submit(r.Context(), in)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   http.StatusText(http.StatusBadRequest),
				Message: "We welcome your feedback - but we won't get it unless you complete the form correctly.",
				Fields:  verr.Fields,
			})
			return
		}

		logger.Get(r.Context()).Error("submit feedback", zap.Error(err))
		sendErrorResponse(w, "Failed to send feedback", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, FeedbackResponse{
		ID:      feedback.ID,
		Message: feedback.ThankYouMessage(),
	})
}

// Get handles GET /api/feedback/{feedbackID}
func (h *FeedbackAPI) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "feedbackID")

	feedback, err := h.feedbackService.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		sendErrorResponse(w, "Feedback not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Get(r.Context()).Error("get feedback", zap.String("id", id), zap.Error(err))
		sendErrorResponse(w, "Failed to load feedback", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newFeedbackRecord(feedback))
}

// List handles GET /api/feedback?forename=
func (h *FeedbackAPI) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.feedbackService.ListByForename(r.Context(), r.URL.Query().Get("forename"))
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   http.StatusText(http.StatusBadRequest),
				Message: "forename query parameter is required",
				Fields:  verr.Fields,
			})
			return
		}

		logger.Get(r.Context()).Error("list feedback", zap.Error(err))
		sendErrorResponse(w, "Failed to load feedback", http.StatusInternalServerError)
		return
	}

	records := make([]FeedbackRecord, 0, len(list))
	for _, f := range list {
		records = append(records, newFeedbackRecord(f))
	}
	writeJSON(w, http.StatusOK, records)
}
