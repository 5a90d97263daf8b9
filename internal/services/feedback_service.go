package services

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/models"
)

// FeedbackRepository defines the interface for feedback persistence
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, f *models.Feedback) error
	GetFeedbackByID(ctx context.Context, id string) (*models.Feedback, error)
	ListFeedbackByForename(ctx context.Context, forename string) ([]*models.Feedback, error)
}

// FeedbackInput carries the contact form values
type FeedbackInput struct {
	Forename  string `json:"forename"`
	Surname   string `json:"surname"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Message   string `json:"message"`
}

// FeedbackService handles contact form submissions
type FeedbackService interface {
	Submit(ctx context.Context, in FeedbackInput) (*models.Feedback, error)
	Get(ctx context.Context, id string) (*models.Feedback, error)
	ListByForename(ctx context.Context, forename string) ([]*models.Feedback, error)
}

// FeedbackServiceImpl implements FeedbackService
type FeedbackServiceImpl struct {
	repo  FeedbackRepository
	delay time.Duration
}

// NewFeedbackService creates a feedback service. Each accepted submission is
// held for delay before it is stored, the way the live site keeps its
// "Sending Feedback" dialog up.
func NewFeedbackService(repo FeedbackRepository, delay time.Duration) FeedbackService {
	return &FeedbackServiceImpl{
		repo:  repo,
		delay: delay,
	}
}

// Submit validates and stores a submission. Validation failures are returned
// as *models.ValidationError without waiting.
func (s *FeedbackServiceImpl) Submit(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	feedback, err := models.NewFeedback(in.Forename, in.Surname, in.Email, in.Telephone, in.Message)
	if err != nil {
		return nil, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "submit feedback")
		case <-timer.C:
		}
	}

	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "store feedback")
	}

	logger.Get(ctx).Info("feedback received",
		zap.String("id", feedback.ID),
		zap.String("forename", feedback.Forename),
	)
	return feedback, nil
}

// Get returns a stored submission
func (s *FeedbackServiceImpl) Get(ctx context.Context, id string) (*models.Feedback, error) {
	feedback, err := s.repo.GetFeedbackByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get feedback")
	}
	return feedback, nil
}

// ListByForename returns every submission signed with forename, oldest first
func (s *FeedbackServiceImpl) ListByForename(ctx context.Context, forename string) ([]*models.Feedback, error) {
	if forename == "" {
		return nil, &models.ValidationError{Fields: map[string]string{
			models.FieldForename: models.RequiredMessage(models.FieldForename),
		}}
	}
	list, err := s.repo.ListFeedbackByForename(ctx, forename)
	if err != nil {
		return nil, errors.Wrap(err, "list feedback")
	}
	return list, nil
}
