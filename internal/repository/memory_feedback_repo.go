package repository

import (
	"context"
	"sync"

	"github.com/go-faster/errors"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// MemoryFeedbackRepository keeps feedback in memory. It is the default store
// of the replica when no database is configured.
type MemoryFeedbackRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.Feedback
	order []string
}

// NewMemoryFeedbackRepository creates an empty in-memory feedback store
func NewMemoryFeedbackRepository() *MemoryFeedbackRepository {
	return &MemoryFeedbackRepository{byID: map[string]*models.Feedback{}}
}

// CreateFeedback stores a copy of the entry
func (r *MemoryFeedbackRepository) CreateFeedback(_ context.Context, f *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[f.ID]; ok {
		return errors.Errorf("feedback %s already exists", f.ID)
	}
	stored := *f
	r.byID[f.ID] = &stored
	r.order = append(r.order, f.ID)
	return nil
}

// GetFeedbackByID returns a copy of the stored entry
func (r *MemoryFeedbackRepository) GetFeedbackByID(_ context.Context, id string) (*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "feedback %s", id)
	}
	out := *f
	return &out, nil
}

// ListFeedbackByForename returns a forename's submissions, oldest first
func (r *MemoryFeedbackRepository) ListFeedbackByForename(_ context.Context, forename string) ([]*models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Feedback
	for _, id := range r.order {
		if f := r.byID[id]; f.Forename == forename {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}
