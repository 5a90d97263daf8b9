package repository

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"

	"github.com/planittesting/jupiter-e2e/internal/models"
)

// ErrNotFound is returned when a lookup matches nothing
var ErrNotFound = errors.New("not found")

// FeedbackRepository stores contact form submissions in PostgreSQL
type FeedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a feedback repository on the given connection
func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// CreateFeedback inserts a feedback entry
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, f *models.Feedback) error {
	query := `
		INSERT INTO feedback (id, forename, surname, email, telephone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Forename,
		f.Surname,
		f.Email,
		f.Telephone,
		f.Message,
		f.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "create feedback")
	}

	return nil
}

// GetFeedbackByID retrieves a feedback entry by id
func (r *FeedbackRepository) GetFeedbackByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := `
		SELECT id, forename, surname, email, telephone, message, created_at
		FROM feedback
		WHERE id = $1
	`

	f := &models.Feedback{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID,
		&f.Forename,
		&f.Surname,
		&f.Email,
		&f.Telephone,
		&f.Message,
		&f.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNotFound, "feedback %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "get feedback")
	}

	return f, nil
}

// ListFeedbackByForename returns a forename's submissions, oldest first
func (r *FeedbackRepository) ListFeedbackByForename(ctx context.Context, forename string) ([]*models.Feedback, error) {
	query := `
		SELECT id, forename, surname, email, telephone, message, created_at
		FROM feedback
		WHERE forename = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, forename)
	if err != nil {
		return nil, errors.Wrap(err, "list feedback")
	}
	defer rows.Close()

	var out []*models.Feedback
	for rows.Next() {
		f := &models.Feedback{}
		if err := rows.Scan(&f.ID, &f.Forename, &f.Surname, &f.Email, &f.Telephone, &f.Message, &f.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan feedback")
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate feedback")
	}

	return out, nil
}
