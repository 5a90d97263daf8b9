package database

import (
	"context"
	"database/sql"

	"github.com/go-faster/errors"
)

// Schema holds the tables of the replica's feedback store
const Schema = `
CREATE TABLE IF NOT EXISTS feedback (
	id UUID PRIMARY KEY,
	forename VARCHAR(255) NOT NULL,
	surname VARCHAR(255) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL,
	telephone VARCHAR(32) NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_feedback_email ON feedback(email);
CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
`

// RunMigrations creates the feedback tables if they are missing
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("database connection not initialized")
	}

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.Wrap(err, "create feedback table")
	}

	return nil
}
