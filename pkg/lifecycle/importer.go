package lifecycle

import (
	"context"
	"time"

	"github.com/gnames/gnkin/pkg/roster"
)

// ImportSummary reports the outcome of an import.
type ImportSummary struct {
	// Created is the number of new accounts.
	Created int

	// Skipped lists user names that were not imported because the user
	// name or the email already existed.
	Skipped []string

	Duration time.Duration
}

// Importer creates many users at once from a roster.
type Importer interface {
	// Import hashes passwords concurrently and inserts the users in
	// batches. Existing users are skipped, never updated.
	Import(ctx context.Context, r *roster.Roster) (ImportSummary, error)
}
