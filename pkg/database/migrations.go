package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one in-flight post per dedupe key. Published rows are excluded:
	// the 24h dedupe window for those is enforced in the publish transaction,
	// since a unique index would block resubmission forever.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS posts_account_id_dedupe_key_active
		ON posts (account_id, dedupe_key)
		WHERE state IN ('draft', 'scheduled', 'dispatching', 'awaiting_remote')`)
	if err != nil {
		return fmt.Errorf("failed to create dedupe partial index: %w", err)
	}

	return nil
}
