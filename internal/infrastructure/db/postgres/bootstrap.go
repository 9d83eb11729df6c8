package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureAdmin inserts a bootstrap admin account unless some admin already
// exists. The check and insert run as one statement, so concurrent boots
// cannot seed two admins. Returns true when a new admin was created.
func EnsureAdmin(ctx context.Context, db *sql.DB, name, email, passwordHash string) (bool, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 SELECT $1, $2, $3, 'admin'
		 WHERE NOT EXISTS (SELECT 1 FROM users WHERE role = 'admin')`,
		name, email, passwordHash,
	)
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	return n > 0, nil
}
