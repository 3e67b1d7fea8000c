package repository

import (
	"context"
	"database/sql"

	"github.com/oshaad/backoffice/internal/models"
)

// PostgresAdminRepository implements admin account persistence using a PostgreSQL database.
type PostgresAdminRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAdminRepository creates a new PostgresAdminRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresAdminRepository(db *sql.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{DB: db}
}

// FindByEmail fetches the admin with the given email.
// Returns sql.ErrNoRows if no such admin exists.
func (r *PostgresAdminRepository) FindByEmail(ctx context.Context, email string) (models.Admin, error) {
	admin := models.Admin{Email: email}
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, password_hash FROM admins WHERE email = $1`,
		email,
	).Scan(&admin.ID, &admin.PasswordHash)
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// UpsertAdmin creates the admin account or, if the email is already
// registered, replaces its password hash. Used to seed the back-office
// login at startup.
func (r *PostgresAdminRepository) UpsertAdmin(ctx context.Context, admin models.Admin) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO admins (id, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		admin.ID, admin.Email, admin.PasswordHash,
	)
	return err
}
