package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/BinaWorks/construction_erp_app/internal/models"
	"github.com/BinaWorks/construction_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const userColumns = `user_id, company_id, name, email, password_hash, role, is_active, custody_balance, pending_clearance, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryWithTx
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.CompanyID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.CustodyBalance,
		&m.PendingClearance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser inserts a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.CompanyID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.Role,
		m.IsActive,
		m.CustodyBalance,
		m.PendingClearance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by ID within a company. Soft-deleted users are excluded.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND company_id = $2 AND deleted_at IS NULL;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUserByEmail retrieves a user by email. Used by the login path, so it is
// not company scoped.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// ListUsersByCompany retrieves a paginated list of users in a company.
func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row for company %s: %w", companyID, err)
		}
		modelUsers = append(modelUsers, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows for company %s: %w", companyID, rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

// UpdateUser updates a user's mutable details.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	query := `
		UPDATE users
		SET name = $3, role = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE user_id = $1 AND company_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.CompanyID,
		m.Name,
		m.Role,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateUser soft-deletes a user.
func (r *PgxUserRepository) DeactivateUser(ctx context.Context, companyID string, userID string, actorID string, now time.Time) error {
	query := `
		UPDATE users
		SET is_active = FALSE, deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $1 AND company_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, companyID, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindUserForUpdateInTx selects a user row and locks it FOR UPDATE.
// Must be called within a transaction.
func (r *PgxUserRepository) FindUserForUpdateInTx(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
		FOR UPDATE;
	`
	m, err := scanUser(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: could not find or lock user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to lock user row %s: %w", userID, err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// ApplyWalletDeltaInTx adjusts custody_balance and pending_clearance by the
// given signed deltas. The caller must already hold the row lock.
func (r *PgxUserRepository) ApplyWalletDeltaInTx(ctx context.Context, tx pgx.Tx, userID string, balanceDelta decimal.Decimal, reservationDelta decimal.Decimal, actorID string, now time.Time) error {
	query := `
		UPDATE users
		SET custody_balance = custody_balance + $2,
		    pending_clearance = pending_clearance + $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, query, userID, balanceDelta, reservationDelta, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to apply wallet delta for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s not found during wallet update", apperrors.ErrNotFound, userID)
	}
	return nil
}

// AdjustReservationInTx adjusts pending_clearance only.
func (r *PgxUserRepository) AdjustReservationInTx(ctx context.Context, tx pgx.Tx, userID string, reservationDelta decimal.Decimal, actorID string, now time.Time) error {
	return r.ApplyWalletDeltaInTx(ctx, tx, userID, decimal.Zero, reservationDelta, actorID, now)
}
