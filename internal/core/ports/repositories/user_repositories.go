package repositories

import (
	"context"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID, scoped to a company.
	FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email across companies (login path).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsersByCompany retrieves a paginated list of users in a company.
	ListUsersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// DeactivateUser soft-deletes a user.
	DeactivateUser(ctx context.Context, companyID string, userID string, actorID string, now time.Time) error
}

// UserTransactionSupport defines custody wallet primitives that run inside a
// caller-owned database transaction.
type UserTransactionSupport interface {
	// FindUserForUpdateInTx selects a user row and locks it FOR UPDATE.
	FindUserForUpdateInTx(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error)

	// ApplyWalletDeltaInTx adjusts custody_balance and pending_clearance by the
	// given signed deltas. The caller must already hold the row lock.
	ApplyWalletDeltaInTx(ctx context.Context, tx pgx.Tx, userID string, balanceDelta decimal.Decimal, reservationDelta decimal.Decimal, actorID string, now time.Time) error

	// AdjustReservationInTx adjusts pending_clearance only. Used by the expense
	// pipeline on draft create/edit/submit/reject.
	AdjustReservationInTx(ctx context.Context, tx pgx.Tx, userID string, reservationDelta decimal.Decimal, actorID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTransactionSupport
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
