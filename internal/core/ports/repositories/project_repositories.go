package repositories

import (
	"context"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// RollupDelta is a signed adjustment to a project's financial rollup columns.
// Zero-valued fields are applied as zero, so callers set only what changes.
type RollupDelta struct {
	OperationalFund decimal.Decimal
	OfficeRevenue   decimal.Decimal
	ActualCost      decimal.Decimal
}

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by ID, scoped to a company.
	FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error)

	// ListProjectsByCompany retrieves a paginated list of projects using
	// token-based pagination.
	ListProjectsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Project, *string, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates a project's non-financial fields.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeactivateProject marks a project as inactive.
	DeactivateProject(ctx context.Context, companyID string, projectID string, actorID string, now time.Time) error
}

// ProjectTransactionSupport defines rollup mutations that run inside a
// caller-owned database transaction.
type ProjectTransactionSupport interface {
	// ApplyRollupDeltaInTx additively adjusts the rollup columns. The update is
	// a single SQL statement (col = col + delta) so concurrent writers on
	// different transactions never lose increments.
	ApplyRollupDeltaInTx(ctx context.Context, tx pgx.Tx, projectID string, delta RollupDelta, actorID string, now time.Time) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	ProjectTransactionSupport
}

// ProjectRepositoryWithTx extends ProjectRepositoryFacade with transaction capabilities
type ProjectRepositoryWithTx interface {
	ProjectRepositoryFacade
	TransactionManager
}
