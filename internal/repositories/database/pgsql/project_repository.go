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
	"github.com/BinaWorks/construction_erp_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `project_id, company_id, name, client_name, manager_id, revenue_model, management_fee_percent, operational_fund, office_revenue, actual_cost, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryWithTx {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryWithTx
var _ portsrepo.ProjectRepositoryWithTx = (*PgxProjectRepository)(nil)

func scanProject(row pgx.Row) (*models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.CompanyID,
		&m.Name,
		&m.ClientName,
		&m.ManagerID,
		&m.RevenueModel,
		&m.ManagementFeePercent,
		&m.OperationalFund,
		&m.OfficeRevenue,
		&m.ActualCost,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.CompanyID,
		m.Name,
		m.ClientName,
		m.ManagerID,
		m.RevenueModel,
		m.ManagementFeePercent,
		m.OperationalFund,
		m.OfficeRevenue,
		m.ActualCost,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, m.ProjectID)
		}
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project by ID, scoped to a company.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1 AND company_id = $2;
	`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	d := mapping.ToDomainProject(*m)
	return &d, nil
}

// ListProjectsByCompany retrieves a paginated list of projects using
// token-based pagination ordered by creation time descending.
func (r *PgxProjectRepository) ListProjectsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{companyID}
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE company_id = $1
	`
	if nextToken != nil && *nextToken != "" {
		createdAt, projectID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, project_id) < ($2, $3)`
		args = append(args, createdAt, projectID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, project_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query projects for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelProjects := []models.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan project row for company %s: %w", companyID, err)
		}
		modelProjects = append(modelProjects, *m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating project rows for company %s: %w", companyID, rows.Err())
	}

	var outToken *string
	if len(modelProjects) > limit {
		modelProjects = modelProjects[:limit]
		last := modelProjects[len(modelProjects)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ProjectID)
		outToken = &token
	}

	return mapping.ToDomainProjectSlice(modelProjects), outToken, nil
}

// UpdateProject updates a project's non-financial fields. The rollup columns
// change only through ApplyRollupDeltaInTx.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	query := `
		UPDATE projects
		SET name = $3, client_name = $4, manager_id = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE project_id = $1 AND company_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.CompanyID,
		m.Name,
		m.ClientName,
		m.ManagerID,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update project %s: %w", m.ProjectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateProject marks a project as inactive.
func (r *PgxProjectRepository) DeactivateProject(ctx context.Context, companyID string, projectID string, actorID string, now time.Time) error {
	query := `
		UPDATE projects
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE project_id = $1 AND company_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, projectID, companyID, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyRollupDeltaInTx additively adjusts the project's rollup columns in a
// single statement so concurrent writers never lose increments.
func (r *PgxProjectRepository) ApplyRollupDeltaInTx(ctx context.Context, tx pgx.Tx, projectID string, delta portsrepo.RollupDelta, actorID string, now time.Time) error {
	query := `
		UPDATE projects
		SET operational_fund = operational_fund + $2,
		    office_revenue = office_revenue + $3,
		    actual_cost = actual_cost + $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE project_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		projectID,
		delta.OperationalFund,
		delta.OfficeRevenue,
		delta.ActualCost,
		now,
		actorID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply rollup delta for project %s: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %s not found during rollup update", apperrors.ErrNotFound, projectID)
	}
	return nil
}
