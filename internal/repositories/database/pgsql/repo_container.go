package pgsql

import (
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	custodyRepo := newPgxCustodyRepository(dbPool, userRepo)
	batchRepo := newPgxMaterialBatchRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, userRepo, projectRepo, custodyRepo, batchRepo)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:       companyRepo,
		UserRepo:          userRepo,
		ProjectRepo:       projectRepo,
		TransactionRepo:   transactionRepo,
		CustodyRepo:       custodyRepo,
		MaterialBatchRepo: batchRepo,
		NotificationRepo:  notificationRepo,
	}
}
