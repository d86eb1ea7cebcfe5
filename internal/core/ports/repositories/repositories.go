package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo       CompanyRepositoryFacade
	UserRepo          UserRepositoryFacade
	ProjectRepo       ProjectRepositoryFacade
	TransactionRepo   TransactionRepositoryFacade
	CustodyRepo       CustodyRepositoryFacade
	MaterialBatchRepo MaterialBatchRepositoryFacade
	NotificationRepo  NotificationRepositoryFacade
}
