package services

import (
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
)

// NewServiceContainer wires up all application services in dependency order:
// the notification service has no dependencies, the company service provides
// the authorizer every other service embeds.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	notificationSvc := NewNotificationService(repos.NotificationRepo)
	companySvc := NewCompanyService(repos.CompanyRepo, repos.UserRepo)

	return &portssvc.ServiceContainer{
		Company:       companySvc,
		User:          NewUserService(repos.UserRepo, repos.CompanyRepo, companySvc),
		Project:       NewProjectService(repos.ProjectRepo, repos.UserRepo, companySvc),
		Custody:       NewCustodyService(repos.CustodyRepo, repos.UserRepo, companySvc, notificationSvc),
		Transaction:   NewTransactionService(repos.TransactionRepo, repos.ProjectRepo, companySvc, notificationSvc),
		MaterialBatch: NewMaterialBatchService(repos.MaterialBatchRepo, companySvc),
		Notification:  notificationSvc,
	}
}
