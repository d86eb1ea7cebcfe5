package services_test

import (
	"context"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared mocks for the service test suites.

// MockAuthorizer is a mock type for the CompanyAuthorizerSvc interface
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeUserAction(ctx context.Context, companyID string, userID string, required domain.Capability) (*domain.User, error) {
	args := m.Called(ctx, companyID, userID, required)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationSvc is a mock type for the NotificationWriterSvc interface
type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) Notify(ctx context.Context, notification domain.Notification) {
	m.Called(ctx, notification)
}

func (m *MockNotificationSvc) MarkRead(ctx context.Context, companyID string, notificationID string, requestingUserID string) error {
	args := m.Called(ctx, companyID, notificationID, requestingUserID)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByCompany(ctx context.Context, companyID string, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, companyID string, userID string, actorID string, now time.Time) error {
	args := m.Called(ctx, companyID, userID, actorID, now)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserForUpdateInTx(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ApplyWalletDeltaInTx(ctx context.Context, tx pgx.Tx, userID string, balanceDelta decimal.Decimal, reservationDelta decimal.Decimal, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, userID, balanceDelta, reservationDelta, actorID, now)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustReservationInTx(ctx context.Context, tx pgx.Tx, userID string, reservationDelta decimal.Decimal, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, userID, reservationDelta, actorID, now)
	return args.Error(0)
}

// MockNotificationRepository is a mock type for the NotificationRepositoryFacade interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) ListNotificationsByUser(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, companyID, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, companyID string, userID string, notificationID string, now time.Time) error {
	args := m.Called(ctx, companyID, userID, notificationID, now)
	return args.Error(0)
}

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompaniesByUser(ctx context.Context, userID string) ([]domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeactivateCompany(ctx context.Context, companyID string, actorID string, now time.Time) error {
	args := m.Called(ctx, companyID, actorID, now)
	return args.Error(0)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, companyID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Project), token, args.Error(2)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeactivateProject(ctx context.Context, companyID string, projectID string, actorID string, now time.Time) error {
	args := m.Called(ctx, companyID, projectID, actorID, now)
	return args.Error(0)
}

func (m *MockProjectRepository) ApplyRollupDeltaInTx(ctx context.Context, tx pgx.Tx, projectID string, delta portsrepo.RollupDelta, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, projectID, delta, actorID, now)
	return args.Error(0)
}

// MockCustodyRepository is a mock type for the CustodyRepositoryFacade interface
type MockCustodyRepository struct {
	mock.Mock
}

func (m *MockCustodyRepository) ListTransfersByEngineer(ctx context.Context, companyID string, engineerID string, limit int, nextToken *string) ([]domain.CustodyTransfer, *string, error) {
	args := m.Called(ctx, companyID, engineerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.CustodyTransfer), token, args.Error(2)
}

func (m *MockCustodyRepository) SaveTransfer(ctx context.Context, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error) {
	args := m.Called(ctx, transfer)
	return args.Get(0).(domain.CustodyTransfer), args.Error(1)
}

func (m *MockCustodyRepository) ApplyTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error) {
	args := m.Called(ctx, tx, transfer)
	return args.Get(0).(domain.CustodyTransfer), args.Error(1)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByProject(ctx context.Context, companyID string, projectID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, companyID, projectID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsByCreator(ctx context.Context, companyID string, creatorID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, companyID, creatorID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) ListPendingApprovals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) SaveDraft(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, reservationDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteDraft(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SubmitDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, reservationDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) ApproveExpense(ctx context.Context, txn domain.Transaction, transferID string, batch *domain.MaterialBatch) error {
	args := m.Called(ctx, txn, transferID, batch)
	return args.Error(0)
}

func (m *MockTransactionRepository) RejectExpense(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveIncome(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// MockMaterialBatchRepository is a mock type for the MaterialBatchRepositoryFacade interface
type MockMaterialBatchRepository struct {
	mock.Mock
}

func (m *MockMaterialBatchRepository) FindBatchByID(ctx context.Context, companyID string, batchID string) (*domain.MaterialBatch, error) {
	args := m.Called(ctx, companyID, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialBatch), args.Error(1)
}

func (m *MockMaterialBatchRepository) ListBatchesByProject(ctx context.Context, companyID string, projectID string, limit int, offset int) ([]domain.MaterialBatch, error) {
	args := m.Called(ctx, companyID, projectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialBatch), args.Error(1)
}

func (m *MockMaterialBatchRepository) ConsumeBatch(ctx context.Context, companyID string, batchID string, amount decimal.Decimal, actorID string, now time.Time) (*domain.MaterialBatch, error) {
	args := m.Called(ctx, companyID, batchID, amount, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialBatch), args.Error(1)
}

func (m *MockMaterialBatchRepository) SaveBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.MaterialBatch) error {
	args := m.Called(ctx, tx, batch)
	return args.Error(0)
}
