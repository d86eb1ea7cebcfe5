package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/core/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockTransactionRepository
	mockProjectRepo *MockProjectRepository
	mockAuthorizer  *MockAuthorizer
	mockNotifier    *MockNotificationSvc
	service         portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.mockNotifier = new(MockNotificationSvc)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockProjectRepo, suite.mockAuthorizer, suite.mockNotifier)
}

func (suite *TransactionServiceTestSuite) authorizeAs(companyID, userID string, role domain.Role, required domain.Capability) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, companyID, userID, required).
		Return(&domain.User{UserID: userID, CompanyID: companyID, Role: role, IsActive: true}, nil).Once()
}

func (suite *TransactionServiceTestSuite) activeProject(companyID string) *domain.Project {
	return &domain.Project{
		ProjectID:    "project-1",
		CompanyID:    companyID,
		Name:         "Villa Renovation",
		ManagerID:    "manager-1",
		RevenueModel: domain.ExecutionCostPlus,
		IsActive:     true,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateDraft_Success() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapHoldCustody)
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").
		Return(suite.activeProject("company-1"), nil).Once()
	suite.mockRepo.On("SaveDraft", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateDraft(ctx, "company-1", dto.CreateDraftRequest{
		ProjectID:   "project-1",
		Amount:      decimal.NewFromInt(350),
		Category:    "MATERIALS",
		Description: "Cement bags",
	}, "engineer-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Draft, txn.Status)
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal("engineer-1", txn.CreatedBy)
	suite.WithinDuration(time.Now(), txn.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateDraft_InactiveProject() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapHoldCustody)
	project := suite.activeProject("company-1")
	project.IsActive = false
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()

	_, err := suite.service.CreateDraft(ctx, "company-1", dto.CreateDraftRequest{
		ProjectID:   "project-1",
		Amount:      decimal.NewFromInt(100),
		Category:    "GENERAL",
		Description: "Fuel",
	}, "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDraft", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateDraft_UnknownCategory() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapHoldCustody)

	_, err := suite.service.CreateDraft(ctx, "company-1", dto.CreateDraftRequest{
		ProjectID:   "project-1",
		Amount:      decimal.NewFromInt(100),
		Category:    "SNACKS",
		Description: "Site lunch",
	}, "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateDraft_AmountChangeAdjustsReservation() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapNone)
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		ProjectID:     "project-1",
		Type:          domain.Expense,
		Status:        domain.Draft,
		Amount:        decimal.NewFromInt(300),
		Category:      domain.CategoryMaterials,
		Description:   "Cement bags",
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(existing, nil).Once()
	newAmount := decimal.NewFromInt(450)
	suite.mockRepo.On("UpdateDraft", ctx, mock.AnythingOfType("domain.Transaction"), decimal.NewFromInt(150)).Return(nil).Once()

	txn, err := suite.service.UpdateDraft(ctx, "company-1", "txn-1", dto.UpdateDraftRequest{Amount: &newAmount}, "engineer-1")

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateDraft_NotCreator() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-2", domain.RoleEngineer, domain.CapNone)
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		Status:        domain.Draft,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(300),
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(existing, nil).Once()

	_, err := suite.service.UpdateDraft(ctx, "company-1", "txn-1", dto.UpdateDraftRequest{}, "engineer-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateDraft", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestSubmit_RequiresReceipt() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapNone)

	_, err := suite.service.Submit(ctx, "company-1", "txn-1", dto.SubmitExpenseRequest{}, "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SubmitDraft", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestSubmit_ConfirmedAmountRecomputesReservation() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapNone)
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		ProjectID:     "project-1",
		Type:          domain.Expense,
		Status:        domain.Draft,
		Amount:        decimal.NewFromInt(500),
		Category:      domain.CategoryLabor,
		Description:   "Day labor",
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(existing, nil).Once()

	// Confirmed 420 against a 500 draft: reservation shrinks by 80.
	confirmed := decimal.NewFromInt(420)
	suite.mockRepo.On("SubmitDraft", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.PendingApproval && t.Amount.Equal(confirmed) && t.ReceiptPhotoURL != nil
	}), decimal.NewFromInt(-80)).Return(nil).Once()
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").
		Return(suite.activeProject("company-1"), nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotificationExpenseSubmitted && n.UserID == "manager-1"
	})).Return().Once()

	txn, err := suite.service.Submit(ctx, "company-1", "txn-1", dto.SubmitExpenseRequest{
		ReceiptPhotoURL: "https://receipts.example.com/r1.jpg",
		ConfirmedAmount: &confirmed,
	}, "engineer-1")

	suite.Require().NoError(err)
	suite.Equal(domain.PendingApproval, txn.Status)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSubmit_AlreadyPending() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapNone)
	existing := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		Type:          domain.Expense,
		Status:        domain.PendingApproval,
		Amount:        decimal.NewFromInt(500),
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(existing, nil).Once()

	_, err := suite.service.Submit(ctx, "company-1", "txn-1", dto.SubmitExpenseRequest{
		ReceiptPhotoURL: "https://receipts.example.com/r1.jpg",
	}, "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
}

func (suite *TransactionServiceTestSuite) TestApprove_MaterialsCreatesBatch() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapApproveExpense)
	amount := decimal.NewFromInt(1200)
	pending := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		ProjectID:     "project-1",
		Type:          domain.Expense,
		Status:        domain.PendingApproval,
		Amount:        amount,
		Category:      domain.CategoryMaterials,
		Description:   "Steel rebar",
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(pending, nil).Once()
	suite.mockRepo.On("ApproveExpense", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("string"),
		mock.MatchedBy(func(b *domain.MaterialBatch) bool {
			return b != nil &&
				b.OriginalReceiptID == "txn-1" &&
				b.InitialValue.Equal(amount) &&
				b.RemainingValue.Equal(amount) &&
				b.Status == domain.BatchAvailable
		})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotificationExpenseApproved && n.UserID == "engineer-1"
	})).Return().Once()

	txn, err := suite.service.Approve(ctx, "company-1", "txn-1", "manager-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Approved, txn.Status)
	suite.Require().NotNil(txn.ApprovedBy)
	suite.Equal("manager-1", *txn.ApprovedBy)
	suite.NotNil(txn.ApprovedAt)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApprove_NonMaterialsSkipsBatch() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapApproveExpense)
	pending := &domain.Transaction{
		TransactionID: "txn-2",
		CompanyID:     "company-1",
		ProjectID:     "project-1",
		Type:          domain.Expense,
		Status:        domain.PendingApproval,
		Amount:        decimal.NewFromInt(800),
		Category:      domain.CategoryLabor,
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-2").Return(pending, nil).Once()
	suite.mockRepo.On("ApproveExpense", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("string"),
		(*domain.MaterialBatch)(nil)).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.AnythingOfType("domain.Notification")).Return().Once()

	_, err := suite.service.Approve(ctx, "company-1", "txn-2", "manager-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApprove_AlreadyApproved() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapApproveExpense)
	approved := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		Type:          domain.Expense,
		Status:        domain.Approved,
		Amount:        decimal.NewFromInt(1200),
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(approved, nil).Once()

	_, err := suite.service.Approve(ctx, "company-1", "txn-1", "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApproveExpense", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApprove_IncomeRefused() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapApproveExpense)
	income := &domain.Transaction{
		TransactionID: "txn-income",
		CompanyID:     "company-1",
		Type:          domain.Income,
		Status:        domain.Approved,
		Amount:        decimal.NewFromInt(5000),
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-income").Return(income, nil).Once()

	_, err := suite.service.Approve(ctx, "company-1", "txn-income", "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestApprove_RaceLostSurfacesConflict() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapApproveExpense)
	pending := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		ProjectID:     "project-1",
		Type:          domain.Expense,
		Status:        domain.PendingApproval,
		Amount:        decimal.NewFromInt(1200),
		Category:      domain.CategoryGeneral,
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(pending, nil).Once()
	suite.mockRepo.On("ApproveExpense", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("string"),
		(*domain.MaterialBatch)(nil)).Return(apperrors.ErrStateConflict).Once()

	_, err := suite.service.Approve(ctx, "company-1", "txn-1", "manager-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStateConflict)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestReject_RequiresReason() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapApproveExpense)

	_, err := suite.service.Reject(ctx, "company-1", "txn-1", "", "accountant-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "RejectExpense", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestReject_Success() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapApproveExpense)
	pending := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		Type:          domain.Expense,
		Status:        domain.PendingApproval,
		Amount:        decimal.NewFromInt(500),
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(pending, nil).Once()
	suite.mockRepo.On("RejectExpense", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.Rejected && t.RejectionReason != nil && *t.RejectionReason == "receipt unreadable"
	})).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotificationExpenseRejected && n.UserID == "engineer-1"
	})).Return().Once()

	txn, err := suite.service.Reject(ctx, "company-1", "txn-1", "receipt unreadable", "accountant-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Rejected, txn.Status)
	suite.Nil(txn.ApprovedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordIncome_CostPlusSplit() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapRecordIncome)
	project := suite.activeProject("company-1")
	project.ManagementFeePercent = decimal.NewFromInt(20)
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()

	// 20% of 1000 goes to the office, 800 stays operational. The payment
	// label is persisted on the income row.
	suite.mockRepo.On("SaveIncome", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Income &&
			t.Status == domain.Approved &&
			t.Category == domain.ExpenseCategory("MILESTONE") &&
			t.OfficeShare != nil && t.OfficeShare.Equal(decimal.NewFromInt(200)) &&
			t.OpsShare != nil && t.OpsShare.Equal(decimal.NewFromInt(800))
	})).Return(nil).Once()

	resp, err := suite.service.RecordIncome(ctx, "company-1", dto.RecordIncomeRequest{
		ProjectID:   "project-1",
		Amount:      decimal.NewFromInt(1000),
		Category:    "MILESTONE",
		Description: "Milestone 2 payment",
	}, "accountant-1")

	suite.Require().NoError(err)
	suite.True(resp.OfficeShare.Equal(decimal.NewFromInt(200)))
	suite.True(resp.OpsShare.Equal(decimal.NewFromInt(800)))
	suite.True(resp.OfficeShare.Add(resp.OpsShare).Equal(decimal.NewFromInt(1000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordIncome_LumpSumAllOperational() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapRecordIncome)
	project := suite.activeProject("company-1")
	project.RevenueModel = domain.ExecutionLumpSum
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()
	suite.mockRepo.On("SaveIncome", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.OfficeShare.IsZero() && t.OpsShare.Equal(decimal.NewFromInt(1000))
	})).Return(nil).Once()

	resp, err := suite.service.RecordIncome(ctx, "company-1", dto.RecordIncomeRequest{
		ProjectID: "project-1",
		Amount:    decimal.NewFromInt(1000),
	}, "accountant-1")

	suite.Require().NoError(err)
	suite.True(resp.OfficeShare.IsZero())
	suite.True(resp.OpsShare.Equal(decimal.NewFromInt(1000)))
}

func (suite *TransactionServiceTestSuite) TestRecordIncome_NonPositiveAmount() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapRecordIncome)
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").
		Return(suite.activeProject("company-1"), nil).Once()

	_, err := suite.service.RecordIncome(ctx, "company-1", dto.RecordIncomeRequest{
		ProjectID: "project-1",
		Amount:    decimal.Zero,
	}, "accountant-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveIncome", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_OtherUsersHiddenFromEngineers() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-2", domain.RoleEngineer, domain.CapNone)
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		CompanyID:     "company-1",
		Type:          domain.Expense,
		Status:        domain.Draft,
		Amount:        decimal.NewFromInt(100),
		AuditFields:   domain.AuditFields{CreatedBy: "engineer-1"},
	}
	suite.mockRepo.On("FindTransactionByID", ctx, "company-1", "txn-1").Return(txn, nil).Once()

	_, err := suite.service.GetTransactionByID(ctx, "company-1", "txn-1", "engineer-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByProject_ManagerAllowed() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapNone)
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").
		Return(suite.activeProject("company-1"), nil).Once()
	suite.mockRepo.On("ListTransactionsByProject", ctx, "company-1", "project-1", 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactionsByProject(ctx, "company-1", "project-1", "manager-1", dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByProject_EngineerForbidden() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "engineer-1", domain.RoleEngineer, domain.CapNone)
	suite.mockProjectRepo.On("FindProjectByID", ctx, "company-1", "project-1").
		Return(suite.activeProject("company-1"), nil).Once()

	_, err := suite.service.ListTransactionsByProject(ctx, "company-1", "project-1", "engineer-1", dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *TransactionServiceTestSuite) TestListPendingApprovals_Forbidden() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, "company-1", "engineer-1", domain.CapApproveExpense).
		Return(nil, apperrors.ErrForbidden).Once()

	_, err := suite.service.ListPendingApprovals(ctx, "company-1", "engineer-1", dto.ListTransactionsParams{})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPendingApprovals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
