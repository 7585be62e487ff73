package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

type MockMemberStore struct {
	mock.Mock
}

func (m *MockMemberStore) MemberById(ctx context.Context, memberId primitive.ObjectID) (*models.Member, error) {
	args := m.Called(ctx, memberId)
	var member *models.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*models.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberStore) UpdateIncrementLevel(ctx context.Context, memberId primitive.ObjectID, level int) error {
	args := m.Called(ctx, memberId, level)
	return args.Error(0)
}

type MockLoanStore struct {
	mock.Mock
}

func (m *MockLoanStore) LoanById(ctx context.Context, loanId primitive.ObjectID) (*models.Loans, error) {
	args := m.Called(ctx, loanId)
	var loan *models.Loans
	if args.Get(0) != nil {
		loan = args.Get(0).(*models.Loans)
	}
	return loan, args.Error(1)
}

func (m *MockLoanStore) OpenLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error) {
	args := m.Called(ctx, memberId)
	var loan *models.Loans
	if args.Get(0) != nil {
		loan = args.Get(0).(*models.Loans)
	}
	return loan, args.Error(1)
}

func (m *MockLoanStore) LatestLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error) {
	args := m.Called(ctx, memberId)
	var loan *models.Loans
	if args.Get(0) != nil {
		loan = args.Get(0).(*models.Loans)
	}
	return loan, args.Error(1)
}

func (m *MockLoanStore) CreateLoanEntry(ctx context.Context, loan models.Loans) (primitive.ObjectID, error) {
	args := m.Called(ctx, loan)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockLoanStore) UpdateLoanFields(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M) error {
	args := m.Called(ctx, loanId, version, fields)
	return args.Error(0)
}

func (m *MockLoanStore) CommitApproval(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M, installments []models.Installment) error {
	args := m.Called(ctx, loanId, version, fields, installments)
	return args.Error(0)
}

type MockLoanScopeStore struct {
	mock.Mock
}

func (m *MockLoanScopeStore) ActiveLoansByScope(ctx context.Context, scope string, scopeId primitive.ObjectID) ([]models.Loans, error) {
	args := m.Called(ctx, scope, scopeId)
	var loans []models.Loans
	if args.Get(0) != nil {
		loans = args.Get(0).([]models.Loans)
	}
	return loans, args.Error(1)
}

type MockInstallmentStore struct {
	mock.Mock
}

func (m *MockInstallmentStore) InstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error) {
	args := m.Called(ctx, loanId)
	var installments []models.Installment
	if args.Get(0) != nil {
		installments = args.Get(0).([]models.Installment)
	}
	return installments, args.Error(1)
}

func (m *MockInstallmentStore) UnpaidInstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error) {
	args := m.Called(ctx, loanId)
	var installments []models.Installment
	if args.Get(0) != nil {
		installments = args.Get(0).([]models.Installment)
	}
	return installments, args.Error(1)
}

func (m *MockInstallmentStore) NextUnpaidInstallment(ctx context.Context, loanId primitive.ObjectID) (*models.Installment, error) {
	args := m.Called(ctx, loanId)
	var installment *models.Installment
	if args.Get(0) != nil {
		installment = args.Get(0).(*models.Installment)
	}
	return installment, args.Error(1)
}

type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) CommitDistribution(ctx context.Context, payment models.Payments, installments []models.Installment, loanId primitive.ObjectID, loanVersion int32, loanFields bson.M) (primitive.ObjectID, error) {
	args := m.Called(ctx, payment, installments, loanId, loanVersion, loanFields)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPaymentStore) SetKafkaFlag(ctx context.Context, paymentIds []string) ([]string, error) {
	args := m.Called(ctx, paymentIds)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

type MockIncrementLevelStore struct {
	mock.Mock
}

func (m *MockIncrementLevelStore) LevelByNumber(ctx context.Context, level int) (*models.LoanIncrementLevel, error) {
	args := m.Called(ctx, level)
	var row *models.LoanIncrementLevel
	if args.Get(0) != nil {
		row = args.Get(0).(*models.LoanIncrementLevel)
	}
	return row, args.Error(1)
}

func (m *MockIncrementLevelStore) MaxLevel(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTransactionInProgress struct {
	mock.Mock
}

func (m *MockTransactionInProgress) DeleteTransactionInProgressByMember(ctx context.Context, memberId primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, memberId)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionInProgress) CreateTransactionInProgressEntry(ctx context.Context, transactionInProgressDB models.TransactionInProgress) (bool, error) {
	args := m.Called(ctx, transactionInProgressDB)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionInProgress) IsCreateInProgress(ctx context.Context, memberId primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, memberId)
	return args.Bool(0), args.Error(1)
}

type MockLedgerPublisher struct {
	mock.Mock
}

func (m *MockLedgerPublisher) PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyMember(ctx context.Context, phone string, event string, branchId primitive.ObjectID, parameters map[string]string) error {
	args := m.Called(ctx, phone, event, branchId, parameters)
	return args.Error(0)
}

type MockReconciliationPublisher struct {
	mock.Mock
}

func (m *MockReconciliationPublisher) PublishReconciliationAlert(ctx context.Context, alert models.ReconciliationAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type MockRedisStore struct {
	mock.Mock
}

func (m *MockRedisStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisStore) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) Get(ctx context.Context, key string) (interface{}, error) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Error(1)
}

func (m *MockRedisStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Duration), args.Error(1)
}

type MockIncrementPolicy struct {
	mock.Mock
}

func (m *MockIncrementPolicy) NextIncrement(ctx context.Context, memberId primitive.ObjectID) (*models.IncrementSuggestion, error) {
	args := m.Called(ctx, memberId)
	var suggestion *models.IncrementSuggestion
	if args.Get(0) != nil {
		suggestion = args.Get(0).(*models.IncrementSuggestion)
	}
	return suggestion, args.Error(1)
}

func (m *MockIncrementPolicy) ValidateRequestedLoan(ctx context.Context, member *models.Member, requestedAmount money.Money, requestedWeeks int, actingUserRole string) (*models.LoanValidationResult, *models.IncrementSuggestion, error) {
	args := m.Called(ctx, member, requestedAmount, requestedWeeks, actingUserRole)
	var result *models.LoanValidationResult
	if args.Get(0) != nil {
		result = args.Get(0).(*models.LoanValidationResult)
	}
	var suggestion *models.IncrementSuggestion
	if args.Get(1) != nil {
		suggestion = args.Get(1).(*models.IncrementSuggestion)
	}
	return result, suggestion, args.Error(2)
}
