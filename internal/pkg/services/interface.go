package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

// Store interfaces consumed by the engine services. Implementations live in
// internal/pkg/store; tests substitute mocks.

type MemberStoreInterface interface {
	MemberById(ctx context.Context, memberId primitive.ObjectID) (*models.Member, error)
	UpdateIncrementLevel(ctx context.Context, memberId primitive.ObjectID, level int) error
}

type LoanStoreInterface interface {
	LoanById(ctx context.Context, loanId primitive.ObjectID) (*models.Loans, error)
	OpenLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error)
	LatestLoanByMember(ctx context.Context, memberId primitive.ObjectID) (*models.Loans, error)
	CreateLoanEntry(ctx context.Context, loan models.Loans) (primitive.ObjectID, error)
	UpdateLoanFields(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M) error
	CommitApproval(ctx context.Context, loanId primitive.ObjectID, version int32, fields bson.M, installments []models.Installment) error
}

type LoanScopeStoreInterface interface {
	ActiveLoansByScope(ctx context.Context, scope string, scopeId primitive.ObjectID) ([]models.Loans, error)
}

type InstallmentStoreInterface interface {
	InstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error)
	UnpaidInstallmentsByLoan(ctx context.Context, loanId primitive.ObjectID) ([]models.Installment, error)
	NextUnpaidInstallment(ctx context.Context, loanId primitive.ObjectID) (*models.Installment, error)
}

type PaymentStoreInterface interface {
	CommitDistribution(ctx context.Context, payment models.Payments, installments []models.Installment, loanId primitive.ObjectID, loanVersion int32, loanFields bson.M) (primitive.ObjectID, error)
	SetKafkaFlag(ctx context.Context, paymentIds []string) ([]string, error)
}

type IncrementLevelStoreInterface interface {
	LevelByNumber(ctx context.Context, level int) (*models.LoanIncrementLevel, error)
	MaxLevel(ctx context.Context) (int, error)
}

type TransactionInProgressInterface interface {
	DeleteTransactionInProgressByMember(ctx context.Context, memberId primitive.ObjectID) (bool, error)
	CreateTransactionInProgressEntry(ctx context.Context, transactionInProgressDB models.TransactionInProgress) (bool, error)
	IsCreateInProgress(ctx context.Context, memberId primitive.ObjectID) (bool, error)
}

// Messaging and notification collaborators.

type LedgerPublisherInterface interface {
	PublishLedgerEvent(ctx context.Context, event models.LedgerEvent) error
}

type NotificationServiceInterface interface {
	NotifyMember(ctx context.Context, phone string, event string, branchId primitive.ObjectID, parameters map[string]string) error
}

type ReconciliationPublisherInterface interface {
	PublishReconciliationAlert(ctx context.Context, alert models.ReconciliationAlert) error
}

type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Get(ctx context.Context, key string) (interface{}, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Time-based operations
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Engine service interfaces, one per component.

type ScheduleGeneratorInterface interface {
	GenerateSchedule(principal money.Money, interest money.Money, issueDate time.Time, termWeeks int, installmentType models.InstallmentType) []models.Installment
}

type IncrementPolicyInterface interface {
	NextIncrement(ctx context.Context, memberId primitive.ObjectID) (*models.IncrementSuggestion, error)
	ValidateRequestedLoan(ctx context.Context, member *models.Member, requestedAmount money.Money, requestedWeeks int, actingUserRole string) (*models.LoanValidationResult, *models.IncrementSuggestion, error)
}

type LoanLifecycleServiceInterface interface {
	CreateLoan(ctx context.Context, request models.CreateLoanRequest) (primitive.ObjectID, error)
	ApproveLoan(ctx context.Context, loanId string, request models.ApproveLoanRequest) (*models.Loans, error)
	RejectLoan(ctx context.Context, loanId string, request models.RejectLoanRequest) (*models.Loans, error)
	WriteOffLoan(ctx context.Context, loanId string, request models.WriteOffLoanRequest) (*models.Loans, error)
}

type PaymentServiceInterface interface {
	RecordPayment(ctx context.Context, request models.RecordPaymentRequest) (*models.PaymentResult, error)
}

type OverdueReportServiceInterface interface {
	OverdueReport(ctx context.Context, scope string, scopeId primitive.ObjectID, mode string) ([]models.OverdueLoanView, error)
}
