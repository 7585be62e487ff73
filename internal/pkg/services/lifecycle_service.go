package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/common"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/logger"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/utils/worker"
)

// LoanLifecycleService owns every legal loan state transition: origination
// into pending, approval into active with the schedule materialized, rejection
// and write-off. Payment-driven transitions live in the payment service.
type LoanLifecycleService struct {
	workerPool                *worker.WorkerPool
	memberRepo                MemberStoreInterface
	loanRepo                  LoanStoreInterface
	policy                    IncrementPolicyInterface
	schedule                  ScheduleGeneratorInterface
	transactionInProgressRepo TransactionInProgressInterface
	ledger                    LedgerPublisherInterface
	notificationService       NotificationServiceInterface
}

func NewLoanLifecycleService(workerPool *worker.WorkerPool, memberRepo MemberStoreInterface, loanRepo LoanStoreInterface, policy IncrementPolicyInterface, schedule ScheduleGeneratorInterface, transactionInProgressRepo TransactionInProgressInterface, ledger LedgerPublisherInterface, notificationService NotificationServiceInterface) *LoanLifecycleService {
	return &LoanLifecycleService{
		workerPool:                workerPool,
		memberRepo:                memberRepo,
		loanRepo:                  loanRepo,
		policy:                    policy,
		schedule:                  schedule,
		transactionInProgressRepo: transactionInProgressRepo,
		ledger:                    ledger,
		notificationService:       notificationService,
	}
}

func (s *LoanLifecycleService) CreateLoan(ctx context.Context, request models.CreateLoanRequest) (primitive.ObjectID, error) {
	startTime := time.Now()

	memberId, err := utils.ParseObjectID(request.MemberId)
	if err != nil {
		return primitive.NilObjectID, err
	}
	branchId, err := utils.ParseObjectID(request.BranchId)
	if err != nil {
		return primitive.NilObjectID, err
	}
	officerId, err := utils.ParseObjectID(request.OfficerId)
	if err != nil {
		return primitive.NilObjectID, err
	}

	principal, err := utils.ParseAmount(request.Principal)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !principal.IsPositive() {
		return primitive.NilObjectID, consts.ErrorPrincipalNotPositive
	}
	if request.TermWeeks < 1 {
		return primitive.NilObjectID, consts.ErrorInvalidTermWeeks
	}

	program := models.LoanProgram(request.Program)
	if program != models.SmallLoan && program != models.BigLoan {
		return primitive.NilObjectID, consts.ErrorInvalidProgram
	}
	installmentType := models.InstallmentType(request.InstallmentType)
	if installmentType == "" {
		installmentType = models.InstallmentWeekly
	}

	member, err := s.memberRepo.MemberById(ctx, memberId)
	if err != nil {
		return primitive.NilObjectID, err
	}

	inProgress, err := s.transactionInProgressRepo.IsCreateInProgress(ctx, memberId)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if inProgress {
		return primitive.NilObjectID, consts.ErrorCreateInProgress
	}
	if _, err := s.transactionInProgressRepo.CreateTransactionInProgressEntry(ctx, common.SerializeTransactionInProgress(memberId)); err != nil {
		return primitive.NilObjectID, err
	}
	defer s.transactionInProgressRepo.DeleteTransactionInProgressByMember(ctx, memberId)

	_, suggestion, err := s.policy.ValidateRequestedLoan(ctx, member, principal, request.TermWeeks, request.ActingUserRole)
	if err != nil {
		logger.Info(ctx, common.SerializeOperationLog("CreateLoan", consts.LoggerFailedResult, startTime, "", memberId.Hex(), "", utils.GetErrorCode(err)))
		return primitive.NilObjectID, err
	}

	rate := request.InterestRate
	if rate == 0 {
		rate = s.rateForProgram(program)
	}
	interest := principal.MulRate(rate)

	var previousLoanId *primitive.ObjectID
	if latest, err := s.loanRepo.LatestLoanByMember(ctx, memberId); err == nil && latest != nil {
		id := latest.LoanId
		previousLoanId = &id
	}

	loan := common.SerializeLoan(memberId, branchId, officerId, program, principal, rate, interest, suggestion.Level, request.TermWeeks, installmentType, previousLoanId)

	loanId, err := s.loanRepo.CreateLoanEntry(ctx, loan)
	if err != nil {
		return primitive.NilObjectID, consts.ErrorStoreTimeout
	}
	loan.LoanId = loanId

	s.publishAsync(ctx, consts.LedgerLoanCreated, &loan, money.Zero, request.ActingUserId)
	s.notifyAsync(ctx, member.Phone, consts.LoanCreatedPendingApproval, branchId, map[string]string{
		consts.LoanAmount: principal.String(),
	})

	logger.Info(ctx, common.SerializeOperationLog("CreateLoan", consts.LoggerSuccessResult, startTime, loanId.Hex(), memberId.Hex(), "", ""))
	return loanId, nil
}

func (s *LoanLifecycleService) ApproveLoan(ctx context.Context, loanIdHex string, request models.ApproveLoanRequest) (*models.Loans, error) {
	startTime := time.Now()

	loanId, err := utils.ParseObjectID(loanIdHex)
	if err != nil {
		return nil, err
	}
	approverId, err := utils.ParseObjectID(request.ApproverId)
	if err != nil {
		return nil, err
	}

	loan, err := s.loanRepo.LoanById(ctx, loanId)
	if err != nil {
		return nil, err
	}
	if loan.ApprovalStatus == models.ApprovalApproved {
		logger.Error(ctx, "Lifecycle : approve called twice on loan %v", loanId.Hex())
		return nil, consts.ErrorAlreadyApproved
	}
	if err := requirePending(ctx, loan); err != nil {
		return nil, err
	}

	issueDate := money.DateOnly(time.Now())
	dueDate := money.AddWeeks(issueDate, loan.PaymentTermWeeks)
	approvedAt := time.Now()

	installments := s.schedule.GenerateSchedule(loan.Principal, loan.InterestDisbursed, issueDate, loan.PaymentTermWeeks, loan.InstallmentType)
	for i := range installments {
		installments[i].InstallmentId = primitive.NewObjectID()
		installments[i].LoanId = loanId
		installments[i].CreatedAt = approvedAt
	}

	balance := loan.Principal.Add(loan.InterestDisbursed)
	fields := bson.M{
		"status":         models.LoanActive,
		"approvalStatus": models.ApprovalApproved,
		"approvedBy":     approverId,
		"approvedAt":     approvedAt,
		"issueDate":      issueDate,
		"dueDate":        dueDate,
		"currentBalance": balance,
		"updatedAt":      approvedAt,
	}

	if err := s.loanRepo.CommitApproval(ctx, loanId, loan.Version, fields, installments); err != nil {
		logger.Info(ctx, common.SerializeOperationLog("ApproveLoan", consts.LoggerFailedResult, startTime, loanId.Hex(), loan.MemberId.Hex(), "", utils.GetErrorCode(err)))
		return nil, consts.ErrorStoreTimeout
	}

	loan.Status = models.LoanActive
	loan.ApprovalStatus = models.ApprovalApproved
	loan.ApprovedBy = &approverId
	loan.ApprovedAt = &approvedAt
	loan.IssueDate = &issueDate
	loan.DueDate = &dueDate
	loan.CurrentBalance = balance
	loan.Version = loan.Version + 1

	s.publishAsync(ctx, consts.LedgerLoanApproved, loan, money.Zero, request.ApproverId)
	s.notifyMemberAsync(ctx, loan, consts.LoanApproved, map[string]string{
		consts.LoanAmount: loan.Principal.String(),
		consts.LoanDate:   issueDate.Format("2006-01-02"),
	})

	logger.Info(ctx, common.SerializeOperationLog("ApproveLoan", consts.LoggerSuccessResult, startTime, loanId.Hex(), loan.MemberId.Hex(), "", ""))
	return loan, nil
}

func (s *LoanLifecycleService) RejectLoan(ctx context.Context, loanIdHex string, request models.RejectLoanRequest) (*models.Loans, error) {
	startTime := time.Now()

	loanId, err := utils.ParseObjectID(loanIdHex)
	if err != nil {
		return nil, err
	}
	if _, err := utils.ParseObjectID(request.ApproverId); err != nil {
		return nil, err
	}

	loan, err := s.loanRepo.LoanById(ctx, loanId)
	if err != nil {
		return nil, err
	}
	if err := requirePending(ctx, loan); err != nil {
		return nil, err
	}

	now := time.Now()
	fields := bson.M{
		"status":         models.LoanRejected,
		"approvalStatus": models.ApprovalRejected,
		"rejectedReason": request.Reason,
		"updatedAt":      now,
	}
	if err := s.loanRepo.UpdateLoanFields(ctx, loanId, loan.Version, fields); err != nil {
		return nil, consts.ErrorStoreTimeout
	}

	loan.Status = models.LoanRejected
	loan.ApprovalStatus = models.ApprovalRejected
	loan.RejectedReason = request.Reason
	loan.Version = loan.Version + 1

	s.publishAsync(ctx, consts.LedgerLoanRejected, loan, money.Zero, request.ApproverId)
	s.notifyMemberAsync(ctx, loan, consts.LoanRejected, nil)

	logger.Info(ctx, common.SerializeOperationLog("RejectLoan", consts.LoggerSuccessResult, startTime, loanId.Hex(), loan.MemberId.Hex(), "", ""))
	return loan, nil
}

func (s *LoanLifecycleService) WriteOffLoan(ctx context.Context, loanIdHex string, request models.WriteOffLoanRequest) (*models.Loans, error) {
	startTime := time.Now()

	loanId, err := utils.ParseObjectID(loanIdHex)
	if err != nil {
		return nil, err
	}
	approverId, err := utils.ParseObjectID(request.ApproverId)
	if err != nil {
		return nil, err
	}

	loan, err := s.loanRepo.LoanById(ctx, loanId)
	if err != nil {
		return nil, err
	}
	if loan.Status != models.LoanActive {
		if loan.Status.IsTerminal() {
			logger.Error(ctx, "Lifecycle : write-off attempted on terminal loan %v (%v)", loanId.Hex(), loan.Status)
			return nil, consts.ErrorLoanTerminal
		}
		return nil, consts.ErrorLoanNotActive
	}

	// The balance is intentionally left as-is: it freezes as the written-off
	// amount.
	now := time.Now()
	fields := bson.M{
		"status":         models.LoanBadDebt,
		"writtenOffDate": now,
		"writtenOffBy":   approverId,
		"writeOffNotes":  request.Notes,
		"updatedAt":      now,
	}
	if err := s.loanRepo.UpdateLoanFields(ctx, loanId, loan.Version, fields); err != nil {
		return nil, consts.ErrorStoreTimeout
	}

	loan.Status = models.LoanBadDebt
	loan.WrittenOffDate = &now
	loan.WrittenOffBy = &approverId
	loan.WriteOffNotes = request.Notes
	loan.Version = loan.Version + 1

	s.publishAsync(ctx, consts.LedgerLoanWrittenOff, loan, money.Zero, request.ApproverId)
	s.notifyMemberAsync(ctx, loan, consts.LoanWrittenOff, map[string]string{
		consts.RemainingLoanAmount: loan.CurrentBalance.String(),
	})

	logger.Info(ctx, common.SerializeOperationLog("WriteOffLoan", consts.LoggerSuccessResult, startTime, loanId.Hex(), loan.MemberId.Hex(), "", ""))
	return loan, nil
}

func (s *LoanLifecycleService) rateForProgram(program models.LoanProgram) float64 {
	if program == models.BigLoan {
		return configs.BIG_LOAN_INTEREST_RATE
	}
	return configs.SMALL_LOAN_INTEREST_RATE
}

func requirePending(ctx context.Context, loan *models.Loans) error {
	if loan.Status == models.LoanPending && loan.ApprovalStatus == models.ApprovalPending {
		return nil
	}
	if loan.Status.IsTerminal() {
		logger.Error(ctx, "Lifecycle : illegal transition from terminal state %v on loan %v", loan.Status, loan.LoanId.Hex())
		return consts.ErrorLoanTerminal
	}
	logger.Error(ctx, "Lifecycle : loan %v is %v, not pending", loan.LoanId.Hex(), loan.Status)
	return consts.ErrorLoanNotPending
}

func (s *LoanLifecycleService) publishAsync(ctx context.Context, eventType string, loan *models.Loans, amount money.Money, actingUserId string) {
	event := common.SerializeLedgerEvent(eventType, loan, amount, actingUserId)
	s.workerPool.Submit(func() {
		if err := s.ledger.PublishLedgerEvent(context.WithoutCancel(ctx), event); err != nil {
			logger.Error(ctx, "Lifecycle : ledger publish failed for %v: %v", event.EventId, err)
		}
	})
}

func (s *LoanLifecycleService) notifyMemberAsync(ctx context.Context, loan *models.Loans, event string, parameters map[string]string) {
	member, err := s.memberRepo.MemberById(ctx, loan.MemberId)
	if err != nil {
		logger.Warn(ctx, "Lifecycle : cannot notify, member %v lookup failed: %v", loan.MemberId.Hex(), err)
		return
	}
	s.notifyAsync(ctx, member.Phone, event, loan.BranchId, parameters)
}

func (s *LoanLifecycleService) notifyAsync(ctx context.Context, phone string, event string, branchId primitive.ObjectID, parameters map[string]string) {
	s.workerPool.Submit(func() {
		if err := s.notificationService.NotifyMember(context.WithoutCancel(ctx), phone, event, branchId, parameters); err != nil {
			logger.Error(ctx, "Lifecycle : notification %v failed: %v", event, err)
		}
	})
}
