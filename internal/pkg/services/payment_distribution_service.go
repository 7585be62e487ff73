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

// PaymentDistributionService applies incoming payments across a loan's
// outstanding installments and aggregates. Payments against the same loan are
// serialized through a redis lease keyed by the loan id; the commit itself is
// one store transaction guarded by the loan version, so a partial write can
// never surface.
type PaymentDistributionService struct {
	workerPool          *worker.WorkerPool
	memberRepo          MemberStoreInterface
	loanRepo            LoanStoreInterface
	installmentRepo     InstallmentStoreInterface
	paymentRepo         PaymentStoreInterface
	redisStore          RedisStoreOperations
	ledger              LedgerPublisherInterface
	notificationService NotificationServiceInterface
	reconciliation      ReconciliationPublisherInterface
}

func NewPaymentDistributionService(workerPool *worker.WorkerPool, memberRepo MemberStoreInterface, loanRepo LoanStoreInterface, installmentRepo InstallmentStoreInterface, paymentRepo PaymentStoreInterface, redisStore RedisStoreOperations, ledger LedgerPublisherInterface, notificationService NotificationServiceInterface, reconciliation ReconciliationPublisherInterface) *PaymentDistributionService {
	return &PaymentDistributionService{
		workerPool:          workerPool,
		memberRepo:          memberRepo,
		loanRepo:            loanRepo,
		installmentRepo:     installmentRepo,
		paymentRepo:         paymentRepo,
		redisStore:          redisStore,
		ledger:              ledger,
		notificationService: notificationService,
		reconciliation:      reconciliation,
	}
}

func (s *PaymentDistributionService) RecordPayment(ctx context.Context, request models.RecordPaymentRequest) (*models.PaymentResult, error) {
	startTime := time.Now()

	loanId, err := utils.ParseObjectID(request.LoanId)
	if err != nil {
		return nil, err
	}
	recordedBy, err := utils.ParseObjectID(request.ActingUserId)
	if err != nil {
		return nil, err
	}
	amount, err := utils.ParseAmount(request.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, consts.ErrorAmountNotPositive
	}
	paymentDate, err := utils.ParseDate(request.PaymentDate)
	if err != nil {
		return nil, err
	}

	if err := s.acquireLock(ctx, loanId); err != nil {
		return nil, err
	}
	defer s.releaseLock(ctx, loanId)

	loan, err := s.loanRepo.LoanById(ctx, loanId)
	if err != nil {
		return nil, err
	}
	if loan.Status != models.LoanActive {
		if loan.Status.IsTerminal() {
			logger.Error(ctx, "Payments : payment against terminal loan %v (%v)", loanId.Hex(), loan.Status)
			return nil, consts.ErrorLoanTerminal
		}
		return nil, consts.ErrorLoanNotActive
	}

	unpaid, err := s.installmentRepo.UnpaidInstallmentsByLoan(ctx, loanId)
	if err != nil {
		return nil, consts.ErrorStoreTimeout
	}

	touched := distribute(unpaid, amount, paymentDate)

	outstanding := loan.Outstanding()
	excess := money.Zero
	if amount.Cmp(outstanding) > 0 {
		excess = amount.Sub(outstanding)
	}

	newTotalPaid := loan.TotalPaid.Add(amount)
	newBalance := loan.Principal.Add(loan.InterestDisbursed).Sub(newTotalPaid)
	if newBalance.IsNegative() {
		newBalance = money.Zero
	}
	newExcessCredit := loan.ExcessCredit.Add(excess)
	loanClosed := newBalance.IsZero()

	now := time.Now()
	fields := bson.M{
		"currentBalance": newBalance,
		"totalPaid":      newTotalPaid,
		"excessCredit":   newExcessCredit,
		"updatedAt":      now,
	}
	if loanClosed {
		fields["status"] = models.LoanRepaid
	}

	payment := common.SerializePayment(loanId, amount, excess, paymentDate, request.Method, request.Note, recordedBy)

	paymentId, err := s.paymentRepo.CommitDistribution(ctx, payment, touched, loanId, loan.Version, fields)
	if err != nil {
		logger.Info(ctx, common.SerializeOperationLog("RecordPayment", consts.LoggerFailedResult, startTime, loanId.Hex(), loan.MemberId.Hex(), payment.GUID, utils.GetErrorCode(consts.ErrorStoreTimeout)))
		return nil, consts.ErrorStoreTimeout
	}

	loan.CurrentBalance = newBalance
	loan.TotalPaid = newTotalPaid
	loan.ExcessCredit = newExcessCredit
	if loanClosed {
		loan.Status = models.LoanRepaid
	}

	s.afterCommit(ctx, loan, payment, paymentId, amount, excess, loanClosed, request.ActingUserId)

	updatedIds := make([]primitive.ObjectID, len(touched))
	for i := range touched {
		updatedIds[i] = touched[i].InstallmentId
	}

	logger.Info(ctx, common.SerializeOperationLog("RecordPayment", consts.LoggerSuccessResult, startTime, loanId.Hex(), loan.MemberId.Hex(), payment.GUID, ""))
	return &models.PaymentResult{
		PaymentId:           paymentId,
		InstallmentsUpdated: updatedIds,
		NewBalance:          newBalance,
		ExcessCredit:        excess,
		LoanClosed:          loanClosed,
	}, nil
}

// distribute walks unpaid installments in sequence order, covering each
// installment's remaining due before any money carries to the next. Returns
// only the installments actually touched, already mutated to their post-
// payment state.
func distribute(unpaid []models.Installment, amount money.Money, paymentDate time.Time) []models.Installment {
	remaining := amount
	var touched []models.Installment

	for i := range unpaid {
		if !remaining.IsPositive() {
			break
		}
		inst := unpaid[i]
		applied := remaining.Min(inst.RemainingDue())
		if !applied.IsPositive() {
			continue
		}
		inst.AmountPaid = inst.AmountPaid.Add(applied)
		if inst.AmountPaid.Cmp(inst.Total) >= 0 {
			inst.IsPaid = true
			paid := paymentDate
			inst.PaidDate = &paid
		}
		remaining = remaining.Sub(applied)
		touched = append(touched, inst)
	}
	return touched
}

func (s *PaymentDistributionService) acquireLock(ctx context.Context, loanId primitive.ObjectID) error {
	key := consts.PaymentLockKeyPrefix + loanId.Hex()
	ttl := time.Duration(configs.PAYMENT_LOCK_TTL_SECONDS) * time.Second
	backoff := time.Duration(configs.PAYMENT_LOCK_BACKOFF_MS) * time.Millisecond

	for attempt := 0; attempt <= configs.PAYMENT_LOCK_RETRIES; attempt++ {
		acquired, err := s.redisStore.SetNX(ctx, key, "1", ttl)
		if err != nil {
			logger.Error(ctx, "Payments : lock acquire error for %v: %v", key, err)
			return consts.ErrorStoreTimeout
		}
		if acquired {
			return nil
		}
		select {
		case <-ctx.Done():
			return consts.ErrorStoreTimeout
		case <-time.After(backoff):
		}
	}
	logger.Warn(ctx, "Payments : lock timeout for loan %v", loanId.Hex())
	return consts.ErrorPaymentLockTimeout
}

func (s *PaymentDistributionService) releaseLock(ctx context.Context, loanId primitive.ObjectID) {
	key := consts.PaymentLockKeyPrefix + loanId.Hex()
	if err := s.redisStore.Delete(ctx, key); err != nil {
		// The TTL reclaims an orphaned lease.
		logger.Warn(ctx, "Payments : lock release failed for %v: %v", key, err)
	}
}

func (s *PaymentDistributionService) afterCommit(ctx context.Context, loan *models.Loans, payment models.Payments, paymentId primitive.ObjectID, amount money.Money, excess money.Money, loanClosed bool, actingUserId string) {
	detached := context.WithoutCancel(ctx)

	ledgerEvent := common.SerializeLedgerEvent(consts.LedgerPaymentApplied, loan, amount, actingUserId)
	s.workerPool.Submit(func() {
		if err := s.ledger.PublishLedgerEvent(detached, ledgerEvent); err != nil {
			logger.Error(ctx, "Payments : ledger publish failed for %v: %v", ledgerEvent.EventId, err)
			return
		}
		if _, err := s.paymentRepo.SetKafkaFlag(detached, []string{paymentId.Hex()}); err != nil {
			logger.Error(ctx, "Payments : kafka flag update failed for %v: %v", paymentId.Hex(), err)
		}
	})
	if loanClosed {
		repaidEvent := common.SerializeLedgerEvent(consts.LedgerLoanRepaid, loan, money.Zero, actingUserId)
		s.workerPool.Submit(func() {
			if err := s.ledger.PublishLedgerEvent(detached, repaidEvent); err != nil {
				logger.Error(ctx, "Payments : ledger publish failed for %v: %v", repaidEvent.EventId, err)
			}
		})
	}

	if excess.IsPositive() {
		alert := models.ReconciliationAlert{
			LoanId:       loan.LoanId.Hex(),
			PaymentGUID:  payment.GUID,
			ExcessAmount: excess.String(),
			RecordedBy:   actingUserId,
		}
		s.workerPool.Submit(func() {
			if err := s.reconciliation.PublishReconciliationAlert(detached, alert); err != nil {
				logger.Error(ctx, "Payments : reconciliation alert failed for %v: %v", alert.PaymentGUID, err)
			}
		})
	}

	member, err := s.memberRepo.MemberById(ctx, loan.MemberId)
	if err != nil {
		logger.Warn(ctx, "Payments : cannot notify, member %v lookup failed: %v", loan.MemberId.Hex(), err)
		return
	}
	event := consts.PaymentReceived
	parameters := map[string]string{
		consts.AmountCollected:     amount.String(),
		consts.RemainingLoanAmount: loan.CurrentBalance.String(),
	}
	if loanClosed {
		event = consts.LoanFullyRepaid
	}
	phone := member.Phone
	branchId := loan.BranchId
	s.workerPool.Submit(func() {
		if err := s.notificationService.NotifyMember(detached, phone, event, branchId, parameters); err != nil {
			logger.Error(ctx, "Payments : notification %v failed: %v", event, err)
		}
	})
	if excess.IsPositive() {
		excessParams := map[string]string{consts.ExcessAmount: excess.String()}
		s.workerPool.Submit(func() {
			if err := s.notificationService.NotifyMember(detached, phone, consts.PaymentExcessFlagged, branchId, excessParams); err != nil {
				logger.Error(ctx, "Payments : notification %v failed: %v", consts.PaymentExcessFlagged, err)
			}
		})
	}
}
