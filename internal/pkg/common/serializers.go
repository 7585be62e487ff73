package common

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/money"
)

func SerializeLoan(memberId primitive.ObjectID, branchId primitive.ObjectID, officerId primitive.ObjectID, program models.LoanProgram, principal money.Money, interestRate float64, interest money.Money, incrementLevel int, termWeeks int, installmentType models.InstallmentType, previousLoanId *primitive.ObjectID) models.Loans {

	now := time.Now()

	return models.Loans{
		LoanId:            primitive.NewObjectID(),
		MemberId:          memberId,
		BranchId:          branchId,
		OfficerId:         officerId,
		Program:           program,
		Principal:         principal,
		InterestRate:      interestRate,
		InterestDisbursed: interest,
		IncrementLevel:    incrementLevel,
		PaymentTermWeeks:  termWeeks,
		InstallmentType:   installmentType,
		// Provisional until approval; authoritative once the schedule exists.
		CurrentBalance: principal.Add(interest),
		TotalPaid:      money.Zero,
		ExcessCredit:   money.Zero,
		Status:         models.LoanPending,
		ApprovalStatus: models.ApprovalPending,
		PreviousLoanId: previousLoanId,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

}

func SerializePayment(loanId primitive.ObjectID, amount money.Money, excess money.Money, paymentDate time.Time, method string, note string, recordedBy primitive.ObjectID) models.Payments {

	return models.Payments{
		GUID:         uuid.NewString(),
		LoanId:       loanId,
		Amount:       amount,
		ExcessCredit: excess,
		PaymentDate:  paymentDate,
		Method:       method,
		Note:         note,
		RecordedBy:   recordedBy,
		KafkaFlag:    false,
		CreatedAt:    time.Now(),
	}

}

func SerializeTransactionInProgress(memberId primitive.ObjectID) models.TransactionInProgress {

	return models.TransactionInProgress{
		MemberId:  memberId,
		CreatedAt: time.Now(),
	}

}

func SerializeLedgerEvent(eventType string, loan *models.Loans, amount money.Money, actingUserId string) models.LedgerEvent {

	event := models.LedgerEvent{
		EventId:       uuid.NewString(),
		EventType:     eventType,
		LoanId:        loan.LoanId.Hex(),
		MemberId:      loan.MemberId.Hex(),
		Balance:       loan.CurrentBalance.String(),
		TotalPaid:     loan.TotalPaid.String(),
		LoanStatus:    string(loan.Status),
		ActingUserId:  actingUserId,
		EventDatetime: time.Now(),
	}
	if !amount.IsZero() {
		event.Amount = amount.String()
	}
	return event

}

func SerializeOperationLog(operation string, status string, startTime time.Time, loanId string, memberId string, transactionId string, errorCode string) models.LoanOperationLog {

	endTime := time.Now()
	tat := endTime.Sub(startTime).Seconds()

	return models.LoanOperationLog{
		Operation:     operation,
		Status:        status,
		LoanId:        loanId,
		MemberId:      memberId,
		TransactionID: transactionId,
		TAT:           tat,
		StartTime:     startTime,
		EndTime:       endTime,
		ErrorCode:     errorCode,
	}

}

// ConvertUTCToEAT shifts a UTC timestamp into branch-local East Africa Time
// for operator-facing notification text.
func ConvertUTCToEAT(utcTime time.Time) time.Time {
	loc := time.FixedZone("Africa/Nairobi", 3*60*60)
	return utcTime.In(loc)
}
