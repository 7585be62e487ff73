package consts

const (
	LoanCreatedPendingApproval = "LoanCreatedPendingApproval"
	LoanApproved               = "LoanApproved"
	LoanRejected               = "LoanRejected"
	PaymentReceived            = "PaymentReceived"
	LoanFullyRepaid            = "LoanFullyRepaid"
	LoanWrittenOff             = "LoanWrittenOff"
	PaymentExcessFlagged       = "PaymentExcessFlagged"
	LoanOverdueEscalated       = "LoanOverdueEscalated"
)

// Ledger event types published to the kafka ledger topic.
const (
	LedgerLoanCreated    = "LOAN_CREATED"
	LedgerLoanApproved   = "LOAN_APPROVED"
	LedgerLoanRejected   = "LOAN_REJECTED"
	LedgerPaymentApplied = "PAYMENT_APPLIED"
	LedgerLoanRepaid     = "LOAN_REPAID"
	LedgerLoanWrittenOff = "LOAN_WRITTEN_OFF"
)
